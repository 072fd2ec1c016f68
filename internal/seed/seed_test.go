package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/boreacrutis/internal/domain"
)

func TestInitialState(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := InitialState(now)

	require.Len(t, s.ContentBlocks, 11)
	require.Len(t, s.CandidateArchetypes, 3)
	require.Len(t, s.Tabs, 3)
	assert.Equal(t, ProfilesTabID, domain.Deref(s.ActiveTabID))
	assert.Equal(t, domain.ModuleProfiles, s.ActiveModule)
	assert.True(t, s.DarkMode)

	seen := map[string]bool{}
	for _, b := range s.ContentBlocks {
		assert.False(t, seen[b.ID], "duplicate block id %s", b.ID)
		seen[b.ID] = true
		assert.True(t, b.Type.Valid(), b.ID)
		assert.Equal(t, now, b.CreatedAt)
	}
	for _, a := range s.CandidateArchetypes {
		for _, id := range append(a.BaselineSkillIDs, a.BaselineRequirementIDs...) {
			_, ok := s.ContentBlock(id)
			assert.True(t, ok, "archetype %s references missing block %s", a.ID, id)
		}
	}
	for i, m := range domain.TabModules {
		assert.Equal(t, m, s.Tabs[i].ModuleType)
		assert.Equal(t, m, s.Tabs[i].State.Module())
	}
}

func TestInitialStateIsFresh(t *testing.T) {
	a := InitialState(time.Now())
	b := InitialState(time.Now())
	a.ContentBlocks[0].Tags[0] = "changed"
	assert.Equal(t, "ai", b.ContentBlocks[0].Tags[0])
}
