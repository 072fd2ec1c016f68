package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/intake"
	"github.com/starford/boreacrutis/internal/markdown"
	"github.com/starford/boreacrutis/internal/seed"
	"github.com/starford/boreacrutis/internal/store"
	"github.com/starford/boreacrutis/internal/testutil"
	"github.com/starford/boreacrutis/internal/workspace"
)

const profileDoc = "# Jane Doe\n\nSenior platform PM.\n\n## Experience\nTen years.\n"

func newService(t *testing.T) *Service {
	t.Helper()
	r := workspace.NewReducer(workspace.WithClock(testutil.Clock()))
	st := store.New(seed.InitialState(testutil.Epoch), store.WithReducer(r), store.WithLogger(testutil.Logger()))
	in := intake.New(intake.WithClock(testutil.Clock()), intake.WithIDs(testutil.Sequence()))
	return New(st, in, markdown.DefaultFormatter)
}

func TestParseModule(t *testing.T) {
	m, err := ParseModule(" JobAds ")
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleJobAds, m)

	_, err = ParseModule("rockets")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestTabs(t *testing.T) {
	svc := newService(t)
	all := svc.Tabs("")
	require.Len(t, all, 3)
	assert.True(t, all[0].Active)
	assert.False(t, all[1].Active)

	ads := svc.Tabs(domain.ModuleJobAds)
	require.Len(t, ads, 1)
	assert.Equal(t, seed.JobAdsTabID, ads[0].ID)
	assert.Zero(t, ads[0].Items)
}

func TestImportIntoActiveTab(t *testing.T) {
	svc := newService(t)
	got, err := svc.Import(context.Background(), domain.ModuleProfiles, "", profileDoc)
	require.NoError(t, err)
	assert.Equal(t, seed.ProfilesTabID, got.TabID)
	assert.Equal(t, "Jane Doe", got.Title)

	tab, _ := svc.State().Tab(seed.ProfilesTabID)
	ps, _ := tab.Profiles()
	require.Len(t, ps.Profiles, 1)
	assert.Equal(t, got.EntityID, ps.Profiles[0].ID)
	assert.Equal(t, domain.SenioritySenior, ps.Profiles[0].SeniorityLevel)
	assert.Equal(t, 1, svc.Tabs(domain.ModuleProfiles)[0].Items)
}

func TestImportFallsBackToFirstTabOfModule(t *testing.T) {
	svc := newService(t)
	// The active tab is the profiles tab, so job ads land in the first job ad tab.
	got, err := svc.Import(context.Background(), domain.ModuleJobAds, "", "# Backend PM\n")
	require.NoError(t, err)
	assert.Equal(t, seed.JobAdsTabID, got.TabID)
}

func TestImportRejections(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	before := svc.State()

	_, err := svc.Import(ctx, domain.ModuleProfiles, "", "  \n\t")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Import(ctx, domain.ModuleLibrary, "", profileDoc)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Import(ctx, domain.ModuleProfiles, seed.JobAdsTabID, profileDoc)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "tab of another module")

	_, err = svc.Import(ctx, domain.ModuleProfiles, "tab-missing", profileDoc)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	svc.Dispatch(ctx, workspace.RemoveTab{TabID: seed.CaseStudiesTabID})
	_, err = svc.Import(ctx, domain.ModuleCaseStudies, "", "# Case\n")
	assert.ErrorIs(t, err, apperr.ErrNotFound, "module without tabs")

	after := svc.State()
	assert.Equal(t, before.TabsFor(domain.ModuleProfiles), after.TabsFor(domain.ModuleProfiles))
}

func TestExport(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	imp, err := svc.Import(ctx, domain.ModuleProfiles, seed.ProfilesTabID, profileDoc)
	require.NoError(t, err)

	exp, err := svc.Export(domain.ModuleProfiles, seed.ProfilesTabID, imp.EntityID)
	require.NoError(t, err)
	assert.Equal(t, "jane-doe.md", exp.Filename)
	assert.Contains(t, exp.Markdown, "# Jane Doe\n")

	_, html, err := svc.ExportHTML(domain.ModuleProfiles, seed.ProfilesTabID, imp.EntityID)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1")

	_, err = svc.Export(domain.ModuleJobAds, seed.ProfilesTabID, imp.EntityID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Export(domain.ModuleProfiles, seed.ProfilesTabID, "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDispatchJSON(t *testing.T) {
	svc := newService(t)
	st, err := svc.DispatchJSON(context.Background(), []byte(`{"type":"TOGGLE_DARK_MODE"}`))
	require.NoError(t, err)
	assert.False(t, st.DarkMode)

	_, err = svc.DispatchJSON(context.Background(), []byte(`{"type":"LAUNCH"}`))
	assert.ErrorIs(t, err, apperr.ErrUnknownAction)
	assert.False(t, svc.State().DarkMode)
}

func TestLibrary(t *testing.T) {
	svc := newService(t)
	all := svc.Library()
	require.Len(t, all.Blocks, len(svc.State().ContentBlocks))
	assert.Equal(t, len(all.Blocks), all.Stats.Total)

	skill := domain.BlockSkill
	svc.Dispatch(context.Background(), workspace.SetLibraryFilter{Filter: workspace.LibraryFilterPatch{Type: domain.Some(&skill)}})
	view := svc.Library()
	require.NotEmpty(t, view.Blocks)
	for _, b := range view.Blocks {
		assert.Equal(t, domain.BlockSkill, b.Type)
	}
	assert.Equal(t, all.Stats, view.Stats, "counts cover the whole library")

	assert.Empty(t, svc.ContentBlocks(domain.LibraryFilter{SearchQuery: domain.Ref("zzz-no-match")}))
}
