package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/seed"
)

func ids(blocks []domain.ContentBlock) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	blocks := seed.ContentBlocks(time.Now())
	skill := domain.BlockSkill

	tests := []struct {
		name   string
		filter domain.LibraryFilter
		want   []string
	}{
		{"type", domain.LibraryFilter{Type: &skill}, []string{"skill-api-design", "skill-product-management", "skill-ux-design"}},
		{"category", domain.LibraryFilter{Category: domain.Ref("compensation")}, []string{"benefit-ai-tools", "benefit-learning-budget"}},
		{"all tags", domain.LibraryFilter{Tags: []string{"ai", "prototyping"}}, []string{"req-ai-prototyping", "question-prototyping"}},
		{"search title", domain.LibraryFilter{SearchQuery: domain.Ref("REMOTE")}, []string{"benefit-remote-work"}},
		{"search content", domain.LibraryFilter{SearchQuery: domain.Ref("oauth")}, []string{"skill-api-design"}},
		{"search tag", domain.LibraryFilter{SearchQuery: domain.Ref("culture-fit")}, []string{"req-hungry-curious"}},
		{"combined", domain.LibraryFilter{Type: &skill, SearchQuery: domain.Ref("prototypes")}, []string{"skill-ux-design"}},
		{"blank search", domain.LibraryFilter{SearchQuery: domain.Ref("  ")}, ids(blocks)},
		{"no match", domain.LibraryFilter{Tags: []string{"nope"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(blocks, tt.filter)))
		})
	}
}

func TestSummarize(t *testing.T) {
	st := Summarize(seed.ContentBlocks(time.Now()))
	assert.Equal(t, 11, st.Total)
	assert.Equal(t, 3, st.ByType[domain.BlockBenefit])
	assert.Equal(t, 2, st.ByType[domain.BlockRequirement])
	assert.Equal(t, 3, st.ByType[domain.BlockSkill])
	assert.Equal(t, 0, st.ByType[domain.BlockAITool])
	assert.Len(t, st.ByType, len(domain.BlockTypes))
	assert.Contains(t, st.Categories, "work-life")
	assert.IsNonDecreasing(t, st.Tags)
}
