// Package library queries the shared content library.
package library

import (
	"slices"
	"strings"

	"github.com/starford/boreacrutis/internal/domain"
)

// Match reports whether b passes every set field of f. All filter tags must
// be present on the block. The search query matches title, content or any
// tag, case-insensitively.
func Match(b domain.ContentBlock, f domain.LibraryFilter) bool {
	if f.Type != nil && b.Type != *f.Type {
		return false
	}
	if f.Category != nil && *f.Category != "" && b.Category != *f.Category {
		return false
	}
	for _, tag := range f.Tags {
		if !slices.Contains(b.Tags, tag) {
			return false
		}
	}
	if f.SearchQuery == nil {
		return true
	}
	q := strings.ToLower(strings.TrimSpace(*f.SearchQuery))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Content), q) {
		return true
	}
	return slices.ContainsFunc(b.Tags, func(t string) bool { return strings.Contains(strings.ToLower(t), q) })
}

// Filter returns the blocks matching f in library order.
func Filter(blocks []domain.ContentBlock, f domain.LibraryFilter) []domain.ContentBlock {
	out := []domain.ContentBlock{}
	for _, b := range blocks {
		if Match(b, f) {
			out = append(out, b)
		}
	}
	return out
}

// Stats summarises the library.
type Stats struct {
	Total      int                      `json:"total"`
	ByType     map[domain.BlockType]int `json:"byType"`
	Categories []string                 `json:"categories"`
	Tags       []string                 `json:"tags"`
}

// Summarize counts blocks per type and collects the distinct categories and
// tags in sorted order. Every known block type has an entry.
func Summarize(blocks []domain.ContentBlock) Stats {
	st := Stats{Total: len(blocks), ByType: make(map[domain.BlockType]int, len(domain.BlockTypes))}
	for _, t := range domain.BlockTypes {
		st.ByType[t] = 0
	}
	categories := map[string]struct{}{}
	tags := map[string]struct{}{}
	for _, b := range blocks {
		st.ByType[b.Type]++
		if b.Category != "" {
			categories[b.Category] = struct{}{}
		}
		for _, t := range b.Tags {
			tags[t] = struct{}{}
		}
	}
	st.Categories = sortedKeys(categories)
	st.Tags = sortedKeys(tags)
	return st
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
