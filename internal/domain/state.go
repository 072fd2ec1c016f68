package domain

import "slices"

// LibraryFilter narrows the library view. Nil fields are unset.
type LibraryFilter struct {
	Type        *BlockType `json:"type,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	SearchQuery *string    `json:"searchQuery,omitempty"`
}

// Clone returns a deep copy of f.
func (f LibraryFilter) Clone() LibraryFilter {
	if f.Type != nil {
		t := *f.Type
		f.Type = &t
	}
	f.Category = cloneRef(f.Category)
	f.Tags = cloneStrings(f.Tags)
	f.SearchQuery = cloneRef(f.SearchQuery)
	return f
}

// State is the whole application state. Values of State are treated as
// immutable snapshots: transitions build new slices instead of writing into
// the ones held by a previous snapshot.
type State struct {
	ContentBlocks       []ContentBlock       `json:"contentBlocks"`
	CandidateArchetypes []CandidateArchetype `json:"candidateArchetypes"`
	Tabs                []Tab                `json:"tabs"`
	ActiveTabID         *string              `json:"activeTabId"`
	ActiveModule        ModuleType           `json:"activeModule"`
	DarkMode            bool                 `json:"darkMode"`
	LibraryFilter       LibraryFilter        `json:"libraryFilter"`
}

// ContentBlock resolves a soft reference into the library.
func (s State) ContentBlock(id string) (ContentBlock, bool) {
	i := slices.IndexFunc(s.ContentBlocks, func(b ContentBlock) bool { return b.ID == id })
	if i < 0 {
		return ContentBlock{}, false
	}
	return s.ContentBlocks[i], true
}

// ContentBlocksByID resolves ids in order, skipping dangling references.
func (s State) ContentBlocksByID(ids []string) []ContentBlock {
	out := make([]ContentBlock, 0, len(ids))
	for _, id := range ids {
		if b, ok := s.ContentBlock(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// Archetype finds an archetype by id.
func (s State) Archetype(id string) (CandidateArchetype, bool) {
	i := slices.IndexFunc(s.CandidateArchetypes, func(a CandidateArchetype) bool { return a.ID == id })
	if i < 0 {
		return CandidateArchetype{}, false
	}
	return s.CandidateArchetypes[i], true
}

// Tab finds a tab by id.
func (s State) Tab(id string) (Tab, bool) {
	i := slices.IndexFunc(s.Tabs, func(t Tab) bool { return t.ID == id })
	if i < 0 {
		return Tab{}, false
	}
	return s.Tabs[i], true
}

// ActiveTab resolves ActiveTabID, which may be null or dangling.
func (s State) ActiveTab() (Tab, bool) {
	if s.ActiveTabID == nil {
		return Tab{}, false
	}
	return s.Tab(*s.ActiveTabID)
}

// TabsFor returns the tabs bound to m in display order.
func (s State) TabsFor(m ModuleType) []Tab {
	var out []Tab
	for _, t := range s.Tabs {
		if t.ModuleType == m {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s.ContentBlocks != nil {
		blocks := make([]ContentBlock, len(s.ContentBlocks))
		for i, b := range s.ContentBlocks {
			blocks[i] = b.Clone()
		}
		s.ContentBlocks = blocks
	}
	if s.CandidateArchetypes != nil {
		archetypes := make([]CandidateArchetype, len(s.CandidateArchetypes))
		for i, a := range s.CandidateArchetypes {
			a.BaselineSkillIDs = cloneStrings(a.BaselineSkillIDs)
			a.BaselineRequirementIDs = cloneStrings(a.BaselineRequirementIDs)
			archetypes[i] = a
		}
		s.CandidateArchetypes = archetypes
	}
	if s.Tabs != nil {
		tabs := make([]Tab, len(s.Tabs))
		for i, t := range s.Tabs {
			tabs[i] = t.Clone()
		}
		s.Tabs = tabs
	}
	s.ActiveTabID = cloneRef(s.ActiveTabID)
	s.LibraryFilter = s.LibraryFilter.Clone()
	return s
}
