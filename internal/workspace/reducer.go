package workspace

import (
	"time"

	"github.com/google/uuid"

	"github.com/starford/boreacrutis/internal/domain"
)

// Reducer computes state transitions. It never mutates the state it is
// given and never fails: stale or mismatched references degrade to no-ops.
type Reducer struct {
	now   func() time.Time
	newID func() string
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithClock sets the time source used for createdAt/updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Reducer) { r.now = now }
}

// WithIDGenerator sets the generator for new tab ids.
func WithIDGenerator(newID func() string) Option {
	return func(r *Reducer) { r.newID = newID }
}

// NewReducer returns a Reducer stamping UTC wall-clock time and
// "tab-<uuid>" ids unless overridden.
func NewReducer(opts ...Option) *Reducer {
	r := &Reducer{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return "tab-" + uuid.NewString() },
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

var defaultReducer = NewReducer()

// Reduce applies a with the default Reducer.
func Reduce(s domain.State, a Action) domain.State {
	return defaultReducer.Reduce(s, a)
}

// Reduce returns the state that results from applying a to s.
func (r *Reducer) Reduce(s domain.State, a Action) domain.State {
	switch a := a.(type) {
	case AddTab:
		return r.addTab(s, a)
	case RemoveTab:
		return removeTab(s, a.TabID)
	case RenameTab:
		tabs, ok := replaceWhere(s.Tabs, byTabID(a.TabID), func(t domain.Tab) domain.Tab {
			t.Name = a.Name
			return t
		})
		if ok {
			s.Tabs = tabs
		}
		return s
	case CloneTab:
		return r.cloneTab(s, a.TabID)
	case SetActiveTab:
		s.ActiveTabID = copyRef(a.TabID)
		return s
	case SetActiveModule:
		return setActiveModule(s, a.Module)

	case AddContentBlock:
		s.ContentBlocks = appendCopy(s.ContentBlocks, a.Block.Clone())
		return s
	case UpdateContentBlock:
		blocks, ok := replaceWhere(s.ContentBlocks, byBlockID(a.BlockID), a.Updates.Apply)
		if ok {
			s.ContentBlocks = blocks
		}
		return s
	case DeleteContentBlock:
		// References held by profiles and sections are left dangling.
		s.ContentBlocks = removeWhere(s.ContentBlocks, byBlockID(a.BlockID))
		return s

	case AddProfile:
		return updateTab(s, a.TabID, func(m domain.ProfileModuleState) domain.ProfileModuleState {
			m.Profiles = appendCopy(m.Profiles, a.Profile.Clone())
			m.SelectedProfileID = domain.Ref(a.Profile.ID)
			return m
		})
	case UpdateProfile:
		now := r.now()
		return updateTab(s, a.TabID, func(m domain.ProfileModuleState) domain.ProfileModuleState {
			m.Profiles, _ = replaceWhere(m.Profiles, func(p domain.CandidateProfile) bool { return p.ID == a.ProfileID },
				func(p domain.CandidateProfile) domain.CandidateProfile {
					p = a.Updates.Apply(p)
					p.UpdatedAt = now
					return p
				})
			return m
		})
	case DeleteProfile:
		return updateTab(s, a.TabID, func(m domain.ProfileModuleState) domain.ProfileModuleState {
			m.Profiles = removeWhere(m.Profiles, func(p domain.CandidateProfile) bool { return p.ID == a.ProfileID })
			m.SelectedProfileID = clearIfSelected(m.SelectedProfileID, a.ProfileID)
			return m
		})
	case SelectProfile:
		return updateTab(s, a.TabID, func(m domain.ProfileModuleState) domain.ProfileModuleState {
			m.SelectedProfileID = copyRef(a.ProfileID)
			return m
		})

	case AddJobAd:
		return updateTab(s, a.TabID, func(m domain.JobAdModuleState) domain.JobAdModuleState {
			m.JobAds = appendCopy(m.JobAds, a.JobAd.Clone())
			m.SelectedJobAdID = domain.Ref(a.JobAd.ID)
			return m
		})
	case UpdateJobAd:
		now := r.now()
		return updateTab(s, a.TabID, func(m domain.JobAdModuleState) domain.JobAdModuleState {
			m.JobAds, _ = replaceWhere(m.JobAds, func(j domain.JobAd) bool { return j.ID == a.JobAdID },
				func(j domain.JobAd) domain.JobAd {
					j = a.Updates.Apply(j)
					j.UpdatedAt = now
					return j
				})
			return m
		})
	case DeleteJobAd:
		return updateTab(s, a.TabID, func(m domain.JobAdModuleState) domain.JobAdModuleState {
			m.JobAds = removeWhere(m.JobAds, func(j domain.JobAd) bool { return j.ID == a.JobAdID })
			m.SelectedJobAdID = clearIfSelected(m.SelectedJobAdID, a.JobAdID)
			return m
		})
	case SelectJobAd:
		return updateTab(s, a.TabID, func(m domain.JobAdModuleState) domain.JobAdModuleState {
			m.SelectedJobAdID = copyRef(a.JobAdID)
			return m
		})

	case AddCaseStudy:
		return updateTab(s, a.TabID, func(m domain.CaseStudyModuleState) domain.CaseStudyModuleState {
			m.CaseStudies = appendCopy(m.CaseStudies, a.CaseStudy.Clone())
			m.SelectedCaseStudyID = domain.Ref(a.CaseStudy.ID)
			return m
		})
	case UpdateCaseStudy:
		now := r.now()
		return updateTab(s, a.TabID, func(m domain.CaseStudyModuleState) domain.CaseStudyModuleState {
			m.CaseStudies, _ = replaceWhere(m.CaseStudies, func(c domain.CaseStudy) bool { return c.ID == a.CaseStudyID },
				func(c domain.CaseStudy) domain.CaseStudy {
					c = a.Updates.Apply(c)
					c.UpdatedAt = now
					return c
				})
			return m
		})
	case DeleteCaseStudy:
		return updateTab(s, a.TabID, func(m domain.CaseStudyModuleState) domain.CaseStudyModuleState {
			m.CaseStudies = removeWhere(m.CaseStudies, func(c domain.CaseStudy) bool { return c.ID == a.CaseStudyID })
			m.SelectedCaseStudyID = clearIfSelected(m.SelectedCaseStudyID, a.CaseStudyID)
			return m
		})
	case SelectCaseStudy:
		return updateTab(s, a.TabID, func(m domain.CaseStudyModuleState) domain.CaseStudyModuleState {
			m.SelectedCaseStudyID = copyRef(a.CaseStudyID)
			return m
		})

	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
		return s
	case SetLibraryFilter:
		s.LibraryFilter = a.Filter.Apply(s.LibraryFilter)
		return s
	case ImportState:
		return a.State.Apply(s)
	case ResetState:
		// Restoring seed data is not wired yet; the action is accepted as-is.
		return s
	}
	return s
}

func (r *Reducer) addTab(s domain.State, a AddTab) domain.State {
	sub, err := domain.NewModuleState(a.ModuleType)
	if err != nil {
		return s
	}
	name := a.Name
	if name == "" {
		name = DefaultTabName(a.ModuleType)
	}
	tab := domain.Tab{
		ID:         uniqueTabID(s, r.newID()),
		Name:       name,
		ModuleType: a.ModuleType,
		State:      sub,
		CreatedAt:  r.now(),
	}
	s.Tabs = appendCopy(s.Tabs, tab)
	s.ActiveTabID = domain.Ref(tab.ID)
	return s
}

func (r *Reducer) cloneTab(s domain.State, tabID string) domain.State {
	src, ok := s.Tab(tabID)
	if !ok {
		return s
	}
	tab := src.Clone()
	tab.ID = uniqueTabID(s, r.newID())
	tab.Name = CloneName(src.Name)
	tab.CreatedAt = r.now()
	s.Tabs = appendCopy(s.Tabs, tab)
	s.ActiveTabID = domain.Ref(tab.ID)
	return s
}

// removeTab drops the tab. Focus moves to the first remaining tab, or to
// none, only when the removed tab was the active one.
func removeTab(s domain.State, tabID string) domain.State {
	tabs := removeWhere(s.Tabs, byTabID(tabID))
	if len(tabs) == len(s.Tabs) {
		return s
	}
	s.Tabs = tabs
	if domain.SameRef(s.ActiveTabID, tabID) {
		s.ActiveTabID = nil
		if len(tabs) > 0 {
			s.ActiveTabID = domain.Ref(tabs[0].ID)
		}
	}
	return s
}

// setActiveModule switches module and focuses the first tab bound to it.
// The library view has no tabs and keeps the current focus, as does a
// module with no tabs.
func setActiveModule(s domain.State, m domain.ModuleType) domain.State {
	if !m.Valid() {
		return s
	}
	s.ActiveModule = m
	if !m.HasTabs() {
		return s
	}
	if tabs := s.TabsFor(m); len(tabs) > 0 {
		s.ActiveTabID = domain.Ref(tabs[0].ID)
	}
	return s
}

func byTabID(id string) func(domain.Tab) bool {
	return func(t domain.Tab) bool { return t.ID == id }
}

func byBlockID(id string) func(domain.ContentBlock) bool {
	return func(b domain.ContentBlock) bool { return b.ID == id }
}

func copyRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	return domain.Ref(*ref)
}
