package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// ModuleState is the module-specific payload of a Tab. It is a closed union:
// ProfileModuleState, JobAdModuleState and CaseStudyModuleState are the only
// implementations, each reporting the module it belongs to.
type ModuleState interface {
	Module() ModuleType
	// Clone returns a deep copy sharing no slices with the receiver.
	Clone() ModuleState
	isModuleState()
}

// ProfileModuleState holds the profiles of a "profiles" tab.
type ProfileModuleState struct {
	Profiles          []CandidateProfile `json:"profiles"`
	SelectedProfileID *string            `json:"selectedProfileId"`
}

func (ProfileModuleState) Module() ModuleType { return ModuleProfiles }
func (ProfileModuleState) isModuleState()     {}

func (s ProfileModuleState) Clone() ModuleState {
	out := ProfileModuleState{Profiles: make([]CandidateProfile, len(s.Profiles)), SelectedProfileID: cloneRef(s.SelectedProfileID)}
	for i, p := range s.Profiles {
		out.Profiles[i] = p.Clone()
	}
	return out
}

// Profile finds a profile by id.
func (s ProfileModuleState) Profile(id string) (CandidateProfile, bool) {
	i := slices.IndexFunc(s.Profiles, func(p CandidateProfile) bool { return p.ID == id })
	if i < 0 {
		return CandidateProfile{}, false
	}
	return s.Profiles[i], true
}

// Selected resolves the selection pointer. A null or stale selection is not found.
func (s ProfileModuleState) Selected() (CandidateProfile, bool) {
	if s.SelectedProfileID == nil {
		return CandidateProfile{}, false
	}
	return s.Profile(*s.SelectedProfileID)
}

// JobAdModuleState holds the job ads of a "jobads" tab.
type JobAdModuleState struct {
	JobAds          []JobAd `json:"jobAds"`
	SelectedJobAdID *string `json:"selectedJobAdId"`
}

func (JobAdModuleState) Module() ModuleType { return ModuleJobAds }
func (JobAdModuleState) isModuleState()     {}

func (s JobAdModuleState) Clone() ModuleState {
	out := JobAdModuleState{JobAds: make([]JobAd, len(s.JobAds)), SelectedJobAdID: cloneRef(s.SelectedJobAdID)}
	for i, j := range s.JobAds {
		out.JobAds[i] = j.Clone()
	}
	return out
}

// JobAd finds a job ad by id.
func (s JobAdModuleState) JobAd(id string) (JobAd, bool) {
	i := slices.IndexFunc(s.JobAds, func(j JobAd) bool { return j.ID == id })
	if i < 0 {
		return JobAd{}, false
	}
	return s.JobAds[i], true
}

// Selected resolves the selection pointer. A null or stale selection is not found.
func (s JobAdModuleState) Selected() (JobAd, bool) {
	if s.SelectedJobAdID == nil {
		return JobAd{}, false
	}
	return s.JobAd(*s.SelectedJobAdID)
}

// CaseStudyModuleState holds the case studies of a "casestudies" tab.
type CaseStudyModuleState struct {
	CaseStudies         []CaseStudy `json:"caseStudies"`
	SelectedCaseStudyID *string     `json:"selectedCaseStudyId"`
}

func (CaseStudyModuleState) Module() ModuleType { return ModuleCaseStudies }
func (CaseStudyModuleState) isModuleState()     {}

func (s CaseStudyModuleState) Clone() ModuleState {
	out := CaseStudyModuleState{CaseStudies: make([]CaseStudy, len(s.CaseStudies)), SelectedCaseStudyID: cloneRef(s.SelectedCaseStudyID)}
	for i, c := range s.CaseStudies {
		out.CaseStudies[i] = c.Clone()
	}
	return out
}

// CaseStudy finds a case study by id.
func (s CaseStudyModuleState) CaseStudy(id string) (CaseStudy, bool) {
	i := slices.IndexFunc(s.CaseStudies, func(c CaseStudy) bool { return c.ID == id })
	if i < 0 {
		return CaseStudy{}, false
	}
	return s.CaseStudies[i], true
}

// Selected resolves the selection pointer. A null or stale selection is not found.
func (s CaseStudyModuleState) Selected() (CaseStudy, bool) {
	if s.SelectedCaseStudyID == nil {
		return CaseStudy{}, false
	}
	return s.CaseStudy(*s.SelectedCaseStudyID)
}

// NewModuleState returns the empty sub-state for a tab-bearing module.
func NewModuleState(m ModuleType) (ModuleState, error) {
	switch m {
	case ModuleProfiles:
		return ProfileModuleState{Profiles: []CandidateProfile{}}, nil
	case ModuleJobAds:
		return JobAdModuleState{JobAds: []JobAd{}}, nil
	case ModuleCaseStudies:
		return CaseStudyModuleState{CaseStudies: []CaseStudy{}}, nil
	}
	return nil, fmt.Errorf("domain: module %q has no tab state", m)
}

// Tab is a named workspace bound to exactly one module type.
type Tab struct {
	ID         string
	Name       string
	ModuleType ModuleType
	State      ModuleState
	CreatedAt  time.Time
}

// Profiles returns the profile sub-state when the tab is a profiles tab.
func (t Tab) Profiles() (ProfileModuleState, bool) {
	if t.ModuleType != ModuleProfiles {
		return ProfileModuleState{}, false
	}
	s, ok := t.State.(ProfileModuleState)
	return s, ok
}

// JobAds returns the job ad sub-state when the tab is a jobads tab.
func (t Tab) JobAds() (JobAdModuleState, bool) {
	if t.ModuleType != ModuleJobAds {
		return JobAdModuleState{}, false
	}
	s, ok := t.State.(JobAdModuleState)
	return s, ok
}

// CaseStudies returns the case study sub-state when the tab is a casestudies tab.
func (t Tab) CaseStudies() (CaseStudyModuleState, bool) {
	if t.ModuleType != ModuleCaseStudies {
		return CaseStudyModuleState{}, false
	}
	s, ok := t.State.(CaseStudyModuleState)
	return s, ok
}

// Clone returns a deep copy of t.
func (t Tab) Clone() Tab {
	if t.State != nil {
		t.State = t.State.Clone()
	}
	return t
}

type tabJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	ModuleType ModuleType      `json:"moduleType"`
	State      json.RawMessage `json:"state"`
	CreatedAt  time.Time       `json:"createdAt,omitzero"`
}

// MarshalJSON implements json.Marshaler.
func (t Tab) MarshalJSON() ([]byte, error) {
	state := t.State
	if state == nil {
		empty, err := NewModuleState(t.ModuleType)
		if err != nil {
			return nil, err
		}
		state = empty
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tabJSON{ID: t.ID, Name: t.Name, ModuleType: t.ModuleType, State: raw, CreatedAt: t.CreatedAt})
}

// UnmarshalJSON decodes the state payload according to moduleType.
func (t *Tab) UnmarshalJSON(data []byte) error {
	var raw tabJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	state, err := NewModuleState(raw.ModuleType)
	if err != nil {
		return err
	}
	if len(raw.State) > 0 && string(raw.State) != "null" {
		switch s := state.(type) {
		case ProfileModuleState:
			if err := json.Unmarshal(raw.State, &s); err != nil {
				return fmt.Errorf("domain: tab %s: %w", raw.ID, err)
			}
			state = s
		case JobAdModuleState:
			if err := json.Unmarshal(raw.State, &s); err != nil {
				return fmt.Errorf("domain: tab %s: %w", raw.ID, err)
			}
			state = s
		case CaseStudyModuleState:
			if err := json.Unmarshal(raw.State, &s); err != nil {
				return fmt.Errorf("domain: tab %s: %w", raw.ID, err)
			}
			state = s
		}
	}
	*t = Tab{ID: raw.ID, Name: raw.Name, ModuleType: raw.ModuleType, State: state, CreatedAt: raw.CreatedAt}
	return nil
}
