// Package workspace implements the state transition function of the
// recruitment builder and the tab orchestration rules built on it.
package workspace

import "github.com/starford/boreacrutis/internal/domain"

// ActionType is the wire tag of an action.
type ActionType string

const (
	TypeAddTab          ActionType = "ADD_TAB"
	TypeRemoveTab       ActionType = "REMOVE_TAB"
	TypeRenameTab       ActionType = "RENAME_TAB"
	TypeCloneTab        ActionType = "CLONE_TAB"
	TypeSetActiveTab    ActionType = "SET_ACTIVE_TAB"
	TypeSetActiveModule ActionType = "SET_ACTIVE_MODULE"

	TypeAddContentBlock    ActionType = "ADD_CONTENT_BLOCK"
	TypeUpdateContentBlock ActionType = "UPDATE_CONTENT_BLOCK"
	TypeDeleteContentBlock ActionType = "DELETE_CONTENT_BLOCK"

	TypeAddProfile    ActionType = "ADD_PROFILE"
	TypeUpdateProfile ActionType = "UPDATE_PROFILE"
	TypeDeleteProfile ActionType = "DELETE_PROFILE"
	TypeSelectProfile ActionType = "SELECT_PROFILE"

	TypeAddJobAd    ActionType = "ADD_JOB_AD"
	TypeUpdateJobAd ActionType = "UPDATE_JOB_AD"
	TypeDeleteJobAd ActionType = "DELETE_JOB_AD"
	TypeSelectJobAd ActionType = "SELECT_JOB_AD"

	TypeAddCaseStudy    ActionType = "ADD_CASE_STUDY"
	TypeUpdateCaseStudy ActionType = "UPDATE_CASE_STUDY"
	TypeDeleteCaseStudy ActionType = "DELETE_CASE_STUDY"
	TypeSelectCaseStudy ActionType = "SELECT_CASE_STUDY"

	TypeToggleDarkMode   ActionType = "TOGGLE_DARK_MODE"
	TypeSetLibraryFilter ActionType = "SET_LIBRARY_FILTER"
	TypeImportState      ActionType = "IMPORT_STATE"
	TypeResetState       ActionType = "RESET_STATE"
)

// Action is a command for the reducer. Implementations are plain values;
// the reducer ignores types it does not recognise.
type Action interface {
	Type() ActionType
}

// AddTab appends an empty tab bound to ModuleType and activates it.
// An empty Name yields "New <moduleType> Tab".
type AddTab struct {
	ModuleType domain.ModuleType `json:"moduleType"`
	Name       string            `json:"name,omitempty"`
}

type RemoveTab struct {
	TabID string `json:"tabId"`
}

type RenameTab struct {
	TabID string `json:"tabId"`
	Name  string `json:"name"`
}

// CloneTab deep-copies a tab into a new "<name> (Copy)" tab.
type CloneTab struct {
	TabID string `json:"tabId"`
}

// SetActiveTab focuses TabID without checking that it exists.
type SetActiveTab struct {
	TabID *string `json:"tabId"`
}

type SetActiveModule struct {
	Module domain.ModuleType `json:"module"`
}

type AddContentBlock struct {
	Block domain.ContentBlock `json:"block"`
}

type UpdateContentBlock struct {
	BlockID string            `json:"blockId"`
	Updates ContentBlockPatch `json:"updates"`
}

// DeleteContentBlock removes a block from the library only. References held
// by profiles, sections and case studies are left dangling.
type DeleteContentBlock struct {
	BlockID string `json:"blockId"`
}

type AddProfile struct {
	TabID   string                  `json:"tabId"`
	Profile domain.CandidateProfile `json:"profile"`
}

type UpdateProfile struct {
	TabID     string       `json:"tabId"`
	ProfileID string       `json:"profileId"`
	Updates   ProfilePatch `json:"updates"`
}

type DeleteProfile struct {
	TabID     string `json:"tabId"`
	ProfileID string `json:"profileId"`
}

type SelectProfile struct {
	TabID     string  `json:"tabId"`
	ProfileID *string `json:"profileId"`
}

type AddJobAd struct {
	TabID string       `json:"tabId"`
	JobAd domain.JobAd `json:"jobAd"`
}

type UpdateJobAd struct {
	TabID   string     `json:"tabId"`
	JobAdID string     `json:"jobAdId"`
	Updates JobAdPatch `json:"updates"`
}

type DeleteJobAd struct {
	TabID   string `json:"tabId"`
	JobAdID string `json:"jobAdId"`
}

type SelectJobAd struct {
	TabID   string  `json:"tabId"`
	JobAdID *string `json:"jobAdId"`
}

type AddCaseStudy struct {
	TabID     string           `json:"tabId"`
	CaseStudy domain.CaseStudy `json:"caseStudy"`
}

type UpdateCaseStudy struct {
	TabID       string         `json:"tabId"`
	CaseStudyID string         `json:"caseStudyId"`
	Updates     CaseStudyPatch `json:"updates"`
}

type DeleteCaseStudy struct {
	TabID       string `json:"tabId"`
	CaseStudyID string `json:"caseStudyId"`
}

type SelectCaseStudy struct {
	TabID       string  `json:"tabId"`
	CaseStudyID *string `json:"caseStudyId"`
}

type ToggleDarkMode struct{}

type SetLibraryFilter struct {
	Filter LibraryFilterPatch `json:"filter"`
}

// ImportState shallow-merges a state fragment over the current state. The
// caller is responsible for the fragment being well formed.
type ImportState struct {
	State StatePatch `json:"state"`
}

// ResetState is accepted and currently leaves the state unchanged.
type ResetState struct{}

func (AddTab) Type() ActionType             { return TypeAddTab }
func (RemoveTab) Type() ActionType          { return TypeRemoveTab }
func (RenameTab) Type() ActionType          { return TypeRenameTab }
func (CloneTab) Type() ActionType           { return TypeCloneTab }
func (SetActiveTab) Type() ActionType       { return TypeSetActiveTab }
func (SetActiveModule) Type() ActionType    { return TypeSetActiveModule }
func (AddContentBlock) Type() ActionType    { return TypeAddContentBlock }
func (UpdateContentBlock) Type() ActionType { return TypeUpdateContentBlock }
func (DeleteContentBlock) Type() ActionType { return TypeDeleteContentBlock }
func (AddProfile) Type() ActionType         { return TypeAddProfile }
func (UpdateProfile) Type() ActionType      { return TypeUpdateProfile }
func (DeleteProfile) Type() ActionType      { return TypeDeleteProfile }
func (SelectProfile) Type() ActionType      { return TypeSelectProfile }
func (AddJobAd) Type() ActionType           { return TypeAddJobAd }
func (UpdateJobAd) Type() ActionType        { return TypeUpdateJobAd }
func (DeleteJobAd) Type() ActionType        { return TypeDeleteJobAd }
func (SelectJobAd) Type() ActionType        { return TypeSelectJobAd }
func (AddCaseStudy) Type() ActionType       { return TypeAddCaseStudy }
func (UpdateCaseStudy) Type() ActionType    { return TypeUpdateCaseStudy }
func (DeleteCaseStudy) Type() ActionType    { return TypeDeleteCaseStudy }
func (SelectCaseStudy) Type() ActionType    { return TypeSelectCaseStudy }
func (ToggleDarkMode) Type() ActionType     { return TypeToggleDarkMode }
func (SetLibraryFilter) Type() ActionType   { return TypeSetLibraryFilter }
func (ImportState) Type() ActionType        { return TypeImportState }
func (ResetState) Type() ActionType         { return TypeResetState }

// TouchesLibrary reports whether a changes the content library.
func TouchesLibrary(a Action) bool {
	switch a.Type() {
	case TypeAddContentBlock, TypeUpdateContentBlock, TypeDeleteContentBlock, TypeImportState:
		return true
	}
	return false
}
