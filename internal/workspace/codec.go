package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/starford/boreacrutis/internal/apperr"
)

var decoders = map[ActionType]func([]byte) (Action, error){
	TypeAddTab:             decodeAs[AddTab],
	TypeRemoveTab:          decodeAs[RemoveTab],
	TypeRenameTab:          decodeAs[RenameTab],
	TypeCloneTab:           decodeAs[CloneTab],
	TypeSetActiveTab:       decodeAs[SetActiveTab],
	TypeSetActiveModule:    decodeAs[SetActiveModule],
	TypeAddContentBlock:    decodeAs[AddContentBlock],
	TypeUpdateContentBlock: decodeAs[UpdateContentBlock],
	TypeDeleteContentBlock: decodeAs[DeleteContentBlock],
	TypeAddProfile:         decodeAs[AddProfile],
	TypeUpdateProfile:      decodeAs[UpdateProfile],
	TypeDeleteProfile:      decodeAs[DeleteProfile],
	TypeSelectProfile:      decodeAs[SelectProfile],
	TypeAddJobAd:           decodeAs[AddJobAd],
	TypeUpdateJobAd:        decodeAs[UpdateJobAd],
	TypeDeleteJobAd:        decodeAs[DeleteJobAd],
	TypeSelectJobAd:        decodeAs[SelectJobAd],
	TypeAddCaseStudy:       decodeAs[AddCaseStudy],
	TypeUpdateCaseStudy:    decodeAs[UpdateCaseStudy],
	TypeDeleteCaseStudy:    decodeAs[DeleteCaseStudy],
	TypeSelectCaseStudy:    decodeAs[SelectCaseStudy],
	TypeToggleDarkMode:     decodeAs[ToggleDarkMode],
	TypeSetLibraryFilter:   decodeAs[SetLibraryFilter],
	TypeImportState:        decodeAs[ImportState],
	TypeResetState:         decodeAs[ResetState],
}

func decodeAs[A Action](data []byte) (Action, error) {
	var a A
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeAction decodes a {"type": ..., ...fields} object. An unrecognised
// type yields an error wrapping apperr.ErrUnknownAction.
func DecodeAction(data []byte) (Action, error) {
	var envelope struct {
		Type ActionType `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("workspace: decode action: %w: %v", apperr.ErrInvalidInput, err)
	}
	decode, ok := decoders[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("workspace: %w: %q", apperr.ErrUnknownAction, envelope.Type)
	}
	a, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("workspace: decode %s: %w: %v", envelope.Type, apperr.ErrInvalidInput, err)
	}
	return a, nil
}

// EncodeAction is the inverse of DecodeAction.
func EncodeAction(a Action) ([]byte, error) {
	body, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("workspace: encode %s: %w", a.Type(), err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("workspace: encode %s: %w", a.Type(), err)
	}
	tag, _ := json.Marshal(a.Type())
	fields["type"] = tag
	return json.Marshal(fields)
}
