package mcpserver

// ActionReference documents the wire format accepted by dispatch_action and
// POST /api/actions.
const ActionReference = `# Workspace Action Reference

Every action is one JSON object with a "type" field. Unknown types are
rejected. Fields omitted from an update are left unchanged.

## Tabs

- ADD_TAB            {"moduleType": "profiles|jobads|casestudies", "name"?: string}
- REMOVE_TAB         {"tabId": string}
- RENAME_TAB         {"tabId": string, "name": string}
- CLONE_TAB          {"tabId": string}
- SET_ACTIVE_TAB     {"tabId": string|null}
- SET_ACTIVE_MODULE  {"module": "profiles|jobads|casestudies|library"}

## Content library

- ADD_CONTENT_BLOCK     {"block": ContentBlock}
- UPDATE_CONTENT_BLOCK  {"blockId": string, "updates": partial ContentBlock}
- DELETE_CONTENT_BLOCK  {"blockId": string}
- SET_LIBRARY_FILTER    {"filter": {"type"?, "category"?, "tags"?, "searchQuery"?}}

Block types: skill, requirement, benefit, value, question, evaluation_criteria,
process_step, red_flag, experience, ai_tool, responsibility.

## Entities (scoped to a tab of the matching module)

- ADD_PROFILE / UPDATE_PROFILE / DELETE_PROFILE / SELECT_PROFILE
  {"tabId", "profile"} / {"tabId", "profileId", "updates"} / {"tabId", "profileId"} / {"tabId", "profileId": string|null}
- ADD_JOB_AD / UPDATE_JOB_AD / DELETE_JOB_AD / SELECT_JOB_AD
  same shape with "jobAd" and "jobAdId"
- ADD_CASE_STUDY / UPDATE_CASE_STUDY / DELETE_CASE_STUDY / SELECT_CASE_STUDY
  same shape with "caseStudy" and "caseStudyId"

## Whole state

- TOGGLE_DARK_MODE  {}
- IMPORT_STATE      {"state": partial State}
- RESET_STATE       {}

## Example

` + "```" + `json
{"type": "RENAME_TAB", "tabId": "tab-profiles-default", "name": "Senior PMs"}
` + "```" + `
`
