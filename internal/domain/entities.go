package domain

import (
	"maps"
	"slices"
	"time"
)

// ContentBlock is a reusable unit of recruiting knowledge in the shared library.
// Profiles, job ad sections and case studies reference blocks by ID only.
type ContentBlock struct {
	ID        string         `json:"id"`
	Type      BlockType      `json:"type"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Tags      []string       `json:"tags"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt,omitzero"`
	UpdatedAt time.Time      `json:"updatedAt,omitzero"`
}

// Clone returns a deep copy of b.
func (b ContentBlock) Clone() ContentBlock {
	b.Tags = cloneStrings(b.Tags)
	b.Metadata = cloneMetadata(b.Metadata)
	return b
}

// CandidateArchetype is a read-only seed template.
type CandidateArchetype struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	SeniorityLevel         string   `json:"seniorityLevel"`
	BaselineSkillIDs       []string `json:"baselineSkillIds"`
	BaselineRequirementIDs []string `json:"baselineRequirementIds"`
	SourceDocument         string   `json:"sourceDocument,omitempty"`
}

// CustomSection is a free-form titled section of a profile.
type CustomSection struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

// CandidateProfile describes the candidate a role is looking for.
type CandidateProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ArchetypeID    *string   `json:"archetypeId"`
	SeniorityLevel Seniority `json:"seniorityLevel"`
	Domain         string    `json:"domain"`

	RequiredSkillIDs      []string `json:"requiredSkillIds"`
	PreferredSkillIDs     []string `json:"preferredSkillIds"`
	RequiredExperienceIDs []string `json:"requiredExperienceIds"`
	AIToolRequirementIDs  []string `json:"aiToolRequirementIds"`
	ResponsibilityIDs     []string `json:"responsibilityIds"`
	RedFlagIDs            []string `json:"redFlagIds"`

	CustomSections []CustomSection `json:"customSections"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Clone returns a deep copy of p.
func (p CandidateProfile) Clone() CandidateProfile {
	p.ArchetypeID = cloneRef(p.ArchetypeID)
	p.RequiredSkillIDs = cloneStrings(p.RequiredSkillIDs)
	p.PreferredSkillIDs = cloneStrings(p.PreferredSkillIDs)
	p.RequiredExperienceIDs = cloneStrings(p.RequiredExperienceIDs)
	p.AIToolRequirementIDs = cloneStrings(p.AIToolRequirementIDs)
	p.ResponsibilityIDs = cloneStrings(p.ResponsibilityIDs)
	p.RedFlagIDs = cloneStrings(p.RedFlagIDs)
	p.CustomSections = cloneSlice(p.CustomSections)
	return p
}

// HiringManager is the personal note attached to a job ad.
type HiringManager struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// JobAdSection is one ordered section of a job ad. ContentType decides which
// of ContentBlockIDs, CustomContent or VariableName is meaningful.
type JobAdSection struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Position        int                `json:"position"`
	ContentType     SectionContentType `json:"contentType"`
	ContentBlockIDs []string           `json:"contentBlockIds,omitempty"`
	CustomContent   string             `json:"customContent,omitempty"`
	VariableName    string             `json:"variableName,omitempty"`
}

// JobAd is a publishable job advertisement.
type JobAd struct {
	ID                    string            `json:"id"`
	Title                 string            `json:"title"`
	Specialization        string            `json:"specialization"`
	CandidateProfileID    *string           `json:"candidateProfileId"`
	Sections              []JobAdSection    `json:"sections"`
	HiringManager         HiringManager     `json:"hiringManager"`
	VariableSubstitutions map[string]string `json:"variableSubstitutions"`
	Status                Status            `json:"status"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy of j.
func (j JobAd) Clone() JobAd {
	j.CandidateProfileID = cloneRef(j.CandidateProfileID)
	if j.Sections != nil {
		sections := make([]JobAdSection, len(j.Sections))
		for i, s := range j.Sections {
			s.ContentBlockIDs = cloneStrings(s.ContentBlockIDs)
			sections[i] = s
		}
		j.Sections = sections
	}
	j.VariableSubstitutions = maps.Clone(j.VariableSubstitutions)
	return j
}

// Scenario frames a case study.
type Scenario struct {
	Context     string   `json:"context"`
	Challenge   string   `json:"challenge"`
	Constraints []string `json:"constraints"`
}

// CustomQuestion is a case study question written in place.
type CustomQuestion struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Position int          `json:"position"`
}

// CustomCriteria is an evaluation criterion written in place.
type CustomCriteria struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LookingFor  []string `json:"lookingFor"`
	RedFlags    []string `json:"redFlags"`
	Position    int      `json:"position"`
}

// CaseStudy is an interview exercise.
type CaseStudy struct {
	ID                    string             `json:"id"`
	Title                 string             `json:"title"`
	SeniorityLevel        CaseStudySeniority `json:"seniorityLevel"`
	Domain                string             `json:"domain"`
	CandidateProfileID    *string            `json:"candidateProfileId"`
	Scenario              Scenario           `json:"scenario"`
	QuestionIDs           []string           `json:"questionIds"`
	EvaluationCriteriaIDs []string           `json:"evaluationCriteriaIds"`
	CustomQuestions       []CustomQuestion   `json:"customQuestions"`
	CustomCriteria        []CustomCriteria   `json:"customCriteria"`
	Duration              int                `json:"duration"`
	Deliverables          []string           `json:"deliverables"`
	Status                Status             `json:"status"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy of c.
func (c CaseStudy) Clone() CaseStudy {
	c.CandidateProfileID = cloneRef(c.CandidateProfileID)
	c.Scenario.Constraints = cloneStrings(c.Scenario.Constraints)
	c.QuestionIDs = cloneStrings(c.QuestionIDs)
	c.EvaluationCriteriaIDs = cloneStrings(c.EvaluationCriteriaIDs)
	c.CustomQuestions = cloneSlice(c.CustomQuestions)
	if c.CustomCriteria != nil {
		criteria := make([]CustomCriteria, len(c.CustomCriteria))
		for i, cr := range c.CustomCriteria {
			cr.LookingFor = cloneStrings(cr.LookingFor)
			cr.RedFlags = cloneStrings(cr.RedFlags)
			criteria[i] = cr
		}
		c.CustomCriteria = criteria
	}
	c.Deliverables = cloneStrings(c.Deliverables)
	return c
}

// Ref returns a pointer to a copy of id, for nullable reference fields.
func Ref(id string) *string {
	return &id
}

// Deref returns the referenced id, or "" for a null reference.
func Deref(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// SameRef reports whether ref points at id.
func SameRef(ref *string, id string) bool {
	return ref != nil && *ref == id
}

func cloneRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	return Ref(*ref)
}

func cloneStrings(s []string) []string {
	return slices.Clone(s)
}

func cloneSlice[T any](s []T) []T {
	return slices.Clone(s)
}

// cloneMetadata copies the nested maps and slices produced by JSON decoding.
func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMetadata(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneAny(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	default:
		return v
	}
}
