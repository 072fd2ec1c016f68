package workspace

import (
	"maps"
	"slices"
	"time"

	"github.com/starford/boreacrutis/internal/domain"
)

// Patches are partial updates. A nil pointer, nil slice or nil map means
// the field was absent and is left alone; an empty non-nil slice clears it.
// Nullable references use domain.Field so an explicit null can be told
// apart from an absent key. Ids are not patchable.

// ContentBlockPatch is a partial ContentBlock. UpdatedAt is applied only
// when provided.
type ContentBlockPatch struct {
	Type      *domain.BlockType `json:"type,omitzero"`
	Title     *string           `json:"title,omitzero"`
	Content   *string           `json:"content,omitzero"`
	Category  *string           `json:"category,omitzero"`
	Tags      []string          `json:"tags,omitzero"`
	Metadata  map[string]any    `json:"metadata,omitzero"`
	CreatedAt *time.Time        `json:"createdAt,omitzero"`
	UpdatedAt *time.Time        `json:"updatedAt,omitzero"`
}

// Apply returns b with the present fields of p merged in.
func (p ContentBlockPatch) Apply(b domain.ContentBlock) domain.ContentBlock {
	b = b.Clone()
	setIf(&b.Type, p.Type)
	setIf(&b.Title, p.Title)
	setIf(&b.Content, p.Content)
	setIf(&b.Category, p.Category)
	if p.Tags != nil {
		b.Tags = slices.Clone(p.Tags)
	}
	if p.Metadata != nil {
		b.Metadata = domain.ContentBlock{Metadata: p.Metadata}.Clone().Metadata
	}
	setIf(&b.CreatedAt, p.CreatedAt)
	setIf(&b.UpdatedAt, p.UpdatedAt)
	return b
}

// ProfilePatch is a partial CandidateProfile.
type ProfilePatch struct {
	Name           *string                `json:"name,omitzero"`
	ArchetypeID    domain.Field[*string]  `json:"archetypeId,omitzero"`
	SeniorityLevel *domain.Seniority      `json:"seniorityLevel,omitzero"`
	Domain         *string                `json:"domain,omitzero"`

	RequiredSkillIDs      []string `json:"requiredSkillIds,omitzero"`
	PreferredSkillIDs     []string `json:"preferredSkillIds,omitzero"`
	RequiredExperienceIDs []string `json:"requiredExperienceIds,omitzero"`
	AIToolRequirementIDs  []string `json:"aiToolRequirementIds,omitzero"`
	ResponsibilityIDs     []string `json:"responsibilityIds,omitzero"`
	RedFlagIDs            []string `json:"redFlagIds,omitzero"`

	CustomSections []domain.CustomSection `json:"customSections,omitzero"`
	Notes          *string                `json:"notes,omitzero"`
	CreatedAt      *time.Time             `json:"createdAt,omitzero"`
}

// Apply returns pr with the present fields of p merged in.
func (p ProfilePatch) Apply(pr domain.CandidateProfile) domain.CandidateProfile {
	pr = pr.Clone()
	setIf(&pr.Name, p.Name)
	setRef(&pr.ArchetypeID, p.ArchetypeID)
	setIf(&pr.SeniorityLevel, p.SeniorityLevel)
	setIf(&pr.Domain, p.Domain)
	setSlice(&pr.RequiredSkillIDs, p.RequiredSkillIDs)
	setSlice(&pr.PreferredSkillIDs, p.PreferredSkillIDs)
	setSlice(&pr.RequiredExperienceIDs, p.RequiredExperienceIDs)
	setSlice(&pr.AIToolRequirementIDs, p.AIToolRequirementIDs)
	setSlice(&pr.ResponsibilityIDs, p.ResponsibilityIDs)
	setSlice(&pr.RedFlagIDs, p.RedFlagIDs)
	setSlice(&pr.CustomSections, p.CustomSections)
	setIf(&pr.Notes, p.Notes)
	setIf(&pr.CreatedAt, p.CreatedAt)
	return pr
}

// JobAdPatch is a partial JobAd.
type JobAdPatch struct {
	Title                 *string               `json:"title,omitzero"`
	Specialization        *string               `json:"specialization,omitzero"`
	CandidateProfileID    domain.Field[*string] `json:"candidateProfileId,omitzero"`
	Sections              []domain.JobAdSection `json:"sections,omitzero"`
	HiringManager         *domain.HiringManager `json:"hiringManager,omitzero"`
	VariableSubstitutions map[string]string     `json:"variableSubstitutions,omitzero"`
	Status                *domain.Status        `json:"status,omitzero"`
	CreatedAt             *time.Time            `json:"createdAt,omitzero"`
}

// Apply returns j with the present fields of p merged in.
func (p JobAdPatch) Apply(j domain.JobAd) domain.JobAd {
	j = j.Clone()
	setIf(&j.Title, p.Title)
	setIf(&j.Specialization, p.Specialization)
	setRef(&j.CandidateProfileID, p.CandidateProfileID)
	if p.Sections != nil {
		j.Sections = domain.JobAd{Sections: p.Sections}.Clone().Sections
	}
	setIf(&j.HiringManager, p.HiringManager)
	if p.VariableSubstitutions != nil {
		j.VariableSubstitutions = maps.Clone(p.VariableSubstitutions)
	}
	setIf(&j.Status, p.Status)
	setIf(&j.CreatedAt, p.CreatedAt)
	return j
}

// CaseStudyPatch is a partial CaseStudy.
type CaseStudyPatch struct {
	Title                 *string                    `json:"title,omitzero"`
	SeniorityLevel        *domain.CaseStudySeniority `json:"seniorityLevel,omitzero"`
	Domain                *string                    `json:"domain,omitzero"`
	CandidateProfileID    domain.Field[*string]      `json:"candidateProfileId,omitzero"`
	Scenario              *domain.Scenario           `json:"scenario,omitzero"`
	QuestionIDs           []string                   `json:"questionIds,omitzero"`
	EvaluationCriteriaIDs []string                   `json:"evaluationCriteriaIds,omitzero"`
	CustomQuestions       []domain.CustomQuestion    `json:"customQuestions,omitzero"`
	CustomCriteria        []domain.CustomCriteria    `json:"customCriteria,omitzero"`
	Duration              *int                       `json:"duration,omitzero"`
	Deliverables          []string                   `json:"deliverables,omitzero"`
	Status                *domain.Status             `json:"status,omitzero"`
	CreatedAt             *time.Time                 `json:"createdAt,omitzero"`
}

// Apply returns c with the present fields of p merged in.
func (p CaseStudyPatch) Apply(c domain.CaseStudy) domain.CaseStudy {
	c = c.Clone()
	setIf(&c.Title, p.Title)
	setIf(&c.SeniorityLevel, p.SeniorityLevel)
	setIf(&c.Domain, p.Domain)
	setRef(&c.CandidateProfileID, p.CandidateProfileID)
	if p.Scenario != nil {
		c.Scenario = domain.Scenario{
			Context:     p.Scenario.Context,
			Challenge:   p.Scenario.Challenge,
			Constraints: slices.Clone(p.Scenario.Constraints),
		}
	}
	setSlice(&c.QuestionIDs, p.QuestionIDs)
	setSlice(&c.EvaluationCriteriaIDs, p.EvaluationCriteriaIDs)
	setSlice(&c.CustomQuestions, p.CustomQuestions)
	if p.CustomCriteria != nil {
		c.CustomCriteria = domain.CaseStudy{CustomCriteria: p.CustomCriteria}.Clone().CustomCriteria
	}
	setIf(&c.Duration, p.Duration)
	setSlice(&c.Deliverables, p.Deliverables)
	setIf(&c.Status, p.Status)
	setIf(&c.CreatedAt, p.CreatedAt)
	return c
}

// LibraryFilterPatch is a partial LibraryFilter. A present null clears the
// field.
type LibraryFilterPatch struct {
	Type        domain.Field[*domain.BlockType] `json:"type,omitzero"`
	Category    domain.Field[*string]           `json:"category,omitzero"`
	Tags        domain.Field[[]string]          `json:"tags,omitzero"`
	SearchQuery domain.Field[*string]           `json:"searchQuery,omitzero"`
}

// Apply returns f with the present fields of p merged in.
func (p LibraryFilterPatch) Apply(f domain.LibraryFilter) domain.LibraryFilter {
	f = f.Clone()
	if p.Type.Set {
		f.Type = nil
		if p.Type.Value != nil {
			t := *p.Type.Value
			f.Type = &t
		}
	}
	setRef(&f.Category, p.Category)
	if p.Tags.Set {
		f.Tags = slices.Clone(p.Tags.Value)
	}
	setRef(&f.SearchQuery, p.SearchQuery)
	return f
}

// StatePatch is a state fragment for IMPORT_STATE. Present fields replace
// the current ones wholesale.
type StatePatch struct {
	ContentBlocks       []domain.ContentBlock       `json:"contentBlocks,omitzero"`
	CandidateArchetypes []domain.CandidateArchetype `json:"candidateArchetypes,omitzero"`
	Tabs                []domain.Tab                `json:"tabs,omitzero"`
	ActiveTabID         domain.Field[*string]       `json:"activeTabId,omitzero"`
	ActiveModule        *domain.ModuleType          `json:"activeModule,omitzero"`
	DarkMode            *bool                       `json:"darkMode,omitzero"`
	LibraryFilter       *domain.LibraryFilter       `json:"libraryFilter,omitzero"`
}

// Apply returns s with the present fields of p merged in.
func (p StatePatch) Apply(s domain.State) domain.State {
	fragment := domain.State{
		ContentBlocks:       p.ContentBlocks,
		CandidateArchetypes: p.CandidateArchetypes,
		Tabs:                p.Tabs,
	}.Clone()
	if p.ContentBlocks != nil {
		s.ContentBlocks = fragment.ContentBlocks
	}
	if p.CandidateArchetypes != nil {
		s.CandidateArchetypes = fragment.CandidateArchetypes
	}
	if p.Tabs != nil {
		s.Tabs = fragment.Tabs
	}
	setRef(&s.ActiveTabID, p.ActiveTabID)
	setIf(&s.ActiveModule, p.ActiveModule)
	setIf(&s.DarkMode, p.DarkMode)
	if p.LibraryFilter != nil {
		s.LibraryFilter = p.LibraryFilter.Clone()
	}
	return s
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setSlice[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = slices.Clone(v)
	}
}

func setRef(dst **string, f domain.Field[*string]) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		*dst = nil
		return
	}
	*dst = domain.Ref(*f.Value)
}
