// Package intake turns user input into fully formed entities: markdown
// imports and the "new entity" forms with their presence checks.
package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/markdown"
	"github.com/starford/boreacrutis/internal/workspace"
)

// ImportedCaseStudyDuration is the duration given to imported case studies.
const ImportedCaseStudyDuration = 90

// Intake builds entities stamped with its clock and ids.
type Intake struct {
	now   func() time.Time
	newID func(prefix string) string
}

// Option configures an Intake.
type Option func(*Intake)

// WithClock sets the time source for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(in *Intake) { in.now = now }
}

// WithIDs sets the id generator. prefix names the entity kind, for example
// "profile" or "section".
func WithIDs(newID func(prefix string) string) Option {
	return func(in *Intake) { in.newID = newID }
}

// New returns an Intake generating "<prefix>-<uuid>" ids.
func New(opts ...Option) *Intake {
	in := &Intake{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
	for _, o := range opts {
		o(in)
	}
	return in
}

// ImportProfile maps a markdown document onto a new profile. Every parsed
// section becomes a custom section and the raw text is kept as notes.
func (in *Intake) ImportProfile(text string) domain.CandidateProfile {
	doc := markdown.Parse(text)
	now := in.now()
	sections := make([]domain.CustomSection, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = domain.CustomSection{
			ID:       in.newID("custom"),
			Title:    s.Heading,
			Content:  strings.TrimSpace(s.Content),
			Position: i,
		}
	}
	p := emptyProfile(in.newID("profile"), now)
	p.Name = doc.Title
	p.SeniorityLevel = markdown.ExtractSeniority(doc.Raw)
	p.Domain = markdown.ExtractDomain(doc.Raw)
	p.CustomSections = sections
	p.Notes = doc.Raw
	return p
}

// ImportJobAd maps a markdown document onto a new draft job ad with one
// custom section per parsed section.
func (in *Intake) ImportJobAd(text string) domain.JobAd {
	doc := markdown.Parse(text)
	now := in.now()
	sections := make([]domain.JobAdSection, len(doc.Sections))
	for i, s := range doc.Sections {
		sections[i] = domain.JobAdSection{
			ID:            in.newID("section"),
			Title:         s.Heading,
			Position:      i,
			ContentType:   domain.SectionCustom,
			CustomContent: strings.TrimSpace(s.Content),
		}
	}
	j := emptyJobAd(in.newID("jobad"), now)
	j.Title = doc.Title
	j.Specialization = markdown.ExtractDomain(doc.Raw)
	j.Sections = sections
	return j
}

// ImportCaseStudy maps a markdown document onto a new draft case study. The
// first scenario-like section fills the context, the first question section
// becomes one open-ended question and the first criteria section one
// criterion.
func (in *Intake) ImportCaseStudy(text string) domain.CaseStudy {
	doc := markdown.Parse(text)
	c := emptyCaseStudy(in.newID("case"), in.now())
	c.Title = doc.Title
	c.SeniorityLevel = markdown.ExtractSeniority(doc.Raw).ForCaseStudy()
	c.Domain = markdown.ExtractDomain(doc.Raw)
	c.Duration = ImportedCaseStudyDuration

	if s, ok := doc.Section("scenario", "context", "background"); ok {
		c.Scenario.Context = strings.TrimSpace(s.Content)
	}
	if s, ok := doc.Section("question"); ok {
		c.CustomQuestions = []domain.CustomQuestion{{
			ID:   in.newID("custom-q"),
			Text: strings.TrimSpace(s.Content),
			Type: domain.QuestionOpenEnded,
		}}
	}
	if s, ok := doc.Section("criteria", "evaluation"); ok {
		c.CustomCriteria = []domain.CustomCriteria{{
			ID:          in.newID("custom-c"),
			Name:        s.Heading,
			Description: strings.TrimSpace(s.Content),
			LookingFor:  []string{},
			RedFlags:    []string{},
		}}
	}
	return c
}

// ImportAction parses text into an entity of module and wraps it in the ADD
// action for tabID. Blank text is rejected so that nothing is dispatched.
func (in *Intake) ImportAction(module domain.ModuleType, tabID, text string) (workspace.Action, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("intake: import %s: %w: empty document", module, apperr.ErrInvalidInput)
	}
	switch module {
	case domain.ModuleProfiles:
		return workspace.AddProfile{TabID: tabID, Profile: in.ImportProfile(text)}, nil
	case domain.ModuleJobAds:
		return workspace.AddJobAd{TabID: tabID, JobAd: in.ImportJobAd(text)}, nil
	case domain.ModuleCaseStudies:
		return workspace.AddCaseStudy{TabID: tabID, CaseStudy: in.ImportCaseStudy(text)}, nil
	}
	return nil, fmt.Errorf("intake: import: %w: module %q does not accept documents", apperr.ErrInvalidInput, module)
}

func emptyProfile(id string, now time.Time) domain.CandidateProfile {
	return domain.CandidateProfile{
		ID:                    id,
		RequiredSkillIDs:      []string{},
		PreferredSkillIDs:     []string{},
		RequiredExperienceIDs: []string{},
		AIToolRequirementIDs:  []string{},
		ResponsibilityIDs:     []string{},
		RedFlagIDs:            []string{},
		CustomSections:        []domain.CustomSection{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func emptyJobAd(id string, now time.Time) domain.JobAd {
	return domain.JobAd{
		ID:                    id,
		Sections:              []domain.JobAdSection{},
		VariableSubstitutions: map[string]string{},
		Status:                domain.StatusDraft,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func emptyCaseStudy(id string, now time.Time) domain.CaseStudy {
	return domain.CaseStudy{
		ID:                    id,
		Scenario:              domain.Scenario{Constraints: []string{}},
		QuestionIDs:           []string{},
		EvaluationCriteriaIDs: []string{},
		CustomQuestions:       []domain.CustomQuestion{},
		CustomCriteria:        []domain.CustomCriteria{},
		Deliverables:          []string{},
		Status:                domain.StatusDraft,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
