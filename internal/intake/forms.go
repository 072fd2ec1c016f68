package intake

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/workspace"
)

// Form defaults.
const (
	DefaultDomain            = "Product Management"
	DefaultSpecialization    = "Product Management"
	DefaultCaseStudyDuration = 90
	DefaultCategory          = "technical"
	DefaultBlockType         = domain.BlockSkill
)

// ProfileForm is the input for a new profile.
type ProfileForm struct {
	Name           string
	SeniorityLevel domain.Seniority
	Domain         string
	ArchetypeID    *string
}

// JobAdForm is the input for a new job ad.
type JobAdForm struct {
	Title              string
	Specialization     string
	CandidateProfileID *string
}

// CaseStudyForm is the input for a new case study.
type CaseStudyForm struct {
	Title              string
	SeniorityLevel     domain.CaseStudySeniority
	Domain             string
	Duration           int
	CandidateProfileID *string
}

// ContentBlockForm is the input for a new or edited content block. Tags is
// a comma separated list.
type ContentBlockForm struct {
	Type     domain.BlockType
	Title    string
	Content  string
	Category string
	Tags     string
}

func invalid(op string, err error) error {
	return fmt.Errorf("intake: %s: %w: %w", op, apperr.ErrInvalidInput, err)
}

// NewProfile builds a profile from f. The name is required.
func (in *Intake) NewProfile(f ProfileForm) (domain.CandidateProfile, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
	); err != nil {
		return domain.CandidateProfile{}, invalid("new profile", err)
	}
	p := emptyProfile(in.newID("profile"), in.now())
	p.Name = f.Name
	p.SeniorityLevel = orDefault(f.SeniorityLevel, domain.SeniorityMid)
	p.Domain = orDefault(f.Domain, DefaultDomain)
	if f.ArchetypeID != nil {
		p.ArchetypeID = domain.Ref(*f.ArchetypeID)
	}
	return p, nil
}

// NewJobAd builds a draft job ad from f. The title is required.
func (in *Intake) NewJobAd(f JobAdForm) (domain.JobAd, error) {
	f.Title = strings.TrimSpace(f.Title)
	if err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
	); err != nil {
		return domain.JobAd{}, invalid("new job ad", err)
	}
	j := emptyJobAd(in.newID("jobad"), in.now())
	j.Title = f.Title
	j.Specialization = orDefault(f.Specialization, DefaultSpecialization)
	if f.CandidateProfileID != nil {
		j.CandidateProfileID = domain.Ref(*f.CandidateProfileID)
	}
	return j, nil
}

// NewCaseStudy builds a draft case study from f. The title is required.
func (in *Intake) NewCaseStudy(f CaseStudyForm) (domain.CaseStudy, error) {
	f.Title = strings.TrimSpace(f.Title)
	if err := validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
	); err != nil {
		return domain.CaseStudy{}, invalid("new case study", err)
	}
	c := emptyCaseStudy(in.newID("case"), in.now())
	c.Title = f.Title
	c.SeniorityLevel = orDefault(f.SeniorityLevel, domain.CaseStudySenior)
	c.Domain = orDefault(f.Domain, DefaultDomain)
	c.Duration = orDefault(f.Duration, DefaultCaseStudyDuration)
	if f.CandidateProfileID != nil {
		c.CandidateProfileID = domain.Ref(*f.CandidateProfileID)
	}
	return c, nil
}

func (f *ContentBlockForm) normalize() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	f.Type = orDefault(f.Type, DefaultBlockType)
	f.Category = orDefault(strings.TrimSpace(f.Category), DefaultCategory)
	return validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Content, validation.Required),
		validation.Field(&f.Type, validation.By(knownBlockType)),
	)
}

func knownBlockType(v any) error {
	if t, _ := v.(domain.BlockType); !t.Valid() {
		return validation.NewError("validation_block_type", "unknown block type")
	}
	return nil
}

// NewContentBlock builds a library block from f. Title and content are
// required.
func (in *Intake) NewContentBlock(f ContentBlockForm) (domain.ContentBlock, error) {
	if err := f.normalize(); err != nil {
		return domain.ContentBlock{}, invalid("new content block", err)
	}
	now := in.now()
	return domain.ContentBlock{
		ID:        in.newID("block"),
		Type:      f.Type,
		Title:     f.Title,
		Content:   f.Content,
		Category:  f.Category,
		Tags:      ParseTags(f.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// EditContentBlock builds the update for block id from f with the same
// checks as NewContentBlock, stamping updatedAt.
func (in *Intake) EditContentBlock(id string, f ContentBlockForm) (workspace.UpdateContentBlock, error) {
	if err := f.normalize(); err != nil {
		return workspace.UpdateContentBlock{}, invalid("edit content block", err)
	}
	now := in.now()
	tags := ParseTags(f.Tags)
	return workspace.UpdateContentBlock{
		BlockID: id,
		Updates: workspace.ContentBlockPatch{
			Type:      &f.Type,
			Title:     &f.Title,
			Content:   &f.Content,
			Category:  &f.Category,
			Tags:      tags,
			UpdatedAt: &now,
		},
	}, nil
}

// ParseTags splits a comma separated list, trimming entries and dropping
// empty ones. The result is never nil.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
