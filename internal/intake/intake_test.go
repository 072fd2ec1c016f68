package intake

import (
	"fmt"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/boreacrutis/internal/apperr"
	"github.com/starford/boreacrutis/internal/domain"
	"github.com/starford/boreacrutis/internal/workspace"
)

var testNow = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func testIntake() *Intake {
	n := 0
	return New(
		WithClock(func() time.Time { return testNow }),
		WithIDs(func(prefix string) string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		}),
	)
}

const profileDoc = `# Staff Platform PM

Owns the developer platform.

## Responsibilities
Drive the API roadmap.

## Must Have
- Shipped B2B APIs
`

func TestImportProfile(t *testing.T) {
	p := testIntake().ImportProfile(profileDoc)

	assert.Equal(t, "Staff Platform PM", p.Name)
	assert.Equal(t, domain.SeniorityStaff, p.SeniorityLevel)
	assert.Equal(t, "platform", p.Domain)
	assert.Nil(t, p.ArchetypeID)
	assert.Equal(t, profileDoc, p.Notes)
	require.Len(t, p.CustomSections, 2)
	assert.Equal(t, domain.CustomSection{ID: "custom-1", Title: "Responsibilities", Content: "Drive the API roadmap.", Position: 0}, p.CustomSections[0])
	assert.Equal(t, "- Shipped B2B APIs", p.CustomSections[1].Content)
	assert.Equal(t, 1, p.CustomSections[1].Position)
	assert.Equal(t, "profile-3", p.ID)
	assert.Equal(t, testNow, p.CreatedAt)
	assert.Equal(t, testNow, p.UpdatedAt)
	assert.NotNil(t, p.RequiredSkillIDs)
}

func TestImportJobAd(t *testing.T) {
	j := testIntake().ImportJobAd("# Growth PM\n## About us\n We grow. \n## Perks\n")

	assert.Equal(t, "Growth PM", j.Title)
	assert.Equal(t, "growth", j.Specialization)
	assert.Equal(t, domain.StatusDraft, j.Status)
	assert.Equal(t, domain.HiringManager{}, j.HiringManager)
	assert.Empty(t, j.VariableSubstitutions)
	require.Len(t, j.Sections, 2)
	assert.Equal(t, domain.JobAdSection{ID: "section-1", Title: "About us", Position: 0, ContentType: domain.SectionCustom, CustomContent: "We grow."}, j.Sections[0])
	assert.Equal(t, "", j.Sections[1].CustomContent)
}

func TestImportCaseStudy(t *testing.T) {
	doc := "# Junior onboarding case\n## Background\nA mobile app.\n## Questions\nHow would you start?\n## Evaluation Criteria\nStructure.\n## Notes\nignored\n"
	c := testIntake().ImportCaseStudy(doc)

	assert.Equal(t, "Junior onboarding case", c.Title)
	assert.Equal(t, domain.CaseStudyMid, c.SeniorityLevel, "junior narrows to mid")
	assert.Equal(t, "mobile", c.Domain)
	assert.Equal(t, ImportedCaseStudyDuration, c.Duration)
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, "A mobile app.", c.Scenario.Context)
	assert.Empty(t, c.Scenario.Challenge)
	require.Len(t, c.CustomQuestions, 1)
	assert.Equal(t, "How would you start?", c.CustomQuestions[0].Text)
	assert.Equal(t, domain.QuestionOpenEnded, c.CustomQuestions[0].Type)
	require.Len(t, c.CustomCriteria, 1)
	assert.Equal(t, "Evaluation Criteria", c.CustomCriteria[0].Name)
	assert.Equal(t, "Structure.", c.CustomCriteria[0].Description)
}

func TestImportCaseStudyNarrowsStaff(t *testing.T) {
	c := testIntake().ImportCaseStudy("Staff level exercise")
	assert.Equal(t, domain.CaseStudySenior, c.SeniorityLevel)
	assert.Equal(t, "Staff level exercise", c.Title)
	assert.Empty(t, c.CustomQuestions)
	assert.Empty(t, c.CustomCriteria)
}

func TestImportAction(t *testing.T) {
	in := testIntake()

	a, err := in.ImportAction(domain.ModuleProfiles, "t1", profileDoc)
	require.NoError(t, err)
	add, ok := a.(workspace.AddProfile)
	require.True(t, ok)
	assert.Equal(t, "t1", add.TabID)

	a, err = in.ImportAction(domain.ModuleJobAds, "t2", "# Ad")
	require.NoError(t, err)
	assert.IsType(t, workspace.AddJobAd{}, a)

	a, err = in.ImportAction(domain.ModuleCaseStudies, "t3", "# Case")
	require.NoError(t, err)
	assert.IsType(t, workspace.AddCaseStudy{}, a)

	_, err = in.ImportAction(domain.ModuleProfiles, "t1", " \n\t")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = in.ImportAction(domain.ModuleLibrary, "t1", "# x")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNewProfile(t *testing.T) {
	in := testIntake()
	p, err := in.NewProfile(ProfileForm{Name: "  Mid PM  "})
	require.NoError(t, err)
	assert.Equal(t, "Mid PM", p.Name)
	assert.Equal(t, domain.SeniorityMid, p.SeniorityLevel)
	assert.Equal(t, DefaultDomain, p.Domain)
	assert.Empty(t, p.Notes)

	p, err = in.NewProfile(ProfileForm{Name: "x", SeniorityLevel: domain.SeniorityPrincipal, ArchetypeID: domain.Ref("archetype-principal-pm")})
	require.NoError(t, err)
	assert.Equal(t, domain.SeniorityPrincipal, p.SeniorityLevel)
	assert.Equal(t, "archetype-principal-pm", domain.Deref(p.ArchetypeID))

	_, err = in.NewProfile(ProfileForm{Name: "   "})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "Name")
}

func TestNewJobAdAndCaseStudy(t *testing.T) {
	in := testIntake()
	j, err := in.NewJobAd(JobAdForm{Title: " Ad "})
	require.NoError(t, err)
	assert.Equal(t, "Ad", j.Title)
	assert.Equal(t, DefaultSpecialization, j.Specialization)
	assert.Equal(t, domain.StatusDraft, j.Status)

	_, err = in.NewJobAd(JobAdForm{})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	c, err := in.NewCaseStudy(CaseStudyForm{Title: "Case"})
	require.NoError(t, err)
	assert.Equal(t, domain.CaseStudySenior, c.SeniorityLevel)
	assert.Equal(t, DefaultCaseStudyDuration, c.Duration)
	assert.Equal(t, domain.StatusDraft, c.Status)

	c, err = in.NewCaseStudy(CaseStudyForm{Title: "Short", Duration: 30})
	require.NoError(t, err)
	assert.Equal(t, 30, c.Duration)

	_, err = in.NewCaseStudy(CaseStudyForm{Title: "\t"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNewContentBlock(t *testing.T) {
	in := testIntake()
	b, err := in.NewContentBlock(ContentBlockForm{Title: " Kindness ", Content: " Be kind. ", Tags: "culture, , values ,"})
	require.NoError(t, err)
	assert.Equal(t, "Kindness", b.Title)
	assert.Equal(t, "Be kind.", b.Content)
	assert.Equal(t, DefaultCategory, b.Category)
	assert.Equal(t, DefaultBlockType, b.Type)
	assert.Equal(t, []string{"culture", "values"}, b.Tags)
	assert.Equal(t, "block-1", b.ID)

	_, err = in.NewContentBlock(ContentBlockForm{Title: "x"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = in.NewContentBlock(ContentBlockForm{Title: "x", Content: "y", Type: "poem"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestEditContentBlock(t *testing.T) {
	in := testIntake()
	u, err := in.EditContentBlock("skill-api-design", ContentBlockForm{Type: domain.BlockSkill, Title: "APIs", Content: "REST", Category: "core"})
	require.NoError(t, err)
	assert.Equal(t, "skill-api-design", u.BlockID)
	assert.Equal(t, "APIs", *u.Updates.Title)
	assert.Equal(t, []string{}, u.Updates.Tags)
	require.NotNil(t, u.Updates.UpdatedAt)
	assert.Equal(t, testNow, *u.Updates.UpdatedAt)

	_, err = in.EditContentBlock("skill-api-design", ContentBlockForm{Title: "APIs"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{"a", "b", "a"}, ParseTags("a,b , a"))
}
