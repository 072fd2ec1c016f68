package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/boreacrutis/internal/domain"
)

var (
	created = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	utc     = Formatter{Location: time.UTC}
)

func TestProfileMarkdown(t *testing.T) {
	p := domain.CandidateProfile{
		Name:           "Platform PM",
		SeniorityLevel: domain.SenioritySenior,
		Domain:         "platform",
		CustomSections: []domain.CustomSection{{Title: "About", Content: "Own the API."}},
		Notes:          "Own the API.",
		CreatedAt:      created,
	}
	want := "# Platform PM\n\n**Seniority:** senior\n**Domain:** platform\n\n## About\n\nOwn the API.\n\n---\n*Created: 3/5/2024*"
	assert.Equal(t, want, utc.Profile(p))

	p.Notes = "Hire by Q3"
	want = "# Platform PM\n\n**Seniority:** senior\n**Domain:** platform\n\n## About\n\nOwn the API.\n\n## Notes\n\nHire by Q3\n\n---\n*Created: 3/5/2024*"
	assert.Equal(t, want, utc.Profile(p))
}

func TestJobAdMarkdown(t *testing.T) {
	j := domain.JobAd{
		Title:          "Senior PM",
		Specialization: "Product Management",
		Status:         domain.StatusDraft,
		HiringManager:  domain.HiringManager{Name: "Kim", Title: "VP Product", Message: "Join us."},
		Sections: []domain.JobAdSection{
			{Title: "About", ContentType: domain.SectionCustom, CustomContent: "We build."},
			{Title: "Skills", ContentType: domain.SectionLibrary, ContentBlockIDs: []string{"skill-api-design"}},
		},
		CreatedAt: created,
	}
	want := "# Senior PM\n\n**Specialization:** Product Management\n**Status:** draft\n\n" +
		"## Hiring Manager\n\n**Name:** Kim\n**Title:** VP Product\n\nJoin us.\n\n" +
		"## About\n\nWe build.\n\n" +
		"## Skills\n\n\n" +
		"---\n*Created: 3/5/2024*"
	assert.Equal(t, want, utc.JobAd(j))

	j.HiringManager = domain.HiringManager{Title: "ignored without a name"}
	j.Sections = nil
	assert.Equal(t, "# Senior PM\n\n**Specialization:** Product Management\n**Status:** draft\n\n---\n*Created: 3/5/2024*", utc.JobAd(j))
}

func TestCaseStudyMarkdown(t *testing.T) {
	c := domain.CaseStudy{
		Title:          "Pricing",
		SeniorityLevel: domain.CaseStudySenior,
		Domain:         "platform",
		Duration:       90,
		Status:         domain.StatusDraft,
		Scenario:       domain.Scenario{Context: "Ctx", Constraints: []string{"2 weeks"}},
		CustomQuestions: []domain.CustomQuestion{
			{Text: "How?", Type: domain.QuestionFramework},
		},
		CustomCriteria: []domain.CustomCriteria{
			{Name: "Clarity", Description: "Clear.", LookingFor: []string{"Structure"}},
		},
		Deliverables: []string{"Deck"},
		CreatedAt:    created,
	}
	want := strings.Join([]string{
		"# Pricing",
		"",
		"**Seniority Level:** senior",
		"**Domain:** platform",
		"**Duration:** 90 minutes",
		"**Status:** draft",
		"",
		"## Scenario",
		"",
		"### Context",
		"",
		"Ctx",
		"",
		"### Constraints",
		"",
		"- 2 weeks",
		"",
		"## Questions",
		"",
		"1. How?",
		"   - *Type: framework*",
		"",
		"## Evaluation Criteria",
		"",
		"### Clarity",
		"",
		"Clear.",
		"",
		"**Looking For:**",
		"- Structure",
		"",
		"## Deliverables",
		"",
		"- Deck",
		"",
		"---",
		"*Created: 3/5/2024*",
	}, "\n")
	assert.Equal(t, want, utc.CaseStudy(c))
}

func TestCaseStudyOmitsEmptyScenario(t *testing.T) {
	c := domain.CaseStudy{
		Title:    "Bare",
		Scenario: domain.Scenario{Constraints: []string{"orphan"}},
	}
	out := utc.CaseStudy(c)
	assert.NotContains(t, out, "## Scenario")
	assert.NotContains(t, out, "orphan")
	assert.NotContains(t, out, "## Questions")
	assert.NotContains(t, out, "## Deliverables")
}

func TestSerializersAreDeterministic(t *testing.T) {
	p := domain.CandidateProfile{Name: "A", CustomSections: []domain.CustomSection{{Title: "x", Content: "y"}}, CreatedAt: created}
	c := domain.CaseStudy{Title: "B", CustomQuestions: []domain.CustomQuestion{{Text: "q"}}, CreatedAt: created}
	j := domain.JobAd{Title: "C", Sections: []domain.JobAdSection{{Title: "s"}}, CreatedAt: created}

	assert.Equal(t, Profile(p), Profile(p))
	assert.Equal(t, CaseStudy(c), CaseStudy(c))
	assert.Equal(t, JobAd(j), JobAd(j))
}

func TestFooterLayout(t *testing.T) {
	f := Formatter{Location: time.UTC, DateLayout: "2006-01-02"}
	out := f.Profile(domain.CandidateProfile{Name: "A", CreatedAt: created})
	assert.True(t, strings.HasSuffix(out, "---\n*Created: 2024-03-05*"), out)

	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC)
	out = Formatter{Location: tokyo}.Profile(domain.CandidateProfile{Name: "A", CreatedAt: late})
	assert.True(t, strings.HasSuffix(out, "*Created: 3/6/2024*"), out)
}

func TestExportThenParseIsLossy(t *testing.T) {
	c := domain.CaseStudy{Title: "Pricing", Duration: 45, Scenario: domain.Scenario{Context: "Ctx"}, CreatedAt: created}
	doc := Parse(utc.CaseStudy(c))
	assert.Equal(t, "Pricing", doc.Title)
	s, ok := doc.Section("context")
	require.True(t, ok)
	assert.Equal(t, 3, s.Level)
	assert.Contains(t, doc.Preamble, "**Duration:** 45 minutes")
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\n- a\n- b\n\n| x | y |\n|---|---|\n| 1 | 2 |\n\n<script>alert(1)</script>\n")
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<li>a</li>")
	assert.Contains(t, out, "<table>")
	assert.NotContains(t, out, "<script>")
}
