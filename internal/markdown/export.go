package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/boreacrutis/internal/domain"
)

// DefaultDateLayout renders footer dates as month/day/year without padding.
const DefaultDateLayout = "1/2/2006"

// Formatter renders entities to canonical markdown. Output is deterministic
// for a given entity and Formatter. Lines are joined with "\n" and there is
// no trailing newline.
type Formatter struct {
	// Location localizes the creation-date footer. Nil means time.Local.
	Location *time.Location
	// DateLayout is a time layout for the footer. Empty means DefaultDateLayout.
	DateLayout string
}

// DefaultFormatter uses the local time zone and DefaultDateLayout.
var DefaultFormatter = Formatter{}

type lines []string

func (l *lines) add(s ...string) { *l = append(*l, s...) }

func (l *lines) bullets(items []string) {
	for _, item := range items {
		l.add("- " + item)
	}
}

func (f Formatter) footer(l *lines, created time.Time) {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	layout := f.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	l.add("---", fmt.Sprintf("*Created: %s*", created.In(loc).Format(layout)))
}

// Profile renders a candidate profile. Notes are emitted only when they
// differ from the custom section contents joined by newlines, which is what
// an imported profile carries.
func (f Formatter) Profile(p domain.CandidateProfile) string {
	var l lines
	l.add("# "+p.Name, "")
	l.add("**Seniority:** "+string(p.SeniorityLevel), "**Domain:** "+p.Domain, "")

	contents := make([]string, len(p.CustomSections))
	for i, s := range p.CustomSections {
		l.add("## "+s.Title, "", s.Content, "")
		contents[i] = s.Content
	}
	if p.Notes != "" && p.Notes != strings.Join(contents, "\n") {
		l.add("## Notes", "", p.Notes, "")
	}

	f.footer(&l, p.CreatedAt)
	return strings.Join(l, "\n")
}

// JobAd renders a job ad. Library and variable sections contribute only
// their heading.
func (f Formatter) JobAd(j domain.JobAd) string {
	var l lines
	l.add("# "+j.Title, "")
	l.add("**Specialization:** "+j.Specialization, "**Status:** "+string(j.Status), "")

	if hm := j.HiringManager; hm.Name != "" {
		l.add("## Hiring Manager", "", "**Name:** "+hm.Name)
		if hm.Title != "" {
			l.add("**Title:** " + hm.Title)
		}
		if hm.Message != "" {
			l.add("", hm.Message)
		}
		l.add("")
	}

	for _, s := range j.Sections {
		l.add("## "+s.Title, "")
		if s.CustomContent != "" {
			l.add(s.CustomContent)
		}
		l.add("")
	}

	f.footer(&l, j.CreatedAt)
	return strings.Join(l, "\n")
}

// CaseStudy renders a case study. Empty scenario parts, questions, criteria
// and deliverables are left out entirely.
func (f Formatter) CaseStudy(c domain.CaseStudy) string {
	var l lines
	l.add("# "+c.Title, "")
	l.add(
		"**Seniority Level:** "+string(c.SeniorityLevel),
		"**Domain:** "+c.Domain,
		fmt.Sprintf("**Duration:** %d minutes", c.Duration),
		"**Status:** "+string(c.Status),
		"",
	)

	if sc := c.Scenario; sc.Context != "" || sc.Challenge != "" {
		l.add("## Scenario", "")
		if sc.Context != "" {
			l.add("### Context", "", sc.Context, "")
		}
		if sc.Challenge != "" {
			l.add("### Challenge", "", sc.Challenge, "")
		}
		if len(sc.Constraints) > 0 {
			l.add("### Constraints", "")
			l.bullets(sc.Constraints)
			l.add("")
		}
	}

	if len(c.CustomQuestions) > 0 {
		l.add("## Questions", "")
		for i, q := range c.CustomQuestions {
			l.add(fmt.Sprintf("%d. %s", i+1, q.Text), fmt.Sprintf("   - *Type: %s*", q.Type), "")
		}
	}

	if len(c.CustomCriteria) > 0 {
		l.add("## Evaluation Criteria", "")
		for _, cr := range c.CustomCriteria {
			l.add("### "+cr.Name, "", cr.Description, "")
			if len(cr.LookingFor) > 0 {
				l.add("**Looking For:**")
				l.bullets(cr.LookingFor)
				l.add("")
			}
			if len(cr.RedFlags) > 0 {
				l.add("**Red Flags:**")
				l.bullets(cr.RedFlags)
				l.add("")
			}
		}
	}

	if len(c.Deliverables) > 0 {
		l.add("## Deliverables", "")
		l.bullets(c.Deliverables)
		l.add("")
	}

	f.footer(&l, c.CreatedAt)
	return strings.Join(l, "\n")
}

// Profile renders p with DefaultFormatter.
func Profile(p domain.CandidateProfile) string { return DefaultFormatter.Profile(p) }

// JobAd renders j with DefaultFormatter.
func JobAd(j domain.JobAd) string { return DefaultFormatter.JobAd(j) }

// CaseStudy renders c with DefaultFormatter.
func CaseStudy(c domain.CaseStudy) string { return DefaultFormatter.CaseStudy(c) }
