package markdown

import (
	"strings"

	"github.com/starford/boreacrutis/internal/domain"
)

// Extractors are single-pass, case-insensitive substring checks over a fixed
// priority table. The first rule with a matching keyword wins, regardless of
// where in the text the keywords occur. They misclassify freely.

type seniorityRule struct {
	keywords []string
	level    domain.Seniority
}

var seniorityRules = []seniorityRule{
	{[]string{"principal"}, domain.SeniorityPrincipal},
	{[]string{"staff"}, domain.SeniorityStaff},
	{[]string{"senior"}, domain.SenioritySenior},
	{[]string{"mid", "middle"}, domain.SeniorityMid},
	{[]string{"junior"}, domain.SeniorityJunior},
}

// DefaultSeniority is returned when no seniority keyword is present.
const DefaultSeniority = domain.SeniorityMid

// ExtractSeniority infers a seniority level from free text.
func ExtractSeniority(text string) domain.Seniority {
	lower := strings.ToLower(text)
	for _, r := range seniorityRules {
		if containsAny(lower, r.keywords) {
			return r.level
		}
	}
	return DefaultSeniority
}

var domainRules = []string{"platform", "growth", "api", "mobile", "data", "infrastructure"}

// DefaultDomain is returned when no domain keyword is present.
const DefaultDomain = "general"

// ExtractDomain infers a product domain from free text.
func ExtractDomain(text string) string {
	lower := strings.ToLower(text)
	for _, d := range domainRules {
		if strings.Contains(lower, d) {
			return d
		}
	}
	return DefaultDomain
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
