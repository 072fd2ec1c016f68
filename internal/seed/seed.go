// Package seed holds the built-in content library, archetypes and default
// tabs that a fresh workspace starts from.
package seed

import (
	"time"

	"github.com/starford/boreacrutis/internal/domain"
)

// StorageKey is the fixed key the state snapshot is persisted under.
const StorageKey = "aurora-boreacrutis-state"

// Default tab ids.
const (
	ProfilesTabID    = "tab-profiles-default"
	JobAdsTabID      = "tab-jobads-default"
	CaseStudiesTabID = "tab-casestudies-default"
)

// seniorityAll is shaped like decoded JSON so seeded and reloaded
// metadata compare equal.
func seniorityAll() []any { return []any{"mid", "senior", "principal"} }

// ContentBlocks returns the seed library stamped with now.
func ContentBlocks(now time.Time) []domain.ContentBlock {
	blocks := []domain.ContentBlock{
		{
			ID:       "benefit-ai-tools",
			Type:     domain.BlockBenefit,
			Title:    "AI-Powered Productivity",
			Content:  "ChatGPT Pro ($200/month) and Claude Pro ($20/month) licenses to supercharge your work. Access to cutting-edge prototyping tools (Cursor Pro, Replit Teams, Lovable, GitHub Copilot).",
			Category: "compensation",
			Tags:     []string{"ai", "tools", "benefits"},
		},
		{
			ID:       "benefit-learning-budget",
			Type:     domain.BlockBenefit,
			Title:    "Learning & Experimentation",
			Content:  "€10,000/quarter team experimentation budget. €2,000/year personal learning budget. 10% time for AI experimentation.",
			Category: "compensation",
			Tags:     []string{"learning", "growth", "budget"},
		},
		{
			ID:       "benefit-remote-work",
			Type:     domain.BlockBenefit,
			Title:    "Flexible Remote Work",
			Content:  "Work from anywhere in the Nordics. Quarterly team meetups. Home office budget included.",
			Category: "work-life",
			Tags:     []string{"remote", "flexibility", "benefits"},
		},
		{
			ID:       "req-ai-prototyping",
			Type:     domain.BlockRequirement,
			Title:    "AI Prototyping Skills",
			Content:  "Portfolio of prototypes built with AI coding tools (Cursor, Lovable, Bolt, Replit). Can show concrete examples of how AI improved your product work (time saved, insights gained, prototypes built).",
			Category: "ai-fluency",
			Tags:     []string{"ai", "prototyping", "portfolio"},
			Metadata: map[string]any{"seniorityLevel": seniorityAll()},
		},
		{
			ID:       "req-hungry-curious",
			Type:     domain.BlockRequirement,
			Title:    "Hungry & Curious Mindset",
			Content:  "Extreme curiosity about the world around you. Continuous learner who swiftly adapts to market changes. Intellectually humble. Admit when you don't know and dive in to learn.",
			Category: "mindset",
			Tags:     []string{"culture-fit", "learning", "curiosity"},
			Metadata: map[string]any{"seniorityLevel": seniorityAll()},
		},
		{
			ID:       "skill-api-design",
			Type:     domain.BlockSkill,
			Title:    "API Design & Development",
			Content:  "Strong understanding of REST APIs, webhooks, authentication (OAuth 2.0, API keys). Experience with API documentation and developer experience.",
			Category: "technical",
			Tags:     []string{"api", "technical", "platform"},
		},
		{
			ID:       "skill-product-management",
			Type:     domain.BlockSkill,
			Title:    "Project Management",
			Content:  "Experience leading cross-functional teams. Strong stakeholder management. Data-driven decision making.",
			Category: "core",
			Tags:     []string{"management", "leadership"},
		},
		{
			ID:       "skill-ux-design",
			Type:     domain.BlockSkill,
			Title:    "UI/X Design",
			Content:  "Understanding of user-centered design principles. Experience with design tools. Ability to create wireframes and prototypes.",
			Category: "design",
			Tags:     []string{"design", "ux", "ui"},
		},
		{
			ID:       "redflag-vague-ai",
			Type:     domain.BlockRedFlag,
			Title:    "Vague AI Experience",
			Content:  `Claims AI experience but only "used ChatGPT once to summarize a meeting." Can't name specific daily AI tools. No portfolio of prototypes.`,
			Category: "screening",
			Tags:     []string{"ai", "red-flag"},
		},
		{
			ID:       "question-prototyping",
			Type:     domain.BlockQuestion,
			Title:    "Prototyping Assessment",
			Content:  "Walk me through a recent project where you built something with AI tools. What did you build, what tools did you use, and how long did it take?",
			Category: "interview",
			Tags:     []string{"ai", "prototyping", "technical"},
			Metadata: map[string]any{"weight": float64(5)},
		},
		{
			ID:       "criteria-technical-fluency",
			Type:     domain.BlockEvaluationCriteria,
			Title:    "Technical Fluency",
			Content:  "AI/ML concept understanding. Prototyping tool experience. Data literacy.",
			Category: "scoring",
			Tags:     []string{"technical", "evaluation"},
			Metadata: map[string]any{"scoreRange": []any{float64(1), float64(5)}},
		},
	}
	for i := range blocks {
		blocks[i].CreatedAt = now
		blocks[i].UpdatedAt = now
	}
	return blocks
}

// Archetypes returns the read-only candidate archetypes.
func Archetypes() []domain.CandidateArchetype {
	return []domain.CandidateArchetype{
		{
			ID:                     "archetype-mid-pm",
			Name:                   "Mid-Level PM (Team-Embedded)",
			Description:            "PM who runs high-performing squad, ships iteratively, role-models AI",
			SeniorityLevel:         "mid",
			BaselineSkillIDs:       []string{"skill-product-management", "skill-api-design"},
			BaselineRequirementIDs: []string{"req-ai-prototyping", "req-hungry-curious"},
			SourceDocument:         "/Research/pm-mid-embedded-perplexity.md",
		},
		{
			ID:                     "archetype-senior-pm",
			Name:                   "Senior PM (Cross-Product, AI Chapter Leader)",
			Description:            "Strategic PM with multi-quarter vision, AI Chapter co-leadership",
			SeniorityLevel:         "senior",
			BaselineSkillIDs:       []string{"skill-product-management", "skill-api-design"},
			BaselineRequirementIDs: []string{"req-ai-prototyping", "req-hungry-curious"},
			SourceDocument:         "/Research/pm-senior-cross-team-perplexity.md",
		},
		{
			ID:                     "archetype-principal-pm",
			Name:                   "Principal PM (Platform & AI Enablement)",
			Description:            "Technical PM owning platform strategy, org-wide AI enablement",
			SeniorityLevel:         "principal",
			BaselineSkillIDs:       []string{"skill-product-management", "skill-api-design", "skill-ux-design"},
			BaselineRequirementIDs: []string{"req-ai-prototyping", "req-hungry-curious"},
			SourceDocument:         "/Research/pm-principal-platform-ai-perplexity.md",
		},
	}
}

// Tabs returns one empty tab per module.
func Tabs(now time.Time) []domain.Tab {
	return []domain.Tab{
		{ID: ProfilesTabID, Name: "Profiles", ModuleType: domain.ModuleProfiles, State: domain.ProfileModuleState{Profiles: []domain.CandidateProfile{}}, CreatedAt: now},
		{ID: JobAdsTabID, Name: "Job Ads", ModuleType: domain.ModuleJobAds, State: domain.JobAdModuleState{JobAds: []domain.JobAd{}}, CreatedAt: now},
		{ID: CaseStudiesTabID, Name: "Case Studies", ModuleType: domain.ModuleCaseStudies, State: domain.CaseStudyModuleState{CaseStudies: []domain.CaseStudy{}}, CreatedAt: now},
	}
}

// InitialState is the state of a workspace that has never been saved.
func InitialState(now time.Time) domain.State {
	return domain.State{
		ContentBlocks:       ContentBlocks(now),
		CandidateArchetypes: Archetypes(),
		Tabs:                Tabs(now),
		ActiveTabID:         domain.Ref(ProfilesTabID),
		ActiveModule:        domain.ModuleProfiles,
		DarkMode:            true,
	}
}
