// Package domain defines the entities of the recruitment builder: the shared
// content library, archetypes, tabs and the per-module documents they hold.
package domain

// ModuleType names one of the document kinds, or the cross-cutting library view.
type ModuleType string

const (
	ModuleProfiles    ModuleType = "profiles"
	ModuleJobAds      ModuleType = "jobads"
	ModuleCaseStudies ModuleType = "casestudies"
	ModuleLibrary     ModuleType = "library"
)

// TabModules lists the module types a Tab may be bound to, in display order.
var TabModules = []ModuleType{ModuleProfiles, ModuleJobAds, ModuleCaseStudies}

// HasTabs reports whether tabs can be bound to m. The library view has none.
func (m ModuleType) HasTabs() bool {
	switch m {
	case ModuleProfiles, ModuleJobAds, ModuleCaseStudies:
		return true
	}
	return false
}

// Valid reports whether m is a known module.
func (m ModuleType) Valid() bool {
	return m == ModuleLibrary || m.HasTabs()
}

// BlockType tags a ContentBlock. The set is closed.
type BlockType string

const (
	BlockSkill              BlockType = "skill"
	BlockRequirement        BlockType = "requirement"
	BlockBenefit            BlockType = "benefit"
	BlockValue              BlockType = "value"
	BlockQuestion           BlockType = "question"
	BlockEvaluationCriteria BlockType = "evaluation_criteria"
	BlockProcessStep        BlockType = "process_step"
	BlockRedFlag            BlockType = "red_flag"
	BlockExperience         BlockType = "experience"
	BlockAITool             BlockType = "ai_tool"
	BlockResponsibility     BlockType = "responsibility"
)

// BlockTypes is the canonical ordered set of block types.
var BlockTypes = []BlockType{
	BlockSkill, BlockRequirement, BlockBenefit, BlockValue, BlockQuestion,
	BlockEvaluationCriteria, BlockProcessStep, BlockRedFlag, BlockExperience,
	BlockAITool, BlockResponsibility,
}

// Valid reports whether t belongs to the closed block type set.
func (t BlockType) Valid() bool {
	for _, bt := range BlockTypes {
		if bt == t {
			return true
		}
	}
	return false
}

// RecommendedCategories are the conventional block categories. Not enforced.
var RecommendedCategories = []string{
	"technical", "core", "design", "compensation", "work-life",
	"ai-fluency", "mindset", "screening", "interview", "scoring",
}

// Seniority is the level of a candidate profile.
type Seniority string

const (
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityStaff     Seniority = "staff"
	SeniorityPrincipal Seniority = "principal"
)

// CaseStudySeniority is the narrower level set used by case studies.
type CaseStudySeniority string

const (
	CaseStudyMid       CaseStudySeniority = "mid"
	CaseStudySenior    CaseStudySeniority = "senior"
	CaseStudyPrincipal CaseStudySeniority = "principal"
)

// ForCaseStudy narrows a profile seniority onto the case study scale without
// exceeding it: junior becomes mid and staff becomes senior.
func (s Seniority) ForCaseStudy() CaseStudySeniority {
	switch s {
	case SeniorityJunior, SeniorityMid:
		return CaseStudyMid
	case SenioritySenior, SeniorityStaff:
		return CaseStudySenior
	case SeniorityPrincipal:
		return CaseStudyPrincipal
	}
	return CaseStudyMid
}

// Status is the lifecycle of a job ad or case study.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// SectionContentType selects which JobAdSection field carries the content.
type SectionContentType string

const (
	SectionLibrary  SectionContentType = "library"
	SectionCustom   SectionContentType = "custom"
	SectionVariable SectionContentType = "variable"
)

// QuestionType classifies a custom case study question.
type QuestionType string

const (
	QuestionOpenEnded QuestionType = "open-ended"
	QuestionFramework QuestionType = "framework"
	QuestionTechnical QuestionType = "technical"
	QuestionStrategic QuestionType = "strategic"
)
