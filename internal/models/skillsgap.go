package models

// Target skill sources, in resolution priority order.
const (
	TargetSourceExplicit       = "explicit_skills"
	TargetSourceJobDescription = "job_description"
	TargetSourceDefault        = "default_template"
)

// TargetSkillSet is the resolved set of skills a resume is compared
// against. Immutable once resolved for a request.
type TargetSkillSet struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
	Source    string   `json:"source"`
}

// CoverageAnalysis holds set-intersection ratios in percent.
type CoverageAnalysis struct {
	RequiredCoveragePercent  float64 `json:"required_coverage_percent"`
	PreferredCoveragePercent float64 `json:"preferred_coverage_percent"`
	OverallCoveragePercent   float64 `json:"overall_coverage_percent"`
	MatchedRequiredCount     int     `json:"matched_required_count"`
	MatchedPreferredCount    int     `json:"matched_preferred_count"`
	TotalMatchedCount        int     `json:"total_matched_count"`
}

// SkillsBreakdown partitions each target subset into matched and
// missing. Matched and missing are disjoint and their union is the
// target subset.
type SkillsBreakdown struct {
	MatchedRequired  []string `json:"matched_required"`
	MatchedPreferred []string `json:"matched_preferred"`
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`
	BonusSkills      []string `json:"bonus_skills"`
}

// SkillsGapScore grades overall coverage on a five-level ladder.
type SkillsGapScore struct {
	Score       float64 `json:"score"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// GapRecommendations holds the actionable advice derived from the gap.
type GapRecommendations struct {
	ImmediatePriority []string `json:"immediate_priority"`
	MediumPriority    []string `json:"medium_priority"`
	LongTerm          []string `json:"long_term"`
	LeverageExisting  []string `json:"leverage_existing"`
	SourceNote        []string `json:"source_note"`
}

// SkillsGapResult is the complete output of the skills gap analyzer.
type SkillsGapResult struct {
	Source              string             `json:"source"`
	Target              TargetSkillSet     `json:"target_skills"`
	ResumeSkills        []string           `json:"resume_skills"`
	Coverage            CoverageAnalysis   `json:"coverage_analysis"`
	Breakdown           SkillsBreakdown    `json:"skills_breakdown"`
	Recommendations     GapRecommendations `json:"recommendations"`
	PrioritySkillsToAdd []string           `json:"priority_skills_to_add"`
	GapScore            SkillsGapScore     `json:"skills_gap_score"`
}
