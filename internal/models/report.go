package models

// QualityScores is the report-facing view of the rubric score. Available
// is false when quality scoring was skipped for lack of upstream data.
type QualityScores struct {
	Available       bool                   `json:"available"`
	OverallScore    float64                `json:"overall_score"`
	QualityLevel    string                 `json:"quality_level"`
	Breakdown       ScoreBreakdown         `json:"score_breakdown"`
	Recommendations QualityRecommendations `json:"recommendations"`
}

// ATSCompatibility is the report-facing view of the ATS analysis.
type ATSCompatibility struct {
	Available          bool               `json:"available"`
	Score              float64            `json:"ats_score"`
	CompatibilityLevel string             `json:"compatibility_level"`
	Breakdown          map[string]float64 `json:"breakdown"`
	PriorityIssues     []string           `json:"priority_issues"`
	Recommendations    ATSRecommendations `json:"recommendations"`
}

// SkillsReport is the report-facing skills view including the gap
// analysis when a target was supplied.
type SkillsReport struct {
	ByCategory     map[string][]string `json:"by_category"`
	MatchedSkills  []string            `json:"matched_skills"`
	TotalFound     int                 `json:"total_skills_found"`
	GapAvailable   bool                `json:"gap_available"`
	Gap            *SkillsGapResult    `json:"gap_analysis,omitempty"`
}

// ReportRecommendations merges the per-stage recommendation buckets.
type ReportRecommendations struct {
	Critical       []string `json:"critical"`
	HighPriority   []string `json:"high_priority"`
	MediumPriority []string `json:"medium_priority"`
	LowPriority    []string `json:"low_priority"`
	TopActions     []string `json:"top_actions"`
}

// DocumentMetrics summarizes the physical document.
type DocumentMetrics struct {
	Filename         string  `json:"filename"`
	Extension        string  `json:"extension"`
	SizeMB           float64 `json:"size_mb"`
	TotalCharacters  int     `json:"total_characters"`
	TotalWords       int     `json:"total_words"`
	TotalLines       int     `json:"total_lines"`
	SectionsDetected int     `json:"sections_detected"`
	IsScanned        bool    `json:"is_scanned"`
	StructureQuality string  `json:"structure_quality"`
}

// AIInsights is the enrichment payload. AIPowered is false when the
// rule-based fallback produced the analysis.
type AIInsights struct {
	Available bool           `json:"available"`
	AIPowered bool           `json:"ai_powered"`
	ModelUsed string         `json:"model_used"`
	Analysis  map[string]any `json:"analysis,omitempty"`
}

// FeedbackReport is the stable, consumer-facing output schema of one
// analysis request.
type FeedbackReport struct {
	RequestID       string                `json:"request_id"`
	GeneratedAt     string                `json:"generated_at"`
	ContactInfo     ContactInfo           `json:"contact_info"`
	Education       []string              `json:"education"`
	Experience      []Position            `json:"experience"`
	Skills          SkillsReport          `json:"skills"`
	Projects        []Project             `json:"projects"`
	Certifications  []Certification       `json:"certifications"`
	RoleInference   RoleInference         `json:"role_inference"`
	QualityScores   QualityScores         `json:"quality_scores"`
	ATS             ATSCompatibility      `json:"ats_compatibility"`
	Recommendations ReportRecommendations `json:"recommendations"`
	DocumentMetrics DocumentMetrics       `json:"document_metrics"`
	AIInsights      AIInsights            `json:"ai_insights"`
}

// EnrichmentResult is the contract with the AI enrichment collaborator.
type EnrichmentResult struct {
	Success   bool           `json:"success"`
	Analysis  map[string]any `json:"analysis"`
	AIPowered bool           `json:"ai_powered"`
	ModelUsed string         `json:"model_used"`
}

// AnalyzeRequest carries the optional targeting context for a request.
type AnalyzeRequest struct {
	JobTitle        string   `json:"job_title,omitempty"`
	JobDescription  string   `json:"job_description,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty" validate:"omitempty,dive,min=1"`
	PreferredSkills []string `json:"preferred_skills,omitempty" validate:"omitempty,dive,min=1"`
	TargetYears     *int     `json:"target_years,omitempty" validate:"omitempty,gte=0,lte=60"`
}
