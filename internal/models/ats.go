package models

// FileFormatChecks scores the document container format (max 50).
// A scanned, image-only PDF overrides the subscore to 0.
type FileFormatChecks struct {
	FormatScore       float64  `json:"format_score"`
	IsPreferredFormat bool     `json:"is_preferred_format"`
	IsScannedPDF      bool     `json:"is_scanned_pdf"`
	Warnings          []string `json:"format_warnings"`
	Recommendations   []string `json:"format_recommendations"`
}

// LayoutChecks scores layout heuristics (max 50).
type LayoutChecks struct {
	LayoutScore        float64  `json:"layout_score"`
	HasMultiColumn     bool     `json:"has_multi_column"`
	ExcessiveTables    bool     `json:"excessive_tables"`
	ExcessiveImages    bool     `json:"excessive_images"`
	ExcessiveTextboxes bool     `json:"excessive_textboxes"`
	Warnings           []string `json:"layout_warnings"`
	Recommendations    []string `json:"layout_recommendations"`
}

// ContentChecks scores section presence, contact completeness and symbol
// pollution (max 70).
type ContentChecks struct {
	ContentScore        float64         `json:"content_score"`
	HasRequiredSections map[string]bool `json:"has_required_sections"`
	ContactInfoComplete bool            `json:"contact_info_complete"`
	ExcessiveSymbols    bool            `json:"excessive_symbols"`
	SymbolCount         int             `json:"symbol_count"`
	Warnings            []string        `json:"content_warnings"`
	Recommendations     []string        `json:"content_recommendations"`
}

// LengthChecks scores estimated page count against the experience-keyed
// target range (max 30).
type LengthChecks struct {
	LengthScore       float64  `json:"length_score"`
	WordCount         int      `json:"word_count"`
	EstimatedPages    float64  `json:"estimated_pages"`
	ExperienceYears   float64  `json:"experience_years"`
	RecommendedPages  int      `json:"recommended_pages"`
	LengthAppropriate bool     `json:"length_appropriate"`
	Warnings          []string `json:"length_warnings"`
	Recommendations   []string `json:"length_recommendations"`
}

// ATSScore is the normalized 0-100 score with its per-check breakdown.
type ATSScore struct {
	TotalScore      float64            `json:"total_score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	CriticalPenalty bool               `json:"critical_penalty"`
	MaxPossible     float64            `json:"max_possible_score"`
}

// ATSRecommendations buckets advice by urgency.
type ATSRecommendations struct {
	Critical       []string `json:"critical"`
	HighPriority   []string `json:"high_priority"`
	MediumPriority []string `json:"medium_priority"`
	LowPriority    []string `json:"low_priority"`
}

// ATSResult is the complete output of the ATS analyzer. It is computed
// once per request and consumed read-only by the quality scorer.
type ATSResult struct {
	FileInfo           RawDocument        `json:"file_info"`
	FileChecks         FileFormatChecks   `json:"file_format_analysis"`
	LayoutChecks       LayoutChecks       `json:"layout_analysis"`
	ContentChecks      ContentChecks      `json:"content_analysis"`
	LengthChecks       LengthChecks       `json:"length_analysis"`
	Score              ATSScore           `json:"ats_score"`
	CompatibilityLevel string             `json:"compatibility_level"`
	Recommendations    ATSRecommendations `json:"recommendations"`
	PriorityIssues     []string           `json:"priority_issues"`
}
