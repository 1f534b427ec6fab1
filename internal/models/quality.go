package models

// CategoryScore is one rubric category with its cap and detail payload.
// Each category is a pure function of its declared inputs and can be
// recomputed independently.
type CategoryScore struct {
	Score       float64        `json:"score"`
	MaxPossible float64        `json:"max_possible"`
	Percentage  float64        `json:"percentage"`
	Details     map[string]any `json:"details"`
}

// ScoreBreakdown holds the four weighted rubric categories.
type ScoreBreakdown struct {
	ContentFit            CategoryScore `json:"content_fit"`
	ClarityQuantification CategoryScore `json:"clarity_quantification"`
	StructureReadability  CategoryScore `json:"structure_readability"`
	ATSFriendliness       CategoryScore `json:"ats_friendliness"`
}

// QualityRecommendations buckets improvement advice by urgency, using
// fixed percentage-of-max thresholds per category.
type QualityRecommendations struct {
	Critical       []string `json:"critical"`
	HighPriority   []string `json:"high_priority"`
	MediumPriority []string `json:"medium_priority"`
	LowPriority    []string `json:"low_priority"`
}

// QualityScore is the 0-100 rubric result. OverallScore always equals
// the sum of the four category scores.
type QualityScore struct {
	OverallScore    float64                `json:"overall_score"`
	QualityLevel    string                 `json:"quality_level"`
	Breakdown       ScoreBreakdown         `json:"score_breakdown"`
	Recommendations QualityRecommendations `json:"recommendations"`
}
