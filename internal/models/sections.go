package models

// DetectedSection is one section found by the pattern-library detector.
// Confidence starts at a 0.7 base and grows with domain keywords.
type DetectedSection struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	StartLine     int      `json:"start_line"`
	EndLine       int      `json:"end_line"`
	Confidence    float64  `json:"confidence"`
	KeywordsFound []string `json:"keywords_found"`
	WordCount     int      `json:"word_count"`
}

// StructureAnalysis grades the overall layout of the resume.
type StructureAnalysis struct {
	TotalSections    int      `json:"total_sections"`
	SectionsFound    []string `json:"sections_found"`
	HasContact       bool     `json:"has_contact"`
	HasExperience    bool     `json:"has_experience"`
	HasEducation     bool     `json:"has_education"`
	HasSkills        bool     `json:"has_skills"`
	AvgConfidence    float64  `json:"avg_confidence"`
	StructureQuality string   `json:"structure_quality"`
	Recommendations  []string `json:"recommendations"`
}

// SectionScan is the full output of the section detector.
type SectionScan struct {
	Sections    []DetectedSection `json:"sections"`
	ContactInfo map[string]string `json:"contact_info"`
	Structure   StructureAnalysis `json:"structure_analysis"`
}
