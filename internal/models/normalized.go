package models

// Section is one labeled region of the normalized text. Ranges are
// zero-based line indices into the normalized text and never overlap.
type Section struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
	WordCount int    `json:"word_count"`
	LineCount int    `json:"line_count"`
}

// BulletPoint is a single bullet line with its marker style. LineNumber
// is one-based, matching how reports reference resume lines.
type BulletPoint struct {
	LineNumber int    `json:"line_number"`
	FullLine   string `json:"full_line"`
	Content    string `json:"content"`
	Style      string `json:"bullet_type"`
	WordCount  int    `json:"word_count"`
	CharCount  int    `json:"char_count"`
}

// TextStatistics summarizes the normalization pass.
type TextStatistics struct {
	OriginalLength   int      `json:"original_length"`
	NormalizedLength int      `json:"normalized_length"`
	CompressionRatio float64  `json:"compression_ratio"`
	OriginalLines    int      `json:"original_lines"`
	NormalizedLines  int      `json:"normalized_lines"`
	OriginalWords    int      `json:"original_words"`
	NormalizedWords  int      `json:"normalized_words"`
	SectionsFound    int      `json:"sections_found"`
	BulletsFound     int      `json:"bullet_points_found"`
	BulletStyles     []string `json:"bullet_types"`
	AvgSectionLength float64  `json:"avg_section_length"`
	AvgBulletLength  float64  `json:"avg_bullet_length"`
}

// NormalizedText is the output of the text normalizer. Operations is a
// trace of which cleaning transformations fired, in order.
type NormalizedText struct {
	Original   string         `json:"original"`
	Normalized string         `json:"normalized"`
	Lowercase  string         `json:"lowercase_copy"`
	Sections   []Section      `json:"sections"`
	Bullets    []BulletPoint  `json:"bullet_points"`
	Statistics TextStatistics `json:"statistics"`
	Operations []string       `json:"cleaning_operations"`
}
