package models

// RawDocument describes the byte-level source of one analysis request.
// It is produced by the ingestion decoder and never mutated afterwards.
type RawDocument struct {
	Filename       string  `json:"filename"`
	Extension      string  `json:"extension"`
	SizeBytes      int64   `json:"size_bytes"`
	SizeMB         float64 `json:"size_mb"`
	PageCount      int     `json:"page_count,omitempty"`
	ParagraphCount int     `json:"paragraph_count,omitempty"`
}

// TextMetadata carries extraction metadata alongside the raw text.
type TextMetadata struct {
	Method         string `json:"method,omitempty"`
	PageCount      int    `json:"page_count,omitempty"`
	ParagraphCount int    `json:"paragraph_count,omitempty"`
	CharCount      int    `json:"char_count"`
}

// ExtractedText is the contract between the document decoder and the
// analysis pipeline. Success=false or empty Text is a terminal failure
// for the request.
type ExtractedText struct {
	Success   bool         `json:"success"`
	Text      string       `json:"text"`
	Metadata  TextMetadata `json:"metadata"`
	IsScanned bool         `json:"is_scanned"`
	Error     string       `json:"error,omitempty"`
}
