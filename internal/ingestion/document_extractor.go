package ingestion

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/fmuoria/resume-insight/internal/models"
)

const (
	// BinarySampleSize is the number of bytes to sample for binary detection
	BinarySampleSize = 1000
	// BinaryThreshold is the proportion of non-printable characters that indicates binary data
	BinaryThreshold = 0.3
	// ScannedCharsPerPage is the average extractable characters per page
	// below which a PDF is treated as scanned
	ScannedCharsPerPage = 100
	// ScannedSamplePages is how many leading pages the scanned check samples
	ScannedSamplePages = 3
)

// ErrUnsupportedType marks a file extension the decoder cannot handle.
var ErrUnsupportedType = errors.New("unsupported file type")

var (
	docxTagPattern     = regexp.MustCompile(`<[^>]+>`)
	docxEntityReplacer = strings.NewReplacer(
		"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'",
	)
)

// Document pairs the byte-level file description with the decoded text.
type Document struct {
	Info models.RawDocument
	Text models.ExtractedText
}

// Extractor decodes PDF, DOCX and plain-text files into the pipeline's
// text contract.
type Extractor struct{}

// NewExtractor creates a document extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decodes the file at path. It returns an error only for
// file-level problems (missing file, unsupported extension); decode
// failures are reported inside the ExtractedText contract.
func (e *Extractor) Extract(path string) (Document, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to stat file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	doc := Document{
		Info: models.RawDocument{
			Filename:  filepath.Base(path),
			Extension: ext,
			SizeBytes: stat.Size(),
			SizeMB:    round2(float64(stat.Size()) / (1024 * 1024)),
		},
	}

	switch ext {
	case ".txt":
		doc.Text = e.extractPlainText(path)
	case ".pdf":
		var pageCount int
		doc.Text, pageCount = e.extractPDF(path)
		doc.Info.PageCount = pageCount
	case ".docx":
		var paragraphCount int
		doc.Text, paragraphCount = e.extractDOCX(path)
		doc.Info.ParagraphCount = paragraphCount
	default:
		return doc, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	doc.Text.Metadata.CharCount = len(doc.Text.Text)
	doc.Text.Metadata.PageCount = doc.Info.PageCount
	doc.Text.Metadata.ParagraphCount = doc.Info.ParagraphCount

	if doc.Text.Success && strings.TrimSpace(doc.Text.Text) == "" && !doc.Text.IsScanned {
		doc.Text.Success = false
		doc.Text.Error = "no extractable text found"
	}
	return doc, nil
}

func (e *Extractor) extractPlainText(path string) models.ExtractedText {
	content, err := os.ReadFile(path)
	if err != nil {
		return failedText("plain_text", fmt.Sprintf("failed to read file: %v", err))
	}

	text := string(content)
	if IsBinaryData(text) {
		return failedText("plain_text", "file content appears to be binary")
	}

	return models.ExtractedText{
		Success:  true,
		Text:     text,
		Metadata: models.TextMetadata{Method: "plain_text"},
	}
}

// extractPDF concatenates per-page plain text. The scanned heuristic
// averages extractable characters over the first ScannedSamplePages
// pages.
func (e *Extractor) extractPDF(path string) (models.ExtractedText, int) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return failedText("ledongthuc/pdf", fmt.Sprintf("failed to open PDF: %v", err)), 0
	}
	defer file.Close()

	pageCount := reader.NumPage()

	var sb strings.Builder
	sampleChars := 0
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
		if i <= ScannedSamplePages {
			sampleChars += len(strings.TrimSpace(pageText))
		}
	}

	isScanned := false
	if pageCount > 0 {
		sampled := pageCount
		if sampled > ScannedSamplePages {
			sampled = ScannedSamplePages
		}
		isScanned = float64(sampleChars)/float64(sampled) < ScannedCharsPerPage
	}

	text := models.ExtractedText{
		Success:   true,
		Text:      sb.String(),
		Metadata:  models.TextMetadata{Method: "ledongthuc/pdf"},
		IsScanned: isScanned,
	}
	if isScanned {
		text.Error = "document appears to be scanned - OCR may be needed"
	}
	return text, pageCount
}

func (e *Extractor) extractDOCX(path string) (models.ExtractedText, int) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return failedText("nguyenthenguyen/docx", fmt.Sprintf("failed to open DOCX: %v", err)), 0
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	paragraphCount := strings.Count(content, "</w:p>")

	return models.ExtractedText{
		Success:  true,
		Text:     stripDocxMarkup(content),
		Metadata: models.TextMetadata{Method: "nguyenthenguyen/docx"},
	}, paragraphCount
}

// stripDocxMarkup converts the document XML into plain text: paragraph
// closes become newlines, remaining tags are dropped, entities are
// unescaped.
func stripDocxMarkup(content string) string {
	text := strings.ReplaceAll(content, "</w:p>", "\n")
	text = docxTagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(docxEntityReplacer.Replace(text))
}

// IsBinaryData checks if content appears to be binary (PDF/ZIP markers)
func IsBinaryData(content string) bool {
	if len(content) == 0 {
		return false
	}

	// PDF magic number
	if strings.HasPrefix(content, "%PDF-") {
		return true
	}

	// ZIP magic number (DOCX files)
	if len(content) >= 2 && content[:2] == "PK" {
		return true
	}

	// High proportion of non-printable characters
	sampleSize := min(BinarySampleSize, len(content))
	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := content[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(sampleSize) > BinaryThreshold
}

func failedText(method, msg string) models.ExtractedText {
	return models.ExtractedText{
		Metadata: models.TextMetadata{Method: method},
		Error:    msg,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
