// Package ats scores resumes for applicant tracking system
// compatibility. Four independent subchecks (file format, layout,
// content, length) are summed, penalized for scanned documents and
// normalized to a 0-100 score.
package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/fmuoria/resume-insight/internal/models"
)

// Compatibility levels, best to worst.
const (
	LevelExcellent      = "excellent"
	LevelGood           = "good"
	LevelFair           = "fair"
	LevelPoor           = "poor"
	LevelCriticalIssues = "critical_issues"
)

// Subscore caps.
const (
	maxFileScore    = 50.0
	maxLayoutScore  = 50.0
	maxContentScore = 70.0
	maxLengthScore  = 30.0
)

// Thresholds collects the tunable heuristics so score calibration does
// not require touching the checks themselves.
type Thresholds struct {
	// MultiColumnCV is the minimum coefficient of variation in line
	// lengths before a layout is considered multi-column.
	MultiColumnCV float64
	// MultiColumnTransitionRatio is the minimum fraction of short/long
	// transitions across the sampled lines.
	MultiColumnTransitionRatio float64
	// MaxTables, MaxImages and MaxTextboxes are the element counts
	// tolerated before the layout check flags them.
	MaxTables    int
	MaxImages    int
	MaxTextboxes int
	// MaxSymbols is how many decorative symbols are tolerated before
	// the content check flags symbol pollution.
	MaxSymbols int
	// WordsPerPage converts word count to an estimated page count.
	WordsPerPage float64
	// ScannedPenalty is subtracted from the raw total when the source
	// document is a scanned, image-only PDF.
	ScannedPenalty float64
	// MaxRawScore is the normalization denominator for the raw total.
	MaxRawScore float64
}

// DefaultThresholds returns the calibrated values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MultiColumnCV:              0.5,
		MultiColumnTransitionRatio: 0.3,
		MaxTables:                  3,
		MaxImages:                  2,
		MaxTextboxes:               2,
		MaxSymbols:                 5,
		WordsPerPage:               275,
		ScannedPenalty:             50,
		MaxRawScore:                200,
	}
}

// ElementCounts carries layout element counts measured by the document
// decoder. Zero values mean none were detected.
type ElementCounts struct {
	Tables    int
	Images    int
	Textboxes int
}

// Input is everything the analyzer needs for one document.
type Input struct {
	FileInfo  models.RawDocument
	Text      string
	Data      *models.ExtractedData
	IsScanned bool
	Elements  ElementCounts
}

// problematicSymbols confuse ATS parsers when used as decoration.
var problematicSymbols = []string{
	"★", "☆", "●", "◆", "▲", "▼", "♦", "♠", "♥", "♣", "✓", "✗", "→", "←", "↑", "↓",
}

// sectionKeywords drive the required-section heading scan. This list is
// looser than the section detector's since ATS systems accept many
// heading spellings.
var sectionKeywords = map[string][]string{
	"experience": {"experience", "work", "employment", "professional", "career", "history"},
	"education":  {"education", "academic", "university", "college", "degree", "school"},
	"skills":     {"skills", "technical", "technologies", "tools", "programming", "competencies"},
	"contact":    {"contact", "phone", "email", "address", "linkedin", "github"},
}

var requiredSections = []string{"experience", "education", "skills"}

var wordPattern = regexp.MustCompile(`\w+`)

// Analyzer scores documents for ATS compatibility.
type Analyzer struct {
	thresholds Thresholds
}

// New creates an analyzer with the given thresholds.
func New(thresholds Thresholds) *Analyzer {
	return &Analyzer{thresholds: thresholds}
}

// Analyze runs all four subchecks and assembles the scored result.
func (a *Analyzer) Analyze(in Input) models.ATSResult {
	fileChecks := a.checkFileFormat(in)
	layout := a.analyzeLayout(in)
	content := a.validateContent(in)
	length := a.analyzeLength(in)
	score := a.calculateScore(fileChecks, layout, content, length)

	return models.ATSResult{
		FileInfo:           in.FileInfo,
		FileChecks:         fileChecks,
		LayoutChecks:       layout,
		ContentChecks:      content,
		LengthChecks:       length,
		Score:              score,
		CompatibilityLevel: compatibilityLevel(score.TotalScore),
		Recommendations:    buildRecommendations(fileChecks, layout, content, length),
		PriorityIssues:     priorityIssues(fileChecks, layout, content, length),
	}
}

func (a *Analyzer) checkFileFormat(in Input) models.FileFormatChecks {
	checks := models.FileFormatChecks{}
	ext := strings.ToLower(in.FileInfo.Extension)

	switch ext {
	case ".pdf", ".docx":
		checks.IsPreferredFormat = true
		checks.FormatScore += 25
	case ".doc":
		checks.IsPreferredFormat = true
		checks.FormatScore += 20
		checks.Warnings = append(checks.Warnings, "DOC format is older - DOCX is preferred")
		checks.Recommendations = append(checks.Recommendations, "Convert to DOCX format for better compatibility")
	default:
		checks.Warnings = append(checks.Warnings, fmt.Sprintf("Format %s is not ATS-friendly", ext))
		checks.Recommendations = append(checks.Recommendations, "Convert to PDF or DOCX format")
	}

	if ext == ".pdf" {
		checks.IsScannedPDF = in.IsScanned
		if in.IsScanned {
			checks.FormatScore = 0
			checks.Warnings = append(checks.Warnings, "CRITICAL: Scanned PDF detected - no searchable text")
			checks.Recommendations = append(checks.Recommendations, "Convert scanned PDF to text-based PDF or DOCX")
		} else {
			checks.FormatScore += 25
		}
	}
	return checks
}

func (a *Analyzer) analyzeLayout(in Input) models.LayoutChecks {
	checks := models.LayoutChecks{}
	ext := strings.ToLower(in.FileInfo.Extension)

	checks.HasMultiColumn = a.detectMultiColumn(in.Text)
	if checks.HasMultiColumn {
		checks.Warnings = append(checks.Warnings, "Multi-column layout detected - may cause reading issues")
		checks.Recommendations = append(checks.Recommendations, "Consider single-column layout for better ATS parsing")
	} else {
		checks.LayoutScore += 20
	}

	switch ext {
	case ".pdf":
		if in.Elements.Tables > a.thresholds.MaxTables {
			checks.ExcessiveTables = true
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Many tables detected (%d) - may confuse ATS", in.Elements.Tables))
			checks.Recommendations = append(checks.Recommendations, "Reduce table usage, use simple formatting instead")
		} else {
			checks.LayoutScore += 15
		}

		if in.Elements.Images > a.thresholds.MaxImages {
			checks.ExcessiveImages = true
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Multiple images detected (%d) - ATS cannot read images", in.Elements.Images))
			checks.Recommendations = append(checks.Recommendations, "Remove non-essential images, keep only professional photo if needed")
		} else {
			checks.LayoutScore += 15
		}
	case ".docx":
		if in.Elements.Textboxes > a.thresholds.MaxTextboxes {
			checks.ExcessiveTextboxes = true
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Text boxes detected (%d) - ATS may skip content", in.Elements.Textboxes))
			checks.Recommendations = append(checks.Recommendations, "Replace text boxes with regular paragraph text")
		} else {
			checks.LayoutScore += 20
		}
	}
	return checks
}

// detectMultiColumn flags layouts where line lengths split into two
// populations with frequent short/long alternation.
func (a *Analyzer) detectMultiColumn(text string) bool {
	var lengths []int
	for _, line := range strings.Split(text, "\n") {
		if clean := strings.TrimSpace(line); len(clean) > 10 {
			lengths = append(lengths, len(clean))
		}
	}
	if len(lengths) <= 20 {
		return false
	}

	mean := 0.0
	for _, l := range lengths {
		mean += float64(l)
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return false
	}

	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	variance /= float64(len(lengths) - 1)
	cv := math.Sqrt(variance) / mean

	sample := lengths
	if len(sample) > 50 {
		sample = sample[:50]
	}
	transitions := 0
	for i := 1; i < len(sample); i++ {
		prevShort := float64(sample[i-1]) < mean*0.7
		curShort := float64(sample[i]) < mean*0.7
		if prevShort != curShort {
			transitions++
		}
	}

	return cv > a.thresholds.MultiColumnCV &&
		float64(transitions) > float64(len(sample))*a.thresholds.MultiColumnTransitionRatio
}

func (a *Analyzer) validateContent(in Input) models.ContentChecks {
	checks := models.ContentChecks{
		HasRequiredSections: scanSectionHeadings(in.Text),
	}

	found := 0
	for _, section := range requiredSections {
		if checks.HasRequiredSections[section] {
			found++
		} else {
			title := capitalize(section)
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Missing %s section heading", title))
			checks.Recommendations = append(checks.Recommendations, fmt.Sprintf("Add clear '%s' section heading", title))
		}
	}
	checks.ContentScore += float64(found) / float64(len(requiredSections)) * 30

	checks.ContactInfoComplete = contactComplete(in.Data)
	if checks.ContactInfoComplete {
		checks.ContentScore += 25
	} else {
		checks.Warnings = append(checks.Warnings, "Incomplete contact information")
		checks.Recommendations = append(checks.Recommendations, "Ensure name, email, and phone number are clearly visible")
	}

	checks.SymbolCount = countSymbols(in.Text)
	if checks.SymbolCount > a.thresholds.MaxSymbols {
		checks.ExcessiveSymbols = true
		checks.Warnings = append(checks.Warnings, fmt.Sprintf("Excessive special symbols found (%d instances)", checks.SymbolCount))
		checks.Recommendations = append(checks.Recommendations, "Replace special symbols with standard text formatting")
	} else {
		checks.ContentScore += 15
	}
	return checks
}

// scanSectionHeadings looks for short, standalone lines carrying one of
// the heading keywords for each required section.
func scanSectionHeadings(text string) map[string]bool {
	lines := strings.Split(text, "\n")
	results := make(map[string]bool, len(sectionKeywords))

	for section, keywords := range sectionKeywords {
		found := false
		for _, line := range lines {
			clean := strings.ToLower(strings.TrimSpace(line))
			// Headings are short standalone lines.
			if len(clean) >= 30 {
				continue
			}
			for _, kw := range keywords {
				if clean == kw || strings.HasPrefix(clean, kw) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		results[section] = found
	}
	return results
}

func contactComplete(data *models.ExtractedData) bool {
	if data == nil {
		return false
	}
	c := data.ContactInfo
	return c.Name != "" && (c.Email != "" || c.Phone != "")
}

func countSymbols(text string) int {
	count := 0
	for _, symbol := range problematicSymbols {
		count += strings.Count(text, symbol)
	}
	return count
}

func (a *Analyzer) analyzeLength(in Input) models.LengthChecks {
	checks := models.LengthChecks{
		WordCount: len(wordPattern.FindAllString(in.Text, -1)),
	}
	checks.EstimatedPages = round1(float64(checks.WordCount) / a.thresholds.WordsPerPage)

	if in.Data != nil {
		checks.ExperienceYears = in.Data.Experience.TotalYears
	}

	switch {
	case checks.ExperienceYears <= 3:
		checks.RecommendedPages = 1
		if checks.EstimatedPages <= 1.2 {
			checks.LengthAppropriate = true
			checks.LengthScore = maxLengthScore
		} else {
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Resume is too long (%.1f pages) for %.0f years experience", checks.EstimatedPages, checks.ExperienceYears))
			checks.Recommendations = append(checks.Recommendations, "Reduce to 1 page by focusing on most relevant experience")
		}
	case checks.ExperienceYears <= 7:
		checks.RecommendedPages = 2
		switch {
		case checks.EstimatedPages >= 0.8 && checks.EstimatedPages <= 2.2:
			checks.LengthAppropriate = true
			checks.LengthScore = maxLengthScore
		case checks.EstimatedPages < 0.8:
			checks.Warnings = append(checks.Warnings, "Resume may be too short - consider adding more details")
			checks.Recommendations = append(checks.Recommendations, "Add more details about achievements and responsibilities")
		default:
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Resume is too long (%.1f pages)", checks.EstimatedPages))
			checks.Recommendations = append(checks.Recommendations, "Reduce to 2 pages maximum")
		}
	default:
		checks.RecommendedPages = 2
		switch {
		case checks.EstimatedPages >= 1.5 && checks.EstimatedPages <= 2.2:
			checks.LengthAppropriate = true
			checks.LengthScore = maxLengthScore
		case checks.EstimatedPages < 1.5:
			checks.Warnings = append(checks.Warnings, "Resume may be too short for senior experience level")
			checks.Recommendations = append(checks.Recommendations, "Include more leadership and strategic accomplishments")
		default:
			checks.Warnings = append(checks.Warnings, fmt.Sprintf("Resume is too long (%.1f pages)", checks.EstimatedPages))
			checks.Recommendations = append(checks.Recommendations, "Focus on most recent and relevant 10-15 years of experience")
		}
	}
	return checks
}

func (a *Analyzer) calculateScore(file models.FileFormatChecks, layout models.LayoutChecks, content models.ContentChecks, length models.LengthChecks) models.ATSScore {
	penalty := 0.0
	if file.IsScannedPDF {
		penalty = a.thresholds.ScannedPenalty
	}

	total := file.FormatScore + layout.LayoutScore + content.ContentScore + length.LengthScore - penalty
	if total < 0 {
		total = 0
	}
	percentage := total / a.thresholds.MaxRawScore * 100
	if percentage > 100 {
		percentage = 100
	}

	return models.ATSScore{
		TotalScore: round1(percentage),
		Breakdown: map[string]float64{
			"file_format": round1(file.FormatScore / maxFileScore * 100),
			"layout":      round1(layout.LayoutScore / maxLayoutScore * 100),
			"content":     round1(content.ContentScore / maxContentScore * 100),
			"length":      round1(length.LengthScore / maxLengthScore * 100),
		},
		CriticalPenalty: penalty > 0,
		MaxPossible:     100,
	}
}

func compatibilityLevel(score float64) string {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 55:
		return LevelFair
	case score >= 40:
		return LevelPoor
	default:
		return LevelCriticalIssues
	}
}

func buildRecommendations(file models.FileFormatChecks, layout models.LayoutChecks, content models.ContentChecks, length models.LengthChecks) models.ATSRecommendations {
	recs := models.ATSRecommendations{}

	if file.IsScannedPDF {
		recs.Critical = append(recs.Critical, "Convert scanned PDF to searchable text format immediately")
	}
	if !file.IsPreferredFormat {
		recs.Critical = append(recs.Critical, "Convert document to PDF or DOCX format")
	}
	if !content.ContactInfoComplete {
		recs.Critical = append(recs.Critical, "Add complete contact information (name, email, phone)")
	}

	for _, section := range requiredSections {
		if !content.HasRequiredSections[section] {
			recs.HighPriority = append(recs.HighPriority, fmt.Sprintf("Add clear '%s' section heading", capitalize(section)))
		}
	}
	if layout.HasMultiColumn {
		recs.HighPriority = append(recs.HighPriority, "Convert to single-column layout for better ATS parsing")
	}
	if !length.LengthAppropriate {
		recs.HighPriority = append(recs.HighPriority, length.Recommendations...)
	}

	if layout.ExcessiveTables {
		recs.MediumPriority = append(recs.MediumPriority, "Reduce table usage, use simple formatting instead")
	}
	if layout.ExcessiveTextboxes {
		recs.MediumPriority = append(recs.MediumPriority, "Replace text boxes with regular paragraph text")
	}
	if content.ExcessiveSymbols {
		recs.MediumPriority = append(recs.MediumPriority, "Replace special symbols with standard formatting")
	}

	if layout.ExcessiveImages {
		recs.LowPriority = append(recs.LowPriority, "Remove non-essential images")
	}
	recs.LowPriority = append(recs.LowPriority,
		"Use standard fonts (Arial, Calibri, Times New Roman)",
		"Ensure consistent formatting throughout document",
		"Use bullet points for lists instead of special characters",
	)
	return recs
}

func priorityIssues(file models.FileFormatChecks, layout models.LayoutChecks, content models.ContentChecks, length models.LengthChecks) []string {
	var issues []string

	if file.IsScannedPDF {
		issues = append(issues, "Scanned PDF detected - no searchable text")
	}
	if !file.IsPreferredFormat {
		issues = append(issues, "Non-standard file format")
	}
	if !content.ContactInfoComplete {
		issues = append(issues, "Incomplete contact information")
	}

	var missing []string
	for _, section := range requiredSections {
		if !content.HasRequiredSections[section] {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, "Missing sections: "+strings.Join(missing, ", "))
	}

	if layout.HasMultiColumn {
		issues = append(issues, "Multi-column layout detected")
	}
	if !length.LengthAppropriate {
		issues = append(issues, "Inappropriate document length")
	}
	return issues
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
