// Package export renders a feedback report as an XLSX workbook.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fmuoria/resume-insight/internal/models"
)

// ExportToExcel writes the feedback report to an Excel workbook with
// summary, score-breakdown and recommendations sheets.
func ExportToExcel(report models.FeedbackReport, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	breakdownSheet := "Score Breakdown"
	recommendationsSheet := "Recommendations"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(breakdownSheet)
	f.NewSheet(recommendationsSheet)

	if err := createSummarySheet(f, summarySheet, report); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createBreakdownSheet(f, breakdownSheet, report); err != nil {
		return fmt.Errorf("failed to create score breakdown sheet: %w", err)
	}
	if err := createRecommendationsSheet(f, recommendationsSheet, report); err != nil {
		return fmt.Errorf("failed to create recommendations sheet: %w", err)
	}

	// Try to save the file directly
	if err := f.SaveAs(outputPath); err != nil {
		// If direct save fails, try buffer write fallback
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}
		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), file write failed: %w", err, fileErr)
		}
	}

	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func labelStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
}

// scoreFill returns the fill color for a percentage on the usual
// green/yellow/pink/red ladder.
func scoreFill(percentage float64) string {
	switch {
	case percentage >= 85:
		return "C6EFCE"
	case percentage >= 70:
		return "FFEB9C"
	case percentage >= 50:
		return "FFC7CE"
	default:
		return "FF9999"
	}
}

// createSummarySheet lays out the headline result and document metrics
func createSummarySheet(f *excelize.File, sheetName string, report models.FeedbackReport) error {
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 55)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	label, err := labelStyle(f)
	if err != nil {
		return err
	}

	row := 1
	section := func(title string) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), title)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
		row++
	}
	pair := func(key string, value any) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), key)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	section("Resume Feedback Report")
	pair("Request ID:", report.RequestID)
	pair("Generated:", report.GeneratedAt)
	pair("File:", report.DocumentMetrics.Filename)
	row++

	section("Candidate")
	pair("Name:", report.ContactInfo.Name)
	pair("Email:", report.ContactInfo.Email)
	pair("Inferred Role:", report.RoleInference.PrimaryRole)
	pair("Skills Found:", report.Skills.TotalFound)
	row++

	section("Scores")
	if report.QualityScores.Available {
		pair("Overall Quality:", fmt.Sprintf("%.1f / 100 (%s)", report.QualityScores.OverallScore, report.QualityScores.QualityLevel))
	} else {
		pair("Overall Quality:", "not available")
	}
	if report.ATS.Available {
		pair("ATS Compatibility:", fmt.Sprintf("%.1f / 100 (%s)", report.ATS.Score, report.ATS.CompatibilityLevel))
	} else {
		pair("ATS Compatibility:", "not available")
	}
	if report.Skills.GapAvailable && report.Skills.Gap != nil {
		pair("Skills Coverage:", fmt.Sprintf("%.1f%% (%s)", report.Skills.Gap.Coverage.OverallCoveragePercent, report.Skills.Gap.GapScore.Level))
	}
	row++

	section("Document")
	pair("Size (MB):", report.DocumentMetrics.SizeMB)
	pair("Words:", report.DocumentMetrics.TotalWords)
	pair("Lines:", report.DocumentMetrics.TotalLines)
	pair("Sections Detected:", report.DocumentMetrics.SectionsDetected)
	pair("Structure Quality:", report.DocumentMetrics.StructureQuality)
	pair("Scanned:", report.DocumentMetrics.IsScanned)

	return nil
}

// createBreakdownSheet tabulates the four rubric categories and the
// ATS check breakdown with color-coded rows.
func createBreakdownSheet(f *excelize.File, sheetName string, report models.FeedbackReport) error {
	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "D", 14)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := []string{"Category", "Score", "Max", "Percentage"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	row := 2
	writeCategory := func(name string, c models.CategoryScore) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), c.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), c.MaxPossible)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("%.1f%%", c.Percentage))

		style, styleErr := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{scoreFill(c.Percentage)}, Pattern: 1},
		})
		if styleErr == nil {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), style)
		}
		row++
	}

	if report.QualityScores.Available {
		b := report.QualityScores.Breakdown
		writeCategory("Content Fit", b.ContentFit)
		writeCategory("Clarity & Quantification", b.ClarityQuantification)
		writeCategory("Structure & Readability", b.StructureReadability)
		writeCategory("ATS Friendliness", b.ATSFriendliness)
	}

	if report.ATS.Available {
		row++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "ATS Checks")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), header)
		f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row))
		row++

		for _, check := range sortedKeys(report.ATS.Breakdown) {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), check)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), report.ATS.Breakdown[check])
			row++
		}
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

// createRecommendationsSheet lists all merged recommendations by
// priority bucket.
func createRecommendationsSheet(f *excelize.File, sheetName string, report models.FeedbackReport) error {
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 90)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	headers := []string{"Priority", "Recommendation"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	row := 2
	writeBucket := func(priority string, items []string) {
		for _, item := range items {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), priority)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item)
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), wrapStyle)
			row++
		}
	}

	recs := report.Recommendations
	writeBucket("Top Action", recs.TopActions)
	writeBucket("Critical", recs.Critical)
	writeBucket("High", recs.HighPriority)
	writeBucket("Medium", recs.MediumPriority)
	writeBucket("Low", recs.LowPriority)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
