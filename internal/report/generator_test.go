package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmuoria/resume-insight/internal/models"
)

func newTestGenerator() *Generator {
	g := New()
	g.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	g.newID = func() string { return "req-0001" }
	return g
}

func fullInput() Input {
	return Input{
		FileInfo: models.RawDocument{
			Filename:  "resume.pdf",
			Extension: ".pdf",
			SizeMB:    0.4,
		},
		Normalized: &models.NormalizedText{
			Statistics: models.TextStatistics{
				NormalizedLength: 1800,
				NormalizedWords:  300,
				NormalizedLines:  60,
			},
		},
		Sections: &models.SectionScan{
			Structure: models.StructureAnalysis{
				TotalSections:    4,
				StructureQuality: "excellent",
			},
		},
		Data: &models.ExtractedData{
			ContactInfo: models.ContactInfo{Name: "John Smith", Email: "john@example.com"},
			Skills: models.SkillSet{
				ProgrammingLanguages: []string{"Python", "Go"},
				TotalFound:           2,
			},
		},
		ATS: &models.ATSResult{
			Score:              models.ATSScore{TotalScore: 90, Breakdown: map[string]float64{"file_format": 100}},
			CompatibilityLevel: "excellent",
			PriorityIssues:     []string{"Convert to .docx or .pdf format"},
		},
		Gap: &models.SkillsGapResult{
			Recommendations: models.GapRecommendations{
				ImmediatePriority: []string{"Add 'sql' - critical for role requirements"},
			},
		},
		Quality: &models.QualityScore{
			OverallScore: 78.5,
			QualityLevel: "good",
			Recommendations: models.QualityRecommendations{
				Critical:     []string{"Add quantifiable metrics and achievements to bullet points"},
				HighPriority: []string{"Improve sentence structure and reduce passive voice"},
			},
		},
		Enrichment: &models.EnrichmentResult{
			Success:   true,
			AIPowered: false,
			ModelUsed: "rule_based_fallback",
			Analysis:  map[string]any{"summary": "solid profile"},
		},
	}
}

func TestGenerateFullReport(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate(fullInput())

	assert.Equal(t, "req-0001", r.RequestID)
	assert.Equal(t, "2024-06-01T12:00:00Z", r.GeneratedAt)
	assert.Equal(t, "John Smith", r.ContactInfo.Name)
	assert.Equal(t, []string{"Python", "Go"}, r.Skills.ByCategory["programming_languages"])
	assert.True(t, r.Skills.GapAvailable)
	assert.True(t, r.QualityScores.Available)
	assert.Equal(t, 78.5, r.QualityScores.OverallScore)
	assert.True(t, r.ATS.Available)
	assert.Equal(t, 90.0, r.ATS.Score)
	assert.True(t, r.AIInsights.Available)
	assert.False(t, r.AIInsights.AIPowered)
	assert.Equal(t, "rule_based_fallback", r.AIInsights.ModelUsed)
	assert.Equal(t, "excellent", r.DocumentMetrics.StructureQuality)
	assert.Equal(t, 300, r.DocumentMetrics.TotalWords)
}

func TestGenerateSkippedStages(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate(Input{FileInfo: models.RawDocument{Filename: "resume.txt", Extension: ".txt"}})

	assert.False(t, r.QualityScores.Available)
	assert.False(t, r.ATS.Available)
	assert.False(t, r.Skills.GapAvailable)
	assert.False(t, r.AIInsights.Available)
	assert.Empty(t, r.Recommendations.TopActions)
	assert.Equal(t, "resume.txt", r.DocumentMetrics.Filename)
}

func TestMergeRecommendationsOrder(t *testing.T) {
	g := newTestGenerator()

	r := g.Generate(fullInput())

	// Quality critical first, then quality high, then compatibility
	// priority issues in the high bucket.
	require.Len(t, r.Recommendations.TopActions, 3)
	assert.Equal(t, "Add quantifiable metrics and achievements to bullet points", r.Recommendations.TopActions[0])
	assert.Equal(t, "Improve sentence structure and reduce passive voice", r.Recommendations.TopActions[1])
	assert.Equal(t, "Convert to .docx or .pdf format", r.Recommendations.TopActions[2])

	assert.Contains(t, r.Recommendations.MediumPriority, "Add 'sql' - critical for role requirements")
}

func TestReportJSONKeys(t *testing.T) {
	g := newTestGenerator()

	raw, err := json.Marshal(g.Generate(fullInput()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"request_id", "generated_at", "contact_info", "education", "experience",
		"skills", "projects", "certifications", "role_inference", "quality_scores",
		"ats_compatibility", "recommendations", "document_metrics", "ai_insights",
	} {
		assert.Contains(t, decoded, key)
	}
}
