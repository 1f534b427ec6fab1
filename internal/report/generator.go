// Package report assembles the outputs of every pipeline stage into
// the stable consumer-facing feedback report. The report schema never
// exposes stage internals; skipped stages surface as available=false
// rather than missing keys.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/fmuoria/resume-insight/internal/models"
)

const maxTopActions = 3

// Input gathers the stage outputs for one request. Nil pointers mark
// stages that were skipped.
type Input struct {
	FileInfo   models.RawDocument
	IsScanned  bool
	Normalized *models.NormalizedText
	Sections   *models.SectionScan
	Data       *models.ExtractedData
	ATS        *models.ATSResult
	Gap        *models.SkillsGapResult
	Quality    *models.QualityScore
	Enrichment *models.EnrichmentResult
}

// Generator builds feedback reports.
type Generator struct {
	now   func() time.Time
	newID func() string
}

// New creates a report generator.
func New() *Generator {
	return &Generator{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Generate reshapes the stage outputs into the report schema.
func (g *Generator) Generate(in Input) models.FeedbackReport {
	report := models.FeedbackReport{
		RequestID:       g.newID(),
		GeneratedAt:     g.now().UTC().Format(time.RFC3339),
		DocumentMetrics: g.documentMetrics(in),
		Recommendations: g.mergeRecommendations(in),
		AIInsights:      aiInsights(in.Enrichment),
	}

	if in.Data != nil {
		report.ContactInfo = in.Data.ContactInfo
		report.Education = in.Data.Education.Degrees
		report.Experience = in.Data.Experience.Positions
		report.Projects = in.Data.Projects.Projects
		report.Certifications = in.Data.Certifications.Certifications
		report.RoleInference = in.Data.RoleInference
		report.Skills = models.SkillsReport{
			ByCategory: map[string][]string{
				"programming_languages": in.Data.Skills.ProgrammingLanguages,
				"web_technologies":      in.Data.Skills.WebTechnologies,
				"databases":             in.Data.Skills.Databases,
				"cloud_platforms":       in.Data.Skills.CloudPlatforms,
				"tools_frameworks":      in.Data.Skills.ToolsFrameworks,
				"soft_skills":           in.Data.Skills.SoftSkills,
			},
			MatchedSkills: in.Data.Skills.MatchedSkills,
			TotalFound:    in.Data.Skills.TotalFound,
		}
	}
	report.Skills.GapAvailable = in.Gap != nil
	report.Skills.Gap = in.Gap

	if in.Quality != nil {
		report.QualityScores = models.QualityScores{
			Available:       true,
			OverallScore:    in.Quality.OverallScore,
			QualityLevel:    in.Quality.QualityLevel,
			Breakdown:       in.Quality.Breakdown,
			Recommendations: in.Quality.Recommendations,
		}
	}

	if in.ATS != nil {
		report.ATS = models.ATSCompatibility{
			Available:          true,
			Score:              in.ATS.Score.TotalScore,
			CompatibilityLevel: in.ATS.CompatibilityLevel,
			Breakdown:          in.ATS.Score.Breakdown,
			PriorityIssues:     in.ATS.PriorityIssues,
			Recommendations:    in.ATS.Recommendations,
		}
	}

	return report
}

func (g *Generator) documentMetrics(in Input) models.DocumentMetrics {
	metrics := models.DocumentMetrics{
		Filename:  in.FileInfo.Filename,
		Extension: in.FileInfo.Extension,
		SizeMB:    in.FileInfo.SizeMB,
		IsScanned: in.IsScanned,
	}
	if in.Normalized != nil {
		metrics.TotalCharacters = in.Normalized.Statistics.NormalizedLength
		metrics.TotalWords = in.Normalized.Statistics.NormalizedWords
		metrics.TotalLines = in.Normalized.Statistics.NormalizedLines
	}
	if in.Sections != nil {
		metrics.SectionsDetected = in.Sections.Structure.TotalSections
		metrics.StructureQuality = in.Sections.Structure.StructureQuality
	}
	return metrics
}

// mergeRecommendations folds the per-stage advice into one set of
// buckets. Compatibility priority issues join the high bucket and gap
// priorities the medium bucket; top actions take the first three
// entries in critical, high, medium order.
func (g *Generator) mergeRecommendations(in Input) models.ReportRecommendations {
	recs := models.ReportRecommendations{}

	if in.Quality != nil {
		recs.Critical = append(recs.Critical, in.Quality.Recommendations.Critical...)
		recs.HighPriority = append(recs.HighPriority, in.Quality.Recommendations.HighPriority...)
		recs.MediumPriority = append(recs.MediumPriority, in.Quality.Recommendations.MediumPriority...)
		recs.LowPriority = append(recs.LowPriority, in.Quality.Recommendations.LowPriority...)
	}
	if in.ATS != nil {
		recs.HighPriority = append(recs.HighPriority, in.ATS.PriorityIssues...)
	}
	if in.Gap != nil {
		recs.MediumPriority = append(recs.MediumPriority, in.Gap.Recommendations.ImmediatePriority...)
	}

	for _, bucket := range [][]string{recs.Critical, recs.HighPriority, recs.MediumPriority} {
		for _, rec := range bucket {
			if len(recs.TopActions) == maxTopActions {
				return recs
			}
			recs.TopActions = append(recs.TopActions, rec)
		}
	}
	return recs
}

func aiInsights(enrichment *models.EnrichmentResult) models.AIInsights {
	if enrichment == nil {
		return models.AIInsights{}
	}
	return models.AIInsights{
		Available: true,
		AIPowered: enrichment.AIPowered,
		ModelUsed: enrichment.ModelUsed,
		Analysis:  enrichment.Analysis,
	}
}
