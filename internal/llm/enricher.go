// Package llm enriches the deterministic pipeline output with a
// generative analysis. Every failure path degrades to a rule-based
// analysis with the same shape, so callers never see an error.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/models"
)

const (
	// maxPromptTextChars bounds how much raw resume text goes into the prompt
	maxPromptTextChars = 2000
	defaultTimeout     = 30 * time.Second
)

// ContentGenerator is the model call the enricher depends on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// Input carries everything the enrichment prompt is built from.
type Input struct {
	Data           *models.ExtractedData
	Text           string
	JobTitle       string
	JobDescription string
	Gap            *models.SkillsGapResult
}

// Enricher produces the ai_insights portion of the feedback report.
// A nil generator means the rule-based fallback is always used.
type Enricher struct {
	generator ContentGenerator
	logger    *zap.Logger
	timeout   time.Duration
}

// New creates an enricher. timeout <= 0 uses the default.
func New(generator ContentGenerator, logger *zap.Logger, timeout time.Duration) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Enricher{generator: generator, logger: logger, timeout: timeout}
}

// Enrich analyzes the extracted data with the generative model. Any
// failure (no client, timeout, malformed response) returns the
// rule-based fallback instead of an error.
func (e *Enricher) Enrich(ctx context.Context, in Input) models.EnrichmentResult {
	if e.generator == nil {
		return e.Fallback(in)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt, err := e.buildPrompt(in)
	if err != nil {
		e.logger.Warn("failed to build enrichment prompt", zap.Error(err))
		return e.Fallback(in)
	}

	response, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		e.logger.Warn("model call failed, using rule-based fallback", zap.Error(err))
		return e.Fallback(in)
	}

	analysis, err := parseModelResponse(response)
	if err != nil {
		e.logger.Warn("unparseable model response, using rule-based fallback", zap.Error(err))
		return e.Fallback(in)
	}

	if in.Gap != nil {
		analysis["skills_gap_analysis"] = *in.Gap
	}

	return models.EnrichmentResult{
		Success:   true,
		Analysis:  analysis,
		AIPowered: true,
		ModelUsed: e.generator.ModelName(),
	}
}

func (e *Enricher) buildPrompt(in Input) (string, error) {
	dataJSON, err := json.MarshalIndent(in.Data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal extracted data: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are an expert resume analyst and career counselor. ")
	sb.WriteString("Analyze the following resume data and provide a comprehensive assessment.\n\n")
	sb.WriteString("EXTRACTED RESUME DATA:\n")
	sb.Write(dataJSON)
	sb.WriteString("\n\nRESUME TEXT:\n")
	sb.WriteString(truncate(in.Text, maxPromptTextChars))
	sb.WriteString("\n")

	if in.JobTitle != "" || in.JobDescription != "" {
		sb.WriteString("\nTARGET JOB ANALYSIS:\n")
		if in.JobTitle != "" {
			fmt.Fprintf(&sb, "Job Title: %s\n", in.JobTitle)
		}
		if in.JobDescription != "" {
			fmt.Fprintf(&sb, "Job Description: %s\n", truncate(in.JobDescription, 1000))
		}
	}

	if in.Gap != nil {
		sb.WriteString("\nSKILLS GAP ANALYSIS:\n")
		fmt.Fprintf(&sb, "Source: %s\n", in.Gap.Source)
		fmt.Fprintf(&sb, "Overall Coverage: %.1f%%\n", in.Gap.Coverage.OverallCoveragePercent)
		fmt.Fprintf(&sb, "Gap Level: %s - %s\n", in.Gap.GapScore.Level, in.Gap.GapScore.Description)
		fmt.Fprintf(&sb, "Missing Required: %s\n", strings.Join(in.Gap.Breakdown.MissingRequired, ", "))
		fmt.Fprintf(&sb, "Missing Preferred: %s\n", strings.Join(in.Gap.Breakdown.MissingPreferred, ", "))
		fmt.Fprintf(&sb, "Priority Skills to Add: %s\n", strings.Join(in.Gap.PrioritySkillsToAdd, ", "))
	}

	sb.WriteString(`
Provide a detailed analysis as a single JSON object with this shape:

{
  "experience_analysis": {
    "experience_quality": "excellent|good|average|poor",
    "strengths": ["list of experience strengths"],
    "weaknesses": ["list of areas for improvement"],
    "recommendations": ["specific suggestions for the experience section"]
  },
  "skills_analysis": {
    "skill_relevance": "high|medium|low",
    "trending_skills": ["modern in-demand skills found"],
    "missing_critical_skills": ["important skills not mentioned"],
    "recommendations": ["specific suggestions for the skills section"]
  },
  "overall_assessment": {
    "resume_score": 0,
    "target_roles": ["suitable job roles"],
    "key_strengths": ["top 3-5 strengths"],
    "critical_improvements": ["top 3-5 areas needing improvement"]
  },
  "job_match_analysis": {
    "overall_job_fit": 0,
    "competitive_advantages": ["unique strengths for this role"],
    "customization_recommendations": ["specific changes to improve job fit"],
    "interview_preparation": ["key areas to emphasize in interviews"]
  }
}

Respond with the JSON object only. Be honest about gaps while highlighting existing strengths and transferable skills.
`)
	return sb.String(), nil
}

// parseModelResponse extracts the JSON object from a model response
// that may carry surrounding prose or markdown fences.
func parseModelResponse(response string) (map[string]any, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var analysis map[string]any
	if err := json.Unmarshal([]byte(response[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return analysis, nil
}

// Fallback builds a deterministic analysis with the same shape as the
// model output.
func (e *Enricher) Fallback(in Input) models.EnrichmentResult {
	analysis := map[string]any{}

	var contactScore, skillsScore, experienceScore float64
	experienceYears := 0.0
	careerLevel := "entry"
	primaryRole := "Software Engineer"
	var trendingSkills []string
	totalSkills := 0

	if in.Data != nil {
		contactScore = float64(in.Data.ContactInfo.FieldCount()) * 20
		if contactScore > 100 {
			contactScore = 100
		}
		totalSkills = in.Data.Skills.TotalFound
		skillsScore = minF(float64(totalSkills)*5, 100)
		experienceYears = in.Data.Experience.TotalYears
		experienceScore = minF(experienceYears*20, 100)
		if in.Data.Experience.CareerLevel != "" {
			careerLevel = in.Data.Experience.CareerLevel
		}
		if in.Data.RoleInference.PrimaryRole != "" {
			primaryRole = in.Data.RoleInference.PrimaryRole
		}
		trendingSkills = firstN(in.Data.Skills.ProgrammingLanguages, 3)
	}

	overall := (contactScore + skillsScore + experienceScore) / 3

	experienceQuality := "average"
	if experienceYears > 2 {
		experienceQuality = "good"
	}
	skillRelevance := "medium"
	if totalSkills > 10 {
		skillRelevance = "high"
	}

	analysis["contact_analysis"] = map[string]any{
		"completeness_score": contactScore,
		"missing_elements":   missingContactElements(in.Data),
		"recommendations":    []string{"Add missing contact information for better reachability"},
	}
	analysis["experience_analysis"] = map[string]any{
		"experience_quality": experienceQuality,
		"strengths":          []string{"Relevant experience found"},
		"weaknesses":         []string{"Consider adding more quantifiable achievements"},
		"recommendations":    []string{"Add specific metrics and achievements to experience entries"},
	}
	analysis["skills_analysis"] = map[string]any{
		"skill_relevance":         skillRelevance,
		"trending_skills":         trendingSkills,
		"missing_critical_skills": []string{"Consider adding cloud platforms", "Add modern frameworks"},
		"recommendations":         []string{"Include more trending technologies and tools"},
	}
	analysis["overall_assessment"] = map[string]any{
		"resume_score":          int(overall),
		"target_roles":          []string{primaryRole},
		"experience_level":      careerLevel,
		"key_strengths":         []string{"Technical skills", "Relevant experience"},
		"critical_improvements": []string{"Add quantifiable achievements", "Improve formatting", "Add keywords"},
	}
	analysis["detailed_recommendations"] = map[string]any{
		"immediate_actions":    []string{"Add contact information", "Include metrics in experience"},
		"format_improvements":  []string{"Use consistent formatting", "Add bullet points"},
		"content_improvements": []string{"Add project outcomes", "Include soft skills"},
		"keyword_optimization": []string{"Add industry-specific keywords", "Include technical terms"},
	}

	if in.Gap != nil {
		analysis["skills_gap_analysis"] = *in.Gap
	}

	return models.EnrichmentResult{
		Success:   true,
		Analysis:  analysis,
		AIPowered: false,
		ModelUsed: "rule_based_fallback",
	}
}

func missingContactElements(data *models.ExtractedData) []string {
	missing := []string{}
	if data == nil {
		return []string{"name", "email", "phone", "linkedin"}
	}
	if data.ContactInfo.Name == "" {
		missing = append(missing, "name")
	}
	if data.ContactInfo.Email == "" {
		missing = append(missing, "email")
	}
	if data.ContactInfo.Phone == "" {
		missing = append(missing, "phone")
	}
	if data.ContactInfo.LinkedIn == "" {
		missing = append(missing, "linkedin")
	}
	return missing
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n... [truncated]"
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
