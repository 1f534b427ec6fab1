package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/models"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubGenerator) ModelName() string { return "stub-model" }

func sampleInput() Input {
	return Input{
		Data: &models.ExtractedData{
			ContactInfo: models.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
			Experience:  models.Experience{TotalYears: 4, CareerLevel: "mid"},
			Skills: models.SkillSet{
				ProgrammingLanguages: []string{"Go", "Python", "SQL", "Rust"},
				TotalFound:           12,
			},
			RoleInference: models.RoleInference{PrimaryRole: "Backend Developer"},
		},
		Text:     "Jane Doe\nBackend developer with four years of experience.",
		JobTitle: "Backend Engineer",
		Gap: &models.SkillsGapResult{
			Source:              models.TargetSourceExplicit,
			PrioritySkillsToAdd: []string{"docker"},
		},
	}
}

func TestEnrichParsesModelJSON(t *testing.T) {
	gen := &stubGenerator{
		response: "Here is the analysis:\n```json\n{\"overall_assessment\": {\"resume_score\": 82}}\n```",
	}
	e := New(gen, zap.NewNop(), time.Second)

	result := e.Enrich(context.Background(), sampleInput())

	require.True(t, result.Success)
	assert.True(t, result.AIPowered)
	assert.Equal(t, "stub-model", result.ModelUsed)

	overall, ok := result.Analysis["overall_assessment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(82), overall["resume_score"])

	// Gap analysis is injected alongside the model output.
	assert.Contains(t, result.Analysis, "skills_gap_analysis")
}

func TestEnrichPromptCarriesContext(t *testing.T) {
	gen := &stubGenerator{response: "{}"}
	e := New(gen, zap.NewNop(), time.Second)

	e.Enrich(context.Background(), sampleInput())

	assert.Contains(t, gen.prompt, "Jane Doe")
	assert.Contains(t, gen.prompt, "Job Title: Backend Engineer")
	assert.Contains(t, gen.prompt, "Priority Skills to Add: docker")
}

func TestEnrichFallsBackOnModelError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	e := New(gen, zap.NewNop(), time.Second)

	result := e.Enrich(context.Background(), sampleInput())

	require.True(t, result.Success)
	assert.False(t, result.AIPowered)
	assert.Equal(t, "rule_based_fallback", result.ModelUsed)
}

func TestEnrichFallsBackOnMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json", "I cannot produce structured output."},
		{"broken json", "{\"overall_assessment\": "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&stubGenerator{response: tt.response}, zap.NewNop(), time.Second)
			result := e.Enrich(context.Background(), sampleInput())
			assert.False(t, result.AIPowered)
			assert.Equal(t, "rule_based_fallback", result.ModelUsed)
		})
	}
}

func TestEnrichWithoutGenerator(t *testing.T) {
	e := New(nil, nil, 0)

	result := e.Enrich(context.Background(), sampleInput())

	require.True(t, result.Success)
	assert.False(t, result.AIPowered)
	assert.Equal(t, "rule_based_fallback", result.ModelUsed)
}

func TestFallbackScores(t *testing.T) {
	e := New(nil, zap.NewNop(), 0)

	result := e.Fallback(sampleInput())

	require.True(t, result.Success)

	// Two contact fields at 20 each, 12 skills at 5 each capped at 100
	// is 60, 4 years at 20 each capped is 80: (40+60+80)/3 = 60.
	overall := result.Analysis["overall_assessment"].(map[string]any)
	assert.Equal(t, 60, overall["resume_score"])
	assert.Equal(t, []string{"Backend Developer"}, overall["target_roles"])
	assert.Equal(t, "mid", overall["experience_level"])

	contact := result.Analysis["contact_analysis"].(map[string]any)
	assert.Equal(t, float64(40), contact["completeness_score"])
	assert.Equal(t, []string{"phone", "linkedin"}, contact["missing_elements"])

	skills := result.Analysis["skills_analysis"].(map[string]any)
	assert.Equal(t, "high", skills["skill_relevance"])
	assert.Equal(t, []string{"Go", "Python", "SQL"}, skills["trending_skills"])

	experience := result.Analysis["experience_analysis"].(map[string]any)
	assert.Equal(t, "good", experience["experience_quality"])
}

func TestFallbackNilData(t *testing.T) {
	e := New(nil, zap.NewNop(), 0)

	result := e.Fallback(Input{})

	require.True(t, result.Success)
	overall := result.Analysis["overall_assessment"].(map[string]any)
	assert.Equal(t, 0, overall["resume_score"])
	assert.Equal(t, []string{"Software Engineer"}, overall["target_roles"])

	contact := result.Analysis["contact_analysis"].(map[string]any)
	assert.Equal(t, []string{"name", "email", "phone", "linkedin"}, contact["missing_elements"])
}

func TestParseModelResponse(t *testing.T) {
	analysis, err := parseModelResponse("prefix {\"a\": 1} suffix")
	require.NoError(t, err)
	assert.Equal(t, float64(1), analysis["a"])

	_, err = parseModelResponse("no braces here")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no JSON object"))
}
