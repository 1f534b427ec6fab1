package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/llm"
	"github.com/fmuoria/resume-insight/internal/models"
)

const sampleResume = `John Doe
Software Engineer
john.doe@example.com | (555) 123-4567 | linkedin.com/in/johndoe

EXPERIENCE
Software Engineer at Acme Corp (2020-2024)
• Developed microservices in Go and Python serving 2 million users
• Improved API response time by 40%
• Led a team of 4 engineers

EDUCATION
Bachelor of Science in Computer Science, State University

SKILLS
Go, Python, SQL, Docker, Kubernetes, AWS, Git
`

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestAgent() *Agent {
	return New(nil, llm.New(nil, zap.NewNop(), 0), zap.NewNop())
}

func TestAnalyzeFileFullPipeline(t *testing.T) {
	path := writeResume(t, "resume.txt", sampleResume)

	rep, err := newTestAgent().AnalyzeFile(context.Background(), path, models.AnalyzeRequest{
		JobTitle:       "Backend Engineer",
		RequiredSkills: []string{"Go", "Python", "Docker"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RequestID)
	assert.NotEmpty(t, rep.GeneratedAt)
	assert.Equal(t, "john.doe@example.com", rep.ContactInfo.Email)

	require.True(t, rep.QualityScores.Available)
	assert.GreaterOrEqual(t, rep.QualityScores.OverallScore, 0.0)
	assert.LessOrEqual(t, rep.QualityScores.OverallScore, 100.0)

	require.True(t, rep.ATS.Available)
	assert.NotEmpty(t, rep.ATS.CompatibilityLevel)

	require.True(t, rep.Skills.GapAvailable)
	require.NotNil(t, rep.Skills.Gap)
	assert.Equal(t, models.TargetSourceExplicit, rep.Skills.Gap.Source)
	assert.Equal(t, 100.0, rep.Skills.Gap.Coverage.RequiredCoveragePercent)

	// Rule-based enrichment still yields insights.
	assert.True(t, rep.AIInsights.Available)
	assert.False(t, rep.AIInsights.AIPowered)
	assert.Equal(t, "rule_based_fallback", rep.AIInsights.ModelUsed)

	assert.Equal(t, "resume.txt", rep.DocumentMetrics.Filename)
}

func TestAnalyzeFileWithoutEnricher(t *testing.T) {
	path := writeResume(t, "resume.txt", sampleResume)

	rep, err := New(nil, nil, nil).AnalyzeFile(context.Background(), path, models.AnalyzeRequest{})
	require.NoError(t, err)

	assert.False(t, rep.AIInsights.Available)
}

func TestAnalyzeFileMissingFile(t *testing.T) {
	_, err := newTestAgent().AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"), models.AnalyzeRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestAnalyzeFileUnsupportedExtension(t *testing.T) {
	path := writeResume(t, "resume.jpg", "not a resume")

	_, err := newTestAgent().AnalyzeFile(context.Background(), path, models.AnalyzeRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestAnalyzeFileBinaryContent(t *testing.T) {
	path := writeResume(t, "resume.txt", "%PDF-1.4\nbinary posing as text")

	_, err := newTestAgent().AnalyzeFile(context.Background(), path, models.AnalyzeRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestAnalyzeFileRequestValidation(t *testing.T) {
	path := writeResume(t, "resume.txt", sampleResume)
	bad := -1

	_, err := newTestAgent().AnalyzeFile(context.Background(), path, models.AnalyzeRequest{TargetYears: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestRecoverPanicMapsToInternal(t *testing.T) {
	a := newTestAgent()

	run := func() (err error) {
		defer a.recoverPanic(&err)
		panic("stage blew up")
	}

	err := run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Contains(t, err.Error(), "stage blew up")
}

func TestEmptyResumeStillProducesReport(t *testing.T) {
	// Sparse but non-empty text degrades extraction without failing
	// the request.
	path := writeResume(t, "resume.txt", "nothing useful here")

	rep, err := newTestAgent().AnalyzeFile(context.Background(), path, models.AnalyzeRequest{})
	require.NoError(t, err)

	assert.Empty(t, rep.ContactInfo.Email)
	assert.True(t, rep.QualityScores.Available)
	assert.Zero(t, rep.Skills.TotalFound)
}
