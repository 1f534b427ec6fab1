package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/fmuoria/resume-insight/internal/models"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

func newTestScorer() *Scorer {
	return New(taxonomy.Default(), DefaultThresholds())
}

const sampleResume = `John Smith
Email: john.smith@example.com
Phone: 555-123-4567

EXPERIENCE
Software Engineer at Acme Corp (2019-2022)
• Reduced infrastructure costs by 40%
• Built a payment service handling 10,000 transactions daily
• Led a team of 5 engineers
• Collaborated with the design group

EDUCATION
Bachelor of Science in Computer Science

SKILLS
Python, Go, PostgreSQL, Docker

CONTACT
LinkedIn: linkedin.com/in/johnsmith`

func sampleData() *models.ExtractedData {
	return &models.ExtractedData{
		Skills: models.SkillSet{
			ProgrammingLanguages: []string{"Python", "Go"},
			Databases:            []string{"PostgreSQL"},
			ToolsFrameworks:      []string{"Docker"},
			TotalFound:           4,
		},
		Experience: models.Experience{
			TotalYears:  3,
			CareerLevel: "mid",
		},
	}
}

// TestScoreSumProperty verifies the overall score always equals the
// sum of the four category scores and stays within 0-100.
func TestScoreSumProperty(t *testing.T) {
	scorer := newTestScorer()

	result := scorer.Score(Input{
		Text:         sampleResume,
		Data:         sampleData(),
		TargetSkills: []string{"Python", "Go", "Kubernetes"},
	})

	sum := result.Breakdown.ContentFit.Score +
		result.Breakdown.ClarityQuantification.Score +
		result.Breakdown.StructureReadability.Score +
		result.Breakdown.ATSFriendliness.Score

	if math.Abs(result.OverallScore-sum) > 0.2 {
		t.Errorf("OverallScore = %v, category sum = %v", result.OverallScore, sum)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("OverallScore %v out of range", result.OverallScore)
	}

	for name, cat := range map[string]models.CategoryScore{
		"content_fit":            result.Breakdown.ContentFit,
		"clarity_quantification": result.Breakdown.ClarityQuantification,
		"structure_readability":  result.Breakdown.StructureReadability,
		"ats_friendliness":       result.Breakdown.ATSFriendliness,
	} {
		if cat.Score < 0 || cat.Score > cat.MaxPossible {
			t.Errorf("%s score %v exceeds cap %v", name, cat.Score, cat.MaxPossible)
		}
	}
}

// TestActionVerbScoring checks the exact score for a resume where 8 of
// 10 bullet points start with strong action verbs.
func TestActionVerbScoring(t *testing.T) {
	scorer := newTestScorer()

	text := strings.Join([]string{
		"• Achieved record quarterly revenue",
		"• Built the deployment pipeline",
		"• Created the onboarding flow",
		"• Designed the storage schema",
		"• Developed internal tooling",
		"• Led the migration effort",
		"• Managed vendor relationships",
		"• Improved cache hit rates",
		"• Responsible for maintaining legacy systems",
		"• Duties included server upkeep",
	}, "\n")

	score, details, weakOrMissing := scorer.analyzeActionVerbs(text)
	if score != 8.0 {
		t.Errorf("verb score = %v, want 8.0", score)
	}
	if weakOrMissing != 2 {
		t.Errorf("weak_or_missing = %d, want 2", weakOrMissing)
	}
	dist := details["verb_distribution"].(map[string]int)
	if dist["strong"] != 8 || dist["weak"] != 2 {
		t.Errorf("verb distribution = %v", dist)
	}
}

// TestMetricsScoring checks the bullet-metric density formula.
func TestMetricsScoring(t *testing.T) {
	scorer := newTestScorer()

	text := strings.Join([]string{
		"• Reduced infrastructure costs by 40%",
		"• Increased throughput 3x",
		"• Led the platform migration",
		"• Collaborated with the design group",
	}, "\n")

	score, details, improvement := scorer.analyzeMetrics(text)
	if score != 7.5 {
		t.Errorf("metrics score = %v, want 7.5", score)
	}
	if improvement != 2 {
		t.Errorf("improvement potential = %d, want 2", improvement)
	}
	if got := details["lines_with_metrics"].(int); got != 2 {
		t.Errorf("lines_with_metrics = %d, want 2", got)
	}
}

func TestMetricsScoringNoBullets(t *testing.T) {
	scorer := newTestScorer()

	score, _, _ := scorer.analyzeMetrics("Just a plain paragraph with 40% in it.")
	if score != 0 {
		t.Errorf("score = %v, want 0 without bullet points", score)
	}
}

func TestSkillsCoverage(t *testing.T) {
	scorer := newTestScorer()

	skills := models.SkillSet{
		ProgrammingLanguages: []string{"Python", "Go"},
	}
	score, analysis := scorer.analyzeSkillsCoverage(skills, []string{"Python", "Go", "SQL", "Docker"})
	if score != 15.0 {
		t.Errorf("coverage score = %v, want 15.0", score)
	}
	if got := analysis["coverage_percentage"].(float64); got != 50.0 {
		t.Errorf("coverage_percentage = %v, want 50.0", got)
	}
	missing := analysis["missing_skills"].([]string)
	if len(missing) != 2 || missing[0] != "docker" || missing[1] != "sql" {
		t.Errorf("missing_skills = %v", missing)
	}
}

func TestSkillDiversityFallback(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		totalFound int
		want       float64
	}{
		{0, 0},
		{5, 10},
		{10, 20},
		{15, 20}, // capped
	}
	for _, tt := range tests {
		data := &models.ExtractedData{Skills: models.SkillSet{TotalFound: tt.totalFound}}
		_, details, skillsScore := scorer.scoreContentFit(Input{Data: data})
		if skillsScore != tt.want {
			t.Errorf("diversity score for %d skills = %v, want %v", tt.totalFound, skillsScore, tt.want)
		}
		analysis := details["skills_analysis"].(map[string]any)
		if analysis["coverage_type"] != "diversity_based" {
			t.Errorf("coverage_type = %v", analysis["coverage_type"])
		}
	}
}

func TestExperienceAlignment(t *testing.T) {
	scorer := newTestScorer()
	target := 5.0

	tests := []struct {
		years       float64
		targetYears *float64
		want        float64
	}{
		{5, &target, 10},
		{6, &target, 10},
		{4, &target, 8},
		{3, &target, 6},
		{2, &target, 4},
		{1, &target, 2},
		{8, nil, 10},
		{4, nil, 8},
		{2, nil, 6},
		{0.5, nil, 4},
	}
	for _, tt := range tests {
		exp := models.Experience{TotalYears: tt.years}
		score, _ := scorer.analyzeExperienceAlignment(exp, tt.targetYears)
		if score != tt.want {
			t.Errorf("alignment for %.1f years (target %v) = %v, want %v", tt.years, tt.targetYears, score, tt.want)
		}
	}
}

func TestKeySections(t *testing.T) {
	scorer := newTestScorer()

	full := "EXPERIENCE\ncontent\nEDUCATION\ncontent\nSKILLS\ncontent\nCONTACT\ncontent"
	score, _ := scorer.analyzeKeySections(full)
	if score != 10.0 {
		t.Errorf("score with all sections = %v, want 10.0", score)
	}

	partial := "EXPERIENCE\ncontent\nSKILLS\ncontent"
	score, details := scorer.analyzeKeySections(partial)
	if score != 5.0 {
		t.Errorf("score with two sections = %v, want 5.0", score)
	}
	missing := details["missing_sections"].([]string)
	if len(missing) != 2 {
		t.Errorf("missing_sections = %v", missing)
	}
}

func TestReadabilityPenalties(t *testing.T) {
	scorer := newTestScorer()

	clean := "Built distributed pipelines handling millions of events. " +
		"Designed scalable services for payment processing. " +
		"Delivered three major product launches on schedule."
	score, _ := scorer.analyzeReadability(clean)
	if score != 10.0 {
		t.Errorf("clean text readability = %v, want 10.0", score)
	}

	passive := "The system was developed over two years. " +
		"The code was reviewed every single week. " +
		"The launch was delayed for several months. " +
		"The budget was approved after long debate."
	score, details := scorer.analyzeReadability(passive)
	if score != 6.0 {
		t.Errorf("passive text readability = %v, want 6.0", score)
	}
	if got := details["passive_sentences_count"].(int); got != 4 {
		t.Errorf("passive_sentences_count = %d, want 4", got)
	}
}

func TestReadabilityNoSentences(t *testing.T) {
	scorer := newTestScorer()

	score, details := scorer.analyzeReadability("short")
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if _, ok := details["error"]; !ok {
		t.Error("expected error detail for unreadable text")
	}
}

func TestCompatibilityFromAnalysis(t *testing.T) {
	scorer := newTestScorer()

	ats := &models.ATSResult{
		Score:              models.ATSScore{TotalScore: 80},
		CompatibilityLevel: "good",
		PriorityIssues:     []string{"Convert to .docx or .pdf format"},
	}
	score, details := scorer.scoreCompatibility(Input{ATS: ats})
	if score != 12.0 {
		t.Errorf("compat score = %v, want 12.0", score)
	}
	if details["score_source"] != "ats_analysis" {
		t.Errorf("score_source = %v", details["score_source"])
	}
}

func TestBasicCompatibilityHeuristics(t *testing.T) {
	scorer := newTestScorer()

	score, _ := scorer.basicCompatibility("Plain resume text with simple formatting.")
	if score != 15.0 {
		t.Errorf("clean text compat = %v, want 15.0", score)
	}

	noisy := "★★★★★★★ Skills\n│ Name │ Years │"
	score, details := scorer.basicCompatibility(noisy)
	if score != 7.0 {
		t.Errorf("noisy text compat = %v, want 7.0", score)
	}
	issues := details["detected_issues"].([]string)
	if len(issues) != 2 {
		t.Errorf("detected_issues = %v", issues)
	}
}

func TestQualityLevels(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{92, QualityExcellent},
		{85, QualityExcellent},
		{80, QualityGood},
		{70, QualityAverage},
		{55, QualityBelowAverage},
		{30, QualityNeedsImprovement},
	}
	for _, tt := range tests {
		if got := qualityLevel(tt.score); got != tt.want {
			t.Errorf("qualityLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRecommendationThresholds(t *testing.T) {
	scorer := newTestScorer()

	recs := scorer.recommendations(recommendationInputs{
		skillsScore:          10,
		metricsScore:         5,
		sectionsScore:        2.5,
		verbsScore:           6,
		readabilityScore:     6,
		compatScore:          9,
		improvementPotential: 3,
		weakOrMissing:        2,
	})

	if len(recs.Critical) != 3 {
		t.Errorf("critical = %v, want 3 entries", recs.Critical)
	}
	if len(recs.HighPriority) != 3 {
		t.Errorf("high_priority = %v, want 3 entries", recs.HighPriority)
	}
	wantMedium := []string{
		"Add metrics to 3 more bullet points",
		"Strengthen 2 bullet points with better action verbs",
	}
	for i, want := range wantMedium {
		if recs.MediumPriority[i] != want {
			t.Errorf("medium_priority[%d] = %q, want %q", i, recs.MediumPriority[i], want)
		}
	}
	if len(recs.LowPriority) != 4 {
		t.Errorf("low_priority = %v, want 4 entries", recs.LowPriority)
	}

	healthy := scorer.recommendations(recommendationInputs{
		skillsScore:      25,
		metricsScore:     12,
		sectionsScore:    10,
		verbsScore:       9,
		readabilityScore: 10,
		compatScore:      14,
	})
	if len(healthy.Critical) != 0 || len(healthy.HighPriority) != 0 {
		t.Errorf("healthy inputs produced urgent recommendations: %v %v", healthy.Critical, healthy.HighPriority)
	}
}

func TestBulletLinesFallback(t *testing.T) {
	numbered := "1. Shipped the mobile client\n2. Mentored two interns"
	bullets := bulletLines(numbered)
	if len(bullets) != 2 {
		t.Errorf("numbered bullets = %v, want 2 lines", bullets)
	}
}
