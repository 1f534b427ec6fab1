// Package scoring grades a resume on a transparent 0-100 rubric:
// content fit (40), clarity and quantification (25), structure and
// readability (20) and file compatibility (15). Every category is a
// pure function of its inputs and the overall score is always the sum
// of the four category scores.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fmuoria/resume-insight/internal/models"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

// Quality levels keyed to the overall score.
const (
	QualityExcellent        = "excellent"
	QualityGood             = "good"
	QualityAverage          = "average"
	QualityBelowAverage     = "below_average"
	QualityNeedsImprovement = "needs_improvement"
)

// Category and subscore caps. The four category caps sum to 100.
const (
	maxContentFit = 40.0
	maxClarity    = 25.0
	maxStructure  = 20.0
	maxCompat     = 15.0

	maxSkillsCoverage      = 30.0
	maxExperienceAlignment = 10.0
	maxMetrics             = 15.0
	maxVerbs               = 10.0
	maxSections            = 10.0
	maxReadability         = 10.0
)

// Thresholds gathers every tunable cutoff used by the rubric so none
// of them hide inside the scoring code.
type Thresholds struct {
	// Skill diversity fallback when no target skills are given.
	DiversityPointsPerSkill float64
	DiversityCap            float64

	// Readability penalties.
	LongSentenceWords    int
	LongSentenceHigh     float64
	LongSentenceModerate float64
	PassiveHigh          float64
	PassiveModerate      float64
	MinAvgSentenceWords  float64
	MaxAvgSentenceWords  float64

	// Fallback compatibility heuristics.
	MaxSymbols     int
	TableLineRatio float64

	// Recommendation cutoffs, in absolute subscore points.
	CriticalSkillsScore   float64
	CriticalMetricsScore  float64
	CriticalSectionsScore float64
	HighVerbsScore        float64
	HighReadabilityScore  float64
	HighCompatScore       float64
}

// DefaultThresholds returns the production rubric cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DiversityPointsPerSkill: 2,
		DiversityCap:            20,
		LongSentenceWords:       25,
		LongSentenceHigh:        0.3,
		LongSentenceModerate:    0.2,
		PassiveHigh:             0.3,
		PassiveModerate:         0.2,
		MinAvgSentenceWords:     5,
		MaxAvgSentenceWords:     20,
		MaxSymbols:              5,
		TableLineRatio:          0.2,
		CriticalSkillsScore:     15,
		CriticalMetricsScore:    7.5,
		CriticalSectionsScore:   5,
		HighVerbsScore:          7,
		HighReadabilityScore:    7,
		HighCompatScore:         10,
	}
}

// Input carries everything the rubric needs. TargetSkills, TargetYears
// and ATS are optional; absent inputs select the documented fallback
// formulas instead of failing.
type Input struct {
	Text         string
	Data         *models.ExtractedData
	TargetSkills []string
	TargetYears  *float64
	ATS          *models.ATSResult
}

var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+%`),
	regexp.MustCompile(`(?i)\$\d+[\d,]*(?:\.\d+)?[kmb]?`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*\+?\s*(?:users?|customers?|clients?)`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*\s*(?:ms|seconds?|minutes?|hours?|days?)`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*x\b`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*\s*(?:GB|MB|TB)`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*\s*(?:requests?|transactions?|operations?)`),
	regexp.MustCompile(`(?i)\b(?:improved|increased|reduced|decreased)\s+(?:by\s+)?\d+`),
	regexp.MustCompile(`(?i)\b\d+[\d,]*\s*(?:lines?|functions?|components?|features?)`),
}

var (
	bulletMarkerPattern = regexp.MustCompile(`^\s*[•\-*▪▫]\s*`)
	numberedListPattern = regexp.MustCompile(`^\s*\d+[.)]\s*`)
	verbPrefixPattern   = regexp.MustCompile(`^[•\-*▪▫\d.)]\s*`)
	sentenceSplit       = regexp.MustCompile(`[.!?]+`)
	multiSpaceRun       = regexp.MustCompile(`  +`)
)

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:was|were|is|are|been|being)\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(?:was|were|is|are)\s+\w+en\b`),
	regexp.MustCompile(`(?i)\bby\s+(?:the\s+)?[A-Za-z]\w*`),
}

var boxDrawingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[│┌┐└┘├┤┬┴┼]`),
	regexp.MustCompile(`[═║╔╗╚╝╠╣╦╩╬]`),
	regexp.MustCompile(`[▓▒░]`),
}

var compatSymbols = []string{
	"★", "☆", "●", "◆", "▲", "▼", "♦", "♠", "♥", "♣", "✓", "✗", "→", "←",
}

// Section-presence keyword lists. Intentionally shorter than the ones
// the compatibility analyzer uses; this check looks for header lines
// only.
var requiredSections = map[string][]string{
	"experience": {"experience", "work", "employment", "professional", "career"},
	"education":  {"education", "academic", "university", "college", "degree"},
	"skills":     {"skills", "technical", "technologies", "tools", "competencies"},
	"contact":    {"contact", "phone", "email", "address", "linkedin"},
}

var sectionOrder = []string{"experience", "education", "skills", "contact"}

// Scorer evaluates resumes against the rubric.
type Scorer struct {
	tax        *taxonomy.Taxonomy
	thresholds Thresholds
}

// New creates a rubric scorer over the shared taxonomy.
func New(tax *taxonomy.Taxonomy, thresholds Thresholds) *Scorer {
	return &Scorer{tax: tax, thresholds: thresholds}
}

// Score runs all four rubric categories and assembles the result.
func (s *Scorer) Score(in Input) models.QualityScore {
	contentScore, contentDetails, skillsScore := s.scoreContentFit(in)

	metricsScore, metricsDetails, improvementPotential := s.analyzeMetrics(in.Text)
	verbsScore, verbsDetails, weakOrMissing := s.analyzeActionVerbs(in.Text)
	clarityScore := metricsScore + verbsScore
	clarityDetails := map[string]any{
		"metrics_score":         metricsScore,
		"action_verbs_score":    verbsScore,
		"metrics_analysis":      metricsDetails,
		"action_verbs_analysis": verbsDetails,
	}

	sectionsScore, sectionsDetails := s.analyzeKeySections(in.Text)
	readabilityScore, readabilityDetails := s.analyzeReadability(in.Text)
	structureScore := sectionsScore + readabilityScore
	structureDetails := map[string]any{
		"sections_score":       sectionsScore,
		"readability_score":    readabilityScore,
		"sections_analysis":    sectionsDetails,
		"readability_analysis": readabilityDetails,
	}

	compatScore, compatDetails := s.scoreCompatibility(in)

	total := contentScore + clarityScore + structureScore + compatScore

	return models.QualityScore{
		OverallScore: round1(total),
		QualityLevel: qualityLevel(total),
		Breakdown: models.ScoreBreakdown{
			ContentFit:            category(contentScore, maxContentFit, contentDetails),
			ClarityQuantification: category(clarityScore, maxClarity, clarityDetails),
			StructureReadability:  category(structureScore, maxStructure, structureDetails),
			ATSFriendliness:       category(compatScore, maxCompat, compatDetails),
		},
		Recommendations: s.recommendations(recommendationInputs{
			skillsScore:          skillsScore,
			metricsScore:         metricsScore,
			verbsScore:           verbsScore,
			sectionsScore:        sectionsScore,
			readabilityScore:     readabilityScore,
			compatScore:          compatScore,
			improvementPotential: improvementPotential,
			weakOrMissing:        weakOrMissing,
		}),
	}
}

// scoreContentFit covers skills coverage (30) plus experience
// alignment (10). Without target skills the skills part falls back to
// a diversity count capped at 20.
func (s *Scorer) scoreContentFit(in Input) (float64, map[string]any, float64) {
	details := map[string]any{
		"skills_coverage_score":      0.0,
		"experience_alignment_score": 0.0,
	}

	if in.Data == nil {
		return 0, details, 0
	}

	var total, skillsScore float64
	if len(in.TargetSkills) > 0 {
		var analysis map[string]any
		skillsScore, analysis = s.analyzeSkillsCoverage(in.Data.Skills, in.TargetSkills)
		details["skills_analysis"] = analysis
	} else {
		totalSkills := in.Data.Skills.TotalFound
		skillsScore = math.Min(float64(totalSkills)*s.thresholds.DiversityPointsPerSkill, s.thresholds.DiversityCap)
		details["skills_analysis"] = map[string]any{
			"total_skills_found": totalSkills,
			"coverage_type":      "diversity_based",
			"note":               "Scored on skill diversity - provide target skills for better analysis",
		}
	}
	details["skills_coverage_score"] = skillsScore
	total += skillsScore

	expScore, expAnalysis := s.analyzeExperienceAlignment(in.Data.Experience, in.TargetYears)
	details["experience_alignment_score"] = expScore
	details["experience_analysis"] = expAnalysis
	total += expScore

	return total, details, skillsScore
}

func (s *Scorer) analyzeSkillsCoverage(skills models.SkillSet, targetSkills []string) (float64, map[string]any) {
	resume := make(map[string]struct{})
	for _, skill := range append(skills.All(), skills.MatchedSkills...) {
		if skill != "" {
			resume[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
		}
	}

	target := make(map[string]struct{})
	for _, skill := range targetSkills {
		clean := strings.ToLower(strings.TrimSpace(skill))
		if clean != "" {
			target[clean] = struct{}{}
		}
	}

	var matched, missing, bonus []string
	for skill := range target {
		if _, ok := resume[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for skill := range resume {
		if _, ok := target[skill]; !ok {
			bonus = append(bonus, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(bonus)

	var coverage float64
	if len(target) > 0 {
		coverage = float64(len(matched)) / float64(len(target))
	}
	score := coverage * maxSkillsCoverage

	return score, map[string]any{
		"target_skills_count":  len(target),
		"matched_skills_count": len(matched),
		"coverage_percentage":  round1(coverage * 100),
		"matched_skills":       matched,
		"missing_skills":       missing,
		"bonus_skills":         bonus,
	}
}

func (s *Scorer) analyzeExperienceAlignment(exp models.Experience, targetYears *float64) (float64, map[string]any) {
	years := exp.TotalYears
	analysis := map[string]any{
		"actual_years": years,
		"career_level": exp.CareerLevel,
	}

	var score float64
	if targetYears != nil {
		analysis["target_years"] = *targetYears
		switch {
		case years >= *targetYears:
			score = 10
			analysis["alignment_type"] = "meets_or_exceeds"
		case years >= *targetYears*0.8:
			score = 8
			analysis["alignment_type"] = "close_match"
		case years >= *targetYears*0.6:
			score = 6
			analysis["alignment_type"] = "partial_match"
		case years >= *targetYears*0.4:
			score = 4
			analysis["alignment_type"] = "below_target"
		default:
			score = 2
			analysis["alignment_type"] = "well_below_target"
		}
	} else {
		switch {
		case years >= 7:
			score = 10
		case years >= 3:
			score = 8
		case years >= 1:
			score = 6
		default:
			score = 4
		}
		analysis["alignment_type"] = "general_assessment"
	}
	return score, analysis
}

// analyzeMetrics scores the fraction of bullet points that carry a
// quantifiable figure.
func (s *Scorer) analyzeMetrics(text string) (float64, map[string]any, int) {
	bullets := bulletLines(text)

	var metricsFound []string
	linesWithMetrics := 0
	for _, line := range bullets {
		var lineMetrics []string
		for _, pattern := range metricPatterns {
			lineMetrics = append(lineMetrics, pattern.FindAllString(line, -1)...)
		}
		if len(lineMetrics) > 0 {
			linesWithMetrics++
			metricsFound = append(metricsFound, lineMetrics...)
		}
	}

	var fraction, score float64
	if len(bullets) > 0 {
		fraction = float64(linesWithMetrics) / float64(len(bullets))
		score = math.Min(fraction*maxMetrics, maxMetrics)
	}

	improvement := len(bullets) - linesWithMetrics
	if improvement < 0 {
		improvement = 0
	}

	return score, map[string]any{
		"total_bullet_points": len(bullets),
		"lines_with_metrics":  linesWithMetrics,
		"metrics_percentage":  round1(fraction * 100),
		"total_metrics_found": len(metricsFound),
		"sample_metrics":      firstN(metricsFound, 10),
	}, improvement
}

// analyzeActionVerbs classifies the opening phrase of each bullet.
// Strong verbs earn full credit, moderate verbs partial, weak phrases
// and missing verbs none.
func (s *Scorer) analyzeActionVerbs(text string) (float64, map[string]any, int) {
	bullets := bulletLines(text)

	counts := map[string]int{"strong": 0, "moderate": 0, "weak": 0, "none": 0}
	var foundVerbs []string

	for _, line := range bullets {
		clean := strings.TrimSpace(verbPrefixPattern.ReplaceAllString(line, ""))
		words := strings.Fields(clean)
		if len(words) > 3 {
			words = words[:3]
		}
		phrase := strings.ToLower(strings.Join(words, " "))

		switch {
		case prefixIn(phrase, s.tax.StrongVerbs, &foundVerbs):
			counts["strong"]++
		case prefixIn(phrase, s.tax.ModerateVerbs, &foundVerbs):
			counts["moderate"]++
		case containsIn(phrase, s.tax.WeakPhrases):
			counts["weak"]++
		default:
			counts["none"]++
		}
	}

	var score, strongPct float64
	if len(bullets) > 0 {
		strong := float64(counts["strong"]) / float64(len(bullets))
		moderate := float64(counts["moderate"]) / float64(len(bullets))
		score = math.Min(strong*maxVerbs+moderate*6, maxVerbs)
		strongPct = strong * 100
	}

	weakOrMissing := counts["weak"] + counts["none"]

	return score, map[string]any{
		"total_bullet_points":    len(bullets),
		"verb_distribution":      counts,
		"strong_verb_percentage": round1(strongPct),
		"sample_verbs_found":     firstN(dedupe(foundVerbs), 10),
		"weak_or_missing_count":  weakOrMissing,
	}, weakOrMissing
}

// analyzeKeySections checks for the four expected section headers, each
// a standalone line under 50 characters.
func (s *Scorer) analyzeKeySections(text string) (float64, map[string]any) {
	lines := strings.Split(text, "\n")

	found := make(map[string]bool, len(requiredSections))
	var missing []string
	foundCount := 0

	for _, section := range sectionOrder {
		keywords := requiredSections[section]
		found[section] = sectionPresent(lines, keywords)
		if found[section] {
			foundCount++
		} else {
			missing = append(missing, section)
		}
	}

	score := float64(foundCount) / float64(len(sectionOrder)) * maxSections

	return score, map[string]any{
		"required_sections":     sectionOrder,
		"sections_found":        found,
		"found_count":           foundCount,
		"required_count":        len(sectionOrder),
		"completion_percentage": round1(float64(foundCount) / float64(len(sectionOrder)) * 100),
		"missing_sections":      missing,
	}
}

func sectionPresent(lines, keywords []string) bool {
	for _, keyword := range keywords {
		for _, line := range lines {
			clean := strings.ToLower(strings.TrimSpace(line))
			if len(clean) >= 50 || !strings.Contains(clean, keyword) {
				continue
			}
			for _, kw := range keywords {
				if clean == kw || strings.HasPrefix(clean, kw) {
					return true
				}
			}
		}
	}
	return false
}

// analyzeReadability starts from full points and deducts for long
// sentences, passive voice and an out-of-range average sentence
// length.
func (s *Scorer) analyzeReadability(text string) (float64, map[string]any) {
	var sentences []string
	for _, part := range sentenceSplit.Split(text, -1) {
		clean := strings.TrimSpace(part)
		if len(clean) > 10 {
			sentences = append(sentences, clean)
		}
	}
	if len(sentences) == 0 {
		return 0, map[string]any{"error": "No readable sentences found"}
	}

	totalWords := 0
	longSentences := 0
	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		totalWords += words
		if words > s.thresholds.LongSentenceWords {
			longSentences++
		}
	}
	avgLength := float64(totalWords) / float64(len(sentences))

	passiveSentences := 0
	for _, sentence := range sentences {
		for _, pattern := range passivePatterns {
			if pattern.MatchString(sentence) {
				passiveSentences++
				break
			}
		}
	}

	total := float64(len(sentences))
	longRatio := float64(longSentences) / total
	passiveRatio := float64(passiveSentences) / total

	score := maxReadability
	switch {
	case longRatio > s.thresholds.LongSentenceHigh:
		score -= 3
	case longRatio > s.thresholds.LongSentenceModerate:
		score -= 2
	}
	switch {
	case passiveRatio > s.thresholds.PassiveHigh:
		score -= 4
	case passiveRatio > s.thresholds.PassiveModerate:
		score -= 2
	}
	if avgLength < s.thresholds.MinAvgSentenceWords || avgLength > s.thresholds.MaxAvgSentenceWords {
		score -= 2
	}
	if score < 0 {
		score = 0
	}

	var issues []string
	if longRatio > s.thresholds.LongSentenceModerate {
		issues = append(issues, fmt.Sprintf("%d sentences are too long (>%d words)", longSentences, s.thresholds.LongSentenceWords))
	}
	if passiveRatio > s.thresholds.PassiveModerate {
		issues = append(issues, fmt.Sprintf("%d sentences use passive voice", passiveSentences))
	}
	if avgLength < s.thresholds.MinAvgSentenceWords {
		issues = append(issues, "Average sentence length is too short")
	} else if avgLength > s.thresholds.MaxAvgSentenceWords {
		issues = append(issues, "Average sentence length is too long")
	}

	return score, map[string]any{
		"total_sentences":           len(sentences),
		"average_sentence_length":   round1(avgLength),
		"long_sentences_count":      longSentences,
		"long_sentences_percentage": round1(longRatio * 100),
		"passive_sentences_count":   passiveSentences,
		"passive_voice_percentage":  round1(passiveRatio * 100),
		"readability_issues":        issues,
	}
}

// scoreCompatibility converts the dedicated compatibility analysis
// onto the 0-15 scale, or runs local text heuristics when that
// analysis is unavailable.
func (s *Scorer) scoreCompatibility(in Input) (float64, map[string]any) {
	if in.ATS != nil {
		score := in.ATS.Score.TotalScore / 100 * maxCompat
		details := map[string]any{
			"score_source":        "ats_analysis",
			"original_ats_score":  in.ATS.Score.TotalScore,
			"compatibility_level": in.ATS.CompatibilityLevel,
			"priority_issues":     in.ATS.PriorityIssues,
		}
		return score, details
	}
	return s.basicCompatibility(in.Text)
}

func (s *Scorer) basicCompatibility(text string) (float64, map[string]any) {
	score := maxCompat
	var issues []string

	symbolCount := 0
	for _, symbol := range compatSymbols {
		symbolCount += strings.Count(text, symbol)
	}
	if symbolCount > s.thresholds.MaxSymbols {
		score -= 5
		issues = append(issues, fmt.Sprintf("Excessive special symbols (%d found)", symbolCount))
	} else if symbolCount > 0 {
		score -= 2
		issues = append(issues, fmt.Sprintf("Some special symbols detected (%d found)", symbolCount))
	}

	lines := strings.Split(text, "\n")
	tableLike := 0
	for _, line := range lines {
		if strings.Count(line, "\t") > 2 || len(multiSpaceRun.FindAllString(line, -1)) > 3 {
			tableLike++
		}
	}
	if float64(tableLike) > float64(len(lines))*s.thresholds.TableLineRatio {
		score -= 4
		issues = append(issues, "Potential table formatting detected")
	}

	boxChars := 0
	for _, pattern := range boxDrawingPatterns {
		boxChars += len(pattern.FindAllString(text, -1))
	}
	if boxChars > 0 {
		score -= 3
		issues = append(issues, "Complex formatting characters detected")
	}

	if score < 0 {
		score = 0
	}

	recommendations := []string{"Good formatting detected"}
	if len(issues) > 0 {
		recommendations = []string{
			"Use standard bullet points (• or -) instead of special symbols",
			"Avoid table formatting, use simple text layout",
			"Stick to standard fonts and formatting",
		}
	}

	return score, map[string]any{
		"score_source":             "basic_heuristics",
		"symbol_count":             symbolCount,
		"table_like_lines":         tableLike,
		"complex_formatting_count": boxChars,
		"detected_issues":          issues,
		"recommendations":          recommendations,
	}
}

type recommendationInputs struct {
	skillsScore          float64
	metricsScore         float64
	verbsScore           float64
	sectionsScore        float64
	readabilityScore     float64
	compatScore          float64
	improvementPotential int
	weakOrMissing        int
}

func (s *Scorer) recommendations(in recommendationInputs) models.QualityRecommendations {
	recs := models.QualityRecommendations{}

	if in.skillsScore < s.thresholds.CriticalSkillsScore {
		recs.Critical = append(recs.Critical, "Improve skills alignment with target requirements")
	}
	if in.metricsScore < s.thresholds.CriticalMetricsScore {
		recs.Critical = append(recs.Critical, "Add quantifiable metrics and achievements to bullet points")
	}
	if in.sectionsScore < s.thresholds.CriticalSectionsScore {
		recs.Critical = append(recs.Critical, "Add missing resume sections (Experience, Education, Skills)")
	}

	if in.verbsScore < s.thresholds.HighVerbsScore {
		recs.HighPriority = append(recs.HighPriority, "Start bullet points with strong action verbs (achieved, built, led)")
	}
	if in.readabilityScore < s.thresholds.HighReadabilityScore {
		recs.HighPriority = append(recs.HighPriority, "Improve sentence structure and reduce passive voice")
	}
	if in.compatScore < s.thresholds.HighCompatScore {
		recs.HighPriority = append(recs.HighPriority, "Improve ATS compatibility by simplifying formatting")
	}

	if in.improvementPotential > 0 {
		recs.MediumPriority = append(recs.MediumPriority,
			fmt.Sprintf("Add metrics to %d more bullet points", in.improvementPotential))
	}
	if in.weakOrMissing > 0 {
		recs.MediumPriority = append(recs.MediumPriority,
			fmt.Sprintf("Strengthen %d bullet points with better action verbs", in.weakOrMissing))
	}

	recs.LowPriority = []string{
		"Consider adding more specific technical skills",
		"Include soft skills and leadership examples",
		"Ensure consistent formatting throughout document",
		"Add links to portfolio or professional profiles",
	}

	return recs
}

// bulletLines collects stripped bullet lines. A second pass with wider
// marker and numbered-list patterns runs only when the first finds
// nothing.
func bulletLines(text string) []string {
	lines := strings.Split(text, "\n")

	var bullets []string
	for _, line := range lines {
		clean := strings.TrimSpace(line)
		if strings.HasPrefix(clean, "•") || strings.HasPrefix(clean, "-") || strings.HasPrefix(clean, "*") {
			bullets = append(bullets, clean)
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	for _, line := range lines {
		if bulletMarkerPattern.MatchString(line) || numberedListPattern.MatchString(line) {
			bullets = append(bullets, strings.TrimSpace(line))
		}
	}
	return bullets
}

func prefixIn(phrase string, verbs []string, found *[]string) bool {
	for _, verb := range verbs {
		if strings.HasPrefix(phrase, verb) {
			*found = append(*found, verb)
			return true
		}
	}
	return false
}

func containsIn(phrase string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(phrase, p) {
			return true
		}
	}
	return false
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return append([]string(nil), items[:n]...)
}

func category(score, max float64, details map[string]any) models.CategoryScore {
	return models.CategoryScore{
		Score:       round1(score),
		MaxPossible: max,
		Percentage:  round1(score / max * 100),
		Details:     details,
	}
}

func qualityLevel(score float64) string {
	switch {
	case score >= 85:
		return QualityExcellent
	case score >= 75:
		return QualityGood
	case score >= 65:
		return QualityAverage
	case score >= 50:
		return QualityBelowAverage
	default:
		return QualityNeedsImprovement
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
