// Package skillsgap compares a resume's extracted skills against a
// target skill set and reports coverage, the exact gap and prioritized
// advice. Target resolution order is fixed: explicit skills, then
// job-description extraction, then a title-based role template, then
// the default template.
package skillsgap

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/fmuoria/resume-insight/internal/models"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

// Gap levels keyed to overall coverage.
const (
	GapExcellent   = "excellent"
	GapGood        = "good"
	GapModerate    = "moderate"
	GapSignificant = "significant"
	GapSubstantial = "substantial"
)

const (
	contextWindow        = 50
	maxPriorityRequired  = 5
	maxPriorityPreferred = 3
)

var requirementCues = []string{"required", "must", "essential", "mandatory"}
var preferenceCues = []string{"preferred", "nice", "plus", "bonus", "ideal"}

// Request selects the comparison target. Zero-value fields fall through
// to the next resolution priority.
type Request struct {
	JobTitle        string
	JobDescription  string
	RequiredSkills  []string
	PreferredSkills []string
}

// Analyzer computes skills-gap results over a shared taxonomy.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// New creates a skills gap analyzer.
func New(tax *taxonomy.Taxonomy) *Analyzer {
	return &Analyzer{tax: tax}
}

// ResolveTarget builds the target skill set for a request. The
// resolution priority must not be reordered.
func (a *Analyzer) ResolveTarget(req Request) models.TargetSkillSet {
	if len(req.RequiredSkills) > 0 || len(req.PreferredSkills) > 0 {
		return models.TargetSkillSet{
			Required:  req.RequiredSkills,
			Preferred: req.PreferredSkills,
			Source:    models.TargetSourceExplicit,
		}
	}

	if req.JobDescription != "" {
		required, preferred := a.extractFromJobDescription(req.JobDescription)
		return models.TargetSkillSet{
			Required:  required,
			Preferred: preferred,
			Source:    models.TargetSourceJobDescription,
		}
	}

	if req.JobTitle != "" {
		tpl := a.tax.TemplateFor(req.JobTitle)
		return models.TargetSkillSet{
			Required:  tpl.Required,
			Preferred: tpl.Preferred,
			Source:    "role_template_" + tpl.RoleType,
		}
	}

	tpl := a.tax.TemplateFor("Software Engineer")
	return models.TargetSkillSet{
		Required:  tpl.Required,
		Preferred: tpl.Preferred,
		Source:    models.TargetSourceDefault,
	}
}

// Analyze resolves the target and partitions it against the resume's
// skills. Matched and missing lists partition each target subset
// exactly; all comparisons are on lowercase canonical names.
func (a *Analyzer) Analyze(skills models.SkillSet, req Request) models.SkillsGapResult {
	target := a.ResolveTarget(req)

	resume := make(map[string]struct{})
	for _, s := range append(skills.All(), skills.MatchedSkills...) {
		if s != "" {
			resume[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
		}
	}

	required := normalizeList(target.Required)
	preferred := normalizeList(target.Preferred)

	allTargets := make(map[string]struct{}, len(required)+len(preferred))
	for _, s := range required {
		allTargets[s] = struct{}{}
	}
	for _, s := range preferred {
		allTargets[s] = struct{}{}
	}

	matchedRequired, missingRequired := partition(required, resume)
	matchedPreferred, missingPreferred := partition(preferred, resume)

	totalMatched := 0
	for s := range allTargets {
		if _, ok := resume[s]; ok {
			totalMatched++
		}
	}

	// Empty target subsets count as fully covered, but an entirely
	// empty target means nothing to measure, so overall is zero.
	requiredCoverage := 100.0
	if len(required) > 0 {
		requiredCoverage = float64(len(matchedRequired)) / float64(len(required)) * 100
	}
	preferredCoverage := 100.0
	if len(preferred) > 0 {
		preferredCoverage = float64(len(matchedPreferred)) / float64(len(preferred)) * 100
	}
	overallCoverage := 0.0
	if len(allTargets) > 0 {
		overallCoverage = float64(totalMatched) / float64(len(allTargets)) * 100
	}

	var bonus []string
	for s := range resume {
		if _, targeted := allTargets[s]; targeted {
			continue
		}
		if _, valuable := a.tax.ValuableSkills[s]; valuable {
			bonus = append(bonus, s)
		}
	}
	sort.Strings(bonus)

	priority := firstN(missingRequired, maxPriorityRequired)
	priority = append(priority, firstN(missingPreferred, maxPriorityPreferred)...)

	resumeList := make([]string, 0, len(resume))
	for s := range resume {
		resumeList = append(resumeList, s)
	}
	sort.Strings(resumeList)

	return models.SkillsGapResult{
		Source: target.Source,
		Target: models.TargetSkillSet{
			Required:  required,
			Preferred: preferred,
			Source:    target.Source,
		},
		ResumeSkills: resumeList,
		Coverage: models.CoverageAnalysis{
			RequiredCoveragePercent:  round1(requiredCoverage),
			PreferredCoveragePercent: round1(preferredCoverage),
			OverallCoveragePercent:   round1(overallCoverage),
			MatchedRequiredCount:     len(matchedRequired),
			MatchedPreferredCount:    len(matchedPreferred),
			TotalMatchedCount:        totalMatched,
		},
		Breakdown: models.SkillsBreakdown{
			MatchedRequired:  matchedRequired,
			MatchedPreferred: matchedPreferred,
			MissingRequired:  missingRequired,
			MissingPreferred: missingPreferred,
			BonusSkills:      bonus,
		},
		Recommendations:     a.recommendations(missingRequired, missingPreferred, bonus, target.Source),
		PrioritySkillsToAdd: priority,
		GapScore: models.SkillsGapScore{
			Score:       round0(overallCoverage),
			Level:       gapLevel(overallCoverage),
			Description: gapDescription(overallCoverage),
		},
	}
}

// extractFromJobDescription matches the taxonomy (with synonyms)
// against the text and classifies each hit as required or preferred by
// scanning the words around its occurrences for requirement cues. Hits
// with no cue default to required only for a small core-skill
// allowlist. Known approximation: a skill outside that allowlist can
// land in preferred even when the wider text marks it required.
func (a *Analyzer) extractFromJobDescription(jd string) (required, preferred []string) {
	lower := strings.ToLower(jd)

	seen := make(map[string]struct{})
	var found []string
	for _, skill := range a.tax.AllSkills() {
		canonical := a.tax.Canonical(skill)
		if _, dup := seen[canonical]; dup {
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
		if pattern.MatchString(lower) {
			seen[canonical] = struct{}{}
			found = append(found, canonical)
		}
	}
	sort.Strings(found)

	for _, skill := range found {
		context := strings.ToLower(skillContexts(skill, jd))
		switch {
		case containsAny(context, requirementCues):
			required = append(required, skill)
		case containsAny(context, preferenceCues):
			preferred = append(preferred, skill)
		case a.tax.IsCoreSkill(skill):
			required = append(required, skill)
		default:
			preferred = append(preferred, skill)
		}
	}
	return required, preferred
}

// skillContexts joins the windows of text around every occurrence of
// the skill.
func skillContexts(skill, text string) string {
	lower := strings.ToLower(text)
	needle := strings.ToLower(skill)

	var contexts []string
	start := 0
	for {
		pos := strings.Index(lower[start:], needle)
		if pos == -1 {
			break
		}
		pos += start

		from := pos - contextWindow
		if from < 0 {
			from = 0
		}
		to := pos + len(needle) + contextWindow
		if to > len(text) {
			to = len(text)
		}
		contexts = append(contexts, text[from:to])
		start = pos + 1
	}
	return strings.Join(contexts, " ")
}

func (a *Analyzer) recommendations(missingRequired, missingPreferred, bonus []string, source string) models.GapRecommendations {
	recs := models.GapRecommendations{
		LongTerm: []string{
			"Consider cloud certifications (AWS, Azure, GCP)",
			"Learn modern testing frameworks and methodologies",
			"Develop leadership and communication skills",
		},
	}

	for _, skill := range firstN(missingRequired, 3) {
		recs.ImmediatePriority = append(recs.ImmediatePriority, fmt.Sprintf("Add '%s' - critical for role requirements", skill))
	}
	for _, skill := range firstN(missingPreferred, 3) {
		recs.MediumPriority = append(recs.MediumPriority, fmt.Sprintf("Consider learning '%s' - preferred by employers", skill))
	}
	for _, skill := range firstN(bonus, 3) {
		recs.LeverageExisting = append(recs.LeverageExisting, fmt.Sprintf("Highlight '%s' - valuable differentiator", skill))
	}

	switch {
	case source == models.TargetSourceJobDescription:
		recs.SourceNote = []string{"Skills extracted from specific job posting"}
	case strings.HasPrefix(source, "role_template_"):
		roleType := strings.TrimPrefix(source, "role_template_")
		recs.SourceNote = []string{fmt.Sprintf("Based on %s role template", titleCase(strings.ReplaceAll(roleType, "_", " ")))}
	case source == models.TargetSourceExplicit:
		recs.SourceNote = []string{"Based on explicitly provided skill requirements"}
	default:
		recs.SourceNote = []string{"Based on general software engineering expectations"}
	}
	return recs
}

func gapLevel(coverage float64) string {
	switch {
	case coverage >= 80:
		return GapExcellent
	case coverage >= 60:
		return GapGood
	case coverage >= 40:
		return GapModerate
	case coverage >= 20:
		return GapSignificant
	default:
		return GapSubstantial
	}
}

func gapDescription(coverage float64) string {
	switch {
	case coverage >= 80:
		return "Strong skill alignment - excellent match for target role"
	case coverage >= 60:
		return "Good skill foundation - some additional skills would strengthen profile"
	case coverage >= 40:
		return "Moderate skills match - several key areas need development"
	case coverage >= 20:
		return "Significant skills gap - substantial upskilling needed"
	default:
		return "Major skills gap - extensive learning required for target role"
	}
}

// normalizeList lowercases, trims and deduplicates while preserving
// order.
func normalizeList(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	var out []string
	for _, s := range skills {
		clean := strings.ToLower(strings.TrimSpace(s))
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

// partition splits target into skills present in the resume and skills
// absent from it, preserving target order.
func partition(target []string, resume map[string]struct{}) (matched, missing []string) {
	for _, s := range target {
		if _, ok := resume[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func firstN(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return append([]string(nil), list[:n]...)
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round0(v float64) float64 {
	return math.Round(v)
}
