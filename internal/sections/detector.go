// Package sections labels regions of resume text with one of ten
// section types and grades the overall document structure.
package sections

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fmuoria/resume-insight/internal/models"
)

// Section types reported by the detector.
const (
	TypeContact        = "contact"
	TypeSummary        = "summary"
	TypeExperience     = "experience"
	TypeEducation      = "education"
	TypeSkills         = "skills"
	TypeProjects       = "projects"
	TypeCertifications = "certifications"
	TypeAwards         = "awards"
	TypeLanguages      = "languages"
	TypeReferences     = "references"
)

// Structure quality grades, best to worst.
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityFair      = "fair"
	QualityPoor      = "poor"
)

const (
	baseConfidence  = 0.7
	keywordBoost    = 0.05
	maxKeywordBoost = 0.3
	maxContentLines = 20
	maxConfidence   = 1.0
)

type sectionPattern struct {
	sectionType string
	patterns    []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// sectionPatterns are checked in order per line; the first matching
// pattern decides the type.
var sectionPatterns = []sectionPattern{
	{TypeContact, compileAll(`contact\s+information`, `personal\s+details`, `contact\s+details`, `personal\s+information`)},
	{TypeSummary, compileAll(`professional\s+summary`, `career\s+summary`, `summary\s+of\s+qualifications`, `executive\s+summary`, `profile`, `objective`, `career\s+objective`)},
	{TypeExperience, compileAll(`work\s+experience`, `professional\s+experience`, `employment\s+history`, `career\s+history`, `work\s+history`, `experience`, `employment`)},
	{TypeEducation, compileAll(`education`, `academic\s+background`, `educational\s+background`, `qualifications`, `academic\s+qualifications`)},
	{TypeSkills, compileAll(`technical\s+skills`, `core\s+competencies`, `skills\s+and\s+abilities`, `key\s+skills`, `competencies`, `skills`)},
	{TypeProjects, compileAll(`projects`, `key\s+projects`, `notable\s+projects`, `project\s+experience`)},
	{TypeCertifications, compileAll(`certifications`, `certificates`, `professional\s+certifications`, `licenses\s+and\s+certifications`)},
	{TypeAwards, compileAll(`awards`, `honors`, `achievements`, `recognitions`, `awards\s+and\s+honors`)},
	{TypeLanguages, compileAll(`languages`, `language\s+skills`, `foreign\s+languages`)},
	{TypeReferences, compileAll(`references`, `professional\s+references`, `references\s+available`)},
}

var contactPatterns = map[string]*regexp.Regexp{
	"email":    regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	"phone":    regexp.MustCompile(`(\+?1?[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
	"linkedin": regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)([A-Za-z0-9-]+)`),
	"github":   regexp.MustCompile(`(?i)(?:github\.com/)([A-Za-z0-9-]+)`),
	"website":  regexp.MustCompile(`(?i)(?:https?://)?(www\.)?([A-Za-z0-9-]+\.[A-Za-z]{2,})`),
}

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// confidenceKeywords boost detection confidence when present in the
// section body.
var confidenceKeywords = map[string][]string{
	TypeExperience:     {"worked", "responsible", "managed", "developed", "led", "achieved"},
	TypeEducation:      {"university", "college", "degree", "bachelor", "master", "phd", "gpa"},
	TypeSkills:         {"proficient", "experienced", "knowledge", "familiar", "programming"},
	TypeProjects:       {"project", "developed", "built", "created", "implemented"},
	TypeCertifications: {"certified", "license", "credential", "certification"},
}

// reportedKeywords are the subsets surfaced in section results.
var reportedKeywords = map[string][]string{
	TypeExperience:     {"worked", "responsible", "managed", "developed", "led", "achieved"},
	TypeEducation:      {"university", "college", "degree", "bachelor", "master", "phd"},
	TypeSkills:         {"proficient", "experienced", "knowledge", "programming", "software"},
	TypeProjects:       {"project", "developed", "built", "created", "implemented"},
	TypeCertifications: {"certified", "license", "credential", "certification"},
}

// essentialTypes drive the structure quality grade.
var essentialTypes = []string{TypeExperience, TypeEducation, TypeSkills}

// Detector finds labeled sections in normalized resume text.
type Detector struct{}

// New creates a section detector.
func New() *Detector {
	return &Detector{}
}

// Detect scans the text for section headers, extracts each section's
// content window, pulls top-level contact info and grades the overall
// structure. Duplicate detections of the same type keep the earliest.
func (d *Detector) Detect(text string) models.SectionScan {
	lines := strings.Split(text, "\n")
	var found []models.DetectedSection

	for i, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		sectionType, ok := matchSectionType(clean)
		if !ok {
			continue
		}

		content := extractContent(lines, i)
		found = append(found, models.DetectedSection{
			Type:          sectionType,
			Title:         clean,
			Content:       content,
			StartLine:     i + 1,
			EndLine:       min(i+len(strings.Split(content, "\n")), len(lines)),
			Confidence:    confidence(sectionType, content),
			KeywordsFound: findKeywords(sectionType, content),
			WordCount:     len(strings.Fields(content)),
		})
	}

	unique := dedupe(found)
	contact := extractContactInfo(text)

	return models.SectionScan{
		Sections:    unique,
		ContactInfo: contact,
		Structure:   analyzeStructure(unique, contact),
	}
}

func matchSectionType(line string) (string, bool) {
	for _, sp := range sectionPatterns {
		for _, p := range sp.patterns {
			if p.MatchString(line) {
				return sp.sectionType, true
			}
		}
	}
	return "", false
}

// extractContent collects non-empty lines after the header until the
// next section header or the lookahead cap.
func extractContent(lines []string, headerIndex int) string {
	var content []string
	for i := headerIndex + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if _, isHeader := matchSectionType(line); isHeader && line != "" {
			break
		}
		if line != "" {
			content = append(content, line)
		}
		if len(content) > maxContentLines {
			break
		}
	}
	return strings.Join(content, "\n")
}

func confidence(sectionType, content string) float64 {
	score := baseConfidence
	if keywords, ok := confidenceKeywords[sectionType]; ok {
		lower := strings.ToLower(content)
		hits := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		boost := float64(hits) * keywordBoost
		if boost > maxKeywordBoost {
			boost = maxKeywordBoost
		}
		score += boost
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}

func findKeywords(sectionType, content string) []string {
	keywords, ok := reportedKeywords[sectionType]
	if !ok {
		return nil
	}
	lower := strings.ToLower(content)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// dedupe keeps the earliest detection of each section type.
func dedupe(sections []models.DetectedSection) []models.DetectedSection {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].StartLine < sections[j].StartLine
	})

	seen := make(map[string]struct{})
	var unique []models.DetectedSection
	for _, s := range sections {
		if _, ok := seen[s.Type]; ok {
			continue
		}
		seen[s.Type] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

func extractContactInfo(text string) map[string]string {
	contact := make(map[string]string)

	if m := contactPatterns["email"].FindString(text); m != "" {
		contact["email"] = m
	}
	if m := contactPatterns["phone"].FindString(text); m != "" {
		contact["phone"] = nonPhoneChars.ReplaceAllString(m, "")
	}
	if m := contactPatterns["linkedin"].FindStringSubmatch(text); m != nil {
		contact["linkedin"] = m[1]
	}
	if m := contactPatterns["github"].FindStringSubmatch(text); m != nil {
		contact["github"] = m[1]
	}
	if m := contactPatterns["website"].FindStringSubmatch(text); m != nil {
		contact["website"] = m[2]
	}
	return contact
}

func analyzeStructure(sections []models.DetectedSection, contact map[string]string) models.StructureAnalysis {
	types := make([]string, len(sections))
	for i, s := range sections {
		types[i] = s.Type
	}

	analysis := models.StructureAnalysis{
		TotalSections:   len(sections),
		SectionsFound:   types,
		HasContact:      len(contact) > 0,
		HasExperience:   contains(types, TypeExperience),
		HasEducation:    contains(types, TypeEducation),
		HasSkills:       contains(types, TypeSkills),
		Recommendations: []string{},
	}

	if len(sections) > 0 {
		total := 0.0
		for _, s := range sections {
			total += s.Confidence
		}
		analysis.AvgConfidence = total / float64(len(sections))
	}

	essentials := 0
	for _, e := range essentialTypes {
		if contains(types, e) {
			essentials++
		}
	}
	switch {
	case essentials >= 3 && analysis.HasContact:
		analysis.StructureQuality = QualityExcellent
	case essentials >= 2:
		analysis.StructureQuality = QualityGood
	case essentials >= 1:
		analysis.StructureQuality = QualityFair
	default:
		analysis.StructureQuality = QualityPoor
	}

	if !analysis.HasContact {
		analysis.Recommendations = append(analysis.Recommendations, "Add contact information")
	}
	if !analysis.HasExperience {
		analysis.Recommendations = append(analysis.Recommendations, "Add work experience section")
	}
	if !analysis.HasEducation {
		analysis.Recommendations = append(analysis.Recommendations, "Add education section")
	}
	if !analysis.HasSkills {
		analysis.Recommendations = append(analysis.Recommendations, "Add skills section")
	}
	return analysis
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
