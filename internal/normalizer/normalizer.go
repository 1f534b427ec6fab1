// Package normalizer cleans raw resume text and derives its line
// structure. The cleaning steps run in a fixed order so that repeated
// normalization of already-clean text is a no-op.
package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fmuoria/resume-insight/internal/models"
)

// Bullet marker styles reported on extracted bullet points.
const (
	StyleUnicodeBullet = "unicode_bullet"
	StyleDash          = "dash"
	StyleAsterisk      = "asterisk"
	StylePlus          = "plus"
	StyleNumbered      = "numbered"
	StyleLettered      = "lettered"
	StyleParenthetical = "parenthetical"
	StyleUnknown       = "unknown"
)

// unusual whitespace characters replaced during cleaning, in a fixed
// order so the operations trace is deterministic.
var whitespaceRules = []struct {
	char        rune
	replacement string
	name        string
}{
	{'\u00a0', " ", "non-breaking space"},
	{'\u2009', " ", "thin space"},
	{'\u200a', " ", "hair space"},
	{'\u2002', " ", "en space"},
	{'\u2003', " ", "em space"},
	{'\u2004', " ", "three-per-em space"},
	{'\u2005', " ", "four-per-em space"},
	{'\u2006', " ", "six-per-em space"},
	{'\u2007', " ", "figure space"},
	{'\u2008', " ", "punctuation space"},
	{'\u200b', "", "zero-width space"},
	{'\u200c', "", "zero-width non-joiner"},
	{'\u200d', "", "zero-width joiner"},
	{'\ufeff', "", "zero-width no-break space"},
}

var (
	hyphenBreakPattern   = regexp.MustCompile(`(\w+)-\s*\n\s*(\w+)`)
	lineEndingPattern    = regexp.MustCompile(`\r\n|\r`)
	trailingSpacePattern = regexp.MustCompile(`(?m)[ \t]+$`)
	multiSpacePattern    = regexp.MustCompile(`[ \t]+`)
	blankRunPattern      = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// headingPatterns match well-known section titles at the start of an
// uppercased line.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(EXPERIENCE|WORK EXPERIENCE|PROFESSIONAL EXPERIENCE|EMPLOYMENT HISTORY|CAREER HISTORY)`),
	regexp.MustCompile(`^(EDUCATION|ACADEMIC BACKGROUND|EDUCATIONAL BACKGROUND|QUALIFICATIONS)`),
	regexp.MustCompile(`^(SKILLS|TECHNICAL SKILLS|CORE COMPETENCIES|EXPERTISE|PROFICIENCIES)`),
	regexp.MustCompile(`^(SUMMARY|PROFESSIONAL SUMMARY|CAREER SUMMARY|PROFILE|OBJECTIVE)`),
	regexp.MustCompile(`^(PROJECTS|KEY PROJECTS|NOTABLE PROJECTS|PROJECT EXPERIENCE)`),
	regexp.MustCompile(`^(CERTIFICATIONS|LICENSES|CREDENTIALS|PROFESSIONAL CERTIFICATIONS)`),
	regexp.MustCompile(`^(AWARDS|HONORS|ACHIEVEMENTS|RECOGNITION)`),
	regexp.MustCompile(`^(CONTACT|CONTACT INFORMATION|PERSONAL DETAILS)`),
	regexp.MustCompile(`^(LANGUAGES|LANGUAGE SKILLS)`),
	regexp.MustCompile(`^(VOLUNTEER|VOLUNTEER EXPERIENCE|COMMUNITY SERVICE)`),
	regexp.MustCompile(`^(REFERENCES|PROFESSIONAL REFERENCES)`),
	regexp.MustCompile(`^(PUBLICATIONS|RESEARCH|PATENTS)`),
}

// bulletMarkers are tried in order; the first match decides the marker
// boundary for a line.
var bulletMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[\x{2022}\x{2023}\x{25E6}\x{2043}\x{204C}]\s+`),
	regexp.MustCompile(`^\s*[-*+]\s+`),
	regexp.MustCompile(`^\s*\d+\.\s+`),
	regexp.MustCompile(`^\s*[a-zA-Z]\.\s+`),
	regexp.MustCompile(`^\s*\([a-zA-Z0-9]+\)\s+`),
}

var bulletStyleChecks = []struct {
	pattern *regexp.Regexp
	style   string
}{
	{regexp.MustCompile(`^\s*[\x{2022}\x{2023}\x{25E6}\x{2043}\x{204C}]`), StyleUnicodeBullet},
	{regexp.MustCompile(`^\s*-`), StyleDash},
	{regexp.MustCompile(`^\s*\*`), StyleAsterisk},
	{regexp.MustCompile(`^\s*\+`), StylePlus},
	{regexp.MustCompile(`^\s*\d+\.`), StyleNumbered},
	{regexp.MustCompile(`^\s*[a-zA-Z]\.`), StyleLettered},
	{regexp.MustCompile(`^\s*\([a-zA-Z0-9]+\)`), StyleParenthetical},
}

// Normalizer cleans raw text and splits it into sections and bullets.
// The zero value is not usable; construct with New.
type Normalizer struct{}

// New creates a text normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize runs the full cleaning pipeline on raw text and returns the
// cleaned text together with its section map, bullet points, statistics
// and an ordered trace of the cleaning operations that fired.
func (n *Normalizer) Normalize(text string) models.NormalizedText {
	normalized := text
	var operations []string

	normalized, ops := cleanWhitespace(normalized)
	operations = append(operations, ops...)

	normalized, ops = collapseHyphenBreaks(normalized)
	operations = append(operations, ops...)

	normalized, ops = normalizeSpacing(normalized)
	operations = append(operations, ops...)

	sections := splitSections(normalized)
	bullets := extractBullets(normalized)

	return models.NormalizedText{
		Original:   text,
		Normalized: normalized,
		Lowercase:  strings.ToLower(normalized),
		Sections:   sections,
		Bullets:    bullets,
		Statistics: buildStatistics(text, normalized, sections, bullets),
		Operations: operations,
	}
}

func cleanWhitespace(text string) (string, []string) {
	var operations []string
	for _, rule := range whitespaceRules {
		if strings.ContainsRune(text, rule.char) {
			text = strings.ReplaceAll(text, string(rule.char), rule.replacement)
			operations = append(operations, fmt.Sprintf("replaced %s", rule.name))
		}
	}
	return text, operations
}

func collapseHyphenBreaks(text string) (string, []string) {
	matches := hyphenBreakPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}
	text = hyphenBreakPattern.ReplaceAllString(text, "$1$2")
	return text, []string{fmt.Sprintf("collapsed %d hyphenated line breaks", len(matches))}
}

func normalizeSpacing(text string) (string, []string) {
	operations := []string{}
	originalLines := strings.Count(text, "\n") + 1

	text = lineEndingPattern.ReplaceAllString(text, "\n")
	text = trailingSpacePattern.ReplaceAllString(text, "")
	operations = append(operations, "removed trailing whitespace")

	text = multiSpacePattern.ReplaceAllString(text, " ")
	operations = append(operations, "collapsed multiple spaces")

	text = blankRunPattern.ReplaceAllString(text, "\n\n")

	newLines := strings.Count(text, "\n") + 1
	if newLines != originalLines {
		operations = append(operations, fmt.Sprintf("normalized line count from %d to %d", originalLines, newLines))
	}
	return strings.TrimSpace(text), operations
}

func splitSections(text string) []models.Section {
	var sections []models.Section
	lines := strings.Split(text, "\n")

	currentTitle := ""
	currentStart := 0
	var currentContent []string
	haveSection := false

	flush := func(end int) {
		sections = append(sections, models.Section{
			Title:     currentTitle,
			Content:   strings.TrimSpace(strings.Join(currentContent, "\n")),
			LineStart: currentStart,
			LineEnd:   end,
			WordCount: len(strings.Fields(strings.Join(currentContent, " "))),
			LineCount: countNonEmpty(currentContent),
		})
	}

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if IsSectionHeading(stripped) {
			if haveSection {
				flush(i - 1)
			}
			currentTitle = stripped
			currentStart = i
			currentContent = nil
			haveSection = true
			continue
		}
		if stripped != "" {
			currentContent = append(currentContent, line)
		}
	}
	if haveSection {
		flush(len(lines) - 1)
	}
	return sections
}

// IsSectionHeading reports whether a trimmed line reads as a section
// title. Besides the curated title list, short all-caps lines, short
// lines ending in a colon, and short title-cased lines qualify.
func IsSectionHeading(line string) bool {
	if len([]rune(line)) < 3 {
		return false
	}

	upper := strings.ToUpper(line)
	for _, p := range headingPatterns {
		if p.MatchString(upper) {
			return true
		}
	}

	words := strings.Fields(line)
	if isUpperCase(line) && len(words) <= 4 {
		return true
	}
	if strings.HasSuffix(line, ":") && len(words) <= 4 {
		return true
	}
	if len(words) <= 4 && len([]rune(line)) < 50 && allTitleCased(words) {
		return true
	}
	return false
}

// isUpperCase mirrors the usual "is upper" string test: at least one
// cased character and no lowercase ones.
func isUpperCase(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func allTitleCased(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func extractBullets(text string) []models.BulletPoint {
	var bullets []models.BulletPoint
	for i, line := range strings.Split(text, "\n") {
		for _, marker := range bulletMarkers {
			loc := marker.FindStringIndex(line)
			if loc == nil {
				continue
			}
			content := strings.TrimSpace(line[loc[1]:])
			if content != "" {
				bullets = append(bullets, models.BulletPoint{
					LineNumber: i + 1,
					FullLine:   line,
					Content:    content,
					Style:      bulletStyle(line),
					WordCount:  len(strings.Fields(content)),
					CharCount:  len([]rune(content)),
				})
			}
			break
		}
	}
	return bullets
}

func bulletStyle(line string) string {
	for _, check := range bulletStyleChecks {
		if check.pattern.MatchString(line) {
			return check.style
		}
	}
	return StyleUnknown
}

func buildStatistics(original, normalized string, sections []models.Section, bullets []models.BulletPoint) models.TextStatistics {
	stats := models.TextStatistics{
		OriginalLength:   len(original),
		NormalizedLength: len(normalized),
		OriginalLines:    strings.Count(original, "\n") + 1,
		NormalizedLines:  strings.Count(normalized, "\n") + 1,
		OriginalWords:    len(strings.Fields(original)),
		NormalizedWords:  len(strings.Fields(normalized)),
		SectionsFound:    len(sections),
		BulletsFound:     len(bullets),
	}
	if len(original) > 0 {
		stats.CompressionRatio = float64(len(normalized)) / float64(len(original))
	}

	seen := make(map[string]struct{})
	for _, b := range bullets {
		if _, ok := seen[b.Style]; !ok {
			seen[b.Style] = struct{}{}
			stats.BulletStyles = append(stats.BulletStyles, b.Style)
		}
	}

	if len(sections) > 0 {
		total := 0
		for _, s := range sections {
			total += s.WordCount
		}
		stats.AvgSectionLength = float64(total) / float64(len(sections))
	}
	if len(bullets) > 0 {
		total := 0
		for _, b := range bullets {
			total += b.WordCount
		}
		stats.AvgBulletLength = float64(total) / float64(len(bullets))
	}
	return stats
}

func countNonEmpty(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
