// Package taxonomy holds the curated lookup tables shared by every
// analysis stage: the skills database, synonym table, role profiles and
// templates, degree ladder, and action verb lists. The tables are built
// once, treated as immutable, and injected into stages at construction
// time so all of them canonicalize skills the same way.
package taxonomy

import "strings"

// Version identifies the curated table revision embedded in the binary.
const Version = "2024.2"

// Skill categories, in the fixed iteration order used by extractors.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryWebTechnologies      = "web_technologies"
	CategoryDatabases            = "databases"
	CategoryCloudPlatforms       = "cloud_platforms"
	CategoryToolsFrameworks      = "tools_frameworks"
	CategorySoftSkills           = "soft_skills"
)

// Categories lists the skill categories in canonical order.
var Categories = []string{
	CategoryProgrammingLanguages,
	CategoryWebTechnologies,
	CategoryDatabases,
	CategoryCloudPlatforms,
	CategoryToolsFrameworks,
	CategorySoftSkills,
}

// RoleTemplate is a predefined required/preferred skill list keyed by
// job-title keywords.
type RoleTemplate struct {
	RoleType  string
	Keywords  []string
	Required  []string
	Preferred []string
}

// RoleProfile scores resumes against a role by keyword hits.
type RoleProfile struct {
	Name     string
	Keywords []string
}

// Taxonomy is the shared, read-only lookup table set. Safe for
// unsynchronized concurrent reads.
type Taxonomy struct {
	// Skills maps category name to canonical skill names.
	Skills map[string][]string

	// Synonyms maps a lowercase canonical skill to lowercase variants
	// that resolve to it before matching.
	Synonyms map[string][]string

	// ImportantSkills are high-demand skills reported as missing when
	// absent from a resume.
	ImportantSkills []string

	// RoleProfiles are scored in order during role inference; ties
	// resolve to the earlier profile.
	RoleProfiles []RoleProfile

	// RoleTemplates are matched in order against a job title; the
	// final entry is the default software engineer template.
	RoleTemplates []RoleTemplate

	// DegreeLadder maps degree spellings to hierarchy levels
	// (4 doctorate, 3 masters, 2 bachelors, 1 diploma).
	DegreeLadder map[string]int

	// CertificationProviders are recognized issuer names.
	CertificationProviders []string

	// StrongVerbs, ModerateVerbs and WeakPhrases classify the opening
	// words of bullet points.
	StrongVerbs   []string
	ModerateVerbs []string
	WeakPhrases   []string

	// CoreSkills is the small allowlist that defaults to "required"
	// when a job description gives no requirement-language cue. Known
	// approximation: skills outside this list may be classified
	// preferred even when marked required elsewhere in the text.
	CoreSkills []string

	// ValuableSkills filters bonus skills down to recognized ones.
	ValuableSkills map[string]struct{}
}

// Canonical resolves a lowercase skill variant to its canonical
// lowercase spelling, or returns the input unchanged.
func (t *Taxonomy) Canonical(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	for canonical, variants := range t.Synonyms {
		if s == canonical {
			return canonical
		}
		for _, v := range variants {
			if s == v {
				return canonical
			}
		}
	}
	return s
}

// AllSkills returns every canonical skill across categories plus every
// synonym variant, deduplicated.
func (t *Taxonomy) AllSkills() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	for _, cat := range Categories {
		for _, s := range t.Skills[cat] {
			add(s)
			for _, v := range t.Synonyms[strings.ToLower(s)] {
				add(v)
			}
		}
	}
	return out
}

// TemplateFor returns the first role template whose keywords match the
// job title, or the default template when none match or the title is
// empty.
func (t *Taxonomy) TemplateFor(jobTitle string) RoleTemplate {
	title := strings.ToLower(jobTitle)
	for _, tpl := range t.RoleTemplates {
		for _, kw := range tpl.Keywords {
			if strings.Contains(title, kw) {
				return tpl
			}
		}
	}
	return t.RoleTemplates[len(t.RoleTemplates)-1]
}

// IsCoreSkill reports whether the skill is on the required-by-default
// allowlist used by job-description classification.
func (t *Taxonomy) IsCoreSkill(skill string) bool {
	s := strings.ToLower(strings.TrimSpace(skill))
	for _, c := range t.CoreSkills {
		if s == c {
			return true
		}
	}
	return false
}
