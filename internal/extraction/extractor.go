// Package extraction pulls structured data out of normalized resume
// text: contact details, experience, education, skills, projects,
// certifications and a likely role. Sub-extractors are isolated; one
// finding nothing leaves its zero-value shape in the result.
package extraction

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/fmuoria/resume-insight/internal/models"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

// Career levels by total years of experience.
const (
	CareerEntry  = "entry"
	CareerJunior = "junior"
	CareerMid    = "mid"
	CareerSenior = "senior"
)

// Education levels derived from the degree ladder.
const (
	EducationDoctorate = "doctorate"
	EducationMasters   = "masters"
	EducationBachelors = "bachelors"
	EducationDiploma   = "diploma"
	EducationUnknown   = "unknown"
)

// Contact field confidence values.
const (
	confidenceEmail     = 0.95
	confidencePhone     = 0.90
	confidenceLinkedIn  = 0.95
	confidenceGitHub    = 0.95
	confidencePortfolio = 0.80
)

var (
	emailPattern    = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d[\d\-\s()]{7,15})`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w\-]+/?`)
	websitePattern  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[\w\-]+\.[\w\-]+(?:/[\w\-/]*)?`)
	yearPattern     = regexp.MustCompile(`\b20\d{2}\b`)

	// positionPattern matches entries like
	// "Software Engineer at Acme Corp (2019-2022)" or
	// "Backend Developer at Initech (2021 - Present)".
	positionPattern = regexp.MustCompile(`(?im)^(.{2,80}?)\s+at\s+(.{2,60}?)\s*\((\d{4})\s*[-–]\s*(\d{4}|Present|Current)\)\s*$`)

	digitsRunPattern = regexp.MustCompile(`@|[\d\-()+\s]{8,}`)
)

// socialDomains are excluded when looking for a portfolio URL.
var socialDomains = []string{"linkedin", "github", "facebook", "twitter", "instagram"}

var internshipKeywords = []string{"intern", "internship", "trainee", "summer", "co-op"}

var skippedHeaderLines = map[string]struct{}{
	"RESUME": {}, "CV": {}, "CURRICULUM VITAE": {}, "CONTACT": {}, "CONTACT INFORMATION": {},
}

// Extractor performs dictionary and pattern based information
// extraction using a shared taxonomy.
type Extractor struct {
	tax           *taxonomy.Taxonomy
	skillPatterns map[string][]skillPattern
	now           func() time.Time
}

type skillPattern struct {
	skill   string
	pattern *regexp.Regexp
}

// New creates an extractor over the given taxonomy. Skill matchers are
// compiled once up front.
func New(tax *taxonomy.Taxonomy) *Extractor {
	patterns := make(map[string][]skillPattern, len(taxonomy.Categories))
	for _, cat := range taxonomy.Categories {
		for _, skill := range tax.Skills[cat] {
			patterns[cat] = append(patterns[cat], skillPattern{
				skill:   skill,
				pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`),
			})
		}
	}
	return &Extractor{tax: tax, skillPatterns: patterns, now: time.Now}
}

// Extract runs every sub-extractor over the text and assembles the
// summary statistics.
func (e *Extractor) Extract(text string) models.ExtractedData {
	data := models.ExtractedData{
		ContactInfo:    e.ExtractContactInfo(text),
		Experience:     e.ExtractExperience(text),
		Education:      e.ExtractEducation(text),
		Skills:         e.ExtractSkills(text),
		Projects:       e.ExtractProjects(text),
		Certifications: e.ExtractCertifications(text),
		RoleInference:  e.InferRole(text),
	}
	data.SummaryStats = models.SummaryStats{
		TotalExperienceYears: data.Experience.TotalYears,
		TotalSkills:          data.Skills.TotalFound,
		TotalProjects:        data.Projects.TotalProjects,
		TotalCertifications:  data.Certifications.TotalFound,
		EducationLevel:       data.Education.EducationLevel,
		CareerLevel:          data.Experience.CareerLevel,
		PrimaryRole:          data.RoleInference.PrimaryRole,
		ContactCompleteness:  float64(data.ContactInfo.FieldCount()) / 6,
	}
	return data
}

// ExtractContactInfo finds contact fields and records a confidence for
// each one found.
func (e *Extractor) ExtractContactInfo(text string) models.ContactInfo {
	contact := models.ContactInfo{Confidence: make(map[string]float64)}

	contact.Name = extractName(strings.Split(text, "\n"))

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = strings.TrimSpace(m)
		contact.Confidence["email"] = confidenceEmail
	}
	if m := phonePattern.FindString(text); m != "" {
		contact.Phone = strings.TrimSpace(m)
		contact.Confidence["phone"] = confidencePhone
	}
	if m := linkedinPattern.FindString(text); m != "" {
		contact.LinkedIn = strings.TrimSpace(m)
		contact.Confidence["linkedin"] = confidenceLinkedIn
	}
	if m := githubPattern.FindString(text); m != "" {
		contact.GitHub = strings.TrimSpace(m)
		contact.Confidence["github"] = confidenceGitHub
	}
	if m := websitePattern.FindString(text); m != "" {
		url := strings.TrimSpace(m)
		if !containsAnyDomain(url, socialDomains) {
			contact.Portfolio = url
			contact.Confidence["portfolio"] = confidencePortfolio
		}
	}
	return contact
}

// extractName looks at the first few lines for something shaped like a
// personal name: two to four capitalized words, no contact noise.
func extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		clean := strings.TrimSpace(line)
		if len(clean) < 3 {
			continue
		}
		if _, skip := skippedHeaderLines[strings.ToUpper(clean)]; skip {
			continue
		}
		if digitsRunPattern.MatchString(clean) {
			continue
		}
		words := strings.Fields(clean)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allNameWords(words) {
			return clean
		}
	}
	return ""
}

func allNameWords(words []string) bool {
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' {
				return false
			}
		}
	}
	return true
}

// ExtractExperience parses the experience section into positions,
// companies, a total-year estimate and a career level.
func (e *Extractor) ExtractExperience(text string) models.Experience {
	exp := models.Experience{CareerLevel: CareerEntry}

	section := findSection(text, []string{"experience", "work experience", "professional experience", "employment"})
	if section == "" {
		return exp
	}

	positions := e.parsePositions(section)
	for _, p := range positions {
		if isInternship(p.Title, p.Description) {
			exp.Internships = append(exp.Internships, p)
		} else {
			exp.FullTimeJobs = append(exp.FullTimeJobs, p)
		}
		exp.Positions = append(exp.Positions, p)
		if p.Company != "" && !containsString(exp.Companies, p.Company) {
			exp.Companies = append(exp.Companies, p.Company)
		}
	}

	exp.TotalYears = e.totalYears(positions)
	exp.CareerLevel = careerLevel(exp.TotalYears)

	for i := range positions {
		if positions[i].Current {
			exp.CurrentPosition = &positions[i]
			break
		}
	}
	return exp
}

// parsePositions finds "Title at Company (YYYY-YYYY)" entries and
// attaches the lines up to the next entry as the description.
func (e *Extractor) parsePositions(section string) []models.Position {
	matches := positionPattern.FindAllStringSubmatchIndex(section, -1)
	var positions []models.Position

	for i, m := range matches {
		title := strings.TrimSpace(section[m[2]:m[3]])
		company := strings.TrimSpace(section[m[4]:m[5]])
		startYear := atoiYear(section[m[6]:m[7]])
		endToken := section[m[8]:m[9]]

		pos := models.Position{
			Title:     title,
			Company:   company,
			StartYear: startYear,
		}
		if isCurrentToken(endToken) {
			pos.Current = true
		} else {
			pos.EndYear = atoiYear(endToken)
		}

		descStart := m[1]
		descEnd := len(section)
		if i+1 < len(matches) {
			descEnd = matches[i+1][0]
		}
		pos.Description = strings.TrimSpace(section[descStart:descEnd])

		positions = append(positions, pos)
	}
	return positions
}

// totalYears sums position durations after merging overlapping year
// ranges, so concurrent roles do not double count.
func (e *Extractor) totalYears(positions []models.Position) float64 {
	currentYear := e.now().Year()

	type span struct{ start, end int }
	var spans []span
	for _, p := range positions {
		if p.StartYear == 0 {
			continue
		}
		end := p.EndYear
		if p.Current {
			end = currentYear
		}
		if end < p.StartYear {
			continue
		}
		spans = append(spans, span{p.StartYear, end})
	}
	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	total += cur.end - cur.start
	return float64(total)
}

func careerLevel(years float64) string {
	switch {
	case years < 1:
		return CareerEntry
	case years < 3:
		return CareerJunior
	case years < 7:
		return CareerMid
	default:
		return CareerSenior
	}
}

func isInternship(title, description string) bool {
	combined := strings.ToLower(title + " " + description)
	for _, kw := range internshipKeywords {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

// ExtractEducation finds degrees, institutions and graduation years in
// the education section.
func (e *Extractor) ExtractEducation(text string) models.Education {
	edu := models.Education{EducationLevel: EducationUnknown}

	section := findSection(text, []string{"education", "academic", "qualification"})
	if section == "" {
		return edu
	}

	for degree := range e.tax.DegreeLadder {
		p := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(degree) + `\b`)
		if p.MatchString(section) {
			edu.Degrees = append(edu.Degrees, degree)
		}
	}
	sort.Strings(edu.Degrees)

	edu.Institutions = extractInstitutions(section)

	for _, y := range yearPattern.FindAllString(section, -1) {
		edu.GraduationYears = append(edu.GraduationYears, atoiYear(y))
	}

	if len(edu.Degrees) > 0 {
		edu.HighestDegree = e.highestDegree(edu.Degrees)
		edu.EducationLevel = e.educationLevel(edu.HighestDegree)
	}
	return edu
}

var institutionMarkers = []string{"university", "college", "institute", "school of", "polytechnic"}

func extractInstitutions(section string) []string {
	var out []string
	for _, line := range strings.Split(section, "\n") {
		clean := strings.TrimSpace(line)
		lower := strings.ToLower(clean)
		for _, marker := range institutionMarkers {
			if strings.Contains(lower, marker) {
				if !containsString(out, clean) {
					out = append(out, clean)
				}
				break
			}
		}
	}
	return out
}

func (e *Extractor) highestDegree(degrees []string) string {
	highest := degrees[0]
	highestLevel := 0
	for _, d := range degrees {
		if level := e.tax.DegreeLadder[d]; level > highestLevel {
			highestLevel = level
			highest = d
		}
	}
	return highest
}

func (e *Extractor) educationLevel(highestDegree string) string {
	switch level := e.tax.DegreeLadder[highestDegree]; {
	case level >= 4:
		return EducationDoctorate
	case level >= 3:
		return EducationMasters
	case level >= 2:
		return EducationBachelors
	default:
		return EducationDiploma
	}
}

// ExtractSkills matches the whole text against the skills database
// using word-boundary patterns, category by category.
func (e *Extractor) ExtractSkills(text string) models.SkillSet {
	skills := models.SkillSet{CategoryCounts: make(map[string]int)}
	lower := strings.ToLower(text)

	byCategory := map[string]*[]string{
		taxonomy.CategoryProgrammingLanguages: &skills.ProgrammingLanguages,
		taxonomy.CategoryWebTechnologies:      &skills.WebTechnologies,
		taxonomy.CategoryDatabases:            &skills.Databases,
		taxonomy.CategoryCloudPlatforms:       &skills.CloudPlatforms,
		taxonomy.CategoryToolsFrameworks:      &skills.ToolsFrameworks,
		taxonomy.CategorySoftSkills:           &skills.SoftSkills,
	}

	for _, cat := range taxonomy.Categories {
		target := byCategory[cat]
		for _, sp := range e.skillPatterns[cat] {
			if sp.pattern.MatchString(lower) {
				*target = append(*target, sp.skill)
				skills.MatchedSkills = append(skills.MatchedSkills, sp.skill)
			}
		}
		skills.CategoryCounts[cat] = len(*target)
	}
	skills.TotalFound = len(skills.MatchedSkills)

	for _, important := range e.tax.ImportantSkills {
		if !containsString(skills.MatchedSkills, important) {
			skills.MissingImportant = append(skills.MissingImportant, important)
		}
	}
	return skills
}

// ExtractProjects parses the projects section. Each bullet or titled
// line becomes a project; technologies come from substring matches
// against the skills database.
func (e *Extractor) ExtractProjects(text string) models.Projects {
	projects := models.Projects{}

	section := findSection(text, []string{"project", "portfolio", "work"})
	if section == "" {
		return projects
	}

	lines := strings.Split(section, "\n")
	for _, line := range lines[1:] {
		clean := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*+• "))
		if clean == "" || len(clean) < 10 {
			continue
		}

		name := clean
		description := clean
		for _, sep := range []string{":", " - ", " – "} {
			if idx := strings.Index(clean, sep); idx > 0 {
				name = strings.TrimSpace(clean[:idx])
				description = strings.TrimSpace(clean[idx+len(sep):])
				break
			}
		}
		if len(strings.Fields(name)) > 8 {
			name = strings.Join(strings.Fields(name)[:8], " ")
		}

		projects.Projects = append(projects.Projects, models.Project{
			Name:         name,
			Description:  description,
			Technologies: e.technologiesIn(description),
		})
	}

	projects.TotalProjects = len(projects.Projects)

	seen := make(map[string]struct{})
	for _, p := range projects.Projects {
		for _, tech := range p.Technologies {
			if _, ok := seen[tech]; !ok {
				seen[tech] = struct{}{}
				projects.TechnologiesUsed = append(projects.TechnologiesUsed, tech)
			}
		}
	}
	return projects
}

func (e *Extractor) technologiesIn(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, cat := range taxonomy.Categories {
		for _, skill := range e.tax.Skills[cat] {
			if strings.Contains(lower, strings.ToLower(skill)) {
				out = append(out, skill)
			}
		}
	}
	return out
}

// ExtractCertifications parses the certifications section line by line,
// recognizing known providers and certification years.
func (e *Extractor) ExtractCertifications(text string) models.Certifications {
	certs := models.Certifications{}

	section := findSection(text, []string{"certification", "certificate", "course", "training"})
	if section == "" {
		return certs
	}

	lines := strings.Split(section, "\n")
	for _, line := range lines[1:] {
		clean := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*+• "))
		if clean == "" || len(clean) < 5 {
			continue
		}

		cert := models.Certification{Name: clean}
		lower := strings.ToLower(clean)
		for _, provider := range e.tax.CertificationProviders {
			if strings.Contains(lower, strings.ToLower(provider)) {
				cert.Provider = provider
				break
			}
		}
		if y := yearPattern.FindString(clean); y != "" {
			cert.Year = atoiYear(y)
		}
		certs.Certifications = append(certs.Certifications, cert)
	}

	certs.TotalFound = len(certs.Certifications)
	for _, c := range certs.Certifications {
		if c.Provider != "" && !containsString(certs.Providers, c.Provider) {
			certs.Providers = append(certs.Providers, c.Provider)
		}
		if c.Year != 0 && !containsInt(certs.Years, c.Year) {
			certs.Years = append(certs.Years, c.Year)
		}
	}
	return certs
}

// InferRole scores the text against every role profile. The score per
// role is the fraction of its keywords found; ties keep the earlier
// profile.
func (e *Extractor) InferRole(text string) models.RoleInference {
	role := models.RoleInference{
		PrimaryRole: "unknown",
		RoleScores:  make(map[string]float64),
	}
	lower := strings.ToLower(text)

	for _, profile := range e.tax.RoleProfiles {
		var found []string
		for _, kw := range profile.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		score := float64(len(found)) / float64(len(profile.Keywords))
		role.RoleScores[profile.Name] = score

		if score > role.Confidence {
			role.Confidence = score
			role.PrimaryRole = titleCase(strings.ReplaceAll(profile.Name, "_", " "))
			role.SupportingKeywords = found
		}
	}
	return role
}

// findSection locates a section by keyword. Keywords are tried in
// priority order, so "project" wins over "work" even when a work
// section appears earlier. The section runs from the matched line to
// the next header-looking line.
func findSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")

	start := -1
	for _, kw := range keywords {
		for i, line := range lines {
			clean := strings.ToLower(strings.TrimSpace(line))
			if strings.Contains(clean, kw) {
				start = i
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if looksLikeHeader(strings.TrimSpace(lines[i])) {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

var commonHeaderWords = []string{"experience", "education", "skills", "projects", "certifications", "contact"}

func looksLikeHeader(line string) bool {
	if len(line) < 3 {
		return false
	}
	lower := strings.ToLower(line)
	if isAllUpper(line) {
		return true
	}
	for _, w := range commonHeaderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return strings.HasSuffix(line, ":")
}

func isAllUpper(s string) bool {
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

func isCurrentToken(s string) bool {
	s = strings.ToLower(s)
	return s == "present" || s == "current"
}

func atoiYear(s string) int {
	year := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func containsAnyDomain(url string, domains []string) bool {
	lower := strings.ToLower(url)
	for _, d := range domains {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

func containsInt(list []int, want int) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
