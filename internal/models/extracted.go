package models

// ContactInfo holds optional contact fields. A field is set only when
// its pattern matched, and every set field has a confidence entry.
type ContactInfo struct {
	Name       string             `json:"name,omitempty"`
	Email      string             `json:"email,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	LinkedIn   string             `json:"linkedin,omitempty"`
	GitHub     string             `json:"github,omitempty"`
	Portfolio  string             `json:"portfolio,omitempty"`
	Confidence map[string]float64 `json:"confidence_scores"`
}

// FieldCount returns how many contact fields were found.
func (c ContactInfo) FieldCount() int {
	n := 0
	for _, v := range []string{c.Name, c.Email, c.Phone, c.LinkedIn, c.GitHub, c.Portfolio} {
		if v != "" {
			n++
		}
	}
	return n
}

// Position is one parsed work entry.
type Position struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Experience aggregates parsed positions.
type Experience struct {
	TotalYears      float64    `json:"total_years"`
	Positions       []Position `json:"positions"`
	Companies       []string   `json:"companies"`
	Internships     []Position `json:"internships"`
	FullTimeJobs    []Position `json:"full_time_jobs"`
	CurrentPosition *Position  `json:"current_position,omitempty"`
	CareerLevel     string     `json:"career_level"`
}

// Education aggregates parsed degrees.
type Education struct {
	Degrees         []string `json:"degrees"`
	Institutions    []string `json:"institutions"`
	GraduationYears []int    `json:"graduation_years"`
	HighestDegree   string   `json:"highest_degree,omitempty"`
	EducationLevel  string   `json:"education_level"`
}

// SkillSet maps taxonomy categories to the canonical skills matched in
// the text. MatchedSkills is the deduplicated union across categories.
type SkillSet struct {
	ProgrammingLanguages []string       `json:"programming_languages"`
	WebTechnologies      []string       `json:"web_technologies"`
	Databases            []string       `json:"databases"`
	CloudPlatforms       []string       `json:"cloud_platforms"`
	ToolsFrameworks      []string       `json:"tools_frameworks"`
	SoftSkills           []string       `json:"soft_skills"`
	MatchedSkills        []string       `json:"matched_skills"`
	MissingImportant     []string       `json:"missing_important_skills"`
	CategoryCounts       map[string]int `json:"skill_categories"`
	TotalFound           int            `json:"total_skills_found"`
}

// All returns every matched skill across categories, in category order.
func (s SkillSet) All() []string {
	var out []string
	for _, cat := range [][]string{
		s.ProgrammingLanguages, s.WebTechnologies, s.Databases,
		s.CloudPlatforms, s.ToolsFrameworks, s.SoftSkills,
	} {
		out = append(out, cat...)
	}
	return out
}

// Project is one parsed project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// Projects aggregates parsed project entries.
type Projects struct {
	Projects         []Project `json:"projects"`
	TotalProjects    int       `json:"total_projects"`
	TechnologiesUsed []string  `json:"technologies_used"`
}

// Certification is one parsed certification entry.
type Certification struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	Year     int    `json:"year,omitempty"`
}

// Certifications aggregates parsed certification entries.
type Certifications struct {
	Certifications []Certification `json:"certifications"`
	TotalFound     int             `json:"total_certifications"`
	Providers      []string        `json:"providers"`
	Years          []int           `json:"certification_years"`
}

// RoleInference is the outcome of matching text against role profiles.
type RoleInference struct {
	PrimaryRole        string             `json:"primary_role"`
	Confidence         float64            `json:"confidence"`
	RoleScores         map[string]float64 `json:"role_scores"`
	SupportingKeywords []string           `json:"supporting_keywords"`
}

// SummaryStats condenses the extraction for quick consumption.
type SummaryStats struct {
	TotalExperienceYears float64 `json:"total_experience_years"`
	TotalSkills          int     `json:"total_skills"`
	TotalProjects        int     `json:"total_projects"`
	TotalCertifications  int     `json:"total_certifications"`
	EducationLevel       string  `json:"education_level"`
	CareerLevel          string  `json:"career_level"`
	PrimaryRole          string  `json:"primary_role"`
	ContactCompleteness  float64 `json:"contact_completeness"`
}

// ExtractedData is the full output of the information extractor. Every
// sub-extractor is failure-isolated: a field holds its zero-value shape
// when nothing was found.
type ExtractedData struct {
	ContactInfo    ContactInfo    `json:"contact_info"`
	Experience     Experience     `json:"experience"`
	Education      Education      `json:"education"`
	Skills         SkillSet       `json:"skills"`
	Projects       Projects       `json:"projects"`
	Certifications Certifications `json:"certifications"`
	RoleInference  RoleInference  `json:"role_inference"`
	SummaryStats   SummaryStats   `json:"summary_stats"`
}
