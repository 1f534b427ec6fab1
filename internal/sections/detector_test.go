package sections

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe
github.com/janedoe

PROFESSIONAL EXPERIENCE
Worked as a backend developer at Acme Corp
Managed a team of four and led the migration to the cloud
Developed internal tooling

EDUCATION
Bachelor of Science, State University
GPA 3.8

TECHNICAL SKILLS
Proficient in Go and Python
Experienced with programming distributed systems`

func TestDetectFindsSections(t *testing.T) {
	d := New()

	scan := d.Detect(sampleResume)

	wantTypes := map[string]bool{
		TypeExperience: false,
		TypeEducation:  false,
		TypeSkills:     false,
	}
	for _, s := range scan.Sections {
		if _, ok := wantTypes[s.Type]; ok {
			wantTypes[s.Type] = true
		}
	}
	for typ, found := range wantTypes {
		if !found {
			t.Errorf("section type %q not detected", typ)
		}
	}
}

func TestDetectConfidenceGrowsWithKeywords(t *testing.T) {
	d := New()

	scan := d.Detect(sampleResume)

	var experience *float64
	for _, s := range scan.Sections {
		if s.Type == TypeExperience {
			c := s.Confidence
			experience = &c
			if len(s.KeywordsFound) == 0 {
				t.Error("expected experience keywords to be reported")
			}
		}
	}
	if experience == nil {
		t.Fatal("experience section not detected")
	}
	// worked, managed, led, developed each add 0.05 to the 0.7 base.
	if *experience < 0.85 || *experience > 1.0 {
		t.Errorf("experience confidence = %f, want within [0.85, 1.0]", *experience)
	}
}

func TestDetectConfidenceCap(t *testing.T) {
	d := New()

	text := "EXPERIENCE\nworked responsible managed developed led achieved worked responsible"
	scan := d.Detect(text)
	if len(scan.Sections) == 0 {
		t.Fatal("no sections detected")
	}
	if got := scan.Sections[0].Confidence; got != 1.0 {
		t.Errorf("confidence = %f, want capped at 1.0", got)
	}
}

func TestDetectDeduplicatesByType(t *testing.T) {
	d := New()

	text := "WORK EXPERIENCE\nsome content here\nEMPLOYMENT HISTORY\nmore content here"
	scan := d.Detect(text)

	count := 0
	for _, s := range scan.Sections {
		if s.Type == TypeExperience {
			count++
			if s.Title != "WORK EXPERIENCE" {
				t.Errorf("kept duplicate title %q, want the earliest header", s.Title)
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d experience sections, want 1", count)
	}
}

func TestDetectContactInfo(t *testing.T) {
	d := New()

	scan := d.Detect(sampleResume)
	contact := scan.ContactInfo

	if contact["email"] != "jane.doe@example.com" {
		t.Errorf("email = %q", contact["email"])
	}
	if contact["phone"] == "" || strings.ContainsAny(contact["phone"], "()- .") {
		t.Errorf("phone = %q, want digits only", contact["phone"])
	}
	if contact["linkedin"] != "janedoe" {
		t.Errorf("linkedin = %q, want janedoe", contact["linkedin"])
	}
	if contact["github"] != "janedoe" {
		t.Errorf("github = %q, want janedoe", contact["github"])
	}
}

func TestStructureQuality(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"all essentials plus contact",
			sampleResume,
			QualityExcellent,
		},
		{
			"two essentials",
			"EXPERIENCE\ndid things for a while\nEDUCATION\nstudied for a while",
			QualityGood,
		},
		{
			"one essential",
			"EXPERIENCE\ndid things for a while",
			QualityFair,
		},
		{
			"nothing recognizable",
			"just some text\nwithout any structure at all",
			QualityPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := d.Detect(tt.text)
			if got := scan.Structure.StructureQuality; got != tt.want {
				t.Errorf("structure quality = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructureRecommendations(t *testing.T) {
	d := New()

	scan := d.Detect("EXPERIENCE\ndid things at a company for years")
	recs := scan.Structure.Recommendations

	wantSubstrings := []string{"contact", "education", "skills"}
	for _, want := range wantSubstrings {
		found := false
		for _, r := range recs {
			if strings.Contains(strings.ToLower(r), want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing recommendation mentioning %q in %v", want, recs)
		}
	}
}

func TestContentWindowStopsAtNextHeader(t *testing.T) {
	d := New()

	text := "EXPERIENCE\nfirst body line\nsecond body line\nEDUCATION\nuniversity line"
	scan := d.Detect(text)

	for _, s := range scan.Sections {
		if s.Type == TypeExperience {
			if strings.Contains(s.Content, "university") {
				t.Errorf("experience content leaked into next section: %q", s.Content)
			}
			if !strings.Contains(s.Content, "first body line") {
				t.Errorf("experience content missing body: %q", s.Content)
			}
		}
	}
}
