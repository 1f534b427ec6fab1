package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizeCleansUnusualWhitespace(t *testing.T) {
	n := New()

	result := n.Normalize("Hello\u00a0World\u200b!")
	if result.Normalized != "Hello World!" {
		t.Errorf("Normalized = %q, want %q", result.Normalized, "Hello World!")
	}
	if len(result.Operations) == 0 {
		t.Error("expected cleaning operations to be recorded")
	}
}

func TestNormalizeRemovesZeroWidthRunes(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
	}{
		{"zero-width space", "Jane\u200bDoe"},
		{"zero-width non-joiner", "Jane\u200cDoe"},
		{"zero-width joiner", "Jane\u200dDoe"},
		{"zero-width no-break space", "\ufeffJane\ufeffDoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input).Normalized; got != "JaneDoe" {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, "JaneDoe")
			}
		})
	}
}

func TestNormalizeCollapsesHyphenatedBreaks(t *testing.T) {
	n := New()

	result := n.Normalize("Built a micro-\nservices platform")
	if !strings.Contains(result.Normalized, "microservices") {
		t.Errorf("hyphenated break not collapsed: %q", result.Normalized)
	}
}

func TestNormalizeSpacing(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"windows line endings", "a\r\nb", "a\nb"},
		{"trailing whitespace", "line one   \nline two", "line one\nline two"},
		{"repeated spaces", "too    many   spaces", "too many spaces"},
		{"blank line runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input).Normalized; got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := New()

	raw := "JANE DOE\u00a0\nEXPERIENCE\n• Built a ser-\nvice   handling 1M requests\n\n\n\nEDUCATION\nB.Sc Computer Science"
	first := n.Normalize(raw)
	second := n.Normalize(first.Normalized)

	if second.Normalized != first.Normalized {
		t.Errorf("second pass changed text:\nfirst:  %q\nsecond: %q", first.Normalized, second.Normalized)
	}
}

func TestIsSectionHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"known title", "WORK EXPERIENCE", true},
		{"known title mixed case", "Professional Experience", true},
		{"all caps short", "MY THINGS", true},
		{"colon suffix", "Technical Skills:", true},
		{"title case short", "Key Projects", true},
		{"too short", "AB", false},
		{"long prose", "I worked on many projects during my time at the company", false},
		{"lowercase sentence", "worked on backend systems", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSectionHeading(tt.line); got != tt.want {
				t.Errorf("IsSectionHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestNormalizeSplitsSections(t *testing.T) {
	n := New()

	raw := "EXPERIENCE\nDid backend work at a startup\nShipped features to production users\nEDUCATION\ngraduated from state university in 2019"
	result := n.Normalize(raw)

	if len(result.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(result.Sections))
	}
	exp := result.Sections[0]
	if exp.Title != "EXPERIENCE" {
		t.Errorf("first section title = %q, want EXPERIENCE", exp.Title)
	}
	if exp.LineStart != 0 || exp.LineEnd != 2 {
		t.Errorf("first section lines = [%d, %d], want [0, 2]", exp.LineStart, exp.LineEnd)
	}
	if exp.LineCount != 2 {
		t.Errorf("first section line count = %d, want 2", exp.LineCount)
	}
	if result.Sections[1].Title != "EDUCATION" {
		t.Errorf("second section title = %q, want EDUCATION", result.Sections[1].Title)
	}
}

func TestNormalizeExtractsBullets(t *testing.T) {
	n := New()

	tests := []struct {
		name      string
		line      string
		wantStyle string
	}{
		{"unicode bullet", "• Led the platform team", StyleUnicodeBullet},
		{"dash", "- Reduced latency by 40%", StyleDash},
		{"asterisk", "* Wrote integration tests", StyleAsterisk},
		{"plus", "+ Mentored juniors", StylePlus},
		{"numbered", "1. Designed the schema", StyleNumbered},
		{"lettered", "a. Migrated the database", StyleLettered},
		{"parenthetical", "(1) Shipped the mobile app", StyleParenthetical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := n.Normalize(tt.line)
			if len(result.Bullets) != 1 {
				t.Fatalf("got %d bullets, want 1", len(result.Bullets))
			}
			b := result.Bullets[0]
			if b.Style != tt.wantStyle {
				t.Errorf("style = %q, want %q", b.Style, tt.wantStyle)
			}
			if b.LineNumber != 1 {
				t.Errorf("line number = %d, want 1", b.LineNumber)
			}
			if strings.HasPrefix(b.Content, "-") || strings.HasPrefix(b.Content, "•") {
				t.Errorf("marker not stripped from content: %q", b.Content)
			}
		})
	}
}

func TestNormalizeStatistics(t *testing.T) {
	n := New()

	raw := "EXPERIENCE\n• Built things\n- Fixed things"
	result := n.Normalize(raw)
	stats := result.Statistics

	if stats.OriginalLength != len(raw) {
		t.Errorf("original length = %d, want %d", stats.OriginalLength, len(raw))
	}
	if stats.CompressionRatio <= 0 || stats.CompressionRatio > 1 {
		t.Errorf("compression ratio = %f, want within (0, 1]", stats.CompressionRatio)
	}
	if stats.BulletsFound != 2 {
		t.Errorf("bullets found = %d, want 2", stats.BulletsFound)
	}
	if len(stats.BulletStyles) != 2 {
		t.Errorf("bullet styles = %v, want two distinct styles", stats.BulletStyles)
	}
	if stats.SectionsFound != 1 {
		t.Errorf("sections found = %d, want 1", stats.SectionsFound)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := New()

	result := n.Normalize("")
	if result.Normalized != "" {
		t.Errorf("Normalized = %q, want empty", result.Normalized)
	}
	if result.Statistics.CompressionRatio != 0 {
		t.Errorf("compression ratio = %f, want 0 for empty input", result.Statistics.CompressionRatio)
	}
	if len(result.Sections) != 0 || len(result.Bullets) != 0 {
		t.Error("expected no sections or bullets for empty input")
	}
}
