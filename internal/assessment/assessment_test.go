package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadline(t *testing.T) {
	tests := []struct {
		name          string
		headline      string
		formula       string
		effectiveness int
	}{
		{"empty", "", FormulaBasic, 0},
		{"single", "Engineer", FormulaBasic, 25},
		{"two segments", "Engineer | Fintech", FormulaNiche, 50},
		{"three segments long", "Staff Engineer | Payments infrastructure · Helping teams ship safely", FormulaFull, 90},
		{"capped", "A | B | C | D | E and a long enough tail to pass forty chars", FormulaFull, 95},
		{"separators only", " | , ", FormulaBasic, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Headline(tt.headline)
			assert.Equal(t, tt.formula, result.Formula)
			assert.Equal(t, tt.effectiveness, result.Effectiveness, "Headline(%q).Effectiveness = %d, want %d", tt.headline, result.Effectiveness, tt.effectiveness)
		})
	}
}

func TestHeadline_Suggestion(t *testing.T) {
	assert.Contains(t, Headline("Engineer").Suggestion, "value proposition")
	assert.Contains(t, Headline("Staff Engineer | Payments infrastructure · Helping teams ship safely").Suggestion, "A/B testing")
}

func TestAbout(t *testing.T) {
	long := "I help early-stage founders turn messy onboarding into activation. " +
		strings.Repeat("Ten years of product work across B2B SaaS. ", 4) +
		"Book a call via the link below."

	tests := []struct {
		name      string
		text      string
		hook      bool
		cta       bool
		structure string
		score     int
	}{
		{"empty", "", false, false, StructureFlat, 0},
		{"short flat", "engineer", false, false, StructureFlat, 10},
		{"short hook", "Engineer", true, false, StructureHook, 35},
		{"cta only", "reach out anytime, happy to chat about infra", false, true, StructureCTAOnly, 35},
		{"full", long, true, true, StructureFull, 100},
		{"emoji hook", "🚀 building things", true, false, StructureHook, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := About(tt.text)
			assert.Equal(t, tt.hook, result.HasHook)
			assert.Equal(t, tt.cta, result.HasCTA)
			assert.Equal(t, tt.structure, result.Structure)
			assert.Equal(t, tt.score, result.Score)
		})
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		name     string
		has      bool
		texts    []string
		action   bool
		metrics  bool
		expected int
	}{
		{"nothing", false, nil, false, false, 20},
		{"listed only", true, []string{"Engineer at Acme"}, false, false, 65},
		{"action verb", true, []string{"Led the platform team."}, true, false, 80},
		{"metrics", false, []string{"Revenue up 40%"}, false, true, 35},
		{"both", true, []string{"Built payments", "grew ARR 3x"}, true, true, 95},
		{"verb inside word ignored", false, []string{"misled"}, false, false, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Experience(tt.has, tt.texts...)
			assert.Equal(t, tt.action, result.ActionOriented)
			assert.Equal(t, tt.metrics, result.MetricsUsed)
			assert.Equal(t, tt.expected, result.Score)
		})
	}
}

func TestBanner(t *testing.T) {
	assert.Equal(t, 70, Banner(true, true).Score)
	assert.True(t, Banner(true, true).HasBanner)
	assert.Equal(t, 15, Banner(true, false).Score)
	assert.Equal(t, 50, Banner(false, false).Score)
	assert.False(t, Banner(false, true).HasBanner)
}

func TestFeatured(t *testing.T) {
	section := Featured([]string{"link", "post", "link", " "})
	assert.True(t, section.HasItems)
	assert.Equal(t, 4, section.Count)
	assert.Equal(t, []string{"link", "post"}, section.Types)

	empty := Featured(nil)
	assert.False(t, empty.HasItems)
	assert.NotNil(t, empty.Types)
}

func TestCompleteness(t *testing.T) {
	assert.Equal(t, 0, Completeness())
	assert.Equal(t, 100, Completeness(true, true))
	assert.Equal(t, 57, Completeness(true, true, true, true, false, false, false))
	assert.Equal(t, 0, Completeness(false, false))
}
