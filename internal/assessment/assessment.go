// Package assessment rates the static parts of a profile: headline, about/bio,
// experience framing, banner, featured section and overall completeness.
package assessment

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	// maxHeadlineScore keeps a headline short of perfect; testing variations always helps.
	maxHeadlineScore     = 95
	headlineSegmentValue = 25
	headlineLengthBonus  = 15
	headlineLongChars    = 40
	strongHeadlineScore  = 70

	aboutHookValue = 25
	aboutCTAValue  = 25

	experienceBase   = 65
	noExperienceBase = 20
	framingBonus     = 15

	bannerPresentScore = 70
	bannerMissingScore = 15
	bannerUnknownScore = 50
)

// Headline formula labels.
const (
	FormulaFull  = "Role + Niche + Value"
	FormulaNiche = "Role + Niche"
	FormulaBasic = "Basic"
)

// About structure labels.
const (
	StructureFull    = "Hook → Story → CTA"
	StructureHook    = "Hook → Content"
	StructureCTAOnly = "Content → CTA"
	StructureFlat    = "Flat"
)

var (
	headlineSep = regexp.MustCompile(`[|·•,]`)
	ctaRe       = regexp.MustCompile(`(?i)\b(contact|reach|email|book|schedule|connect|dm|link|visit|follow|subscribe|join)\b`)
	metricsRe   = regexp.MustCompile(`(?i)\d+%|\$\d|\b\d+x\b|\bmillion\b|\bthousand\b|\d+\+`)
)

// hookEmoji are attention-grabbing openers.
var hookEmoji = map[rune]bool{'🔥': true, '🚀': true, '💡': true, '✨': true, '👋': true}

// actionVerbs are outcome verbs that signal action-oriented framing.
var actionVerbs = map[string]bool{
	"led": true, "built": true, "building": true, "grew": true, "launched": true,
	"increased": true, "managed": true, "created": true, "designed": true,
	"developed": true, "shipped": true, "scaled": true, "founded": true,
	"achieved": true, "delivered": true, "improved": true, "reduced": true,
}

// Completeness is the share of present checklist items, as a rounded percentage.
func Completeness(checklist ...bool) int {
	if len(checklist) == 0 {
		return 0
	}
	present := 0
	for _, ok := range checklist {
		if ok {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(checklist)) * 100))
}

// Headline rates a headline by how many delimiter-separated segments it has.
func Headline(text string) types.HeadlineAnalysis {
	segments := 0
	for _, part := range headlineSep.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			segments++
		}
	}

	score := 0
	if segments > 0 {
		score = segments * headlineSegmentValue
		if utf8.RuneCountInString(strings.TrimSpace(text)) > headlineLongChars {
			score += headlineLengthBonus
		}
		score = min(maxHeadlineScore, score)
	}

	formula := FormulaBasic
	switch {
	case segments >= 3:
		formula = FormulaFull
	case segments == 2:
		formula = FormulaNiche
	}

	suggestion := "Strong headline, consider A/B testing variations"
	if score < strongHeadlineScore {
		suggestion = "Add your unique value proposition and target audience"
	}

	return types.HeadlineAnalysis{Formula: formula, Effectiveness: score, Suggestion: suggestion}
}

// About rates an about section or bio.
func About(text string) types.AboutAnalysis {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.AboutAnalysis{Structure: StructureFlat}
	}

	hasHook := HasHook(text)
	hasCTA := ctaRe.MatchString(text)
	length := utf8.RuneCountInString(text)

	score := 10
	if length > 50 {
		score = 30
	}
	if hasHook {
		score += aboutHookValue
	}
	if hasCTA {
		score += aboutCTAValue
	}
	switch {
	case length > 200:
		score += 20
	case length > 100:
		score += 10
	}

	structure := StructureFlat
	switch {
	case hasHook && hasCTA:
		structure = StructureFull
	case hasHook:
		structure = StructureHook
	case hasCTA:
		structure = StructureCTAOnly
	}

	return types.AboutAnalysis{
		HasHook:   hasHook,
		HasCTA:    hasCTA,
		Structure: structure,
		Score:     min(100, score),
	}
}

// HasHook reports whether text opens with a capital letter, a first-person "I", or a hook emoji.
func HasHook(text string) bool {
	first, _ := utf8.DecodeRuneInString(strings.TrimSpace(text))
	if first == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(first) || hookEmoji[first]
}

// Experience rates how outcomes are framed across the given texts.
func Experience(hasExperience bool, texts ...string) types.ExperienceFraming {
	joined := strings.Join(texts, " ")
	framing := types.ExperienceFraming{
		ActionOriented: hasActionVerb(joined),
		MetricsUsed:    metricsRe.MatchString(joined),
	}

	score := noExperienceBase
	if hasExperience {
		score = experienceBase
	}
	if framing.ActionOriented {
		score += framingBonus
	}
	if framing.MetricsUsed {
		score += framingBonus
	}
	framing.Score = min(100, score)
	return framing
}

func hasActionVerb(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
		if actionVerbs[word] {
			return true
		}
	}
	return false
}

// Banner rates the banner image. known is false when the scraper did not report the field.
func Banner(known, present bool) types.BannerAssessment {
	switch {
	case !known:
		return types.BannerAssessment{Quality: "Banner data not available", Score: bannerUnknownScore}
	case present:
		return types.BannerAssessment{HasBanner: true, Quality: "Custom banner detected", Score: bannerPresentScore}
	}
	return types.BannerAssessment{
		Quality: "Default or missing banner, add a branded banner with your value prop",
		Score:   bannerMissingScore,
	}
}

// Featured summarizes featured-section item types, keeping first-seen order.
func Featured(itemTypes []string) types.FeaturedSection {
	section := types.FeaturedSection{Count: len(itemTypes), Types: []string{}}
	section.HasItems = section.Count > 0
	seen := make(map[string]bool)
	for _, t := range itemTypes {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		section.Types = append(section.Types, t)
	}
	return section
}
