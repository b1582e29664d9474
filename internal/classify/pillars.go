// Package classify provides deterministic text classifiers for posts:
// content pillars, hook patterns and content types.
package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	keywordWeight = 2
	patternWeight = 3
	// minPillarScore is the confidence floor; a single keyword hit passes, nothing less does.
	minPillarScore = 2
	// wholeWordMax is the longest keyword that must match as a whole word
	// (optionally plural), so "arr" does not fire inside "carry".
	wholeWordMax = 3
)

type pillarRule struct {
	pillar   types.ContentPillar
	keywords []string
	patterns []*regexp.Regexp
}

func ci(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// pillarRules is ordered; earlier rules win ties.
var pillarRules = []pillarRule{
	{
		pillar: types.PillarThoughtLeadership,
		keywords: []string{
			"opinion", "hot take", "framework", "prediction", "unpopular", "controversial",
			"believe", "future of", "my take", "here's why", "the truth about", "myth",
			"overrated", "underrated", "disagree", "contrarian", "bold claim", "perspective",
			"paradigm", "shift", "rethink", "wrong about", "misunderstand",
		},
		patterns: []*regexp.Regexp{
			ci(`\bhot take\b`), ci(`\bunpopular opinion\b`), ci(`\bhere'?s (the thing|why|what)\b`),
			ci(`\bstop (saying|doing|believing)\b`), ci(`\bthe future of\b`), ci(`\bmost people (don'?t|think|get)\b`),
			ci(`\bi ('?m |)convinced\b`), ci(`\bcontrary to\b`), ci(`\bwake.?up call\b`),
		},
	},
	{
		pillar: types.PillarIndustryNews,
		keywords: []string{
			"report", "study", "research", "trend", "industry", "market", "update",
			"announcement", "breaking", "just released", "new data", "survey", "findings",
			"according to", "published", "quarter", "growth rate", "sector",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(new|latest) (report|study|research|data)\b`), ci(`\baccording to\b`),
			ci(`\bindustry (trend|news|update)\b`), ci(`\bmarket (update|report|trend)\b`),
			ci(`\bjust (released|published|announced)\b`), ci(`\b20\d{2} (report|trend|outlook)\b`),
		},
	},
	{
		pillar: types.PillarPersonalStories,
		keywords: []string{
			"journey", "lesson", "learned", "story", "vulnerability", "failed", "failure",
			"mistake", "struggle", "honest", "confession", "real talk", "years ago",
			"looking back", "memoir", "turning point", "rock bottom", "breakthrough",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(i|we) (failed|struggled|learned|lost|quit|was fired|got rejected)\b`),
			ci(`\bmy (journey|story|biggest mistake|lesson)\b`),
			ci(`\b\d+ years ago\b`), ci(`\blooking back\b`), ci(`\bhere'?s what (happened|i learned)\b`),
			ci(`\bhonest(ly)?\b.*\b(share|admit|confess)\b`), ci(`\bvulnerable\b`),
		},
	},
	{
		pillar: types.PillarHowTo,
		keywords: []string{
			"how to", "tutorial", "guide", "step", "tips", "trick", "hack",
			"learn", "teach", "explain", "breakdown", "cheat sheet", "template",
			"playbook", "blueprint", "101", "beginner", "advanced", "masterclass",
		},
		patterns: []*regexp.Regexp{
			ci(`\bhow (to|i)\b`), ci(`\bstep[- ]by[- ]step\b`), ci(`\b\d+ (tips|ways|steps|tricks|hacks)\b`),
			ci(`\bhere'?s (how|a guide|my playbook)\b`), ci(`\bcheat sheet\b`),
			ci(`\bdo this\b.*\binstead\b`), ci(`\b(beginner|complete|ultimate) guide\b`),
		},
	},
	{
		pillar: types.PillarCompanyUpdates,
		keywords: []string{
			"launch", "shipped", "milestone", "product", "feature", "release",
			"update", "v2", "beta", "raised", "funding", "revenue", "arr",
			"customers", "users", "announcement", "excited to share",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(we|i) (just |)(launched|shipped|released|built|raised|hit)\b`),
			ci(`\bexcited to (announce|share)\b`), ci(`\b(new feature|product update)\b`),
			ci(`\b(series [a-d]|seed round|funding)\b`), ci(`\b\$\d+[mk]\b`),
			ci(`\b\d+k?\+? (users|customers|subscribers)\b`),
		},
	},
	{
		pillar: types.PillarCulture,
		keywords: []string{
			"culture", "team", "values", "diversity", "inclusion", "workplace",
			"remote", "hybrid", "mental health", "wellbeing", "burnout", "balance",
			"toxic", "healthy", "environment", "belonging", "dei",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(team|company) culture\b`), ci(`\bwork[- ]life balance\b`),
			ci(`\bmental health\b`), ci(`\bburnout\b`), ci(`\bdiversity\b`),
			ci(`\binclusion\b`), ci(`\bremote (work|team)\b`), ci(`\btoxic (workplace|culture)\b`),
		},
	},
	{
		pillar: types.PillarEngagementBait,
		keywords: []string{
			"poll", "agree", "disagree", "thoughts", "comment below", "tag someone",
			"repost", "share this", "who else", "am i the only", "hot take",
		},
		patterns: []*regexp.Regexp{
			ci(`\bagree or disagree\b`), ci(`\bcomment (below|your)\b`), ci(`\btag (someone|a friend)\b`),
			ci(`\bwho else\b`), ci(`\bam i the only\b`), ci(`\bthoughts\s*(\?|👇|⬇)`),
			ci(`\brepost if\b`), ci(`\blike if\b`), ci(`\byes or no\b`), ci(`\bwhich one\b`),
			regexp.MustCompile(`👇|⬇️`), ci(`\bpoll\b`),
		},
	},
	{
		pillar: types.PillarCaseStudies,
		keywords: []string{
			"case study", "results", "testimonial", "client", "customer", "roi",
			"before and after", "transformation", "outcome", "success story", "win",
			"helped", "grew", "increased", "decreased", "saved",
		},
		patterns: []*regexp.Regexp{
			ci(`\bcase study\b`), ci(`\b(client|customer) (win|result|story|success)\b`),
			ci(`\b(grew|increased|boosted|saved|reduced).*\b\d+%`),
			ci(`\bbefore.*(and|→|->).*after\b`), ci(`\b(from|went) \$?\d+.*to \$?\d+\b`),
			regexp.MustCompile(`\bROI\b`), ci(`\btestimonial\b`),
		},
	},
	{
		pillar: types.PillarNetworking,
		keywords: []string{
			"shoutout", "congratulations", "congrats", "grateful", "thankful",
			"event", "conference", "meetup", "panel", "speaking", "honored",
			"inspired by", "thank you", "appreciate",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(shout ?out|s/o) (to|for)\b`), ci(`\bcongrat(ulation)?s\b`),
			ci(`\bthank(s| you)\b.*@`), ci(`\bgreat (event|conference|meetup|panel)\b`),
			ci(`\bhonored to\b`), ci(`\binspired by\b`), ci(`\b(amazing|incredible) (team|people|group)\b`),
		},
	},
	{
		pillar: types.PillarCareer,
		keywords: []string{
			"hiring", "job", "career", "resume", "interview", "salary", "offer",
			"recruit", "open role", "apply", "position", "opportunity", "candidate",
			"linkedin", "job search", "promotion", "layoff",
		},
		patterns: []*regexp.Regexp{
			ci(`\b(we'?re |i'?m |)hiring\b`), ci(`\bjob (post|opening|alert|search)\b`),
			ci(`\bopen (role|position)\b`), ci(`\bapply (now|here|today)\b`),
			ci(`\b(resume|cv) tip\b`), ci(`\binterview (tip|advice|prep)\b`),
			ci(`\bcareer advice\b`), ci(`\blayoff\b`), ci(`\b(got|received) (an |the |)offer\b`),
		},
	},
}

// Classifier assigns a content pillar to post text.
type Classifier struct {
	// Default is returned for blank text and for low-confidence matches.
	Default types.ContentPillar
}

// NewClassifier returns a classifier that falls back to def.
func NewClassifier(def types.ContentPillar) *Classifier {
	return &Classifier{Default: def}
}

var defaultClassifier = NewClassifier(types.PillarGeneral)

// Classify assigns a pillar using the General fallback.
func Classify(text string) types.ContentPillar {
	return defaultClassifier.Classify(text)
}

// Classify scores text against every pillar rule and returns the best match.
func (c *Classifier) Classify(text string) types.ContentPillar {
	fallback := c.Default
	if fallback == "" {
		fallback = types.PillarGeneral
	}
	if strings.TrimSpace(text) == "" {
		return fallback
	}

	best, bestScore := fallback, 0
	for _, rule := range pillarRules {
		score := ruleScore(rule, text)
		// strict comparison keeps the earlier rule on ties
		if score > bestScore {
			best, bestScore = rule.pillar, score
		}
	}
	if bestScore < minPillarScore {
		return fallback
	}
	return best
}

func ruleScore(rule pillarRule, text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range rule.keywords {
		if containsKeyword(lower, kw) {
			score += keywordWeight
		}
	}
	for _, pattern := range rule.patterns {
		if pattern.MatchString(text) {
			score += patternWeight
		}
	}
	return score
}

// containsKeyword matches kw in lowercased text. Short keywords match only
// as whole words.
func containsKeyword(lower, kw string) bool {
	if len(kw) > wholeWordMax {
		return strings.Contains(lower, kw)
	}
	for from := 0; ; {
		i := strings.Index(lower[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(kw)
		if end < len(lower) && lower[end] == 's' {
			end++
		}
		if !wordByte(lower, start-1) && !wordByte(lower, end) {
			return true
		}
		from = start + 1
	}
}

func wordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}
