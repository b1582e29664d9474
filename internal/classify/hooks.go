package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/growth-audit/internal/types"
)

// hookLength is how much of the first line a reader sees before expanding a post.
const hookLength = 100

type hookRule struct {
	pattern types.HookPattern
	match   func(hook string) bool
}

var (
	statisticRe    = regexp.MustCompile(`^\d+(\.\d+)?%|\b\d+ out of \d+\b`)
	listicleRe     = regexp.MustCompile(`^\d|^here('s| are| is)\b`)
	personalRe     = regexp.MustCompile(`^(i |i'|my |we |when i )`)
	contrarianRe   = regexp.MustCompile(`^(stop|don't|never|wrong|myth|unpopular|hot take)\b`)
	howToRe        = regexp.MustCompile(`^(how|step|guide|framework)\b`)
	announcementRe = regexp.MustCompile(`^(just|excited|announcing|big news|thrilled)\b`)
	threadRe       = regexp.MustCompile(`^(thread\b|🧵)`)
)

// hookRules is checked in order; the first match wins.
var hookRules = []hookRule{
	{types.HookStatistic, statisticRe.MatchString},
	{types.HookListicle, listicleRe.MatchString},
	{types.HookPersonal, personalRe.MatchString},
	{types.HookQuestion, func(hook string) bool { return strings.Contains(hook, "?") }},
	{types.HookContrarian, contrarianRe.MatchString},
	{types.HookHowTo, howToRe.MatchString},
	{types.HookAnnouncement, announcementRe.MatchString},
	{types.HookThread, threadRe.MatchString},
}

// DetectHook classifies the opening of a post into a hook pattern.
func DetectHook(text string) types.HookPattern {
	hook := Hook(text)
	if hook == "" {
		return types.HookStatement
	}
	for _, rule := range hookRules {
		if rule.match(hook) {
			return rule.pattern
		}
	}
	return types.HookStatement
}

// Hook returns the lowercased first line of text, cut to the visible preview length.
func Hook(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > hookLength {
		runes = runes[:hookLength]
	}
	return strings.ToLower(string(runes))
}
