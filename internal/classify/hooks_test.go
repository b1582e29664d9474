package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/growth-audit/internal/types"
)

func TestDetectHook(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.HookPattern
	}{
		{"announcement", "Excited to announce our launch!", types.HookAnnouncement},
		{"how-to before listicle", "How to grow your audience in 5 steps", types.HookHowTo},
		{"listicle digit", "5 lessons from 10 years of hiring", types.HookListicle},
		{"listicle here's", "Here's what nobody tells you about sales", types.HookListicle},
		{"statistic percent", "73% of founders never post twice", types.HookStatistic},
		{"statistic out of", "Only 3 out of 10 teams ship weekly", types.HookStatistic},
		{"personal", "I quit my job last Friday.", types.HookPersonal},
		{"personal wins over question", "My biggest mistake? Hiring too fast.", types.HookPersonal},
		{"question", "What would you do with a 4-day week?", types.HookQuestion},
		{"contrarian", "Stop posting every day.", types.HookContrarian},
		{"contrarian myth", "Myth: you need a big audience.", types.HookContrarian},
		{"thread word", "Thread: the full story of our seed round", types.HookThread},
		{"thread emoji", "🧵 everything I know about pricing", types.HookThread},
		{"statement", "Pricing is a product decision.", types.HookStatement},
		{"empty", "", types.HookStatement},
		{"question on second line only", "Pricing matters.\nWhat do you think?", types.HookStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectHook(tt.text)
			assert.Equal(t, tt.expected, result, "DetectHook(%q) = %v, want %v", tt.text, result, tt.expected)
		})
	}
}

func TestHook_Truncates(t *testing.T) {
	long := strings.Repeat("é", 150) + "?"
	hook := Hook(long)
	assert.Len(t, []rune(hook), hookLength)
	assert.Equal(t, types.HookStatement, DetectHook(long), "question mark beyond the preview is not part of the hook")
}

func TestHook_FirstLineLowercased(t *testing.T) {
	assert.Equal(t, "big news", Hook("  Big News  \nsecond line"))
}
