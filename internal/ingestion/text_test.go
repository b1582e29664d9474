package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with \t multiple spaces  ")
	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.NotContains(t, result, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_DropsZeroWidth(t *testing.T) {
	assert.Equal(t, "Hook line", CleanText("\ufeffHook\u200b line"))
}

func TestCleanText_KeepsHashtagsAndEmoji(t *testing.T) {
	input := "  #buildinpublic 🚀\n\nShipped v2 today  "
	assert.Equal(t, "#buildinpublic 🚀\n\nShipped v2 today", CleanText(input))
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
	assert.Equal(t, "", CleanText(""))
}

func TestStripHTML(t *testing.T) {
	result, err := StripHTML("<p>Excited to <b>announce</b> our launch!</p><p>Join us &amp; say hi<br>today</p><script>x()</script>")
	require.NoError(t, err)
	assert.Equal(t, "Excited to announce our launch!\nJoin us & say hi\ntoday", result)
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"<p>hello</p>", true},
		{"line<br/>break", true},
		{"a <b>bold</b> claim", true},
		{"3 < 5 and 6 > 4", false},
		{"plain text", false},
		{"love <3", false},
	}
	for _, tt := range tests {
		result := LooksLikeHTML(tt.text)
		assert.Equal(t, tt.expected, result, "LooksLikeHTML(%q) = %v, want %v", tt.text, result, tt.expected)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hello world", Normalize("<div>Hello   world</div>"))
	assert.Equal(t, "3 < 5", Normalize("  3 < 5 "))
}
