package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/growth-audit/internal/types"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name     string
		shape    PostShape
		expected types.ContentType
	}{
		{"plain text", PostShape{Text: "Excited to announce our launch!"}, types.ContentText},
		{"single image", PostShape{Text: "look", MediaCount: 1}, types.ContentImage},
		{"multiple media", PostShape{Text: "look", MediaCount: 3}, types.ContentCarousel},
		{"bare url", PostShape{Text: "read this https://example.com/post"}, types.ContentLink},
		{"thread emoji", PostShape{Text: "Pricing 🧵"}, types.ContentThread},
		{"thread word", PostShape{Text: "A thread on hiring"}, types.ContentThread},
		{"threaded is not a thread", PostShape{Text: "threaded needle"}, types.ContentText},
		{"video flag", PostShape{HasVideo: true, MediaCount: 1}, types.ContentVideo},
		{"poll flag", PostShape{HasPoll: true}, types.ContentPoll},
		{"document flag", PostShape{HasDocument: true}, types.ContentCarousel},
		{"article flag", PostShape{HasArticle: true, Text: "https://example.com"}, types.ContentArticle},
		{"type tag article", PostShape{TypeTag: "Article"}, types.ContentArticle},
		{"type tag image", PostShape{TypeTag: "image"}, types.ContentImage},
		{"empty", PostShape{}, types.ContentText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectType(tt.shape)
			assert.Equal(t, tt.expected, result, "DetectType(%+v) = %v, want %v", tt.shape, result, tt.expected)
		})
	}
}

func TestContentTypeColor(t *testing.T) {
	for _, ct := range types.AllContentTypes() {
		assert.NotEqual(t, "#94a3b8", ct.Color(), "%s should have its own color", ct)
	}
	assert.Equal(t, "#94a3b8", types.ContentType("GIF").Color())
}
