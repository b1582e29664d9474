package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/growth-audit/internal/types"
)

// PostShape holds the structural signals of a post that decide its format.
type PostShape struct {
	Text        string
	TypeTag     string
	MediaCount  int
	HasVideo    bool
	HasDocument bool
	HasPoll     bool
	HasArticle  bool
}

var (
	urlRe    = regexp.MustCompile(`https?://\S+`)
	threadWd = regexp.MustCompile(`(?i)\bthread\b`)
)

// DetectType infers a post's format from structural fields only.
func DetectType(p PostShape) types.ContentType {
	tag := strings.ToLower(strings.TrimSpace(p.TypeTag))

	switch {
	case p.HasPoll || tag == "poll":
		return types.ContentPoll
	case p.HasVideo || tag == "video" || tag == "linkedinvideo":
		return types.ContentVideo
	case p.HasDocument || tag == "document" || tag == "carousel":
		return types.ContentCarousel
	case p.HasArticle || tag == "article":
		return types.ContentArticle
	case strings.Contains(p.Text, "🧵") || threadWd.MatchString(p.Text):
		return types.ContentThread
	case p.MediaCount > 1:
		return types.ContentCarousel
	case p.MediaCount == 1 || tag == "image":
		return types.ContentImage
	case urlRe.MatchString(p.Text):
		return types.ContentLink
	}
	return types.ContentText
}
