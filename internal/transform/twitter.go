package transform

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/growth-audit/internal/aggregate"
	"github.com/jonathan/growth-audit/internal/assessment"
	"github.com/jonathan/growth-audit/internal/classify"
	"github.com/jonathan/growth-audit/internal/ingestion"
	"github.com/jonathan/growth-audit/internal/types"
)

const xBase = "https://x.com/"

// roleRe detects a stated role or affiliation in a bio.
var roleRe = regexp.MustCompile(`(?i)\b(founder|co-?founder|ceo|cto|cfo|coo|engineer|developer|designer|manager|director|head of|vp|lead|partner|consultant|investor|building)\b|@\w+`)

// Twitter adapts X scraper output. Retweets are not the author's own content
// and are left out of the analysis.
type Twitter struct {
	opts       options
	classifier *classify.Classifier
}

// NewTwitter creates an X adapter.
func NewTwitter(opts ...Option) *Twitter {
	return &Twitter{
		opts:       newOptions(opts),
		classifier: classify.NewClassifier(types.PillarGeneral),
	}
}

// Platform returns types.PlatformTwitter.
func (t *Twitter) Platform() types.Platform {
	return types.PlatformTwitter
}

// Transform decodes raw scraper JSON and builds the audit. An empty profile
// record is filled from the author of the first tweet that carries one.
func (t *Twitter) Transform(rawProfile json.RawMessage, rawPosts []json.RawMessage) (*types.ProfileAudit, error) {
	start := t.opts.clock.Now()

	var profile types.TwitterProfile
	if err := decodeProfile(rawProfile, &profile); err != nil {
		err = &ProfileDecodeError{Platform: types.PlatformTwitter, Cause: err}
		t.opts.observe(types.PlatformTwitter, start, 0, err)
		return nil, err
	}

	posts, malformed := decodeRecords[types.TwitterPost](rawPosts)
	audit, err := t.transform(&profile, posts, malformed)
	t.opts.observe(types.PlatformTwitter, start, len(malformed), err)
	return audit, err
}

func (t *Twitter) transform(profile *types.TwitterProfile, records []types.TwitterPost, malformed []*MalformedRecordError) (*types.ProfileAudit, error) {
	for _, m := range malformed {
		t.opts.skip(types.PlatformTwitter, m)
	}

	if profile.Name == "" && profile.ScreenName == "" {
		for i := range records {
			if records[i].Author != nil {
				profile = records[i].Author
				break
			}
		}
	}

	own := make([]types.TwitterPost, 0, len(records))
	for _, r := range records {
		if !r.IsRetweet {
			own = append(own, r)
		}
	}
	if len(own) == 0 {
		return nil, &InsufficientDataError{Platform: types.PlatformTwitter, Reason: noPostsReason(len(malformed))}
	}

	summary := twitterSummary(profile)
	if summary.Name == "" {
		return nil, &InsufficientDataError{Platform: types.PlatformTwitter, Reason: "no name or handle"}
	}

	screenName := strings.TrimPrefix(strings.TrimSpace(profile.ScreenName), "@")
	posts := make([]post, len(own))
	for i := range own {
		posts[i] = twitterPost(&own[i], screenName)
	}
	return t.opts.build(types.PlatformTwitter, summary, posts, len(malformed), t.classifier), nil
}

func twitterIdentity(p *types.TwitterProfile) (name, url string) {
	screenName := strings.TrimPrefix(strings.TrimSpace(p.ScreenName), "@")
	name = strings.TrimSpace(p.Name)
	if name == "" && screenName != "" {
		name = "@" + screenName
	}
	if screenName != "" {
		url = xBase + screenName
	}
	return name, url
}

func twitterSummary(p *types.TwitterProfile) types.ProfileSummary {
	screenName := strings.TrimPrefix(strings.TrimSpace(p.ScreenName), "@")
	name, url := twitterIdentity(p)

	bio := ingestion.Normalize(p.Description)
	hasCover := p.CoverPicture != nil && strings.TrimSpace(*p.CoverPicture) != ""

	return types.ProfileSummary{
		Name:            name,
		Headline:        bio,
		URL:             url,
		Followers:       p.FollowersCount,
		Connections:     p.FriendsCount,
		ProfileImageURL: p.ProfilePicture,
		CompletenessScore: assessment.Completeness(
			bio != "",
			hasCover,
			strings.TrimSpace(p.ProfilePicture) != "",
			strings.TrimSpace(p.Location) != "",
			strings.TrimSpace(p.URL) != "",
			strings.TrimSpace(p.Name) != "",
			screenName != "",
		),
		HeadlineAnalysis:  assessment.Headline(bio),
		AboutAnalysis:     assessment.About(bio),
		BannerAssessment:  assessment.Banner(p.CoverPicture != nil, hasCover),
		FeaturedSection:   assessment.Featured(nil),
		ExperienceFraming: assessment.Experience(roleRe.MatchString(bio), bio),
	}
}

type xMedia struct {
	Type string `json:"type"`
}

func twitterPost(r *types.TwitterPost, screenName string) post {
	text := ingestion.Normalize(r.PostText)
	at, _ := r.Time()

	url := r.PostURL
	if url == "" && screenName != "" && r.PostID != "" {
		url = xBase + screenName + "/status/" + r.PostID
	}

	var hasVideo bool
	for _, m := range r.Media {
		var media xMedia
		if json.Unmarshal(m, &media) == nil && (media.Type == "video" || media.Type == "animated_gif") {
			hasVideo = true
		}
	}

	return post{
		text: text,
		interactions: aggregate.Interactions{
			Likes:    r.FavouriteCount,
			Comments: r.ReplyCount,
			Shares:   r.RepostCount,
			Quotes:   r.QuoteCount,
		},
		at:  at,
		url: url,
		shape: classify.PostShape{
			Text:       text,
			MediaCount: len(r.Media),
			HasVideo:   hasVideo,
		},
	}
}
