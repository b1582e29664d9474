package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/growth-audit/internal/aggregate"
	"github.com/jonathan/growth-audit/internal/assessment"
	"github.com/jonathan/growth-audit/internal/classify"
	"github.com/jonathan/growth-audit/internal/ingestion"
	"github.com/jonathan/growth-audit/internal/types"
)

const linkedInProfileBase = "https://linkedin.com/in/"

// LinkedIn adapts LinkedIn scraper output. Posts that match no pillar fall
// back to Thought Leadership.
type LinkedIn struct {
	opts       options
	classifier *classify.Classifier
}

// NewLinkedIn creates a LinkedIn adapter.
func NewLinkedIn(opts ...Option) *LinkedIn {
	return &LinkedIn{
		opts:       newOptions(opts),
		classifier: classify.NewClassifier(types.PillarThoughtLeadership),
	}
}

// Platform returns types.PlatformLinkedIn.
func (l *LinkedIn) Platform() types.Platform {
	return types.PlatformLinkedIn
}

// Transform decodes raw scraper JSON and builds the audit. Post records that
// fail to decode or validate are skipped and counted in diagnostics.
func (l *LinkedIn) Transform(rawProfile json.RawMessage, rawPosts []json.RawMessage) (*types.ProfileAudit, error) {
	start := l.opts.clock.Now()

	var profile types.LinkedInProfile
	if err := decodeProfile(rawProfile, &profile); err != nil {
		err = &ProfileDecodeError{Platform: types.PlatformLinkedIn, Cause: err}
		l.opts.observe(types.PlatformLinkedIn, start, 0, err)
		return nil, err
	}

	posts, malformed := decodeRecords[types.LinkedInPost](rawPosts)
	audit, err := l.transform(&profile, posts, malformed)
	l.opts.observe(types.PlatformLinkedIn, start, len(malformed), err)
	return audit, err
}

func (l *LinkedIn) transform(profile *types.LinkedInProfile, records []types.LinkedInPost, malformed []*MalformedRecordError) (*types.ProfileAudit, error) {
	for _, m := range malformed {
		l.opts.skip(types.PlatformLinkedIn, m)
	}

	if len(records) == 0 {
		return nil, &InsufficientDataError{Platform: types.PlatformLinkedIn, Reason: noPostsReason(len(malformed))}
	}

	summary := linkedInSummary(profile)
	if summary.Name == "" {
		return nil, &InsufficientDataError{Platform: types.PlatformLinkedIn, Reason: "no name or public identifier"}
	}

	posts := make([]post, len(records))
	for i := range records {
		posts[i] = linkedInPost(&records[i])
	}
	return l.opts.build(types.PlatformLinkedIn, summary, posts, len(malformed), l.classifier), nil
}

func linkedInIdentity(p *types.LinkedInProfile) (name, url string) {
	name = strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		name = strings.TrimSpace(p.PublicIdentifier)
	}

	url = ingestion.CanonicalProfileURL(p.LinkedInURL)
	if id := strings.TrimSpace(p.PublicIdentifier); id != "" {
		url = linkedInProfileBase + id
	}
	return name, url
}

func linkedInSummary(p *types.LinkedInProfile) types.ProfileSummary {
	name, url := linkedInIdentity(p)

	headline := ingestion.Normalize(p.Headline)
	about := ingestion.Normalize(p.About)

	hasBanner := p.BackgroundPicture != nil && strings.TrimSpace(*p.BackgroundPicture) != ""
	var photo string
	if p.ProfilePicture != nil {
		photo = p.ProfilePicture.URL
	}

	positions := make([]string, 0, len(p.CurrentPosition)+2)
	positions = append(positions, headline, about)
	for _, pos := range p.CurrentPosition {
		positions = append(positions, pos.Title)
	}

	featured := make([]string, 0, len(p.Featured))
	for _, f := range p.Featured {
		featured = append(featured, f.Type)
	}

	return types.ProfileSummary{
		Name:            name,
		Headline:        headline,
		URL:             url,
		Followers:       p.FollowerCount,
		Connections:     p.ConnectionsCount,
		ProfileImageURL: photo,
		CompletenessScore: assessment.Completeness(
			headline != "",
			about != "",
			hasBanner,
			photo != "",
			len(p.CurrentPosition) > 0,
			len(p.ProfileTopEducation) > 0,
			strings.TrimSpace(p.TopSkills) != "",
		),
		HeadlineAnalysis:  assessment.Headline(headline),
		AboutAnalysis:     assessment.About(about),
		BannerAssessment:  assessment.Banner(true, hasBanner),
		FeaturedSection:   assessment.Featured(featured),
		ExperienceFraming: assessment.Experience(len(p.CurrentPosition) > 0, positions...),
	}
}

func linkedInPost(r *types.LinkedInPost) post {
	text := ingestion.Normalize(r.Content)
	at, _ := r.Time()
	return post{
		text: text,
		interactions: aggregate.Interactions{
			Likes:    r.Engagement.Likes,
			Comments: r.Engagement.Comments,
			Shares:   r.Engagement.Shares,
		},
		at:  at,
		url: r.LinkedInURL,
		shape: classify.PostShape{
			Text:        text,
			TypeTag:     r.Type,
			MediaCount:  len(r.PostImages),
			HasVideo:    present(r.PostVideo),
			HasDocument: present(r.Document),
			HasPoll:     present(r.Poll),
			HasArticle:  r.Header != nil && strings.TrimSpace(r.Header.Text) != "",
		},
	}
}

// decodeProfile unmarshals an optional profile record into dst.
func decodeProfile(raw json.RawMessage, dst interface{ Validate() error }) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return err
	}
	return dst.Validate()
}

func noPostsReason(skipped int) string {
	if skipped > 0 {
		return fmt.Sprintf("no usable posts (%d malformed records skipped)", skipped)
	}
	return "no posts"
}
