package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// LinkedInProfile is a profile record as returned by the LinkedIn scraper.
// Every field is optional; a missing value reads as its zero value.
type LinkedInProfile struct {
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	Headline            string              `json:"headline"`
	About               string              `json:"about"`
	PublicIdentifier    string              `json:"publicIdentifier"`
	LinkedInURL         string              `json:"linkedinUrl"`
	BackgroundPicture   *string             `json:"backgroundPicture"`
	ProfilePicture      *LinkedInPicture    `json:"profilePicture"`
	FollowerCount       int                 `json:"followerCount" validate:"gte=0"`
	ConnectionsCount    int                 `json:"connectionsCount" validate:"gte=0"`
	CurrentPosition     []LinkedInPosition  `json:"currentPosition"`
	ProfileTopEducation []LinkedInEducation `json:"profileTopEducation"`
	TopSkills           string              `json:"topSkills"`
	Featured            []LinkedInFeatured  `json:"featured"`
}

// LinkedInPicture is a picture reference.
type LinkedInPicture struct {
	URL string `json:"url"`
}

// LinkedInPosition is a current position entry.
type LinkedInPosition struct {
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
}

// LinkedInEducation is a top education entry.
type LinkedInEducation struct {
	SchoolName string `json:"schoolName"`
}

// LinkedInFeatured is a featured-section item.
type LinkedInFeatured struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// LinkedInPost is a post record as returned by the LinkedIn posts scraper.
type LinkedInPost struct {
	Content     string              `json:"content"`
	Type        string              `json:"type"`
	Header      *LinkedInPostHeader `json:"header"`
	Engagement  LinkedInEngagement  `json:"engagement"`
	PostedAt    *LinkedInPostedAt   `json:"postedAt"`
	PostImages  []json.RawMessage   `json:"postImages"`
	PostVideo   json.RawMessage     `json:"postVideo"`
	Document    json.RawMessage     `json:"document"`
	Poll        json.RawMessage     `json:"poll"`
	LinkedInURL string              `json:"linkedinUrl"`
}

// LinkedInPostHeader carries the article header of a post.
type LinkedInPostHeader struct {
	Text string `json:"text"`
}

// LinkedInEngagement holds the interaction counts of a post.
type LinkedInEngagement struct {
	Likes    int `json:"likes" validate:"gte=0"`
	Comments int `json:"comments" validate:"gte=0"`
	Shares   int `json:"shares" validate:"gte=0"`
}

// LinkedInPostedAt holds the post time. Timestamp is epoch milliseconds.
type LinkedInPostedAt struct {
	Timestamp int64  `json:"timestamp" validate:"gte=0"`
	Date      string `json:"date"`
}

// Time returns the post time, or false when none is resolvable.
func (p *LinkedInPost) Time() (time.Time, bool) {
	if p.PostedAt == nil {
		return time.Time{}, false
	}
	if p.PostedAt.Timestamp > 0 {
		return time.UnixMilli(p.PostedAt.Timestamp).UTC(), true
	}
	return parseTimestamp(p.PostedAt.Date)
}

// ErrEmptyRecord is returned for a post record with no text, media or engagement.
var ErrEmptyRecord = errors.New("record has no text, media or engagement")

// Validate checks the post's counts and rejects empty records.
func (p *LinkedInPost) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Content) == "" && p.Header == nil && len(p.PostImages) == 0 &&
		len(p.PostVideo) == 0 && len(p.Document) == 0 && len(p.Poll) == 0 &&
		p.Engagement == (LinkedInEngagement{}) {
		return ErrEmptyRecord
	}
	return nil
}

// Validate checks the profile's counts.
func (p *LinkedInProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// TwitterProfile is an X profile, either scraped directly or taken from a tweet's author.
type TwitterProfile struct {
	Name           string  `json:"name"`
	ScreenName     string  `json:"screenName"`
	Description    string  `json:"description"`
	FollowersCount int     `json:"followersCount" validate:"gte=0"`
	FriendsCount   int     `json:"friendsCount" validate:"gte=0"`
	ProfilePicture string  `json:"profilePicture"`
	CoverPicture   *string `json:"coverPicture"`
	Location       string  `json:"location"`
	URL            string  `json:"url"`
	IsVerified     bool    `json:"isVerified"`
}

// TwitterPost is a tweet record as returned by the X scraper.
type TwitterPost struct {
	PostText       string            `json:"postText"`
	PostURL        string            `json:"postUrl"`
	PostID         string            `json:"postId"`
	Timestamp      json.RawMessage   `json:"timestamp"`
	Media          []json.RawMessage `json:"media"`
	Author         *TwitterProfile   `json:"author"`
	ReplyCount     int               `json:"replyCount" validate:"gte=0"`
	QuoteCount     int               `json:"quoteCount" validate:"gte=0"`
	RepostCount    int               `json:"repostCount" validate:"gte=0"`
	FavouriteCount int               `json:"favouriteCount" validate:"gte=0"`
	IsRetweet      bool              `json:"isRetweet"`
}

// Time returns the tweet time. The scraper emits either an RFC 3339 string or epoch milliseconds.
func (p *TwitterPost) Time() (time.Time, bool) {
	raw := strings.TrimSpace(string(p.Timestamp))
	if raw == "" || raw == "null" {
		return time.Time{}, false
	}
	var s string
	if err := json.Unmarshal(p.Timestamp, &s); err == nil {
		return parseTimestamp(s)
	}
	return parseTimestamp(raw)
}

// Validate checks the tweet's counts and rejects empty records.
func (p *TwitterPost) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.PostText) == "" && len(p.Media) == 0 &&
		p.ReplyCount+p.QuoteCount+p.RepostCount+p.FavouriteCount == 0 {
		return ErrEmptyRecord
	}
	return nil
}

// Validate checks the profile's counts.
func (p *TwitterProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.RubyDate,
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
