// Package types provides type definitions for structured data used throughout the growth-audit system.
package types

// ScheduleDays and ScheduleHours define the posting schedule grid.
const (
	ScheduleDays  = 7
	ScheduleHours = 24
	// FrequencyWeeks is the length of the trailing weekly frequency window.
	FrequencyWeeks = 12
)

// ProfileAudit is the canonical scored summary of a social profile.
// Field names are camelCase because the audit is consumed as-is by the web front end.
type ProfileAudit struct {
	Platform        Platform          `json:"platform"`
	Profile         ProfileSummary    `json:"profile"`
	ContentStrategy ContentStrategy   `json:"contentStrategy"`
	Engagement      EngagementSummary `json:"engagement"`
	OverallScore    int               `json:"overallScore"`
	OverallGrade    string            `json:"overallGrade"`
	Breakdown       []CategoryScore   `json:"breakdown"`
	Diagnostics     Diagnostics       `json:"diagnostics"`
}

// ProfileSummary holds identity fields and derived sub-assessments.
type ProfileSummary struct {
	Name              string            `json:"name"`
	Headline          string            `json:"headline"`
	URL               string            `json:"url"`
	Followers         int               `json:"followers"`
	Connections       int               `json:"connections"`
	ProfileImageURL   string            `json:"profileImageUrl,omitempty"`
	CompletenessScore int               `json:"completenessScore"`
	HeadlineAnalysis  HeadlineAnalysis  `json:"headlineAnalysis"`
	AboutAnalysis     AboutAnalysis     `json:"aboutAnalysis"`
	BannerAssessment  BannerAssessment  `json:"bannerAssessment"`
	FeaturedSection   FeaturedSection   `json:"featuredSection"`
	ExperienceFraming ExperienceFraming `json:"experienceFraming"`
}

// HeadlineAnalysis rates a headline (or X bio) by its segment structure.
type HeadlineAnalysis struct {
	Formula       string `json:"formula"`
	Effectiveness int    `json:"effectiveness"`
	Suggestion    string `json:"suggestion"`
}

// AboutAnalysis rates the about section (or X bio).
type AboutAnalysis struct {
	HasHook   bool   `json:"hasHook"`
	HasCTA    bool   `json:"hasCTA"`
	Structure string `json:"structure"`
	Score     int    `json:"score"`
}

// BannerAssessment rates the profile banner.
type BannerAssessment struct {
	HasBanner bool   `json:"hasBanner"`
	Quality   string `json:"quality"`
	Score     int    `json:"score"`
}

// FeaturedSection summarizes pinned/featured items.
type FeaturedSection struct {
	HasItems bool     `json:"hasItems"`
	Count    int      `json:"count"`
	Types    []string `json:"types"`
}

// ExperienceFraming rates how outcomes are framed in bio and headline.
type ExperienceFraming struct {
	ActionOriented bool `json:"actionOriented"`
	MetricsUsed    bool `json:"metricsUsed"`
	Score          int  `json:"score"`
}

// Schedule is a day-of-week by hour-of-day grid of post counts.
// Rows run Monday..Sunday and columns are UTC hours.
type Schedule [ScheduleDays][ScheduleHours]int

// ContentStrategy holds the post-level aggregates of an audit.
type ContentStrategy struct {
	PostsPerWeek    float64            `json:"postsPerWeek"`
	WeeklyFrequency []int              `json:"weeklyFrequency"`
	ContentTypes    []ContentTypeShare `json:"contentTypes"`
	ContentPillars  []PillarShare      `json:"contentPillars"`
	TopPosts        []TopPost          `json:"topPosts"`
	HookPatterns    []HookShare        `json:"hookPatterns"`
	HashtagStrategy HashtagStrategy    `json:"hashtagStrategy"`
	PostingSchedule Schedule           `json:"postingSchedule"`
}

// ContentTypeShare is one slice of the content-type distribution.
type ContentTypeShare struct {
	Type       ContentType `json:"type"`
	Percentage int         `json:"percentage"`
	Color      string      `json:"color"`
}

// PillarShare is one slice of the pillar distribution.
type PillarShare struct {
	Topic      ContentPillar `json:"topic"`
	Percentage int           `json:"percentage"`
}

// HookShare is one slice of the hook-pattern distribution.
type HookShare struct {
	Pattern    HookPattern `json:"pattern"`
	Percentage int         `json:"percentage"`
}

// TopPost is a ranked post with truncated text.
type TopPost struct {
	Text     string        `json:"text"`
	Likes    int           `json:"likes"`
	Comments int           `json:"comments"`
	Shares   int           `json:"shares"`
	Type     ContentType   `json:"type"`
	URL      string        `json:"url,omitempty"`
	Pillar   ContentPillar `json:"pillar,omitempty"`
	PostedAt string        `json:"postedAt,omitempty"`
}

// HashtagStrategy summarizes hashtag usage.
type HashtagStrategy struct {
	AvgPerPost  float64  `json:"avgPerPost"`
	TopHashtags []string `json:"topHashtags"`
}

// EngagementSummary holds the engagement statistics of an audit.
type EngagementSummary struct {
	AvgLikes       int     `json:"avgLikes"`
	AvgComments    int     `json:"avgComments"`
	AvgShares      int     `json:"avgShares"`
	EngagementRate float64 `json:"engagementRate"`
	ReplyRate      int     `json:"replyRate"`
	AvgReplyTime   string  `json:"avgReplyTime"`
	GrowthEstimate string  `json:"growthEstimate"`
}

// CategoryScore is one entry of the score breakdown.
type CategoryScore struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
	Max      int      `json:"max"`
}

// Diagnostics reports how much of the raw input contributed to the audit.
type Diagnostics struct {
	Source         string `json:"source"`
	PostsAnalyzed  int    `json:"postsAnalyzed"`
	SkippedRecords int    `json:"skippedRecords"`
}

// ReplyTimeUnavailable is the avgReplyTime label; scraped data carries no
// reply timestamps.
const ReplyTimeUnavailable = "n/a"

// Audit sources.
const (
	SourceLive        = "live"
	SourcePlaceholder = "placeholder"
)

// Score returns the breakdown score of a category, or 0 if it is absent.
func (a *ProfileAudit) Score(c Category) int {
	if a == nil {
		return 0
	}
	for _, entry := range a.Breakdown {
		if entry.Category == c {
			return entry.Score
		}
	}
	return 0
}
