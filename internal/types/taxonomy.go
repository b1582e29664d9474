package types

// Platform identifies the social network a scrape came from.
type Platform string

const (
	PlatformLinkedIn Platform = "linkedin"
	PlatformTwitter  Platform = "twitter"
)

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	return p == PlatformLinkedIn || p == PlatformTwitter
}

// ContentPillar is the thematic purpose of a post.
type ContentPillar string

const (
	PillarThoughtLeadership ContentPillar = "Thought Leadership"
	PillarIndustryNews      ContentPillar = "Industry News"
	PillarPersonalStories   ContentPillar = "Personal Stories"
	PillarHowTo             ContentPillar = "How-To / Educational"
	PillarCompanyUpdates    ContentPillar = "Company Updates"
	PillarCulture           ContentPillar = "Culture & Values"
	PillarEngagementBait    ContentPillar = "Engagement Bait"
	PillarCaseStudies       ContentPillar = "Case Studies"
	PillarNetworking        ContentPillar = "Networking / Shoutouts"
	PillarCareer            ContentPillar = "Career & Hiring"
	PillarGeneral           ContentPillar = "General"
)

// AllPillars returns every pillar in enumeration order. The order doubles as
// the tie-break order for classification and distributions.
func AllPillars() []ContentPillar {
	return []ContentPillar{
		PillarThoughtLeadership,
		PillarIndustryNews,
		PillarPersonalStories,
		PillarHowTo,
		PillarCompanyUpdates,
		PillarCulture,
		PillarEngagementBait,
		PillarCaseStudies,
		PillarNetworking,
		PillarCareer,
		PillarGeneral,
	}
}

// HookPattern is the rhetorical technique of a post's opening line.
type HookPattern string

const (
	HookStatistic    HookPattern = "Statistic"
	HookListicle     HookPattern = "Listicle"
	HookPersonal     HookPattern = "Personal Story"
	HookQuestion     HookPattern = "Question"
	HookContrarian   HookPattern = "Contrarian"
	HookHowTo        HookPattern = "How-To"
	HookAnnouncement HookPattern = "Announcement"
	HookThread       HookPattern = "Thread"
	HookStatement    HookPattern = "Statement"
)

// AllHookPatterns returns every hook pattern in cascade order.
func AllHookPatterns() []HookPattern {
	return []HookPattern{
		HookStatistic,
		HookListicle,
		HookPersonal,
		HookQuestion,
		HookContrarian,
		HookHowTo,
		HookAnnouncement,
		HookThread,
		HookStatement,
	}
}

// ContentType is the structural format of a post.
type ContentType string

const (
	ContentText     ContentType = "Text"
	ContentImage    ContentType = "Image"
	ContentCarousel ContentType = "Carousel"
	ContentVideo    ContentType = "Video"
	ContentPoll     ContentType = "Poll"
	ContentThread   ContentType = "Thread"
	ContentLink     ContentType = "Link"
	ContentArticle  ContentType = "Article"
)

// AllContentTypes returns every content type in display order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentText,
		ContentImage,
		ContentCarousel,
		ContentVideo,
		ContentPoll,
		ContentThread,
		ContentLink,
		ContentArticle,
	}
}

var contentTypeColors = map[ContentType]string{
	ContentText:     "#10b981",
	ContentImage:    "#3b82f6",
	ContentCarousel: "#ec4899",
	ContentVideo:    "#8b5cf6",
	ContentPoll:     "#ef4444",
	ContentThread:   "#f59e0b",
	ContentLink:     "#6366f1",
	ContentArticle:  "#14b8a6",
}

// Color returns the chart color used for the content type.
func (c ContentType) Color() string {
	if color, ok := contentTypeColors[c]; ok {
		return color
	}
	return "#94a3b8"
}

// Category is one of the five scored audit categories.
type Category string

const (
	CategoryProfile     Category = "Profile"
	CategoryContent     Category = "Content"
	CategoryEngagement  Category = "Engagement"
	CategoryConsistency Category = "Consistency"
	CategoryStrategy    Category = "Strategy"
)

// AllCategories returns the five categories in breakdown order.
func AllCategories() []Category {
	return []Category{
		CategoryProfile,
		CategoryContent,
		CategoryEngagement,
		CategoryConsistency,
		CategoryStrategy,
	}
}

// Priority ranks a gap recommendation.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)
