package transform

import (
	"github.com/jonathan/growth-audit/internal/assessment"
	"github.com/jonathan/growth-audit/internal/scoring"
	"github.com/jonathan/growth-audit/internal/types"
)

// demoSignals are the representative values behind a placeholder audit.
var demoSignals = scoring.Signals{
	Completeness:       71,
	HeadlineScore:      65,
	AboutScore:         50,
	ExperienceScore:    65,
	PostsPerWeek:       2.5,
	ContentTypeCount:   3,
	PillarCount:        4,
	HookCount:          4,
	EngagementRate:     2.1,
	AvgLikes:           48,
	AvgComments:        9,
	AvgShares:          3,
	ActiveWeeks:        8,
	AvgHashtagsPerPost: 2.5,
}

// Placeholder returns a demo audit for when live data is unavailable. It is
// marked with diagnostics source "placeholder" and carries no real metrics.
func Placeholder(platform types.Platform, name, url string) *types.ProfileAudit {
	s := demoSignals
	result := scoring.Score(s)

	return &types.ProfileAudit{
		Platform: platform,
		Profile: types.ProfileSummary{
			Name:              name,
			URL:               url,
			CompletenessScore: s.Completeness,
			HeadlineAnalysis:  types.HeadlineAnalysis{Formula: assessment.FormulaNiche, Effectiveness: s.HeadlineScore, Suggestion: "Add your unique value proposition and target audience"},
			AboutAnalysis:     types.AboutAnalysis{HasHook: true, Structure: assessment.StructureHook, Score: s.AboutScore},
			BannerAssessment:  assessment.Banner(false, false),
			FeaturedSection:   assessment.Featured(nil),
			ExperienceFraming: types.ExperienceFraming{ActionOriented: true, Score: s.ExperienceScore},
		},
		ContentStrategy: types.ContentStrategy{
			PostsPerWeek:    s.PostsPerWeek,
			WeeklyFrequency: []int{2, 3, 2, 0, 3, 2, 4, 0, 2, 3, 2, 3},
			ContentTypes: []types.ContentTypeShare{
				{Type: types.ContentText, Percentage: 50, Color: types.ContentText.Color()},
				{Type: types.ContentImage, Percentage: 30, Color: types.ContentImage.Color()},
				{Type: types.ContentCarousel, Percentage: 20, Color: types.ContentCarousel.Color()},
			},
			ContentPillars: []types.PillarShare{
				{Topic: types.PillarThoughtLeadership, Percentage: 40},
				{Topic: types.PillarHowTo, Percentage: 25},
				{Topic: types.PillarPersonalStories, Percentage: 20},
				{Topic: types.PillarCompanyUpdates, Percentage: 15},
			},
			TopPosts: []types.TopPost{},
			HookPatterns: []types.HookShare{
				{Pattern: types.HookStatement, Percentage: 40},
				{Pattern: types.HookQuestion, Percentage: 25},
				{Pattern: types.HookListicle, Percentage: 20},
				{Pattern: types.HookPersonal, Percentage: 15},
			},
			HashtagStrategy: types.HashtagStrategy{AvgPerPost: s.AvgHashtagsPerPost, TopHashtags: []string{}},
		},
		Engagement: types.EngagementSummary{
			AvgLikes:       s.AvgLikes,
			AvgComments:    s.AvgComments,
			AvgShares:      s.AvgShares,
			EngagementRate: s.EngagementRate,
			ReplyRate:      18,
			AvgReplyTime:   types.ReplyTimeUnavailable,
			GrowthEstimate: scoring.GrowthEstimate(s.PostsPerWeek, s.EngagementRate),
		},
		OverallScore: result.Overall,
		OverallGrade: result.Grade,
		Breakdown:    result.Breakdown,
		Diagnostics:  types.Diagnostics{Source: types.SourcePlaceholder},
	}
}
