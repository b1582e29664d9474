package transform

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/jonathan/growth-audit/internal/aggregate"
	"github.com/jonathan/growth-audit/internal/classify"
	"github.com/jonathan/growth-audit/internal/scoring"
	"github.com/jonathan/growth-audit/internal/types"
)

// topPostChars is the preview length of a top post.
const topPostChars = 150

var errNullRecord = errors.New("record is null")

// post is the platform-neutral shape every adapter maps its records onto.
type post struct {
	text         string
	interactions aggregate.Interactions
	at           time.Time
	url          string
	shape        classify.PostShape

	pillar types.ContentPillar
	hook   types.HookPattern
	ctype  types.ContentType
}

type record[T any] interface {
	*T
	Validate() error
}

// decodeRecords unmarshals and validates each raw record on its own so one
// bad record cannot sink the batch.
func decodeRecords[T any, P record[T]](raw []json.RawMessage) ([]T, []*MalformedRecordError) {
	good := make([]T, 0, len(raw))
	var bad []*MalformedRecordError
	for i, msg := range raw {
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			bad = append(bad, &MalformedRecordError{Index: i, Cause: errNullRecord})
			continue
		}
		var rec T
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			bad = append(bad, &MalformedRecordError{Index: i, Cause: err})
			continue
		}
		if err := P(&rec).Validate(); err != nil {
			bad = append(bad, &MalformedRecordError{Index: i, Cause: err})
			continue
		}
		good = append(good, rec)
	}
	return good, bad
}

// present reports whether an optional raw JSON field carries a value.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) && !bytes.Equal(trimmed, []byte("false"))
}

// build enriches, aggregates and scores posts into an audit.
func (o *options) build(platform types.Platform, profile types.ProfileSummary, posts []post, skipped int, classifier *classify.Classifier) *types.ProfileAudit {
	now := o.clock.Now().UTC()

	interactions := make([]aggregate.Interactions, len(posts))
	times := make([]time.Time, len(posts))
	texts := make([]string, len(posts))
	pillars := make([]types.ContentPillar, len(posts))
	hooks := make([]types.HookPattern, len(posts))
	ctypes := make([]types.ContentType, len(posts))
	for i := range posts {
		p := &posts[i]
		p.pillar = classifier.Classify(p.text)
		p.hook = classify.DetectHook(p.text)
		p.ctype = classify.DetectType(p.shape)

		interactions[i] = p.interactions
		times[i] = p.at
		texts[i] = p.text
		pillars[i] = p.pillar
		hooks[i] = p.hook
		ctypes[i] = p.ctype
	}

	engagement := aggregate.Engagement(interactions, profile.Followers)
	frequency := aggregate.WeeklyFrequency(times, now)
	postsPerWeek := aggregate.PostsPerWeek(times, now)
	hashtags := aggregate.Hashtags(texts, o.topHashtags)

	strategy := types.ContentStrategy{
		PostsPerWeek:    postsPerWeek,
		WeeklyFrequency: frequency,
		ContentTypes:    contentTypeShares(ctypes),
		ContentPillars:  pillarShares(pillars),
		TopPosts:        topPosts(posts, o.topPosts),
		HookPatterns:    hookShares(hooks),
		HashtagStrategy: types.HashtagStrategy{
			AvgPerPost:  hashtags.AvgPerPost,
			TopHashtags: hashtags.Top,
		},
		PostingSchedule: aggregate.Schedule(times),
	}

	result := scoring.Score(scoring.Signals{
		Completeness:       profile.CompletenessScore,
		HeadlineScore:      profile.HeadlineAnalysis.Effectiveness,
		AboutScore:         profile.AboutAnalysis.Score,
		ExperienceScore:    profile.ExperienceFraming.Score,
		PostsPerWeek:       postsPerWeek,
		ContentTypeCount:   len(strategy.ContentTypes),
		PillarCount:        len(strategy.ContentPillars),
		HookCount:          len(strategy.HookPatterns),
		EngagementRate:     engagement.EngagementRate,
		AvgLikes:           engagement.AvgLikes,
		AvgComments:        engagement.AvgComments,
		AvgShares:          engagement.AvgShares,
		ActiveWeeks:        aggregate.ActiveWeeks(frequency),
		AvgHashtagsPerPost: hashtags.AvgPerPost,
	})

	return &types.ProfileAudit{
		Platform:        platform,
		Profile:         profile,
		ContentStrategy: strategy,
		Engagement: types.EngagementSummary{
			AvgLikes:       engagement.AvgLikes,
			AvgComments:    engagement.AvgComments,
			AvgShares:      engagement.AvgShares,
			EngagementRate: engagement.EngagementRate,
			ReplyRate:      engagement.ReplyRate,
			AvgReplyTime:   types.ReplyTimeUnavailable,
			GrowthEstimate: scoring.GrowthEstimate(postsPerWeek, engagement.EngagementRate),
		},
		OverallScore: result.Overall,
		OverallGrade: result.Grade,
		Breakdown:    result.Breakdown,
		Diagnostics: types.Diagnostics{
			Source:         types.SourceLive,
			PostsAnalyzed:  len(posts),
			SkippedRecords: skipped,
		},
	}
}

func contentTypeShares(labels []types.ContentType) []types.ContentTypeShare {
	shares := aggregate.Distribution(labels, types.AllContentTypes())
	out := make([]types.ContentTypeShare, len(shares))
	for i, s := range shares {
		out[i] = types.ContentTypeShare{Type: s.Key, Percentage: s.Percentage, Color: s.Key.Color()}
	}
	return out
}

func pillarShares(labels []types.ContentPillar) []types.PillarShare {
	shares := aggregate.Distribution(labels, types.AllPillars())
	out := make([]types.PillarShare, len(shares))
	for i, s := range shares {
		out[i] = types.PillarShare{Topic: s.Key, Percentage: s.Percentage}
	}
	return out
}

func hookShares(labels []types.HookPattern) []types.HookShare {
	shares := aggregate.Distribution(labels, types.AllHookPatterns())
	out := make([]types.HookShare, len(shares))
	for i, s := range shares {
		out[i] = types.HookShare{Pattern: s.Key, Percentage: s.Percentage}
	}
	return out
}

// topPosts ranks posts by likes plus comments; equal totals keep input order.
func topPosts(posts []post, n int) []types.TopPost {
	idx := make([]int, len(posts))
	for i := range idx {
		idx[i] = i
	}
	total := func(i int) int { return posts[i].interactions.Likes + posts[i].interactions.Comments }
	sort.SliceStable(idx, func(a, b int) bool { return total(idx[a]) > total(idx[b]) })
	if len(idx) > n {
		idx = idx[:n]
	}

	out := make([]types.TopPost, 0, len(idx))
	for _, i := range idx {
		p := posts[i]
		top := types.TopPost{
			Text:     truncate(p.text, topPostChars),
			Likes:    p.interactions.Likes,
			Comments: p.interactions.Comments,
			Shares:   p.interactions.Shares,
			Type:     p.ctype,
			URL:      p.url,
			Pillar:   p.pillar,
		}
		if !p.at.IsZero() {
			top.PostedAt = p.at.UTC().Format(time.RFC3339)
		}
		out = append(out, top)
	}
	return out
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
