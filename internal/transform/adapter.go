// Package transform turns raw scraper records into a canonical ProfileAudit.
//
// Each platform has its own adapter that maps its raw schema onto a shared
// post shape; one builder then enriches, aggregates and scores the posts.
// Transforms are pure functions of their input and the injected clock.
package transform

import (
	"encoding/json"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/growth-audit/internal/types"
)

const (
	defaultTopPosts    = 10
	defaultTopHashtags = 10
)

// PlatformAdapter transforms one platform's raw scrape into an audit.
type PlatformAdapter interface {
	Platform() types.Platform
	Transform(profile json.RawMessage, posts []json.RawMessage) (*types.ProfileAudit, error)
}

// Recorder observes transform outcomes. observability.Metrics implements it.
type Recorder interface {
	ObserveTransform(platform types.Platform, outcome string, elapsed time.Duration)
	AddSkipped(platform types.Platform, n int)
}

// Transform outcomes reported to a Recorder.
const (
	OutcomeOK           = "ok"
	OutcomeInsufficient = "insufficient_data"
	OutcomeError        = "error"
)

type options struct {
	clock       clockwork.Clock
	logger      *logrus.Logger
	recorder    Recorder
	topPosts    int
	topHashtags int
}

// Option configures an adapter.
type Option func(*options)

// WithClock sets the clock that "now" is read from for weekly bucketing.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger used for skipped-record warnings.
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder sets a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithTopPosts sets how many posts are ranked into topPosts.
func WithTopPosts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topPosts = n
		}
	}
}

// WithTopHashtags sets how many hashtags are reported.
func WithTopHashtags(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topHashtags = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		clock:       clockwork.NewRealClock(),
		topPosts:    defaultTopPosts,
		topHashtags: defaultTopHashtags,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetOutput(io.Discard)
	}
	return o
}

// New returns the adapter for platform.
func New(platform types.Platform, opts ...Option) (PlatformAdapter, error) {
	switch platform {
	case types.PlatformLinkedIn:
		return NewLinkedIn(opts...), nil
	case types.PlatformTwitter:
		return NewTwitter(opts...), nil
	default:
		return nil, &UnsupportedPlatformError{Platform: platform}
	}
}

// observe reports the outcome of one transform to the recorder, if any.
func (o *options) observe(platform types.Platform, start time.Time, skipped int, err error) {
	if o.recorder == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
		if _, ok := err.(*InsufficientDataError); ok {
			outcome = OutcomeInsufficient
		}
	}
	o.recorder.ObserveTransform(platform, outcome, o.clock.Since(start))
	if skipped > 0 {
		o.recorder.AddSkipped(platform, skipped)
	}
}

// skip logs a malformed record.
func (o *options) skip(platform types.Platform, err *MalformedRecordError) {
	o.logger.WithFields(logrus.Fields{
		"platform": platform,
		"index":    err.Index,
	}).WithError(err.Cause).Warn("skipping malformed post record")
}

// Identity resolves the display name and canonical profile URL from a raw
// profile without validating it. Undecodable or absent profiles yield empty strings.
func Identity(platform types.Platform, raw json.RawMessage) (name, url string) {
	if !present(raw) {
		return "", ""
	}
	switch platform {
	case types.PlatformLinkedIn:
		var p types.LinkedInProfile
		if json.Unmarshal(raw, &p) != nil {
			return "", ""
		}
		return linkedInIdentity(&p)
	case types.PlatformTwitter:
		var p types.TwitterProfile
		if json.Unmarshal(raw, &p) != nil {
			return "", ""
		}
		return twitterIdentity(&p)
	}
	return "", ""
}
