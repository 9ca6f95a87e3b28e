// Package loader produces the page data for the age lookup page.
//
// A Loader turns the raw "name" query parameter into a models.LookupResult.
// Blank names short-circuit without a network call. Every failure of the
// upstream call (transport, non-2xx status, undecodable body) is logged with
// its detail and collapsed into one fixed user-facing message, so the page
// cannot tell the causes apart.
package loader

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"agelookup/internal/models"
	"agelookup/internal/validation"
)

// Estimator fetches an age estimate for a trimmed, non-empty name.
type Estimator interface {
	Estimate(ctx context.Context, name string) (models.AgeEstimate, error)
}

// Recorder receives lookup outcomes and upstream timings.
type Recorder interface {
	RecordLookup(outcome string)
	ObserveUpstream(d time.Duration)
}

// Loader builds LookupResults. It holds no per-lookup state and is safe
// for concurrent use.
type Loader struct {
	estimator Estimator
	logger    *slog.Logger
	message   string
	recorder  Recorder
	clock     clockwork.Clock
}

// Option configures a Loader.
type Option func(*Loader)

// WithErrorMessage overrides the message returned for failed lookups.
func WithErrorMessage(message string) Option {
	return func(l *Loader) {
		if message != "" {
			l.message = message
		}
	}
}

// WithRecorder sets the outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(l *Loader) {
		if r != nil {
			l.recorder = r
		}
	}
}

// WithClock swaps the time source used to time upstream calls.
func WithClock(c clockwork.Clock) Option {
	return func(l *Loader) {
		if c != nil {
			l.clock = c
		}
	}
}

// New creates a Loader over estimator. Failure detail is written to logger.
func New(estimator Estimator, logger *slog.Logger, opts ...Option) *Loader {
	l := &Loader{
		estimator: estimator,
		logger:    logger,
		message:   models.DefaultFetchErrorMessage,
		recorder:  noopRecorder{},
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load looks up rawName. The returned Name is rawName as given, untrimmed;
// blank input yields an empty result with Name "".
func (l *Loader) Load(ctx context.Context, rawName string) models.LookupResult {
	name := validation.NormalizeName(rawName)
	if name == "" {
		result := models.EmptyLookup()
		l.recorder.RecordLookup(result.Outcome())
		return result
	}

	lookupID := uuid.NewString()

	start := l.clock.Now()
	estimate, err := l.estimator.Estimate(ctx, name)
	l.recorder.ObserveUpstream(l.clock.Since(start))

	var result models.LookupResult
	if err != nil {
		if errors.Is(err, context.Canceled) {
			l.logger.Info("age lookup abandoned", "lookup_id", lookupID, "name", name, "error", err)
		} else {
			l.logger.Error("error fetching age data", "lookup_id", lookupID, "name", name, "error", err)
		}
		result = models.FailedLookup(rawName, l.message)
	} else {
		l.logger.Debug("age lookup succeeded", "lookup_id", lookupID, "name", name, "count", estimate.Count)
		result = models.SuccessfulLookup(rawName, estimate)
	}

	l.recorder.RecordLookup(result.Outcome())
	return result
}

type noopRecorder struct{}

func (noopRecorder) RecordLookup(string)            {}
func (noopRecorder) ObserveUpstream(time.Duration) {}
