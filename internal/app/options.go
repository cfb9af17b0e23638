package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/seqsift/seqsift/internal/ports"
	"github.com/seqsift/seqsift/pkg/log"
)

// Option configures optional behavior of a Workflow.
type Option func(*options)

// options holds the optional dependencies of a Workflow.
type options struct {
	logger    log.Logger
	manifests ports.ManifestRepository
	clock     func() time.Time
	newRunID  func() string
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:   log.NewNoopLogger(),
		clock:    time.Now,
		newRunID: uuid.NewString,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithManifests sets a repository for persisting run manifests.
// If not provided, runs leave no manifest behind.
func WithManifests(repo ports.ManifestRepository) Option {
	return func(o *options) {
		o.manifests = repo
	}
}

// WithClock overrides the time source used to stamp runs.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithRunIDFunc overrides run ID generation. Run IDs default to random
// UUIDs; tests substitute a deterministic sequence.
func WithRunIDFunc(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newRunID = fn
		}
	}
}
