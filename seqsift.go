// Package seqsift searches NCBI Entrez for sequence records, filters them by
// length, and exports the survivors in analysis-ready formats.
//
// Example usage:
//
//	cfg, err := seqsift.NewConfig("you@lab.org", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := seqsift.Run(context.Background(), cfg, "results", seqsift.Task{
//	    Database:  "nucleotide",
//	    Query:     "BRCA1[Gene name] AND human[Organism]",
//	    RetMax:    20,
//	    MinLength: 500,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Paths)
package seqsift

import (
	"context"

	"github.com/seqsift/seqsift/internal/adapters/fs"
	"github.com/seqsift/seqsift/internal/app"
	"github.com/seqsift/seqsift/internal/domain"
	"github.com/seqsift/seqsift/pkg/entrez"
	"github.com/seqsift/seqsift/pkg/export"
	"github.com/seqsift/seqsift/pkg/log"
	"github.com/seqsift/seqsift/pkg/record"
)

// Config carries the contact identity and optional API key sent with every
// Entrez request. Construct it with NewConfig or ConfigFromEnv.
type Config = entrez.Config

// Task describes one search, filter and export pass.
type Task = domain.Task

// ComparativeTask describes a survey of one gene across several organisms.
type ComparativeTask = domain.ComparativeTask

// RunResult summarizes a completed pipeline run.
type RunResult = domain.RunResult

// ComparativeResult summarizes a completed comparative survey.
type ComparativeResult = app.ComparativeResult

// Record is a single sequence record as fetched from Entrez.
type Record = record.Record

// ErrInvalidEmail reports a contact email without an "@".
var ErrInvalidEmail = entrez.ErrInvalidEmail

// Environment variables read by ConfigFromEnv.
const (
	EnvEmail  = entrez.EnvEmail
	EnvAPIKey = entrez.EnvAPIKey
)

// NewConfig validates the contact email and returns a Config. The API key
// may be empty.
func NewConfig(email, apiKey string) (Config, error) {
	return entrez.NewConfig(email, apiKey)
}

// ConfigFromEnv builds a Config from the NCBI_EMAIL and NCBI_API_KEY
// environment variables.
func ConfigFromEnv() (Config, error) {
	return entrez.ConfigFromEnv()
}

// Option customizes the pipeline assembled by Run and RunComparative.
type Option func(*settings)

type settings struct {
	logger      log.Logger
	manifestDir string
}

// WithLogger routes client and pipeline progress through l. By default the
// pipeline is silent.
func WithLogger(l log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithManifestDir persists a JSON manifest of every run into dir.
func WithManifestDir(dir string) Option {
	return func(s *settings) { s.manifestDir = dir }
}

// Run executes one search, filter and export pass, writing artifacts under
// outDir. The directory is created if it does not exist.
func Run(ctx context.Context, cfg Config, outDir string, task Task, opts ...Option) (*RunResult, error) {
	wf, err := newWorkflow(cfg, outDir, opts)
	if err != nil {
		return nil, err
	}
	return wf.Run(ctx, task)
}

// RunComparative surveys one gene across several organisms and exports the
// pooled records under outDir.
func RunComparative(ctx context.Context, cfg Config, outDir string, task ComparativeTask, opts ...Option) (*ComparativeResult, error) {
	wf, err := newWorkflow(cfg, outDir, opts)
	if err != nil {
		return nil, err
	}
	return wf.RunComparative(ctx, task)
}

func newWorkflow(cfg Config, outDir string, opts []Option) (*app.Workflow, error) {
	s := settings{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	client, err := entrez.NewClient(cfg, entrez.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	appOpts := []app.Option{app.WithLogger(s.logger)}
	if s.manifestDir != "" {
		appOpts = append(appOpts, app.WithManifests(fs.NewManifestFileRepository(s.manifestDir)))
	}

	return app.New(client, export.NewExporter(outDir), appOpts...)
}
