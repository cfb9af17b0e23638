package app

import (
	"context"
	"fmt"
	"time"

	"github.com/seqsift/seqsift/internal/domain"
	"github.com/seqsift/seqsift/internal/ports"
	"github.com/seqsift/seqsift/pkg/analyze"
	"github.com/seqsift/seqsift/pkg/export"
	"github.com/seqsift/seqsift/pkg/log"
)

// Workflow orchestrates the fetch, filter and export pipeline.
// It reaches the upstream service and the filesystem only through ports,
// so tests can substitute fakes for both.
type Workflow struct {
	source    ports.SequenceSource
	exporter  ports.RecordExporter
	manifests ports.ManifestRepository
	logger    log.Logger
	clock     func() time.Time
	newRunID  func() string
}

// New creates a new Workflow with the given dependencies.
func New(source ports.SequenceSource, exporter ports.RecordExporter, opts ...Option) (*Workflow, error) {
	if source == nil {
		return nil, fmt.Errorf("app: sequence source is required")
	}
	if exporter == nil {
		return nil, fmt.Errorf("app: record exporter is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Workflow{
		source:    source,
		exporter:  exporter,
		manifests: o.manifests,
		logger:    o.logger,
		clock:     o.clock,
		newRunID:  o.newRunID,
	}, nil
}

// Run executes one search, filter and export pass.
// The stages run in strict sequence with no retries: a failing stage aborts
// the run, and a search that matches nothing ends the run before any
// filtering or export happens. A collection filtered down to nothing still
// exports, producing valid empty artifacts.
func (w *Workflow) Run(ctx context.Context, task domain.Task) (*domain.RunResult, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	formats, err := export.ParseFormats(task.Formats)
	if err != nil {
		return nil, fmt.Errorf("parse formats: %w", err)
	}

	started := w.clock()
	runID := w.newRunID()

	w.logger.Info("run started",
		log.String("run_id", runID),
		log.String("database", task.Database),
		log.String("query", task.Query),
		log.Int("retmax", task.RetMax),
	)

	res := &domain.RunResult{
		RunID:     runID,
		Database:  task.Database,
		Query:     task.Query,
		MinLength: task.MinLength,
		Started:   started,
	}

	ids, err := w.source.Search(ctx, task.Database, task.Query, task.RetMax)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}
	if len(ids) == 0 {
		res.Finished = w.clock()
		w.logger.Info("no records matched",
			log.String("run_id", runID),
			log.String("query", task.Query),
		)
		return res, nil
	}

	records, err := w.source.Fetch(ctx, task.Database, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	res.Fetched = len(records)
	if len(records) == 0 {
		res.Finished = w.clock()
		w.logger.Info("no records fetched",
			log.String("run_id", runID),
			log.String("query", task.Query),
		)
		return res, nil
	}

	kept := analyze.FilterByLength(records, task.MinLength)
	res.Kept = len(kept)

	paths, err := w.exporter.ExportAll(task.Name, formats, kept)
	if err != nil {
		return nil, fmt.Errorf("export records: %w", err)
	}
	res.Paths = paths

	if task.ArchiveGenBank {
		body, err := w.source.FetchRaw(ctx, task.Database, "gb", ids)
		if err != nil {
			return nil, fmt.Errorf("archive genbank: %w", err)
		}
		path, err := w.exporter.WriteRaw(task.Name, ".gb", body)
		if err != nil {
			return nil, fmt.Errorf("archive genbank: %w", err)
		}
		res.Paths = append(res.Paths, path)
	}

	res.Finished = w.clock()

	// A manifest failure does not undo a completed export, so log it
	// instead of failing the run.
	if w.manifests != nil {
		if err := w.manifests.Save(ctx, res); err != nil {
			w.logger.Error("failed to save manifest",
				log.String("run_id", runID),
				log.Err(err),
			)
		}
	}

	w.logger.Info("run finished",
		log.String("run_id", runID),
		log.Int("fetched", res.Fetched),
		log.Int("kept", res.Kept),
		log.Strings("paths", res.Paths),
		log.Duration("elapsed", res.Elapsed()),
	)

	return res, nil
}
