package domain

import "time"

// RunResult records what one pipeline run did. It is persisted as the
// run manifest after a successful export.
type RunResult struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// Database and Query echo the task that produced this run.
	Database string `json:"database"`
	Query    string `json:"query"`

	// Fetched is the number of records returned by the upstream service.
	Fetched int `json:"fetched"`

	// Kept is the number of records that survived the length filter.
	Kept int `json:"kept"`

	// MinLength is the length threshold the run filtered with.
	MinLength int `json:"min_length"`

	// Paths are the exported artifact paths, in export order.
	Paths []string `json:"paths"`

	// Started and Finished bound the run in wall-clock time.
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// Elapsed returns the wall-clock duration of the run.
func (r RunResult) Elapsed() time.Duration {
	return r.Finished.Sub(r.Started)
}
