package domain

import "fmt"

// Task describes one end-to-end research run: what to search, how to
// filter the fetched records, and how to name the exported artifacts.
type Task struct {
	// Database is the Entrez collection to query (e.g. "nucleotide",
	// "protein").
	Database string

	// Query is the Entrez query expression.
	Query string

	// RetMax caps the number of records fetched. Must be positive.
	RetMax int

	// MinLength drops fetched records shorter than this before export.
	// Zero keeps everything.
	MinLength int

	// Name is the base filename for exported artifacts; format writers
	// append their own extensions.
	Name string

	// Formats are the export formats to produce, in order.
	Formats []string

	// ArchiveGenBank also fetches the records in GenBank flat-file form
	// and stores the bytes verbatim alongside the parsed exports.
	ArchiveGenBank bool
}

// Validate checks the task for errors and sets derived defaults.
func (t *Task) Validate() error {
	if t.Database == "" {
		return fmt.Errorf("%w: database is required", ErrInvalidTask)
	}
	if t.Query == "" {
		return fmt.Errorf("%w: query is required", ErrInvalidTask)
	}
	if t.RetMax <= 0 {
		return fmt.Errorf("%w: retmax must be positive", ErrInvalidTask)
	}
	if t.MinLength < 0 {
		return fmt.Errorf("%w: min length must not be negative", ErrInvalidTask)
	}
	if t.Name == "" {
		t.Name = "records"
	}
	if len(t.Formats) == 0 {
		t.Formats = []string{"fasta"}
	}
	return nil
}
