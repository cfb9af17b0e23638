package domain

import "fmt"

// ComparativeTask describes a survey of one gene across several organisms.
// Records from every organism are pooled and exported together under a
// single shared name.
type ComparativeTask struct {
	// Gene is the gene symbol to search for.
	Gene string

	// Organisms are the scientific names to survey.
	Organisms []string

	// Database is the Entrez collection to query. Defaults to "nucleotide".
	Database string

	// PerOrganism caps the number of records fetched per organism.
	// Defaults to 10.
	PerOrganism int

	// MinLength drops pooled records shorter than this before export.
	// Zero keeps everything.
	MinLength int

	// Formats are the export formats to produce, in order.
	Formats []string
}

// Validate checks the task for errors and sets derived defaults.
func (t *ComparativeTask) Validate() error {
	if t.Gene == "" {
		return fmt.Errorf("%w: gene is required", ErrInvalidTask)
	}
	if len(t.Organisms) == 0 {
		return fmt.Errorf("%w: at least one organism is required", ErrInvalidTask)
	}
	if t.MinLength < 0 {
		return fmt.Errorf("%w: min length must not be negative", ErrInvalidTask)
	}
	if t.Database == "" {
		t.Database = "nucleotide"
	}
	if t.PerOrganism <= 0 {
		t.PerOrganism = 10
	}
	if len(t.Formats) == 0 {
		t.Formats = []string{"fasta"}
	}
	return nil
}
