package ports

import (
	"context"

	"github.com/seqsift/seqsift/pkg/record"
)

// SequenceSource searches and fetches sequence records from the upstream
// collection service. Implementations surface upstream failures as errors
// without retrying; the pipeline never recovers a failed stage.
type SequenceSource interface {
	// Search returns up to retMax record identifiers matching query in
	// the named database, fewer or none when the query matches less.
	Search(ctx context.Context, db, query string, retMax int) ([]int, error)

	// Fetch retrieves the named records and parses them into values.
	// An empty id list fetches nothing and returns an empty collection.
	Fetch(ctx context.Context, db string, ids []int) ([]record.Record, error)

	// FetchRaw retrieves the named records in the given upstream format
	// (e.g. "gb") and returns the payload verbatim.
	FetchRaw(ctx context.Context, db, retType string, ids []int) ([]byte, error)
}
