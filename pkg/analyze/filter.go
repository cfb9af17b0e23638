package analyze

import "github.com/seqsift/seqsift/pkg/record"

// FilterByLength returns the records whose sequence length meets or
// exceeds min, preserving input order. The input slice is never mutated;
// the result is a fresh slice, so filtering is idempotent.
func FilterByLength(rs []record.Record, min int) []record.Record {
	out := make([]record.Record, 0, len(rs))
	for _, r := range rs {
		if r.Len() >= min {
			out = append(out, r)
		}
	}
	return out
}

// FilterByLengthRange returns the records whose sequence length is within
// [min, max], preserving input order. A max of zero or below means no
// upper bound.
func FilterByLengthRange(rs []record.Record, min, max int) []record.Record {
	out := make([]record.Record, 0, len(rs))
	for _, r := range rs {
		if r.Len() < min {
			continue
		}
		if max > 0 && r.Len() > max {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Summary aggregates length statistics over a record collection.
type Summary struct {
	Count       int     `json:"count"`
	TotalLength int     `json:"total_length"`
	MinLength   int     `json:"min_length"`
	MaxLength   int     `json:"max_length"`
	MeanLength  float64 `json:"mean_length"`
}

// Stats computes length statistics for a collection. An empty collection
// yields the zero Summary.
func Stats(rs []record.Record) Summary {
	s := Summary{Count: len(rs)}
	if len(rs) == 0 {
		return s
	}
	s.MinLength = rs[0].Len()
	s.MaxLength = rs[0].Len()
	for _, r := range rs {
		n := r.Len()
		s.TotalLength += n
		if n < s.MinLength {
			s.MinLength = n
		}
		if n > s.MaxLength {
			s.MaxLength = n
		}
	}
	s.MeanLength = float64(s.TotalLength) / float64(s.Count)
	return s
}
