package analyze

import (
	"strings"

	"github.com/seqsift/seqsift/pkg/record"
)

// GCContent returns the percentage of G and C symbols in the record's
// sequence, case-insensitive, in the range 0-100. A zero-length sequence
// yields 0 rather than a division fault. The metric is meaningful for
// nucleotide sequences only.
func GCContent(r record.Record) float64 {
	if r.Len() == 0 {
		return 0
	}
	var gc int
	for i := 0; i < len(r.Sequence); i++ {
		switch r.Sequence[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(r.Len()) * 100
}

// Composition returns a histogram of the record's symbols, folded to
// upper case.
func Composition(r record.Record) map[byte]int {
	counts := make(map[byte]int, 5)
	for i := 0; i < len(r.Sequence); i++ {
		c := r.Sequence[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		counts[c]++
	}
	return counts
}

// GuessType classifies the record's sequence: RNA when uracil appears
// without thymine, DNA when the body is drawn from the core nucleotide
// codes, protein for anything else, unknown for an empty body.
func GuessType(r record.Record) SeqType {
	if r.Len() == 0 {
		return TypeUnknown
	}
	s := strings.ToUpper(r.Sequence)
	if strings.ContainsRune(s, 'U') && !strings.ContainsRune(s, 'T') {
		return TypeRNA
	}
	for _, c := range s {
		switch c {
		case 'A', 'T', 'C', 'G', 'N':
		default:
			return TypeProtein
		}
	}
	return TypeDNA
}
