package record

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Record is a single sequence-database entry: an identifier, a free-text
// description, and the sequence body. Records are produced by fetch
// operations and treated as read-only values; transformations allocate
// new collections rather than mutating fetched data in place.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Len returns the number of symbols in the sequence body.
func (r Record) Len() int {
	return len(r.Sequence)
}

// Header returns the display header: the identifier, followed by the
// description when one is present.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}

// Alphabet returns the biogo alphabet matching the sequence body: RNA when
// uracil appears without thymine, protein when letters outside the IUPAC
// nucleotide codes appear, redundant DNA otherwise.
func (r Record) Alphabet() alphabet.Alphabet {
	var hasT, hasU bool
	for _, c := range strings.ToUpper(r.Sequence) {
		switch c {
		case 'T':
			hasT = true
		case 'U':
			hasU = true
		case 'A', 'C', 'G', 'N', 'R', 'Y', 'S', 'W', 'K', 'M', 'B', 'D', 'H', 'V', '-':
		default:
			return alphabet.Protein
		}
	}
	if hasU && !hasT {
		return alphabet.RNA
	}
	return alphabet.DNAredundant
}

// FromSeq converts a parsed biogo sequence into a Record.
func FromSeq(s *linear.Seq) Record {
	return Record{
		ID:          s.ID,
		Description: s.Desc,
		Sequence:    s.Seq.String(),
	}
}

// ToSeq converts a Record into a biogo linear sequence suitable for FASTA
// output. The alphabet is inferred from the sequence body.
func ToSeq(r Record) *linear.Seq {
	s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Sequence)), r.Alphabet())
	s.Desc = r.Description
	return s
}
