package analyze

import "github.com/seqsift/seqsift/pkg/record"

// SeqType classifies a sequence body.
type SeqType string

const (
	TypeDNA     SeqType = "DNA"
	TypeRNA     SeqType = "RNA"
	TypeProtein SeqType = "protein"
	TypeUnknown SeqType = "unknown"
)

// Info is the per-record analysis result. It is computed fresh on every
// call and never cached.
type Info struct {
	ID          string
	Description string
	Length      int
	Type        SeqType

	// GC is the GC content percentage. Zero for protein records.
	GC float64

	// Extra holds metrics added by specialized analyzers, keyed by
	// metric name.
	Extra map[string]float64
}

// Analyzer computes per-record information. Implementations may extend
// the basic computation with additional derived metrics.
type Analyzer interface {
	BasicInfo(r record.Record) Info
}

// SeqAnalyzer is the default Analyzer. It is stateless; the zero value
// is ready to use and safe for concurrent calls.
type SeqAnalyzer struct{}

// BasicInfo reports identity, length, guessed sequence type, and GC
// content for nucleotide records.
func (SeqAnalyzer) BasicInfo(r record.Record) Info {
	info := Info{
		ID:          r.ID,
		Description: r.Description,
		Length:      r.Len(),
		Type:        GuessType(r),
	}
	if info.Type == TypeDNA || info.Type == TypeRNA {
		info.GC = GCContent(r)
	}
	return info
}

// averageResidueDa is the average amino-acid residue mass used for the
// molecular weight estimate.
const averageResidueDa = 110.0

// ProteinAnalyzer extends SeqAnalyzer with protein-specific metrics.
// Records passed to it are treated as amino-acid sequences regardless of
// what type detection would guess.
type ProteinAnalyzer struct {
	SeqAnalyzer
}

// MolecularWeight estimates the record's molecular weight in daltons.
func (ProteinAnalyzer) MolecularWeight(r record.Record) float64 {
	return averageResidueDa * float64(r.Len())
}

// BasicInfo computes the base record information, marks the record as
// protein, and attaches the estimated molecular weight.
func (p ProteinAnalyzer) BasicInfo(r record.Record) Info {
	info := p.SeqAnalyzer.BasicInfo(r)
	info.Type = TypeProtein
	info.GC = 0
	if info.Extra == nil {
		info.Extra = make(map[string]float64)
	}
	info.Extra["molecular_weight"] = p.MolecularWeight(r)
	return info
}
