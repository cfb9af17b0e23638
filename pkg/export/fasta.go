package export

import (
	"io"

	"github.com/biogo/biogo/io/seqio/fasta"

	"github.com/seqsift/seqsift/pkg/record"
)

// fastaLineWidth is the column at which sequence bodies wrap.
const fastaLineWidth = 60

func writeFASTA(w io.Writer, rs []record.Record) error {
	fw := fasta.NewWriter(w, fastaLineWidth)
	for _, r := range rs {
		if _, err := fw.Write(record.ToSeq(r)); err != nil {
			return err
		}
	}
	return nil
}
