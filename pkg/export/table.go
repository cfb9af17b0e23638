package export

import (
	"fmt"
	"io"

	"github.com/seqsift/seqsift/pkg/record"
)

// TSVHeader is the canonical column header for tabular exports.
const TSVHeader = "id\tdescription\tlength"

func writeTSV(w io.Writer, rs []record.Record) error {
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, r := range rs {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", r.ID, r.Description, r.Len()); err != nil {
			return err
		}
	}
	return nil
}
