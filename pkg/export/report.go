package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/seqsift/seqsift/pkg/record"
)

const (
	reportTitle = "SEQUENCE RECORD REPORT"

	// previewLen is the number of sequence symbols shown per record.
	previewLen = 50
)

var reportBanner = strings.Repeat("=", 80)

func writeReport(w io.Writer, rs []record.Record) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", reportBanner, reportTitle, reportBanner); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total records: %d\n", len(rs)); err != nil {
		return err
	}
	for i, r := range rs {
		if _, err := fmt.Fprintf(w, "\nRecord %d: %s\n", i+1, r.ID); err != nil {
			return err
		}
		if r.Description != "" {
			if _, err := fmt.Fprintf(w, "  Description: %s\n", r.Description); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  Length: %d\n", r.Len()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  Preview: %s\n", preview(r.Sequence)); err != nil {
			return err
		}
	}
	return nil
}

// preview truncates long sequences for display.
func preview(seq string) string {
	if len(seq) <= previewLen {
		return seq
	}
	return seq[:previewLen] + "..."
}
