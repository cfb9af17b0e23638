package export

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/seqsift/seqsift/pkg/record"
)

// Format identifies a supported export format.
type Format string

const (
	// FormatFASTA is the flat sequence format: one header line per
	// record followed by the wrapped sequence body.
	FormatFASTA Format = "fasta"

	// FormatTSV is the tab-delimited table with one row per record.
	FormatTSV Format = "tsv"

	// FormatJSON is a pretty-printed JSON array of records.
	FormatJSON Format = "json"

	// FormatReport is a human-readable text summary.
	FormatReport Format = "report"
)

// ErrUnknownFormat is returned for format names with no registered writer.
var ErrUnknownFormat = errors.New("export: unknown format")

// writerFunc serializes a record collection to w.
type writerFunc func(w io.Writer, rs []record.Record) error

// writers dispatches each format to its serializer.
var writers = map[Format]writerFunc{
	FormatFASTA:  writeFASTA,
	FormatTSV:    writeTSV,
	FormatJSON:   writeJSON,
	FormatReport: writeReport,
}

// extensions maps each format to the filename extension appended when the
// caller's name carries none.
var extensions = map[Format]string{
	FormatFASTA:  ".fasta",
	FormatTSV:    ".tsv",
	FormatJSON:   ".json",
	FormatReport: ".txt",
}

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := writers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// ParseFormats validates a list of format names, preserving order.
func ParseFormats(names []string) ([]Format, error) {
	fs := make([]Format, 0, len(names))
	for _, s := range names {
		f, err := ParseFormat(s)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, nil
}

// Formats lists the supported formats in stable order.
func Formats() []Format {
	fs := make([]Format, 0, len(writers))
	for f := range writers {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}
