package ports

import (
	"github.com/seqsift/seqsift/pkg/export"
	"github.com/seqsift/seqsift/pkg/record"
)

// RecordExporter writes record collections to artifact files and returns
// the resolved paths. Writes overwrite existing files; a failed write is
// surfaced, not retried.
type RecordExporter interface {
	// Export serializes rs to the named file in one format.
	Export(name string, format export.Format, rs []record.Record) (string, error)

	// ExportAll serializes rs once per format, in order.
	ExportAll(name string, formats []export.Format, rs []record.Record) ([]string, error)

	// WriteRaw stores an already-serialized payload verbatim.
	WriteRaw(name, ext string, body []byte) (string, error)
}
