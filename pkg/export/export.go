package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqsift/seqsift/pkg/record"
)

// Exporter writes record collections to files under a fixed output
// directory. The directory is created on first write if absent; writing
// to an existing filename replaces it.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter rooted at dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Export serializes rs to the named file in the given format and returns
// the resolved output path. The format's extension is appended when name
// has none. An empty collection still produces a validly-formatted file.
func (e *Exporter) Export(name string, f Format, rs []record.Record) (string, error) {
	write, ok := writers[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	path, err := e.outputPath(name, extensions[f])
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(file, rs); err != nil {
		file.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// ExportAll serializes rs once per format, returning the paths written in
// format order. The first failure stops the export; paths written before
// the failure are returned alongside the error.
func (e *Exporter) ExportAll(name string, formats []Format, rs []record.Record) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path, err := e.Export(name, f, rs)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteRaw stores body verbatim under the named file, appending ext when
// name has no extension. Used for archival payloads that are already
// serialized, such as GenBank flat files.
func (e *Exporter) WriteRaw(name, ext string, body []byte) (string, error) {
	path, err := e.outputPath(name, ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// outputPath ensures the output directory exists and resolves the final
// file path for name, appending ext when name carries no extension.
func (e *Exporter) outputPath(name, ext string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", e.dir, err)
	}
	if filepath.Ext(name) == "" {
		name += ext
	}
	return filepath.Join(e.dir, name), nil
}
