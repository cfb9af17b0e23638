package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// PruneResult summarizes one cleanup pass over the output directory.
type PruneResult struct {
	Removed int
	Freed   int64
}

type agedFile struct {
	path    string
	size    int64
	modTime time.Time
}

// Prune removes files under the output directory whose modification time is
// older than maxAge relative to now, oldest first. Subdirectories such as a
// manifest store are walked too; the directories themselves are kept. A
// missing output directory is not an error.
func (e *Exporter) Prune(maxAge time.Duration, now time.Time) (PruneResult, error) {
	var res PruneResult

	if maxAge <= 0 {
		return res, fmt.Errorf("prune: max age must be positive, got %v", maxAge)
	}

	files, err := agedFiles(e.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return res, err
	}

	cutoff := now.Add(-maxAge)
	sort.Slice(files, func(i, j int) bool { return files[i].modTime.Before(files[j].modTime) })

	for _, f := range files {
		// Sorted oldest first, so the first survivor ends the pass.
		if !f.modTime.Before(cutoff) {
			break
		}
		if err := os.Remove(f.path); err != nil {
			return res, fmt.Errorf("prune %s: %w", f.path, err)
		}
		res.Removed++
		res.Freed += f.size
	}

	return res, nil
}

func agedFiles(dir string) ([]agedFile, error) {
	var files []agedFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, agedFile{path: path, size: info.Size(), modTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// FormatBytes renders a byte count in human-readable form.
func FormatBytes(b int64) string {
	const (
		_          = iota
		kb float64 = 1 << (10 * iota)
		mb
		gb
	)

	fb := float64(b)
	switch {
	case fb >= gb:
		return fmt.Sprintf("%.2fGiB", fb/gb)
	case fb >= mb:
		return fmt.Sprintf("%.2fMiB", fb/mb)
	case fb >= kb:
		return fmt.Sprintf("%.2fKiB", fb/kb)
	default:
		return fmt.Sprintf("%dB", b)
	}
}
