package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqsift/seqsift/internal/domain"
)

// ManifestFileRepository implements ports.ManifestRepository using one JSON
// file per run under a manifest directory.
type ManifestFileRepository struct {
	dir string
}

// NewManifestFileRepository creates a new ManifestFileRepository rooted at dir.
func NewManifestFileRepository(dir string) *ManifestFileRepository {
	return &ManifestFileRepository{dir: dir}
}

// Save persists the run manifest atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *ManifestFileRepository) Save(ctx context.Context, res *domain.RunResult) error {
	if res == nil {
		return fmt.Errorf("save manifest: nil result")
	}
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path(res.RunID)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Load retrieves the manifest for a previous run.
// Returns domain.ErrManifestNotFound if no manifest exists for runID.
func (r *ManifestFileRepository) Load(ctx context.Context, runID string) (domain.RunResult, error) {
	data, err := os.ReadFile(r.Path(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.RunResult{}, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, runID)
		}
		return domain.RunResult{}, err
	}

	var res domain.RunResult
	if err := json.Unmarshal(data, &res); err != nil {
		return domain.RunResult{}, err
	}

	return res, nil
}

// Path returns the full path to the manifest file for runID.
func (r *ManifestFileRepository) Path(runID string) string {
	return filepath.Join(r.dir, runID+".json")
}
