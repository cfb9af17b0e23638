package ports

import (
	"context"

	"github.com/seqsift/seqsift/internal/domain"
)

// ManifestRepository persists run manifests for later inspection.
// Implementations write atomically (e.g. write to a temp file, then
// rename) so a crash never leaves a torn manifest.
type ManifestRepository interface {
	// Save persists the manifest for result's run.
	Save(ctx context.Context, result *domain.RunResult) error

	// Load retrieves the manifest saved for runID.
	// Returns domain.ErrManifestNotFound when no such manifest exists.
	Load(ctx context.Context, runID string) (domain.RunResult, error)
}
