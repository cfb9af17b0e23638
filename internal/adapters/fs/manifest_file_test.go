package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seqsift/seqsift/internal/domain"
)

func TestManifestSaveLoad(t *testing.T) {
	repo := NewManifestFileRepository(filepath.Join(t.TempDir(), "manifests"))

	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	want := domain.RunResult{
		RunID:     "run-42",
		Database:  "nucleotide",
		Query:     "BRCA1[Gene name]",
		Fetched:   3,
		Kept:      1,
		MinLength: 100,
		Paths:     []string{"/tmp/out/records.fasta"},
		Started:   started,
		Finished:  started.Add(2 * time.Second),
	}

	if err := repo.Save(context.Background(), &want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(context.Background(), "run-42")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.RunID != want.RunID || got.Database != want.Database || got.Query != want.Query {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
	if got.Fetched != want.Fetched || got.Kept != want.Kept || got.MinLength != want.MinLength {
		t.Errorf("Load() counts = %+v, want %+v", got, want)
	}
	if len(got.Paths) != 1 || got.Paths[0] != want.Paths[0] {
		t.Errorf("Load() paths = %v, want %v", got.Paths, want.Paths)
	}
	if !got.Started.Equal(want.Started) || !got.Finished.Equal(want.Finished) {
		t.Errorf("Load() times = %v..%v, want %v..%v", got.Started, got.Finished, want.Started, want.Finished)
	}
}

func TestManifestLoadMissing(t *testing.T) {
	repo := NewManifestFileRepository(t.TempDir())

	_, err := repo.Load(context.Background(), "no-such-run")
	if !errors.Is(err, domain.ErrManifestNotFound) {
		t.Errorf("Load() error = %v, want ErrManifestNotFound", err)
	}
}

func TestManifestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "manifests")
	repo := NewManifestFileRepository(dir)

	res := domain.RunResult{RunID: "run-1"}
	if err := repo.Save(context.Background(), &res); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(repo.Path("run-1")); err != nil {
		t.Errorf("manifest file not created: %v", err)
	}
}

func TestManifestSaveOverwrites(t *testing.T) {
	repo := NewManifestFileRepository(t.TempDir())
	ctx := context.Background()

	first := domain.RunResult{RunID: "run-7", Fetched: 1}
	if err := repo.Save(ctx, &first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := domain.RunResult{RunID: "run-7", Fetched: 9}
	if err := repo.Save(ctx, &second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx, "run-7")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Fetched != 9 {
		t.Errorf("Fetched = %d, want 9", got.Fetched)
	}
}

func TestManifestSaveNil(t *testing.T) {
	repo := NewManifestFileRepository(t.TempDir())
	if err := repo.Save(context.Background(), nil); err == nil {
		t.Error("Save(nil) error = nil, want error")
	}
}

func TestManifestPath(t *testing.T) {
	repo := NewManifestFileRepository("/var/lib/seqsift")
	want := filepath.Join("/var/lib/seqsift", "run-3.json")
	if got := repo.Path("run-3"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
