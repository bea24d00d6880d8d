package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

func TestStateFileRepository_RoundTrip(t *testing.T) {
	repo := NewStateFileRepository(t.TempDir())
	ctx := context.Background()

	state := domain.SessionState{
		SessionID:      "abc-123",
		ConnectedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		FramesSeen:     42,
		ThrowsDetected: 7,
		LastStatus:     "Throw",
		LastEvent:      "Throw detected",
		UpdatedAt:      time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
	}

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != state {
		t.Errorf("Load() = %+v, want %+v", loaded, state)
	}
}

func TestStateFileRepository_LoadMissingFile(t *testing.T) {
	repo := NewStateFileRepository(t.TempDir())

	state, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v for missing file", err)
	}
	if state != (domain.SessionState{}) {
		t.Errorf("Load() = %+v, want zero state", state)
	}
}

func TestStateFileRepository_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewStateFileRepository(dir)

	if err := os.WriteFile(repo.Path(), []byte("{truncated"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("Load() error = nil for corrupt file")
	}
}

func TestStateFileRepository_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	repo := NewStateFileRepository(dir)

	if err := repo.Save(context.Background(), domain.SessionState{SessionID: "x"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(repo.Path()); err != nil {
		t.Errorf("state file missing after Save(): %v", err)
	}
}

func TestStateFileRepository_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewStateFileRepository(dir)

	if err := repo.Save(context.Background(), domain.SessionState{SessionID: "x"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "status.json" {
		t.Errorf("directory contents = %v, want only status.json", entries)
	}
}
