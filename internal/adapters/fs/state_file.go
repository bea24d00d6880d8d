// Package fs implements the state repository port on the local file system.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

const stateFileName = "status.json"

// StateFileRepository implements ports.StateRepository using a JSON file.
type StateFileRepository struct {
	dir string
}

// NewStateFileRepository creates a repository writing to the given directory.
func NewStateFileRepository(dir string) *StateFileRepository {
	return &StateFileRepository{dir: dir}
}

// Load retrieves the last saved session state from disk.
// Returns a zero state and nil error if no state file exists.
func (r *StateFileRepository) Load(ctx context.Context) (domain.SessionState, error) {
	path := filepath.Join(r.dir, stateFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SessionState{}, nil
		}
		return domain.SessionState{}, err
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.SessionState{}, err
	}

	return state, nil
}

// Save persists the session state atomically.
// Writes to a temp file, then renames, to prevent corruption.
func (r *StateFileRepository) Save(ctx context.Context, state domain.SessionState) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := filepath.Join(r.dir, stateFileName)
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Path returns the full path to the state file.
func (r *StateFileRepository) Path() string {
	return filepath.Join(r.dir, stateFileName)
}
