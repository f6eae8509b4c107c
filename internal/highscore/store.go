// Package highscore persists the single high-score scalar that survives
// across runs.
package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/relicjack/internal/fileutil"
)

type fileFormat struct {
	HighScore int `json:"high_score"`
}

// FileStore stores the high score as a small JSON file, written atomically
// so an interrupted save never corrupts it.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the conventional location for the high-score file,
// under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "relicjack", "highscore.json"), nil
}

// Load reads the stored high score. A missing file is not an error; it
// reports zero, which callers treat as "no score recorded yet".
func (fs *FileStore) Load() (int, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("parse high score: %w", err)
	}
	return f.HighScore, nil
}

// Save writes the high score, creating the parent directory if needed.
func (fs *FileStore) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}

	data, err := json.Marshal(fileFormat{HighScore: score})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := fileutil.WriteFileAtomic(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}
