package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	score, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, want 0 for a missing file", score)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	// Save must create the parent directory itself.
	path := filepath.Join(t.TempDir(), "relicjack", "highscore.json")
	fs := NewFileStore(path)

	if err := fs.Save(230); err != nil {
		t.Fatalf("Save: %v", err)
	}
	score, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if score != 230 {
		t.Errorf("Load() = %d, want 230", score)
	}

	if err := fs.Save(410); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if score, _ = fs.Load(); score != 410 {
		t.Errorf("Load() = %d, want 410 after overwrite", score)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected an error for a corrupt file")
	}
}
