// Package storage persists scores: the single best score in a small
// obfuscated file, and full run history in SQLite.
package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// highscoreMask XORs the stored value so the file is not a trivially
// editable plain integer. The format is 4 bytes, little-endian int32.
const highscoreMask = 0xA5A5A5A5

// HighscoreFile stores the best score in a single small file.
type HighscoreFile struct {
	path string
}

// NewHighscoreFile creates a store backed by the given path. The file is
// created on the first Save.
func NewHighscoreFile(path string) *HighscoreFile {
	return &HighscoreFile{path: path}
}

// DefaultHighscorePath returns ~/.twocars/highscore.dat, falling back to the
// working directory when the home directory is unknown.
func DefaultHighscorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "highscore.dat"
	}
	return filepath.Join(home, ".twocars", "highscore.dat")
}

// Load reads the stored best score. A missing or malformed file is not an
// error: it reads as zero, the same as a fresh install.
func (h *HighscoreFile) Load() (int, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("storage: read highscore: %w", err)
	}
	if len(data) != 4 {
		return 0, nil
	}
	v := int32(binary.LittleEndian.Uint32(data) ^ highscoreMask)
	if v < 0 {
		return 0, nil
	}
	return int(v), nil
}

// Save writes the best score, creating the parent directory if needed.
func (h *HighscoreFile) Save(score int) error {
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: create highscore dir: %w", err)
		}
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(score))^highscoreMask)
	if err := os.WriteFile(h.path, buf[:], 0o644); err != nil {
		return fmt.Errorf("storage: write highscore: %w", err)
	}
	return nil
}
