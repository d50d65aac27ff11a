// Package storage persists the high score, either as a plain text file or
// in a SQLite database.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultScoreFile is the file the high score is kept in when no path is
// given.
const DefaultScoreFile = "score.txt"

// ErrNoScore is returned when nothing has been saved yet.
var ErrNoScore = errors.New("storage: no saved score")

// FileStore keeps the high score as a decimal integer in a text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultScoreFile
	}
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// LoadHighScore reads the stored score. A missing file yields ErrNoScore and
// an empty file yields 0.
func (s *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNoScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: parse %s: %w", s.path, err)
	}
	return score, nil
}

// SaveHighScore overwrites the stored score.
func (s *FileStore) SaveHighScore(score int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", s.path, err)
	}
	return nil
}
