// Package highscore persists the best score of each game mode in a small
// JSON file keyed by mode name.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"statue-snake/game/types"
)

const DefaultPath = "highscores.json"

// FileStore reads and writes {"NORMAL": n, "STATUE": m}
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score for mode. A missing file is not an error.
func (s *FileStore) Load(mode types.GameMode) (int, error) {
	key := mode.Key()
	if key == "" {
		return 0, fmt.Errorf("highscore: unknown mode %d", mode)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	scores, err := s.read()
	if err != nil {
		return 0, err
	}
	value := scores[key]
	if value < 0 {
		return 0, fmt.Errorf("highscore: negative score %d for %s in %s", value, key, s.path)
	}
	return value, nil
}

// Save records value for mode unless the file already holds a higher one.
// Scores of other modes are preserved.
func (s *FileStore) Save(mode types.GameMode, value int) error {
	key := mode.Key()
	if key == "" {
		return fmt.Errorf("highscore: unknown mode %d", mode)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	scores, err := s.read()
	if err != nil {
		// An unreadable file is left untouched
		return err
	}
	if scores[key] >= value {
		return nil
	}
	scores[key] = value

	return s.write(scores)
}

func (s *FileStore) read() (map[string]int, error) {
	scores := make(map[string]int)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("highscore: parse %s: %w", s.path, err)
	}
	return scores, nil
}

func (s *FileStore) write(scores map[string]int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("highscore: create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("highscore: encode: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("highscore: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("highscore: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: replace %s: %w", s.path, err)
	}
	return nil
}
