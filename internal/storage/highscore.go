package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

var _ core.ScoreKeeper = (*HighScoreFile)(nil)

// HighScoreFile keeps a single integer high score in a text file. Reads of
// a missing or corrupt file yield 0 and write failures are dropped, so the
// game never stops on a bad score file. Safe for concurrent use.
type HighScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewHighScoreFile returns a keeper backed by path. A leading ~ expands to
// the home directory.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// HighScorePath returns the file for one game mode inside dir.
func HighScorePath(dir, gameID string) string {
	return filepath.Join(dir, fmt.Sprintf("highscore_%s.txt", gameID))
}

// Path returns the backing file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored high score, or 0.
func (f *HighScoreFile) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// Save writes score as plain text.
func (f *HighScoreFile) Save(score int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	_ = os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644)
}
