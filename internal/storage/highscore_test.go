package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoreFileMissing(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "none.txt"))
	require.NoError(t, err)
	assert.Zero(t, f.Load())
}

func TestHighScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	f, err := NewHighScoreFile(path)
	require.NoError(t, err)

	f.Save(1234)
	assert.Equal(t, 1234, f.Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1234", string(data), "stored as plain text")
}

func TestHighScoreFileCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"garbage", "not a number", 0},
		{"negative", "-5", 0},
		{"empty", "", 0},
		{"trailing newline", "42\n", 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			f, err := NewHighScoreFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Load())
		})
	}
}

func TestHighScoreFileSaveFailureIsSilent(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail.
	path := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(path, 0o755))

	f, err := NewHighScoreFile(path)
	require.NoError(t, err)
	assert.NotPanics(t, func() { f.Save(10) })
	assert.Zero(t, f.Load())
}

func TestHighScoreFileConcurrent(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			f.Save(score)
			f.Load()
		}(i)
	}
	wg.Wait()

	got := f.Load()
	assert.GreaterOrEqual(t, got, 1)
	assert.LessOrEqual(t, got, 20)
}

func TestHighScorePath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "highscore_arena3d.txt"), HighScorePath("dir", "arena3d"))
}

func TestHighScoreFileExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := NewHighScoreFile("~/scores/high.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scores", "high.txt"), f.Path())
}
