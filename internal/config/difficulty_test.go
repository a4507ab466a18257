package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyManagerStartsAtLevelOne(t *testing.T) {
	d := NewDifficultyManager(DefaultDifficultyConfig())

	assert.Equal(t, 1, d.Level())
	assert.Equal(t, 1.0, d.Difficulty())
	assert.Equal(t, 10, d.NextThreshold())
	assert.False(t, d.Advance(9))
}

func TestDifficultyManagerOneLevelPerCall(t *testing.T) {
	d := NewDifficultyManager(DefaultDifficultyConfig())

	// A score of 50 crosses thresholds 10, 20 and 40, but each call
	// performs exactly one level-up.
	assert.True(t, d.Advance(50))
	assert.Equal(t, 2, d.Level())
	assert.InDelta(t, 1.2, d.Difficulty(), 1e-9)
	assert.Equal(t, 20, d.NextThreshold())

	assert.True(t, d.Advance(50))
	assert.True(t, d.Advance(50))
	assert.False(t, d.Advance(50))
	assert.Equal(t, 4, d.Level())
	assert.Equal(t, 80, d.NextThreshold())
	assert.InDelta(t, 1.6, d.Difficulty(), 1e-9)
}

func TestDifficultyManagerFixedPreset(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	cfg.ApplyPreset(DifficultyFixed)
	d := NewDifficultyManager(cfg)

	assert.True(t, d.Advance(10))
	assert.Equal(t, 2, d.Level())
	assert.Equal(t, 1.0, d.Difficulty())
}

func TestDifficultyManagerReset(t *testing.T) {
	d := NewDifficultyManager(DefaultDifficultyConfig())
	d.Advance(10)
	d.Reset()

	assert.Equal(t, 1, d.Level())
	assert.Equal(t, 10, d.NextThreshold())
	assert.Equal(t, 1.0, d.Difficulty())
}
