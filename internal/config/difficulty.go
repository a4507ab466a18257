package config

// DifficultyManager tracks the level, the difficulty scalar and the score
// threshold for the next level.
type DifficultyManager struct {
	cfg           DifficultyConfig
	level         int
	difficulty    float64
	nextThreshold int
}

// NewDifficultyManager creates a difficulty manager at level 1.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns to level 1 with the initial difficulty.
func (d *DifficultyManager) Reset() {
	d.level = 1
	d.difficulty = d.cfg.Initial
	if d.difficulty <= 0 {
		d.difficulty = 1
	}
	d.nextThreshold = d.cfg.FirstThreshold
	if d.nextThreshold <= 0 {
		d.nextThreshold = 1
	}
}

// Level returns the current level, starting at 1.
func (d *DifficultyManager) Level() int {
	return d.level
}

// Difficulty returns the current difficulty scalar.
func (d *DifficultyManager) Difficulty() float64 {
	return d.difficulty
}

// NextThreshold returns the score that triggers the next level-up.
func (d *DifficultyManager) NextThreshold() int {
	return d.nextThreshold
}

// EnemiesPerLevel returns how many extra enemies a level-up spawns.
func (d *DifficultyManager) EnemiesPerLevel() int {
	return d.cfg.EnemiesPerLevel
}

// HealthPerLevel returns the max-health bonus granted on a level-up.
func (d *DifficultyManager) HealthPerLevel() float64 {
	return d.cfg.HealthPerLevel
}

// Advance performs at most one level-up if score has reached the threshold.
// A score that skips several thresholds at once levels up on consecutive
// calls, one level per call.
func (d *DifficultyManager) Advance(score int) bool {
	if score < d.nextThreshold {
		return false
	}
	d.level++
	d.difficulty += d.cfg.Step
	factor := d.cfg.ThresholdFactor
	if factor < 2 {
		factor = 2
	}
	d.nextThreshold *= factor
	return true
}
