package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArena loads the 2D arena configuration.
// Search order: customPath -> ~/.arcade/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func LoadArena(customPath string) (ArenaConfig, error) {
	return load(customPath, "arena.yaml", defaultArenaYAML, DefaultArenaConfig)
}

// LoadArena3D loads the 3D arena configuration.
// Search order: customPath -> ~/.arcade/configs/arena3d.yaml -> ./configs/arena3d.yaml -> embedded default
func LoadArena3D(customPath string) (Arena3DConfig, error) {
	return load(customPath, "arena3d.yaml", defaultArena3DYAML, DefaultArena3DConfig)
}

// load decodes over the hard-coded defaults so a partial file only
// overrides the keys it names.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArenaPreset modifies the 2D config based on a difficulty preset.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	cfg.Difficulty.ApplyPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.InitialCount = 3
		cfg.Pickups.DropChance = 0.3
	case DifficultyHard:
		cfg.Enemies.InitialCount = 7
		cfg.Pickups.DropChance = 0.1
	}
}

// ApplyArena3DPreset modifies the 3D config based on a difficulty preset.
func ApplyArena3DPreset(cfg *Arena3DConfig, preset DifficultyPreset) {
	cfg.Difficulty.ApplyPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.InitialCount = 3
	case DifficultyHard:
		cfg.Enemies.InitialCount = 7
	}
}
