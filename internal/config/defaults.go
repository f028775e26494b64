package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultConfig returns the built-in configuration, matching the engine
// presets and default power-up inventory.
func DefaultConfig() Config {
	cfg := Config{
		DefaultDifficulty: sweeper.Easy.Key,
		Effects: EffectsConfig{
			XRayMs:   int(sweeper.DefaultXRayDuration.Milliseconds()),
			FreezeMs: int(sweeper.DefaultFreezeDuration.Milliseconds()),
		},
	}
	for _, d := range sweeper.DefaultCatalog() {
		cfg.Difficulties = append(cfg.Difficulties, DifficultyConfig{
			Key:   d.Key,
			Name:  d.Name,
			Rows:  d.Rows,
			Cols:  d.Cols,
			Mines: d.Mines,
		})
	}
	for _, p := range sweeper.DefaultPowerUps() {
		cfg.PowerUps = append(cfg.PowerUps, PowerUpConfig{
			ID:              string(p.ID),
			MaxUses:         p.MaxUses,
			CooldownSeconds: p.CooldownSeconds,
		})
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSweeperYAML
}
