// Package config provides YAML-based configuration loading for the sweeper:
// the difficulty catalog, power-up tuning and effect windows.
package config

// Config is the on-disk configuration.
type Config struct {
	DefaultDifficulty string             `yaml:"default_difficulty"`
	Difficulties      []DifficultyConfig `yaml:"difficulties"`
	PowerUps          []PowerUpConfig    `yaml:"power_ups"`
	Effects           EffectsConfig      `yaml:"effects"`
}

// DifficultyConfig defines one board preset.
type DifficultyConfig struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// PowerUpConfig tunes one power-up. Entries not listed are disabled.
type PowerUpConfig struct {
	ID              string `yaml:"id"`
	MaxUses         int    `yaml:"max_uses"`
	CooldownSeconds int    `yaml:"cooldown_seconds"`
}

// EffectsConfig sets the duration of timed power-up effects.
type EffectsConfig struct {
	XRayMs   int `yaml:"xray_ms"`   // 0 means engine default
	FreezeMs int `yaml:"freeze_ms"` // 0 means engine default
}
