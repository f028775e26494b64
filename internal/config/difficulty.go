package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the difficulty catalog, the default difficulty and the
// power-up entries.
func (c Config) Validate() error {
	catalog, err := c.Catalog()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.DefaultDifficulty != "" {
		if _, err := catalog.Lookup(c.DefaultDifficulty); err != nil {
			return fmt.Errorf("%w: default_difficulty: %w", ErrInvalidConfig, err)
		}
	}

	seen := make(map[string]bool, len(c.PowerUps))
	for _, p := range c.PowerUps {
		if !sweeper.PowerUpID(p.ID).Valid() {
			return fmt.Errorf("%w: unknown power-up %q", ErrInvalidConfig, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate power-up %q", ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true
		if p.MaxUses < 0 || p.CooldownSeconds < 0 {
			return fmt.Errorf("%w: power-up %q has negative limits", ErrInvalidConfig, p.ID)
		}
	}
	if c.Effects.XRayMs < 0 || c.Effects.FreezeMs < 0 {
		return fmt.Errorf("%w: negative effect duration", ErrInvalidConfig)
	}
	return nil
}

// Catalog converts the configured difficulties to an engine catalog.
// An empty list yields the built-in presets.
func (c Config) Catalog() (sweeper.Catalog, error) {
	if len(c.Difficulties) == 0 {
		return sweeper.DefaultCatalog(), nil
	}
	ds := make([]sweeper.Difficulty, 0, len(c.Difficulties))
	for _, d := range c.Difficulties {
		name := d.Name
		if name == "" {
			name = d.Key
		}
		ds = append(ds, sweeper.Difficulty{
			Key:   d.Key,
			Name:  name,
			Rows:  d.Rows,
			Cols:  d.Cols,
			Mines: d.Mines,
		})
	}
	return sweeper.NewCatalog(ds...)
}

// Rules converts the power-up and effect settings to engine rules.
// Names and descriptions come from the built-in power-ups; configured
// entries keep their file order.
func (c Config) Rules() sweeper.Rules {
	rules := sweeper.DefaultRules()
	if c.Effects.XRayMs > 0 {
		rules.XRayDuration = time.Duration(c.Effects.XRayMs) * time.Millisecond
	}
	if c.Effects.FreezeMs > 0 {
		rules.FreezeDuration = time.Duration(c.Effects.FreezeMs) * time.Millisecond
	}
	if len(c.PowerUps) == 0 {
		return rules
	}

	builtin := make(map[sweeper.PowerUpID]sweeper.PowerUp)
	for _, p := range sweeper.DefaultPowerUps() {
		builtin[p.ID] = p
	}

	rules.PowerUps = rules.PowerUps[:0]
	for _, pc := range c.PowerUps {
		p, ok := builtin[sweeper.PowerUpID(pc.ID)]
		if !ok {
			continue
		}
		p.MaxUses = pc.MaxUses
		p.UsesRemaining = pc.MaxUses
		p.CooldownSeconds = pc.CooldownSeconds
		rules.PowerUps = append(rules.PowerUps, p)
	}
	return rules
}

// DefaultKey returns the configured default difficulty, or the first
// catalog entry when unset.
func (c Config) DefaultKey() string {
	if c.DefaultDifficulty != "" {
		return c.DefaultDifficulty
	}
	if len(c.Difficulties) > 0 {
		return c.Difficulties[0].Key
	}
	return sweeper.Easy.Key
}
