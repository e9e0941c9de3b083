package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatch loads the catch configuration.
// Search order: customPath -> ~/.catch/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files are applied on top of the built-in defaults, so partial files are allowed.
func LoadCatch(customPath string) (CatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCatchConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCatch(data)
		if err != nil {
			return DefaultCatchConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCatch(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "catch.yaml")); err == nil {
		if cfg, err := parseCatch(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCatch(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCatch decodes YAML over the built-in defaults and validates the result.
func parseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catch", "configs", filename)
}

// Validate reports configuration values the simulation cannot run with.
func (c CatchConfig) Validate() error {
	var errs []error

	if c.Escalation.Ceiling <= 0 {
		errs = append(errs, fmt.Errorf("escalation.ceiling must be positive, got %d", c.Escalation.Ceiling))
	}
	if c.Spawner.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval must be positive, got %v", c.Spawner.Interval))
	}
	if c.Catcher.Width <= 0 || c.Catcher.Height <= 0 {
		errs = append(errs, errors.New("catcher width and height must be positive"))
	}
	if c.Items.Radius <= 0 {
		errs = append(errs, fmt.Errorf("items.radius must be positive, got %v", c.Items.Radius))
	}
	if c.Scoring.BlessedMin > c.Scoring.BlessedMax {
		errs = append(errs, fmt.Errorf("scoring.blessed_min (%d) exceeds blessed_max (%d)",
			c.Scoring.BlessedMin, c.Scoring.BlessedMax))
	}
	for _, rate := range []int{c.Spawner.HazardRateEarly, c.Spawner.HazardRateMid, c.Spawner.HazardRateLate} {
		if rate < 0 || rate+c.Spawner.BlessedRate > 1000 {
			errs = append(errs, fmt.Errorf("spawner hazard rate %d plus blessed_rate %d must stay within 0-1000",
				rate, c.Spawner.BlessedRate))
		}
	}
	if c.Spawner.MidTierAt > c.Spawner.LateTierAt {
		errs = append(errs, errors.New("spawner.mid_tier_at must not exceed late_tier_at"))
	}

	return errors.Join(errs...)
}

// ParsePreset converts a CLI flag value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedScale *= 0.5
		cfg.Escalation.Ceiling += 5
	case DifficultyHard:
		cfg.Difficulty.SpeedScale *= 1.5
		cfg.Escalation.Ceiling -= 5
		if cfg.Escalation.Ceiling < 5 {
			cfg.Escalation.Ceiling = 5
		}
	case DifficultyFixed:
		cfg.Difficulty.SpeedScale = 0
	}
}
