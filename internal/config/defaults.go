package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in catch configuration.
// It mirrors defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Catcher: CatcherConfig{
			Width:      9,
			Height:     2,
			YOffset:    3,
			Accel:      240,
			MaxSpeed:   60,
			Friction:   8,
			AnimFPS:    6,
			FrameCount: 2,
		},
		Items: ItemConfig{
			Radius:       0.6,
			Gravity:      6,
			MaxFallSpeed: 24,
			BaseSpeed:    6,
			SpawnY:       -1,
			AnimFPS:      4,
			FrameCount:   2,
		},
		Spawner: SpawnerConfig{
			Interval:           0.8,
			Margin:             2,
			HazardRateEarly:    80,
			HazardRateMid:      140,
			HazardRateLate:     200,
			MidTierAt:          30,
			LateTierAt:         90,
			BlessedRate:        120,
			HazardCooldown:     3,
			VolatileRate:       150,
			VolatileProtection: 8,
		},
		Scoring: ScoringConfig{
			Normal:     10,
			BlessedMin: 20,
			BlessedMax: 50,
			Hazard:     0,
			Volatile:   0,
		},
		Effects: EffectsConfig{
			InvertDuration:     5,
			SizeDuration:       6,
			MultiplierDuration: 8,
			MessageDuration:    2,
			ExplosionDuration:  0.8,
			SmallScale:         0.6,
			LargeScale:         1.6,
			AudioTracks:        []string{"Polka Panic", "Midnight Meow", "Kitten Waltz"},
		},
		Escalation: EscalationConfig{
			Ceiling:       15,
			MissNormal:    1,
			MissBlessed:   2,
			GiantWidth:    20,
			GiantHeight:   8,
			DescentSpeed:  6,
			GraceDuration: 2.5,
			AnimFPS:       4,
			FrameCount:    2,
		},
		Difficulty: DifficultyConfig{
			SpeedScale: 0.01,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCatchYAML
}
