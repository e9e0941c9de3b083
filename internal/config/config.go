// Package config provides YAML-based game configuration loading and
// difficulty management for the catch game.
package config

// CatchConfig contains all tunables for the catch game.
// Distances are in screen cells, times in seconds, rates in per mille.
type CatchConfig struct {
	Catcher    CatcherConfig    `yaml:"catcher"`
	Items      ItemConfig       `yaml:"items"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Effects    EffectsConfig    `yaml:"effects"`
	Escalation EscalationConfig `yaml:"escalation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatcherConfig defines the bucket physics.
type CatcherConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	YOffset    float64 `yaml:"y_offset"` // Distance of the bucket top from the screen bottom
	Accel      float64 `yaml:"accel"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Friction   float64 `yaml:"friction"`
	AnimFPS    float64 `yaml:"anim_fps"`
	FrameCount int     `yaml:"frame_count"`
}

// ItemConfig defines falling item kinematics.
type ItemConfig struct {
	Radius       float64 `yaml:"radius"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpawnY       float64 `yaml:"spawn_y"`
	AnimFPS      float64 `yaml:"anim_fps"`
	FrameCount   int     `yaml:"frame_count"`
}

// SpawnerConfig defines spawn timing and the classification distribution.
type SpawnerConfig struct {
	Interval           float64 `yaml:"interval"`
	Margin             int     `yaml:"margin"`
	HazardRateEarly    int     `yaml:"hazard_rate_early"`
	HazardRateMid      int     `yaml:"hazard_rate_mid"`
	HazardRateLate     int     `yaml:"hazard_rate_late"`
	MidTierAt          float64 `yaml:"mid_tier_at"`  // Elapsed seconds where the mid tier begins
	LateTierAt         float64 `yaml:"late_tier_at"` // Elapsed seconds where the late tier begins
	BlessedRate        int     `yaml:"blessed_rate"`
	HazardCooldown     float64 `yaml:"hazard_cooldown"`
	VolatileRate       int     `yaml:"volatile_rate"`       // Chance a hazard turns volatile
	VolatileProtection int     `yaml:"volatile_protection"` // Spawns before another volatile is allowed
}

// ScoringConfig defines the per-kind score deltas.
type ScoringConfig struct {
	Normal     int `yaml:"normal"`
	BlessedMin int `yaml:"blessed_min"`
	BlessedMax int `yaml:"blessed_max"`
	Hazard     int `yaml:"hazard"`
	Volatile   int `yaml:"volatile"`
}

// EffectsConfig defines hazard effect durations and magnitudes.
type EffectsConfig struct {
	InvertDuration     float64  `yaml:"invert_duration"`
	SizeDuration       float64  `yaml:"size_duration"`
	MultiplierDuration float64  `yaml:"multiplier_duration"`
	MessageDuration    float64  `yaml:"message_duration"`
	ExplosionDuration  float64  `yaml:"explosion_duration"`
	SmallScale         float64  `yaml:"small_scale"`
	LargeScale         float64  `yaml:"large_scale"`
	AudioTracks        []string `yaml:"audio_tracks"`
}

// EscalationConfig defines the agitation ceiling and the giant's descent.
type EscalationConfig struct {
	Ceiling       int     `yaml:"ceiling"`
	MissNormal    int     `yaml:"miss_normal"`
	MissBlessed   int     `yaml:"miss_blessed"`
	GiantWidth    float64 `yaml:"giant_width"`
	GiantHeight   float64 `yaml:"giant_height"`
	DescentSpeed  float64 `yaml:"descent_speed"`
	GraceDuration float64 `yaml:"grace_duration"`
	AnimFPS       float64 `yaml:"anim_fps"`
	FrameCount    int     `yaml:"frame_count"`
}

// DifficultyConfig defines how difficulty grows with elapsed time.
type DifficultyConfig struct {
	SpeedScale float64 `yaml:"speed_scale"` // Added to the multiplier per elapsed second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
