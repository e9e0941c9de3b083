package config

// Multiplier returns the difficulty multiplier after elapsed seconds:
// 1 + elapsed * speed_scale. It scales catcher responsiveness and fall speed.
func (d DifficultyConfig) Multiplier(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + elapsed*d.SpeedScale
}

// HazardRate returns the per-mille hazard chance for the elapsed-time tier.
func (s SpawnerConfig) HazardRate(elapsed float64) int {
	switch {
	case elapsed < s.MidTierAt:
		return s.HazardRateEarly
	case elapsed < s.LateTierAt:
		return s.HazardRateMid
	default:
		return s.HazardRateLate
	}
}
