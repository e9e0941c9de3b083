package catch

import (
	"math"

	"github.com/vovakirdan/cat-catch/internal/config"
)

// Spawner emits falling items on a fixed interval with weighted classification.
type Spawner struct {
	cfg        config.SpawnerConfig
	items      config.ItemConfig
	difficulty config.DifficultyConfig

	timer      float64
	cooldown   float64 // Seconds left with hazards disabled
	protection int     // Spawns left before another volatile may appear
}

// NewSpawner creates a spawner with all timers at zero.
func NewSpawner(cfg config.SpawnerConfig, items config.ItemConfig, difficulty config.DifficultyConfig) *Spawner {
	return &Spawner{
		cfg:        cfg,
		items:      items,
		difficulty: difficulty,
	}
}

// Update advances the spawn timers and returns a new item when the interval elapses.
// elapsed is the session time used for difficulty and rate tiers.
func (s *Spawner) Update(rng RNG, dt, screenW, elapsed float64) (FallingItem, bool) {
	s.cooldown = math.Max(0, s.cooldown-dt)

	s.timer += dt
	if s.timer < s.cfg.Interval {
		return FallingItem{}, false
	}
	s.timer = 0

	// The window covers the spawns after the one that opened it
	blocked := s.protection > 0
	if blocked {
		s.protection--
	}

	x := s.spawnX(rng, screenW)
	kind := s.classify(rng, elapsed, blocked)

	mult := s.difficulty.Multiplier(elapsed)
	speed := s.items.BaseSpeed * mult
	maxFall := s.items.MaxFallSpeed * mult

	return NewFallingItem(x, kind, speed, maxFall, s.items), true
}

// spawnX picks a column inside the side margins.
func (s *Spawner) spawnX(rng RNG, screenW float64) float64 {
	lo := s.cfg.Margin
	hi := int(screenW) - s.cfg.Margin
	if hi < lo {
		return screenW / 2
	}
	return float64(rng.UniformInt(lo, hi))
}

// classify rolls the item kind and updates the hazard cooldown and volatile protection.
// A blocked spawn demotes a volatile roll to a plain hazard.
func (s *Spawner) classify(rng RNG, elapsed float64, blocked bool) Kind {
	hazard := s.cfg.HazardRate(elapsed)
	if s.cooldown > 0 {
		hazard = 0
	}

	roll := rng.UniformInt(0, 999)
	switch {
	case roll < hazard:
		s.cooldown = s.cfg.HazardCooldown
		if rng.UniformInt(0, 999) < s.cfg.VolatileRate {
			s.protection = s.cfg.VolatileProtection
			if !blocked {
				return KindVolatile
			}
		}
		return KindHazard
	case roll < hazard+s.cfg.BlessedRate:
		return KindBlessed
	default:
		return KindNormal
	}
}

// Cooldown returns the seconds left before hazards may spawn again.
func (s *Spawner) Cooldown() float64 {
	return s.cooldown
}

// Protection returns the spawns left before another volatile may appear.
func (s *Spawner) Protection() int {
	return s.protection
}
