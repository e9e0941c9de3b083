package catch

import (
	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

// Scorer accumulates the signed score.
type Scorer struct {
	cfg   config.ScoringConfig
	score int
}

// NewScorer creates a scorer starting at zero.
func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// RegisterCatch adds the kind's delta times the multiplier and returns the awarded amount.
// Blessed catches draw their base delta from rng.
func (s *Scorer) RegisterCatch(kind Kind, rng RNG, multiplier int) int {
	var delta int
	switch kind {
	case KindNormal:
		delta = s.cfg.Normal
	case KindBlessed:
		delta = rng.UniformInt(s.cfg.BlessedMin, s.cfg.BlessedMax)
	case KindHazard:
		delta = s.cfg.Hazard
	case KindVolatile:
		delta = s.cfg.Volatile
	}

	awarded := delta * core.Max(multiplier, 1)
	s.score += awarded
	return awarded
}

// Reset zeroes the score.
func (s *Scorer) Reset() {
	s.score = 0
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}
