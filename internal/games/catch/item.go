package catch

import (
	"math"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

// Kind classifies a falling item.
type Kind int

const (
	KindNormal   Kind = iota // Safe, small reward
	KindBlessed              // Safe, larger random reward
	KindHazard               // Triggers a random temporary effect
	KindVolatile             // Rare, always explodes the bucket
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBlessed:
		return "blessed"
	case KindHazard:
		return "hazard"
	case KindVolatile:
		return "volatile"
	default:
		return "unknown"
	}
}

// FallingItem is a single falling cat. Pos is the circle center.
type FallingItem struct {
	Pos     core.Vec2
	Radius  float64
	VelY    float64
	MaxFall float64
	Kind    Kind

	cfg  config.ItemConfig
	anim animator
}

// NewFallingItem creates an item at the spawn line.
func NewFallingItem(x float64, kind Kind, speed, maxFall float64, cfg config.ItemConfig) FallingItem {
	return FallingItem{
		Pos:     core.Vec2{X: x, Y: cfg.SpawnY},
		Radius:  cfg.Radius,
		VelY:    speed,
		MaxFall: maxFall,
		Kind:    kind,
		cfg:     cfg,
	}
}

// Update applies gravity, clamps to the fall speed limit and moves the item.
func (it *FallingItem) Update(dt float64) {
	it.VelY = math.Min(it.VelY+it.cfg.Gravity*dt, it.MaxFall)
	it.Pos.Y += it.VelY * dt
	it.anim.advance(dt, it.cfg.AnimFPS, it.cfg.FrameCount)
}

// Offscreen reports whether the item has fully left the bottom of the screen.
func (it FallingItem) Offscreen(screenH float64) bool {
	return it.Pos.Y-it.Radius > screenH
}

// Frame returns the current animation frame.
func (it FallingItem) Frame() int {
	return it.anim.frame
}
