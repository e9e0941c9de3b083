package catch

import (
	"math"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

// Catcher is the player-controlled bucket.
// Pos is the top-left corner; only the horizontal velocity is used.
type Catcher struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size core.Vec2

	cfg  config.CatcherConfig
	anim animator
}

// NewCatcher creates a catcher centered horizontally near the bottom of the screen.
func NewCatcher(cfg config.CatcherConfig, screenW, screenH float64) *Catcher {
	return &Catcher{
		Pos: core.Vec2{
			X: screenW/2 - cfg.Width/2,
			Y: screenH - cfg.YOffset,
		},
		Size: core.Vec2{X: cfg.Width, Y: cfg.Height},
		cfg:  cfg,
	}
}

// Update applies the movement axis for one frame.
// difficulty scales both acceleration and the speed limit.
func (c *Catcher) Update(axis, dt, screenW, difficulty float64) {
	c.Vel.X += axis * c.cfg.Accel * difficulty * dt

	if axis == 0 {
		// Exponential damping that does not depend on frame rate
		c.Vel.X *= 1.0 / (1.0 + c.cfg.Friction*dt)
	}

	maxSpeed := c.cfg.MaxSpeed * difficulty
	c.Vel.X = core.ClampF(c.Vel.X, -maxSpeed, maxSpeed)

	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
	c.clampX(screenW)

	c.anim.advance(dt, c.cfg.AnimFPS, c.cfg.FrameCount)
}

// clampX keeps the catcher on screen, stopping it at the edges.
func (c *Catcher) clampX(screenW float64) {
	maxX := math.Max(screenW-c.Size.X, 0)
	if c.Pos.X < 0 {
		c.Pos.X = 0
		c.Vel.X = 0
	}
	if c.Pos.X > maxX {
		c.Pos.X = maxX
		c.Vel.X = 0
	}
}

// ApplySize resizes the catcher around its current horizontal center.
func (c *Catcher) ApplySize(size core.Vec2, screenW, screenH float64) {
	center := c.Pos.X + c.Size.X/2
	c.Size = size
	c.Pos.X = center - size.X/2
	c.Pos.Y = screenH - c.cfg.YOffset
	c.clampX(screenW)
}

// SetSize replaces the catcher size and recenters it on screen.
// Used when the rendering side dictates the sprite dimensions.
func (c *Catcher) SetSize(size core.Vec2, screenW, screenH float64) {
	c.Size = size
	c.Pos.X = (screenW - size.X) / 2
	c.Pos.Y = screenH - c.cfg.YOffset
	c.clampX(screenW)
}

// Rect returns the collision rectangle.
func (c Catcher) Rect() core.RectF {
	return core.RectF{X: c.Pos.X, Y: c.Pos.Y, W: c.Size.X, H: c.Size.Y}
}

// Frame returns the current animation frame.
func (c Catcher) Frame() int {
	return c.anim.frame
}
