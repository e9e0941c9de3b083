package catch

import (
	"math"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

// EffectSlot identifies one timed override in the effects table.
type EffectSlot int

const (
	SlotInvert EffectSlot = iota
	SlotSize
	SlotMultiplier
	SlotMessage
	SlotExplosion
	slotCount
)

// effectSlot is a countdown paired with the action that restores its neutral value.
type effectSlot struct {
	remaining float64
	duration  float64
	reset     func()
}

// AudioSelection is the sticky background track choice.
// The zero value selects the default track.
type AudioSelection struct {
	track     int
	alternate bool
}

// Alternate returns the alternate track index, if one is selected.
func (a AudioSelection) Alternate() (int, bool) {
	return a.track, a.alternate
}

// Explosion describes an active explosion animation.
type Explosion struct {
	Pos      core.Vec2
	Progress float64 // 0 at trigger, approaching 1 at the end
}

// Effects tracks the temporary modifiers applied by hazard catches.
type Effects struct {
	slots [slotCount]effectSlot

	inverted     bool
	sizeScale    float64
	multiplier   int
	message      string
	explosionPos core.Vec2
	audio        AudioSelection
}

// NewEffects creates an effects engine with every override at its neutral value.
func NewEffects(cfg config.EffectsConfig) *Effects {
	e := &Effects{
		sizeScale:  1.0,
		multiplier: 1,
	}
	e.slots = [slotCount]effectSlot{
		SlotInvert:     {duration: cfg.InvertDuration, reset: func() { e.inverted = false }},
		SlotSize:       {duration: cfg.SizeDuration, reset: func() { e.sizeScale = 1.0 }},
		SlotMultiplier: {duration: cfg.MultiplierDuration, reset: func() { e.multiplier = 1 }},
		SlotMessage:    {duration: cfg.MessageDuration, reset: func() { e.message = "" }},
		SlotExplosion:  {duration: cfg.ExplosionDuration, reset: func() {}},
	}
	return e
}

// Tick counts every active timer down by dt and reverts the ones that expire.
// The audio selection has no timer and is never touched here.
func (e *Effects) Tick(dt float64) {
	for i := range e.slots {
		s := &e.slots[i]
		if s.remaining <= 0 {
			continue
		}
		s.remaining = math.Max(0, s.remaining-dt)
		if s.remaining == 0 {
			s.reset()
		}
	}
}

// start (re)arms a slot with its full duration.
func (e *Effects) start(slot EffectSlot) {
	s := &e.slots[slot]
	s.remaining = s.duration
	if s.remaining <= 0 {
		s.remaining = 0
		s.reset()
	}
}

// Invert swaps left and right input.
func (e *Effects) Invert() {
	e.inverted = true
	e.start(SlotInvert)
}

// ScaleSize overrides the catcher width scale.
func (e *Effects) ScaleSize(factor float64) {
	e.sizeScale = factor
	e.start(SlotSize)
}

// MultiplyScore overrides the score multiplier. Values below 1 are raised to 1.
func (e *Effects) MultiplyScore(factor int) {
	e.multiplier = core.Max(factor, 1)
	e.start(SlotMultiplier)
}

// SetMessage shows a feedback message.
func (e *Effects) SetMessage(text string) {
	e.message = text
	e.start(SlotMessage)
}

// TriggerExplosion starts the explosion animation at pos.
func (e *Effects) TriggerExplosion(pos core.Vec2) {
	e.explosionPos = pos
	e.start(SlotExplosion)
}

// SelectAudio switches to an alternate track until changed again.
func (e *Effects) SelectAudio(track int) {
	e.audio = AudioSelection{track: track, alternate: true}
}

// ResetAudio returns to the default track.
func (e *Effects) ResetAudio() {
	e.audio = AudioSelection{}
}

// ApplyInput returns the effective movement axis.
func (e *Effects) ApplyInput(axis float64) float64 {
	if e.inverted {
		return -axis
	}
	return axis
}

// Inverted reports whether controls are currently swapped.
func (e *Effects) Inverted() bool {
	return e.inverted
}

// SizeScale returns the current catcher width scale.
func (e *Effects) SizeScale() float64 {
	return e.sizeScale
}

// Multiplier returns the current score multiplier.
func (e *Effects) Multiplier() int {
	return e.multiplier
}

// Audio returns the sticky track selection.
func (e *Effects) Audio() AudioSelection {
	return e.audio
}

// Message returns the active message, if any.
func (e *Effects) Message() (string, bool) {
	if e.slots[SlotMessage].remaining > 0 && e.message != "" {
		return e.message, true
	}
	return "", false
}

// MessageFade returns the remaining fraction of the message display time.
func (e *Effects) MessageFade() float64 {
	s := e.slots[SlotMessage]
	if s.duration <= 0 {
		return 1.0
	}
	return core.ClampF(s.remaining/s.duration, 0, 1)
}

// Explosion returns the active explosion, if any.
func (e *Effects) Explosion() (Explosion, bool) {
	s := e.slots[SlotExplosion]
	if s.remaining <= 0 {
		return Explosion{}, false
	}
	return Explosion{
		Pos:      e.explosionPos,
		Progress: core.ClampF(1-s.remaining/s.duration, 0, 1),
	}, true
}

// Remaining returns the seconds left on a slot.
func (e *Effects) Remaining(slot EffectSlot) float64 {
	if slot < 0 || slot >= slotCount {
		return 0
	}
	return e.slots[slot].remaining
}
