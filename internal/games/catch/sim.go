package catch

import (
	"fmt"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

// AxisSource supplies the resolved horizontal movement axis in [-1, 1].
// core.InputFrame satisfies it.
type AxisSource interface {
	MoveAxis() float64
}

// Axis is a fixed movement axis, handy for scripted input.
type Axis float64

// MoveAxis returns the axis value.
func (a Axis) MoveAxis() float64 {
	return float64(a)
}

// HazardEffect is the consequence applied when a hazard is caught.
type HazardEffect int

const (
	EffectInvertControls HazardEffect = iota
	EffectBucketSmall
	EffectBucketLarge
	EffectMusicSwap
	EffectBucketExplode
	EffectScoreDouble
	EffectScoreTriple
	hazardEffectCount
)

// String returns the name of the effect.
func (h HazardEffect) String() string {
	switch h {
	case EffectInvertControls:
		return "invert_controls"
	case EffectBucketSmall:
		return "bucket_small"
	case EffectBucketLarge:
		return "bucket_large"
	case EffectMusicSwap:
		return "music_swap"
	case EffectBucketExplode:
		return "bucket_explode"
	case EffectScoreDouble:
		return "score_double"
	case EffectScoreTriple:
		return "score_triple"
	default:
		return "unknown"
	}
}

// Message returns the player-facing text for the effect.
func (h HazardEffect) Message() string {
	switch h {
	case EffectInvertControls:
		return "Controls inverted!"
	case EffectBucketSmall:
		return "Tiny bucket!"
	case EffectBucketLarge:
		return "Huge bucket!"
	case EffectMusicSwap:
		return "Music swap!"
	case EffectBucketExplode:
		return "KABOOM! Score reset"
	case EffectScoreDouble:
		return "Double points!"
	case EffectScoreTriple:
		return "Triple points!"
	default:
		return ""
	}
}

// Simulation owns one session of the catch game.
// It is single-threaded and deterministic for a given dt sequence and RNG.
type Simulation struct {
	cfg config.CatchConfig

	catcher  *Catcher
	baseSize core.Vec2
	items    []FallingItem
	effects  *Effects
	scorer   *Scorer
	spawner  *Spawner

	agitation int
	ceiling   int
	elapsed   float64
	lastScale float64

	state  State
	events []Event
}

// NewSimulation creates a simulation in the Playing state.
// It panics if ceiling is not positive.
func NewSimulation(screenW, screenH float64, ceiling int, cfg config.CatchConfig) *Simulation {
	if ceiling <= 0 {
		panic(fmt.Sprintf("catch: agitation ceiling must be positive, got %d", ceiling))
	}

	catcher := NewCatcher(cfg.Catcher, screenW, screenH)
	return &Simulation{
		cfg:       cfg,
		catcher:   catcher,
		baseSize:  catcher.Size,
		effects:   NewEffects(cfg.Effects),
		scorer:    NewScorer(cfg.Scoring),
		spawner:   NewSpawner(cfg.Spawner, cfg.Items, cfg.Difficulty),
		ceiling:   ceiling,
		lastScale: 1.0,
		state:     Playing{},
	}
}

// NewDefault creates a simulation with the built-in configuration.
func NewDefault(screenW, screenH float64, ceiling int) *Simulation {
	return NewSimulation(screenW, screenH, ceiling, config.DefaultCatchConfig())
}

// Update advances the session by dt seconds.
func (s *Simulation) Update(rng RNG, input AxisSource, dt, screenW, screenH float64) {
	s.events = s.events[:0]

	switch st := s.state.(type) {
	case Playing:
		s.updatePlaying(rng, input, dt, screenW, screenH)
	case Escalating:
		s.updateEscalating(st, dt, screenH)
	case Landed:
		s.updateLanded(st, dt)
	case Over:
	}
}

func (s *Simulation) updatePlaying(rng RNG, input AxisSource, dt, screenW, screenH float64) {
	s.elapsed += dt
	s.effects.Tick(dt)

	axis := s.effects.ApplyInput(input.MoveAxis())
	difficulty := s.cfg.Difficulty.Multiplier(s.elapsed)
	s.catcher.Update(axis, dt, screenW, difficulty)

	if scale := s.effects.SizeScale(); scale != s.lastScale {
		s.catcher.ApplySize(core.Vec2{X: s.baseSize.X * scale, Y: s.baseSize.Y}, screenW, screenH)
		s.lastScale = scale
	}

	if item, ok := s.spawner.Update(rng, dt, screenW, s.elapsed); ok {
		s.items = append(s.items, item)
	}

	for i := range s.items {
		s.items[i].Update(dt)
	}

	// Partition in place; each item leaves the slice exactly once
	bucket := s.catcher.Rect()
	var caught []Kind
	remaining := s.items[:0]
	for _, it := range s.items {
		switch {
		case core.CircleIntersectsRect(it.Pos, it.Radius, bucket):
			caught = append(caught, it.Kind)
		case it.Offscreen(screenH):
			s.agitation += s.missPenalty(it.Kind)
			s.events = append(s.events, Event{Type: EventMissed, Kind: it.Kind})
		default:
			remaining = append(remaining, it)
		}
	}
	clear(s.items[len(remaining):])
	s.items = remaining

	for _, kind := range caught {
		s.applyCatch(rng, kind)
	}

	if s.agitation >= s.ceiling {
		s.state = Escalating{Giant: Giant{Y: -s.cfg.Escalation.GiantHeight}}
		s.events = append(s.events, Event{Type: EventEscalation})
	}
}

func (s *Simulation) missPenalty(kind Kind) int {
	switch kind {
	case KindNormal:
		return s.cfg.Escalation.MissNormal
	case KindBlessed:
		return s.cfg.Escalation.MissBlessed
	case KindHazard, KindVolatile:
		return 0
	default:
		return 0
	}
}

func (s *Simulation) applyCatch(rng RNG, kind Kind) {
	delta := s.scorer.RegisterCatch(kind, rng, s.effects.Multiplier())
	s.events = append(s.events, Event{Type: EventCaught, Kind: kind, Delta: delta})

	switch kind {
	case KindNormal:
	case KindBlessed:
		s.effects.SetMessage(fmt.Sprintf("+%d", delta))
	case KindHazard:
		effect := HazardEffect(rng.UniformInt(0, int(hazardEffectCount)-1))
		s.applyEffect(rng, effect)
	case KindVolatile:
		s.applyEffect(rng, EffectBucketExplode)
	}
}

func (s *Simulation) applyEffect(rng RNG, effect HazardEffect) {
	msg := effect.Message()

	switch effect {
	case EffectInvertControls:
		s.effects.Invert()
	case EffectBucketSmall:
		s.effects.ScaleSize(s.cfg.Effects.SmallScale)
	case EffectBucketLarge:
		s.effects.ScaleSize(s.cfg.Effects.LargeScale)
	case EffectMusicSwap:
		tracks := s.cfg.Effects.AudioTracks
		track := rng.UniformInt(0, core.Max(len(tracks)-1, 0))
		s.effects.SelectAudio(track)
		if track < len(tracks) {
			msg = "Now playing: " + tracks[track]
		}
	case EffectBucketExplode:
		s.scorer.Reset()
		r := s.catcher.Rect()
		s.effects.TriggerExplosion(r.Center())
	case EffectScoreDouble:
		s.effects.MultiplyScore(2)
	case EffectScoreTriple:
		s.effects.MultiplyScore(3)
	}

	s.effects.SetMessage(msg)
	s.events = append(s.events, Event{Type: EventHazardEffect, Effect: effect})
}

func (s *Simulation) updateEscalating(st Escalating, dt, screenH float64) {
	esc := s.cfg.Escalation
	g := st.Giant
	g.Y += esc.DescentSpeed * dt
	g.anim.advance(dt, esc.AnimFPS, esc.FrameCount)

	target := screenH - esc.GiantHeight
	if g.Y >= target {
		g.Y = target
		s.state = Landed{Giant: g, Grace: esc.GraceDuration}
		s.events = append(s.events, Event{Type: EventLanded})
		return
	}
	s.state = Escalating{Giant: g}
}

func (s *Simulation) updateLanded(st Landed, dt float64) {
	esc := s.cfg.Escalation
	st.Giant.anim.advance(dt, esc.AnimFPS, esc.FrameCount)
	st.Grace -= dt
	if st.Grace <= 0 {
		s.state = Over{Giant: st.Giant}
		s.events = append(s.events, Event{Type: EventGameOver})
		return
	}
	s.state = st
}

// Resize moves the catcher to the new screen bottom, keeping its center.
func (s *Simulation) Resize(screenW, screenH float64) {
	s.catcher.ApplySize(s.catcher.Size, screenW, screenH)
}

// SetCatcherSize replaces the catcher's base size, for sprite-driven layouts.
func (s *Simulation) SetCatcherSize(size core.Vec2, screenW, screenH float64) {
	s.baseSize = size
	s.catcher.SetSize(core.Vec2{X: size.X * s.lastScale, Y: size.Y}, screenW, screenH)
}

// Events returns what happened during the last Update. The slice is reused.
func (s *Simulation) Events() []Event { return s.events }

// Catcher returns a copy of the catcher.
func (s *Simulation) Catcher() Catcher { return *s.catcher }

// Items returns the live items. Callers must not modify the slice.
func (s *Simulation) Items() []FallingItem { return s.items }

// Score returns the current score.
func (s *Simulation) Score() int { return s.scorer.Score() }

// Multiplier returns the active score multiplier.
func (s *Simulation) Multiplier() int { return s.effects.Multiplier() }

// Audio returns the current track selection.
func (s *Simulation) Audio() AudioSelection { return s.effects.Audio() }

// Message returns the active feedback message, if any.
func (s *Simulation) Message() (string, bool) { return s.effects.Message() }

// MessageFade returns the message opacity in [0, 1].
func (s *Simulation) MessageFade() float64 { return s.effects.MessageFade() }

// Explosion returns the active explosion, if any.
func (s *Simulation) Explosion() (Explosion, bool) { return s.effects.Explosion() }

// Effects exposes the effects engine for HUD countdowns.
func (s *Simulation) Effects() *Effects { return s.effects }

// Agitation returns the current agitation counter.
func (s *Simulation) Agitation() int { return s.agitation }

// Ceiling returns the agitation ceiling.
func (s *Simulation) Ceiling() int { return s.ceiling }

// Elapsed returns the seconds of gameplay so far.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// State returns the escalation state.
func (s *Simulation) State() State { return s.state }

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.state.Phase() }

// GameOver reports whether the session has ended.
func (s *Simulation) GameOver() bool {
	_, over := s.state.(Over)
	return over
}

// Giant returns the crying cat once escalation has started.
func (s *Simulation) Giant() (Giant, bool) {
	switch st := s.state.(type) {
	case Escalating:
		return st.Giant, true
	case Landed:
		return st.Giant, true
	case Over:
		return st.Giant, true
	default:
		return Giant{}, false
	}
}
