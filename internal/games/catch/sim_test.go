package catch

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
)

const (
	simW = 80.0
	simH = 24.0
)

// dropInBucket places a motionless item at the catcher's center.
func dropInBucket(s *Simulation, kind Kind) {
	it := NewFallingItem(0, kind, 0, 0, s.cfg.Items)
	it.Pos = s.catcher.Rect().Center()
	s.items = append(s.items, it)
}

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestNewPanicsOnNonPositiveCeiling(t *testing.T) {
	for _, ceiling := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSimulation with ceiling %d should panic", ceiling)
				}
			}()
			NewDefault(simW, simH, ceiling)
		}()
	}
}

func TestSimulationStartsPlaying(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	if s.Phase() != PhasePlaying || s.GameOver() {
		t.Errorf("phase = %s, expected playing", s.Phase())
	}
	if _, ok := s.Giant(); ok {
		t.Error("no giant expected before escalation")
	}
	if s.Score() != 0 || s.Agitation() != 0 || s.Ceiling() != 15 {
		t.Errorf("unexpected initial state: score=%d agitation=%d ceiling=%d",
			s.Score(), s.Agitation(), s.Ceiling())
	}
}

func TestSimulationEscalatesOnCeiling(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	s := NewSimulation(simW, simH, 15, cfg)
	// Every item spawns at x=5, far from the idle bucket, and is Normal
	rng := newScriptedRNG(5, 999)

	misses := 0
	escalated := false
	for frame := 0; frame < 20000 && !escalated; frame++ {
		s.Update(rng, Axis(0), testDt, simW, simH)
		for _, e := range s.Events() {
			if e.Type == EventCaught {
				t.Fatalf("frame %d: unexpected catch", frame)
			}
			if e.Type == EventMissed {
				misses++
			}
		}

		if misses < 15 {
			if s.Phase() != PhasePlaying {
				t.Fatalf("frame %d: phase %s after %d misses", frame, s.Phase(), misses)
			}
			continue
		}

		if s.Phase() != PhaseEscalating {
			t.Fatalf("frame %d: phase %s on miss %d, expected escalating", frame, s.Phase(), misses)
		}
		if !hasEvent(s.Events(), EventEscalation) {
			t.Error("expected an escalation event on the transition frame")
		}
		giant, ok := s.Giant()
		if !ok || giant.Y != -cfg.Escalation.GiantHeight {
			t.Errorf("giant = %+v, %v; expected to start at y=%v", giant, ok, -cfg.Escalation.GiantHeight)
		}
		escalated = true
	}
	if !escalated {
		t.Fatal("never escalated")
	}
	if misses != 15 {
		t.Errorf("escalated after %d misses, expected 15", misses)
	}

	// Never returns to Playing; lands, then ends
	landed, over := 0, 0
	for frame := 0; frame < 2000; frame++ {
		s.Update(rng, Axis(1), testDt, simW, simH)
		if s.Phase() == PhasePlaying {
			t.Fatalf("frame %d: returned to playing", frame)
		}
		if hasEvent(s.Events(), EventLanded) {
			landed++
			giant, _ := s.Giant()
			if giant.Y != simH-cfg.Escalation.GiantHeight {
				t.Errorf("landed at y=%v, expected %v", giant.Y, simH-cfg.Escalation.GiantHeight)
			}
		}
		if hasEvent(s.Events(), EventGameOver) {
			over++
		}
	}
	if landed != 1 || over != 1 {
		t.Errorf("landed=%d over=%d, expected one of each", landed, over)
	}
	if !s.GameOver() {
		t.Errorf("phase = %s, expected over", s.Phase())
	}
}

func TestSimulationFrozenDuringEscalation(t *testing.T) {
	s := NewDefault(simW, simH, 1)
	it := NewFallingItem(5, KindNormal, 0, 0, s.cfg.Items)
	it.Pos.Y = simH + 5
	s.items = append(s.items, it)

	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)
	if s.Phase() != PhaseEscalating {
		t.Fatalf("phase = %s, expected escalating", s.Phase())
	}

	before := s.Catcher()
	elapsed := s.Elapsed()
	for i := 0; i < 30; i++ {
		s.Update(newScriptedRNG(), Axis(1), testDt, simW, simH)
	}
	if s.Catcher().Pos != before.Pos || s.Elapsed() != elapsed {
		t.Error("catcher and clock should not move while escalating")
	}
	if len(s.Items()) != 0 {
		t.Errorf("no items should spawn while escalating, got %d", len(s.Items()))
	}
}

func TestSimulationCatchWinsOverMissBelowScreen(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	// A tall bucket reaches past the bottom edge
	s.SetCatcherSize(core.Vec2{X: 9, Y: 10}, simW, simH)

	it := NewFallingItem(0, KindNormal, 0, 0, s.cfg.Items)
	it.Pos = core.Vec2{X: s.Catcher().Rect().Center().X, Y: simH + it.Radius + 0.5}
	if !it.Offscreen(simH) {
		t.Fatal("item should start below the screen")
	}
	if !core.CircleIntersectsRect(it.Pos, it.Radius, s.Catcher().Rect()) {
		t.Fatal("item should start inside the bucket")
	}
	s.items = append(s.items, it)

	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)

	if !hasEvent(s.Events(), EventCaught) {
		t.Error("expected the item to be caught")
	}
	if hasEvent(s.Events(), EventMissed) {
		t.Error("a caught item must not also count as missed")
	}
	if s.Agitation() != 0 {
		t.Errorf("agitation = %d, expected 0", s.Agitation())
	}
	if len(s.Items()) != 0 {
		t.Errorf("caught item should be removed, %d left", len(s.Items()))
	}
}

func TestSimulationVolatileExplodesBucket(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	s.scorer.score = 50
	s.effects.MultiplyScore(2)
	dropInBucket(s, KindVolatile)

	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)

	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0 after the explosion", s.Score())
	}
	ex, ok := s.Explosion()
	if !ok {
		t.Fatal("expected an active explosion")
	}
	if ex.Pos != s.Catcher().Rect().Center() {
		t.Errorf("explosion at %+v, expected catcher center %+v", ex.Pos, s.Catcher().Rect().Center())
	}
	if msg, ok := s.Message(); !ok || !strings.Contains(msg, "KABOOM") {
		t.Errorf("Message() = %q, %v", msg, ok)
	}
	if len(s.Items()) != 0 {
		t.Errorf("caught item should be removed, %d left", len(s.Items()))
	}
}

func TestSimulationNormalCatchAtStart(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	dropInBucket(s, KindNormal)

	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)

	if s.Score() != config.DefaultCatchConfig().Scoring.Normal {
		t.Errorf("score = %d, expected %d", s.Score(), config.DefaultCatchConfig().Scoring.Normal)
	}
	if !hasEvent(s.Events(), EventCaught) {
		t.Error("expected a caught event")
	}

	// The same item is never scored twice
	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)
	if s.Score() != config.DefaultCatchConfig().Scoring.Normal {
		t.Errorf("score changed to %d on the next frame", s.Score())
	}
}

func TestSimulationBlessedCatchMessage(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	dropInBucket(s, KindBlessed)

	s.Update(newScriptedRNG(35), Axis(0), testDt, simW, simH)

	if s.Score() != 35 {
		t.Errorf("score = %d, expected 35", s.Score())
	}
	if msg, ok := s.Message(); !ok || msg != "+35" {
		t.Errorf("Message() = %q, %v; expected +35", msg, ok)
	}
}

func TestSimulationHazardEffects(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	tests := []struct {
		effect HazardEffect
		check  func(t *testing.T, s *Simulation)
	}{
		{EffectInvertControls, func(t *testing.T, s *Simulation) {
			if !s.Effects().Inverted() {
				t.Error("controls should be inverted")
			}
		}},
		{EffectBucketSmall, func(t *testing.T, s *Simulation) {
			want := cfg.Catcher.Width * cfg.Effects.SmallScale
			if got := s.Catcher().Size.X; math.Abs(got-want) > 1e-9 {
				t.Errorf("width = %v, expected %v", got, want)
			}
		}},
		{EffectBucketLarge, func(t *testing.T, s *Simulation) {
			want := cfg.Catcher.Width * cfg.Effects.LargeScale
			if got := s.Catcher().Size.X; math.Abs(got-want) > 1e-9 {
				t.Errorf("width = %v, expected %v", got, want)
			}
		}},
		{EffectMusicSwap, func(t *testing.T, s *Simulation) {
			if track, ok := s.Audio().Alternate(); !ok || track != 1 {
				t.Errorf("Audio() = (%d, %v), expected alternate 1", track, ok)
			}
			if msg, _ := s.Message(); msg != "Now playing: "+cfg.Effects.AudioTracks[1] {
				t.Errorf("message = %q", msg)
			}
		}},
		{EffectBucketExplode, func(t *testing.T, s *Simulation) {
			if _, ok := s.Explosion(); !ok {
				t.Error("expected an explosion")
			}
		}},
		{EffectScoreDouble, func(t *testing.T, s *Simulation) {
			if s.Multiplier() != 2 {
				t.Errorf("multiplier = %d, expected 2", s.Multiplier())
			}
		}},
		{EffectScoreTriple, func(t *testing.T, s *Simulation) {
			if s.Multiplier() != 3 {
				t.Errorf("multiplier = %d, expected 3", s.Multiplier())
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.effect.String(), func(t *testing.T) {
			s := NewSimulation(simW, simH, 15, cfg)
			dropInBucket(s, KindHazard)

			// Effect roll, then the track roll used by music swap
			s.Update(newScriptedRNG(int(tc.effect), 1), Axis(0), testDt, simW, simH)

			var applied []HazardEffect
			for _, e := range s.Events() {
				if e.Type == EventHazardEffect {
					applied = append(applied, e.Effect)
				}
			}
			if len(applied) != 1 || applied[0] != tc.effect {
				t.Fatalf("applied effects = %v, expected [%s]", applied, tc.effect)
			}
			if _, ok := s.Message(); !ok {
				t.Error("every hazard effect should show a message")
			}

			// Size changes take hold on the following frame
			s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)
			tc.check(t, s)
		})
	}
}

func TestSimulationSizeEffectReverts(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	s := NewSimulation(simW, simH, 15, cfg)
	dropInBucket(s, KindHazard)
	s.Update(newScriptedRNG(int(EffectBucketLarge)), Axis(0), testDt, simW, simH)
	s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)
	center := s.Catcher().Rect().Center().X

	if s.Catcher().Size.X == cfg.Catcher.Width {
		t.Fatal("expected the bucket to grow")
	}
	if math.Abs(center-simW/2) > 1e-9 {
		t.Errorf("resize should keep the center, got %v", center)
	}

	// Items may spawn meanwhile; park them far from the bucket
	rng := newScriptedRNG(2, 999)
	for i := 0; i < int(cfg.Effects.SizeDuration*60)+5; i++ {
		s.Update(rng, Axis(0), testDt, simW, simH)
	}
	if s.Catcher().Size.X != cfg.Catcher.Width {
		t.Errorf("width = %v, expected revert to %v", s.Catcher().Size.X, cfg.Catcher.Width)
	}
}

func TestSimulationMissPenalties(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindNormal, cfg.Escalation.MissNormal},
		{KindBlessed, cfg.Escalation.MissBlessed},
		{KindHazard, 0},
		{KindVolatile, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := NewSimulation(simW, simH, 15, cfg)
			it := NewFallingItem(5, tc.kind, 0, 0, cfg.Items)
			it.Pos.Y = simH + 5
			s.items = append(s.items, it)

			s.Update(newScriptedRNG(), Axis(0), testDt, simW, simH)

			if s.Agitation() != tc.expected {
				t.Errorf("agitation = %d, expected %d", s.Agitation(), tc.expected)
			}
			if len(s.Items()) != 0 {
				t.Errorf("missed item should be removed, %d left", len(s.Items()))
			}
			if !hasEvent(s.Events(), EventMissed) {
				t.Error("expected a missed event")
			}
		})
	}
}

func TestSimulationInvertedInput(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	s.effects.Invert()
	start := s.Catcher().Pos.X

	for i := 0; i < 10; i++ {
		s.Update(newScriptedRNG(), Axis(1), testDt, simW, simH)
	}
	if s.Catcher().Pos.X >= start {
		t.Errorf("inverted right input should move left: %v -> %v", start, s.Catcher().Pos.X)
	}
}

func TestSimulationAcceptsInputFrame(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	start := s.Catcher().Pos.X

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		s.Update(newScriptedRNG(), in, testDt, simW, simH)
	}
	if s.Catcher().Pos.X >= start {
		t.Errorf("left input should move left: %v -> %v", start, s.Catcher().Pos.X)
	}
}

func TestSimulationSetCatcherSize(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	s.SetCatcherSize(core.Vec2{X: 12, Y: 3}, simW, simH)

	c := s.Catcher()
	if c.Size != (core.Vec2{X: 12, Y: 3}) || c.Pos.X != 34 {
		t.Errorf("catcher = %+v", c)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{Event{Type: EventCaught, Kind: KindBlessed, Delta: 25}, "caught blessed (+25)"},
		{Event{Type: EventMissed, Kind: KindNormal}, "missed normal"},
		{Event{Type: EventHazardEffect, Effect: EffectScoreTriple}, "effect score_triple"},
		{Event{Type: EventGameOver}, "game over"},
	}
	for _, tc := range tests {
		if got := tc.event.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestSimulationResize(t *testing.T) {
	s := NewDefault(simW, simH, 15)
	s.Resize(120, 40)

	c := s.Catcher()
	if c.Rect().Center().X != simW/2 {
		t.Errorf("center = %v, expected to stay at %v", c.Rect().Center().X, simW/2)
	}
	if c.Pos.Y != 40-s.cfg.Catcher.YOffset {
		t.Errorf("Y = %v, expected %v", c.Pos.Y, 40-s.cfg.Catcher.YOffset)
	}

	s.Resize(20, 40)
	if c := s.Catcher(); c.Pos.X+c.Size.X > 20 {
		t.Errorf("catcher at %v does not fit a 20 wide screen", c.Pos.X)
	}
}
