package catch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cat-catch/internal/core"
	"github.com/vovakirdan/cat-catch/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// isolateConfig keeps user and local config files out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
}

func TestGameDeterminism(t *testing.T) {
	isolateConfig(t)

	// Sweep left and right to catch some of the cats
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if (i/90)%2 == 0 {
			inputs[i].Set(core.ActionLeft)
		} else {
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, int, float64) {
		g := New()
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.ticks, g.Simulation().Catcher().Pos.X
	}

	s1, ticks1, x1 := run()
	s2, ticks2, x2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if ticks1 != ticks2 || x1 != x2 {
		t.Errorf("Determinism failed: ticks %d/%d, catcher x %v/%v", ticks1, ticks2, x1, x2)
	}
}

func TestGameReset(t *testing.T) {
	isolateConfig(t)

	g := New()
	g.Reset(testRuntime(42))
	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Simulation().Elapsed() == 0 {
		t.Fatal("simulation did not advance")
	}

	g.Reset(testRuntime(42))
	if g.ticks != 0 || g.Simulation().Elapsed() != 0 {
		t.Error("Reset should start a fresh session")
	}
	if st := g.State(); st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("unexpected state after reset: %+v", st)
	}
}

func TestGamePause(t *testing.T) {
	isolateConfig(t)

	g := New()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}
	elapsed := g.Simulation().Elapsed()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Simulation().Elapsed() != elapsed {
		t.Error("simulation advanced while paused")
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause should resume")
	}
	if g.Simulation().Elapsed() == elapsed {
		t.Error("simulation should advance after resuming")
	}
}

func TestGameStepReportsEvents(t *testing.T) {
	isolateConfig(t)

	g := New()
	g.Reset(testRuntime(7))
	dropInBucket(g.Simulation(), KindNormal)

	res := g.Step(core.NewInputFrame())
	if len(res.Events) == 0 || !strings.HasPrefix(res.Events[0], "caught normal") {
		t.Errorf("Events = %v, expected a caught event", res.Events)
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, expected 10", res.State.Score)
	}
}

func TestGameHardcore(t *testing.T) {
	isolateConfig(t)

	g := NewHardcore()
	g.Reset(testRuntime(1))
	if g.ID() != HardcoreGameID {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Simulation().Ceiling() != hardcoreCeiling {
		t.Errorf("ceiling = %d, expected %d", g.Simulation().Ceiling(), hardcoreCeiling)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	isolateConfig(t)
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testRuntime(1))
	if g.Simulation().Ceiling() != 20 {
		t.Errorf("easy ceiling = %d, expected 20", g.Simulation().Ceiling())
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	isolateConfig(t)
	SetConfigPath("/nonexistent/catch.yaml")
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntime(1))
	if g.ConfigError() == nil {
		t.Error("expected the config error to be reported")
	}
	if g.Simulation().Ceiling() != 15 {
		t.Errorf("ceiling = %d, expected default 15", g.Simulation().Ceiling())
	}
}

func TestGameRender(t *testing.T) {
	isolateConfig(t)

	g := New()
	g.Reset(testRuntime(3))
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Angry [") {
		t.Error("HUD should show the agitation bar")
	}
	if !strings.Contains(out, "\\~~~~~~~/") && !strings.Contains(out, "\\-------/") {
		t.Error("bucket should be drawn")
	}
	if ground := screen.Row(23); ground != strings.Repeat("─", 80) {
		t.Errorf("bottom row = %q, expected the ground line", ground)
	}
}

func TestAngryBar(t *testing.T) {
	tests := []struct {
		agitation, ceiling int
		expected           string
	}{
		{0, 15, "[.....]"},
		{6, 15, "[##...]"},
		{15, 15, "[#####]"},
		{30, 15, "[#####]"},
		{3, 0, "[.....]"},
	}
	for _, tc := range tests {
		if got := angryBar(tc.agitation, tc.ceiling, 5); got != tc.expected {
			t.Errorf("angryBar(%d, %d) = %q, expected %q", tc.agitation, tc.ceiling, got, tc.expected)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, HardcoreGameID} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}
