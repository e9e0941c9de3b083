package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-catch/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestIsStop(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeySpace}, {Type: tea.KeyDown}, runeKey("s")} {
		if !km.IsStop(msg) {
			t.Errorf("IsStop(%q) = false, want true", msg.String())
		}
	}
	if km.IsStop(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Error("IsStop(left) = true, want false")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestAxisLatchHold(t *testing.T) {
	l := NewAxisLatch(60)
	l.Press(core.ActionLeft)

	// 300ms at 60 ticks per second
	const hold = 18
	for i := 0; i < hold; i++ {
		frame := core.NewInputFrame()
		l.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left not held", i)
		}
	}

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionLeft) || l.Active() {
		t.Error("latch should expire after its hold time")
	}
}

func TestAxisLatchSwitchAndRelease(t *testing.T) {
	l := NewAxisLatch(60)
	l.Press(core.ActionLeft)
	l.Press(core.ActionRight)

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, want right only", frame.Actions)
	}

	l.Release()
	frame = core.NewInputFrame()
	l.Apply(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("released latch still moving")
	}
}

func TestAxisLatchIgnoresOtherActions(t *testing.T) {
	l := NewAxisLatch(60)
	l.Press(core.ActionPause)
	if l.Active() {
		t.Error("pause should not start the latch")
	}
}

func TestAxisLatchLowTickRate(t *testing.T) {
	l := NewAxisLatch(1)
	l.Press(core.ActionRight)

	frame := core.NewInputFrame()
	l.Apply(&frame)
	if !frame.Has(core.ActionRight) {
		t.Error("latch should hold for at least one tick")
	}
	if l.Active() {
		t.Error("latch should expire after one tick at 1 fps")
	}
}
