package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-catch/internal/core"
)

// latchDuration is how long one key press keeps the bucket moving.
// Terminals report key repeats, not key releases, so a held key is a
// stream of presses; the latch bridges the gaps between them.
const latchDuration = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// IsStop reports keys that cancel the movement latch.
func (km *KeyMapper) IsStop(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "down", "s", "j":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// AxisLatch holds the last movement direction for a number of ticks.
type AxisLatch struct {
	hold  int
	dir   core.Action
	ticks int
}

// NewAxisLatch sizes the latch for the given tick rate.
func NewAxisLatch(tickRate int) *AxisLatch {
	if tickRate <= 0 {
		tickRate = 60
	}
	hold := int(latchDuration * time.Duration(tickRate) / time.Second)
	if hold < 1 {
		hold = 1
	}
	return &AxisLatch{hold: hold}
}

// Press starts or refreshes movement in the direction of a (ActionLeft or ActionRight).
// Pressing the opposite direction switches immediately.
func (l *AxisLatch) Press(a core.Action) {
	if a != core.ActionLeft && a != core.ActionRight {
		return
	}
	l.dir = a
	l.ticks = l.hold
}

// Release stops movement at once.
func (l *AxisLatch) Release() {
	l.ticks = 0
}

// Apply adds the held direction to the frame and consumes one tick.
func (l *AxisLatch) Apply(frame *core.InputFrame) {
	if l.ticks <= 0 {
		return
	}
	frame.Set(l.dir)
	l.ticks--
}

// Active reports whether a direction is still held.
func (l *AxisLatch) Active() bool {
	return l.ticks > 0
}
