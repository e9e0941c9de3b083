package catch

import "fmt"

// EventType classifies something that happened during a frame.
type EventType int

const (
	EventCaught EventType = iota
	EventMissed
	EventHazardEffect
	EventEscalation
	EventLanded
	EventGameOver
)

// Event is emitted by Simulation.Update for the platform to log or react to.
type Event struct {
	Type   EventType
	Kind   Kind         // Item kind for caught/missed
	Delta  int          // Score awarded for caught
	Effect HazardEffect // Applied effect for hazard events
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Type {
	case EventCaught:
		return fmt.Sprintf("caught %s (%+d)", e.Kind, e.Delta)
	case EventMissed:
		return fmt.Sprintf("missed %s", e.Kind)
	case EventHazardEffect:
		return fmt.Sprintf("effect %s", e.Effect)
	case EventEscalation:
		return "escalation"
	case EventLanded:
		return "landed"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
