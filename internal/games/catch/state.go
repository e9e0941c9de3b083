package catch

// Phase names the stage of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEscalating
	PhaseLanded
	PhaseOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseEscalating:
		return "escalating"
	case PhaseLanded:
		return "landed"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the escalation state of a session. Implemented only by
// Playing, Escalating, Landed and Over.
type State interface {
	Phase() Phase
	isState()
}

// Giant is the descending crying cat.
type Giant struct {
	Y float64

	anim animator
}

// Frame returns the giant's animation phase.
func (g Giant) Frame() int {
	return g.anim.frame
}

// Playing is normal gameplay.
type Playing struct{}

// Escalating is the giant's descent. Gameplay is frozen.
type Escalating struct {
	Giant Giant
}

// Landed waits out the grace period before the game ends.
type Landed struct {
	Giant Giant
	Grace float64 // Seconds left
}

// Over is terminal.
type Over struct {
	Giant Giant
}

func (Playing) Phase() Phase    { return PhasePlaying }
func (Escalating) Phase() Phase { return PhaseEscalating }
func (Landed) Phase() Phase     { return PhaseLanded }
func (Over) Phase() Phase       { return PhaseOver }

func (Playing) isState()    {}
func (Escalating) isState() {}
func (Landed) isState()     {}
func (Over) isState()       {}
