package states

import "fmt"

// GamePhase represents the current phase of a play session
type GamePhase int

const (
	// PhasePlaying - the board scrolls and the player spends AP
	PhasePlaying GamePhase = iota

	// PhasePaused - simulation frozen, input ignored except unpause
	PhasePaused

	// PhaseEditing - simulation frozen, editor owns the mouse
	PhaseEditing

	// PhaseOver - the frontline has been pushed off the board
	PhaseOver
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseEditing:
		return "Editing"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// CanSimulate returns true if the board and AP pool advance in this phase
func (p GamePhase) CanSimulate() bool {
	return p == PhasePlaying
}

// Suspended returns true if the session clock is stopped in this phase
func (p GamePhase) Suspended() bool {
	return p == PhasePaused || p == PhaseEditing
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePlaying:
		return []GamePhase{PhasePaused, PhaseEditing, PhaseOver}
	case PhasePaused:
		return []GamePhase{PhasePlaying}
	case PhaseEditing:
		return []GamePhase{PhasePlaying}
	case PhaseOver:
		return []GamePhase{PhasePlaying}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	for _, p := range []GamePhase{PhasePlaying, PhasePaused, PhaseEditing, PhaseOver} {
		if p.String() == s {
			return p, nil
		}
	}
	return PhasePlaying, fmt.Errorf("unknown phase %q", s)
}
