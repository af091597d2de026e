package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInitializing - board allocation and snake placement
	PhaseInitializing GamePhase = iota

	// PhaseRunning - ticks are being played
	PhaseRunning

	// PhasePaused - ticks are suspended, input is ignored
	PhasePaused

	// PhaseEnded - the session is over and the engine torn down
	PhaseEnded

	// PhaseError - a setup or runtime failure
	PhaseError

	// PhaseReset - restart the session without a new process
	PhaseReset
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	case PhaseError:
		return "Error"
	case PhaseReset:
		return "Reset"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanTick returns true if the engine may advance a tick in this phase
func (p GamePhase) CanTick() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []GamePhase{PhasePaused, PhaseEnded, PhaseError}
	case PhasePaused:
		return []GamePhase{PhaseRunning, PhaseEnded, PhaseError}
	case PhaseEnded:
		return []GamePhase{PhaseReset}
	case PhaseError:
		return []GamePhase{PhaseReset}
	case PhaseReset:
		return []GamePhase{PhaseInitializing}
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
func ParsePhase(s string) GamePhase {
	switch s {
	case "Running":
		return PhaseRunning
	case "Paused":
		return PhasePaused
	case "Ended":
		return PhaseEnded
	case "Error":
		return PhaseError
	case "Reset":
		return PhaseReset
	default:
		return PhaseInitializing
	}
}
