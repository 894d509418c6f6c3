package flappy

// Phase is the game session state: Start, Playing or Ended.
type Phase int

const (
	PhaseStart   Phase = iota // Waiting for the first input
	PhasePlaying              // Simulation is advancing
	PhaseEnded                // Terminal collision or out of bounds; waits for input
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Trigger is anything that may move a session between phases.
type Trigger int

const (
	TriggerPrimary Trigger = iota // Key press, click or touch
	TriggerRestart                // Explicit restart control
	TriggerCrash                  // Obstacle hit or avatar left the playfield
)

// transition is the only place phase changes are decided.
// It returns the next phase and whether the trigger is accepted in phase p.
// Playing accepts the primary trigger as a self-transition (an impulse).
func transition(p Phase, t Trigger) (Phase, bool) {
	switch p {
	case PhaseStart:
		if t == TriggerPrimary {
			return PhasePlaying, true
		}
	case PhasePlaying:
		switch t {
		case TriggerPrimary:
			return PhasePlaying, true
		case TriggerCrash:
			return PhaseEnded, true
		}
	case PhaseEnded:
		if t == TriggerPrimary || t == TriggerRestart {
			return PhasePlaying, true
		}
	}
	return p, false
}
