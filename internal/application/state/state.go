package state

// RunState represents whether the simulation is advancing
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateReplayDone
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Ticking reports whether Update should run a simulation tick
func (s RunState) Ticking() bool {
	return s == StateRunning
}

// TogglePause flips between running and paused; other states are unchanged
func (s RunState) TogglePause() RunState {
	switch s {
	case StateRunning:
		return StatePaused
	case StatePaused:
		return StateRunning
	default:
		return s
	}
}
