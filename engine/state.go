package engine

// State is the run state of the engine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_READY   = State(0) // ready
	STATE_RUNNING = State(1) // running
	STATE_HALTED  = State(2) // halted
	STATE_ERRORED = State(3) // errored
)
