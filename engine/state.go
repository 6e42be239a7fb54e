package engine

import (
	"fmt"
)

// State is the execution state of the engine.
type State int

const (
	STATE_RUNNING = State(0) // Ready to execute.
	STATE_PAUSED  = State(1) // Waiting on a resume or abort decision.
	STATE_HALTED  = State(2) // Halted, possibly by a fatal error.
	STATE_DONE    = State(3) // Completed, or aborted by the user.
)

var _state_name = [...]string{
	STATE_RUNNING: "running",
	STATE_PAUSED:  "paused",
	STATE_HALTED:  "halted",
	STATE_DONE:    "done",
}

func (st State) String() string {
	if st < 0 || int(st) >= len(_state_name) {
		return fmt.Sprintf("State(%d)", int(st))
	}
	return _state_name[st]
}

// Decision is the answer to an instruction budget pause.
type Decision int

const (
	DECIDE_ABORT  = Decision(0) // Halt with no further instructions.
	DECIDE_RESUME = Decision(1) // Reset the budget counter and continue.
)

func (d Decision) String() string {
	if d == DECIDE_RESUME {
		return "resume"
	}
	return "abort"
}

// DecideFunc is called, blocking, when the instruction budget is reached.
// The argument is the count of instructions executed since the last
// resume.
type DecideFunc func(executed int) Decision

// DecideAlways returns a decider that always gives the same decision.
func DecideAlways(decision Decision) DecideFunc {
	return func(int) Decision {
		return decision
	}
}

// DecideChannel returns a decider that waits for a decision on a channel.
// A closed channel aborts.
func DecideChannel(decisions <-chan Decision) DecideFunc {
	return func(int) Decision {
		decision, ok := <-decisions
		if !ok {
			return DECIDE_ABORT
		}
		return decision
	}
}
