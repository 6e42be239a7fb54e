// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ali/machine"
)

const (
	INSTRUCTION_BUDGET = 1000 // Instructions executed before pausing for a decision.
)

var _engine_defines = map[string]string{
	"INSTRUCTION_BUDGET": fmt.Sprintf("%d", INSTRUCTION_BUDGET),
}

// Engine drives the machine one instruction at a time, and owns the
// completion and instruction budget policy.
type Engine struct {
	Verbose          bool             // If set, enables verbose logging.
	*machine.Machine                  // Reference to the machine.
	Program          *machine.Program // Reference to the loaded program listing.

	Budget int        // Instructions between decisions; <= 0 never pauses.
	Decide DecideFunc // Budget decision provider; nil always aborts.

	executed int   // Instructions executed since load.
	counter  int   // Instructions executed since the last resume.
	paused   bool  // Inside Decide.
	done     bool  // Completed, or aborted.
	err      error // Fatal error, if any.
}

// NewEngine creates a new engine with an empty program.
func NewEngine() (emu *Engine) {
	emu = &Engine{
		Machine: machine.NewMachine(),
		Program: &machine.Program{},
		Budget:  INSTRUCTION_BUDGET,
	}

	for key, value := range maps.All(_engine_defines) {
		emu.Machine.Predefine(key, value)
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Engine) Defines() iter.Seq2[string, string] {
	return emu.Machine.Defines()
}

// Load resets the engine and loads a program. On error the engine is
// left with an empty program.
func (emu *Engine) Load(prog *machine.Program) (err error) {
	emu.Machine.Verbose = emu.Verbose

	emu.Program = &machine.Program{}
	emu.executed = 0
	emu.counter = 0
	emu.paused = false
	emu.done = false
	emu.err = nil

	err = emu.Machine.Load(prog)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// LoadFrom parses and loads a program, one instruction per line.
func (emu *Engine) LoadFrom(input io.Reader) (err error) {
	prog, err := machine.ParseProgram(input)
	if err != nil {
		return
	}

	return emu.Load(prog)
}

// Reset reloads the current program.
func (emu *Engine) Reset() (err error) {
	return emu.Load(emu.Program)
}

// Done returns true once the program completed, failed, or was aborted.
func (emu *Engine) Done() bool {
	return emu.done
}

// Halted returns true if the halt flag is set.
func (emu *Engine) Halted() bool {
	return emu.Machine.Registers.Halt
}

// Err returns the fatal error that halted the engine, if any.
func (emu *Engine) Err() error {
	return emu.err
}

// Executed returns the total instructions executed since load.
func (emu *Engine) Executed() int {
	return emu.executed
}

// State returns the current execution state.
func (emu *Engine) State() State {
	switch {
	case emu.err != nil:
		return STATE_HALTED
	case emu.done:
		return STATE_DONE
	case emu.paused:
		return STATE_PAUSED
	case emu.Halted():
		return STATE_HALTED
	}
	return STATE_RUNNING
}

// Step executes a single instruction.
//
// The program is complete when a HLT leaves the program counter on the
// end-of-program address.
func (emu *Engine) Step() (err error) {
	if emu.done {
		return
	}

	inst, executed, err := emu.step()
	if err != nil || !executed {
		return
	}

	if inst.Op == machine.OP_HLT && emu.Machine.Registers.Pc == emu.Program.EndAddress() {
		emu.done = true
	}

	return
}

// Run executes instructions until any HLT, a fatal error, or an abort.
func (emu *Engine) Run() (err error) {
	if emu.done {
		return
	}

	// Halted by an earlier single step.
	if emu.Halted() {
		emu.done = true
		return
	}

	for !emu.done {
		var inst machine.Instruction
		var executed bool
		inst, executed, err = emu.step()
		if err != nil || !executed {
			return
		}
		if inst.Op == machine.OP_HLT {
			emu.done = true
		}
	}

	if emu.Verbose {
		log.Printf("engine: %v after %d instructions", emu.State(), emu.executed)
	}

	return
}

// step fetches, decodes and executes the instruction at the program
// counter, then advances the program counter. Does nothing when halted.
func (emu *Engine) step() (inst machine.Instruction, executed bool, err error) {
	reg := &emu.Machine.Registers
	if reg.Halt {
		return
	}

	emu.Machine.Verbose = emu.Verbose

	addr := reg.Pc
	text, err := emu.Machine.Fetch()
	if err == nil {
		inst, err = emu.Machine.Decode(text)
	}
	if err == nil {
		err = emu.Machine.Execute(inst)
	}
	if err != nil {
		err = &ErrRuntime{Address: addr, Line: text, Err: err}
		emu.fail(err)
		return
	}

	reg.Pc++
	emu.executed++
	emu.counter++
	executed = true

	if emu.Budget > 0 && emu.counter >= emu.Budget {
		emu.pause()
	}

	return
}

// fail halts the engine on a fatal error.
func (emu *Engine) fail(err error) {
	emu.Machine.Registers.Halt = true
	emu.done = true
	emu.err = err

	if emu.Verbose {
		log.Printf("engine: %v", err)
	}
}

// pause blocks on the decision provider.
func (emu *Engine) pause() {
	if emu.Verbose {
		log.Printf("engine: paused after %d instructions", emu.counter)
	}

	decision := DECIDE_ABORT
	emu.paused = true
	if emu.Decide != nil {
		decision = emu.Decide(emu.counter)
	}
	emu.paused = false

	if emu.Verbose {
		log.Printf("engine: %v", decision)
	}

	switch decision {
	case DECIDE_RESUME:
		emu.counter = 0
	default:
		emu.Machine.Registers.Halt = true
		emu.done = true
	}
}
