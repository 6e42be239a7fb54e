// Package engine executes ALI programs on a machine.
//
// An Engine runs either one instruction per Step, or to completion with
// Run. Single stepping completes the program only when a HLT leaves the
// program counter on the end-of-program address, while Run completes on
// the first HLT executed.
//
// After Budget instructions the engine pauses and asks its DecideFunc to
// resume or abort.
package engine
