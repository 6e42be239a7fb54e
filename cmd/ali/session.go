// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/ali/engine"
	"github.com/ezrec/ali/translate"
)

var f = translate.From

// session is the interactive command loop around an engine.
type session struct {
	emu     *engine.Engine
	input   *bufio.Scanner
	output  io.Writer
	prompts bool // Print prompts before reading input.
	quiet   bool // Do not print the machine state.
}

func newSession(emu *engine.Engine, input io.Reader, output io.Writer) (s *session) {
	s = &session{
		emu:    emu,
		input:  bufio.NewScanner(input),
		output: output,
	}

	emu.Decide = s.decide

	return
}

// println writes a translated line.
func (s *session) println(key string, args ...any) {
	fmt.Fprintln(s.output, f(key, args...))
}

// prompt writes a prompt, if enabled.
func (s *session) prompt(key string) {
	if s.prompts {
		fmt.Fprint(s.output, f(key))
	}
}

// readLine reads the next input line, trimmed and lower case.
func (s *session) readLine() (line string, ok bool) {
	if !s.input.Scan() {
		return
	}

	line = strings.ToLower(strings.TrimSpace(s.input.Text()))
	ok = true
	return
}

// filename asks for the program file name.
func (s *session) filename() (name string, ok bool) {
	s.prompt("Enter the file name:\n")
	if !s.input.Scan() {
		return
	}

	name = strings.TrimSpace(s.input.Text())
	ok = len(name) != 0
	return
}

// decide asks whether to continue after the instruction budget.
func (s *session) decide(executed int) engine.Decision {
	s.println("Execution paused after %d instructions.", executed)
	s.prompt("Continue execution? (y/n): ")

	response, _ := s.readLine()
	switch response {
	case "y":
		s.println("Resuming execution...")
		return engine.DECIDE_RESUME
	case "n":
		s.println("Halting program...")
	default:
		s.println("Invalid response. Halting program...")
	}

	return engine.DECIDE_ABORT
}

func (s *session) state() {
	if !s.quiet {
		fmt.Fprintln(s.output, s.emu.Snapshot().String())
	}
}

// loop runs commands until the program is done, or the user quits.
func (s *session) loop() (err error) {
	for !s.emu.Done() {
		s.prompt("Enter command (s for single line, a for all instructions, q to quit):\n")

		command, ok := s.readLine()
		if !ok {
			command = "q"
		}

		switch command {
		case "s":
			halted := s.emu.Halted()
			err = s.emu.Step()
			s.state()
			if err != nil {
				return
			}
			if halted {
				s.println("Program halted.")
			}
		case "a":
			err = s.emu.Run()
			s.state()
			if err != nil {
				return
			}
		case "q":
			s.println("Exiting")
			return
		default:
			s.println("Invalid command")
		}
	}

	s.println("Program Complete... Exiting")

	return
}
