package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ali/engine"
	"github.com/ezrec/ali/machine"
)

func doSession(program []string, commands []string, t *testing.T) (emu *engine.Engine, output string, err error) {
	assert := assert.New(t)

	emu = engine.NewEngine()
	assert.NoError(emu.LoadFrom(strings.NewReader(strings.Join(program, "\n"))))

	out := &bytes.Buffer{}
	s := newSession(emu, strings.NewReader(strings.Join(commands, "\n")), out)
	s.quiet = true

	err = s.loop()
	output = out.String()
	return
}

func TestSessionRun(t *testing.T) {
	assert := assert.New(t)

	program := []string{"DEC X", "LDI 10", "STR X", "HLT"}
	emu, output, err := doSession(program, []string{"x", "s", "a"}, t)
	assert.NoError(err)
	assert.True(emu.Done())
	assert.Equal("Invalid command\nProgram Complete... Exiting\n", output)
	assert.Equal(int64(10), emu.Machine.Registers.A.Int64())
}

func TestSessionStep(t *testing.T) {
	assert := assert.New(t)

	program := []string{"LDI 1", "HLT", "HLT", "HLT"}
	emu, output, err := doSession(program, []string{"S", " s ", "s", "q"}, t)
	assert.NoError(err)
	assert.False(emu.Done())
	assert.True(emu.Halted())
	assert.Equal("Program halted.\nExiting\n", output)

	emu, output, err = doSession([]string{"LDI 1", "HLT", "LDI 2"}, []string{"s", "s"}, t)
	assert.NoError(err)
	assert.True(emu.Done())
	assert.Equal("Program Complete... Exiting\n", output)
}

func TestSessionEndOfInput(t *testing.T) {
	assert := assert.New(t)

	emu, output, err := doSession([]string{"LDI 1", "HLT"}, nil, t)
	assert.NoError(err)
	assert.False(emu.Done())
	assert.Equal("Exiting\n", output)
}

func TestSessionError(t *testing.T) {
	assert := assert.New(t)

	emu, _, err := doSession([]string{"LDI 1", "XYZ"}, []string{"a"}, t)
	assert.ErrorIs(err, machine.ErrOpcode("XYZ"))
	assert.True(emu.Done())
}

func TestSessionDecide(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		commands []string
		executed int
		message  string
	}){
		{"resume_then_abort", []string{"a", "y", "n"}, 10, "Resuming execution...\n"},
		{"abort", []string{"a", "n"}, 5, "Halting program...\n"},
		{"invalid", []string{"a", "maybe"}, 5, "Invalid response. Halting program...\n"},
		{"eof", []string{"a"}, 5, "Invalid response. Halting program...\n"},
	}

	for _, entry := range table {
		emu := engine.NewEngine()
		emu.Budget = 5
		assert.NoError(emu.LoadFrom(strings.NewReader("JMP 0")))

		out := &bytes.Buffer{}
		s := newSession(emu, strings.NewReader(strings.Join(entry.commands, "\n")), out)
		s.quiet = true
		assert.NoError(s.loop(), entry.name)

		assert.True(emu.Done(), entry.name)
		assert.Equal(entry.executed, emu.Executed(), entry.name)
		assert.Contains(out.String(), entry.message, entry.name)
		assert.True(strings.HasSuffix(out.String(), "Program Complete... Exiting\n"), entry.name)
	}
}

func TestSessionState(t *testing.T) {
	assert := assert.New(t)

	emu := engine.NewEngine()
	assert.NoError(emu.LoadFrom(strings.NewReader("LDI 4\nHLT")))

	out := &bytes.Buffer{}
	s := newSession(emu, strings.NewReader("s\nq\n"), out)
	s.prompts = true
	assert.NoError(s.loop())

	text := out.String()
	assert.Contains(text, "Enter command (s for single line, a for all instructions, q to quit):\n")
	assert.Contains(text, "A/Accum: 4\n")
	assert.Contains(text, "=> 1: HLT\n")
	assert.True(strings.HasSuffix(text, "Exiting\n"))
}

func TestSessionFilename(t *testing.T) {
	assert := assert.New(t)

	s := newSession(engine.NewEngine(), strings.NewReader("  prog.ali \ns\n"), &bytes.Buffer{})
	name, ok := s.filename()
	assert.True(ok)
	assert.Equal("prog.ali", name)

	command, ok := s.readLine()
	assert.True(ok)
	assert.Equal("s", command)

	s = newSession(engine.NewEngine(), strings.NewReader(""), &bytes.Buffer{})
	_, ok = s.filename()
	assert.False(ok)
}
