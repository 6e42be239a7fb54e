// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"math/big"
	"strings"
)

// Predefined system equates
var sysEquate = map[string]string{
	"CODE_START":  fmt.Sprintf("%d", CODE_START),
	"CODE_SIZE":   fmt.Sprintf("%d", CODE_SIZE),
	"DATA_START":  fmt.Sprintf("%d", DATA_START),
	"DATA_SIZE":   fmt.Sprintf("%d", DATA_SIZE),
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"INT32_MAX":   fmt.Sprintf("%d", INT32_MAX),
	"INT32_MIN":   fmt.Sprintf("%d", INT32_MIN),
}

// Machine is the ALI data layer (memory, symbols, registers) and the
// instruction dispatcher operating on it.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory    Memory      // Instruction and data segments.
	Symbols   SymbolTable // Declared symbols.
	Registers Registers   // Register file.

	Equate map[string]string // Operand equates, including the system equates.
}

// NewMachine creates a new machine with empty memory.
func NewMachine() (m *Machine) {
	m = &Machine{
		Equate: maps.Clone(sysEquate),
	}

	return
}

// Defines for the machine, including any predefined equates.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(m.Equate)
}

// Predefine defines a new equate or redefines an existing equate.
func (m *Machine) Predefine(equ string, value string) {
	if m.Equate == nil {
		m.Equate = maps.Clone(sysEquate)
	}
	m.Equate[equ] = value
}

// Reset clears memory, symbols and registers.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.Symbols.Reset()
	m.Registers.Reset()
}

// Load resets the machine and loads a program into instruction memory.
func (m *Machine) Load(prog *Program) (err error) {
	m.Reset()

	for addr, line := range prog.Lines {
		err = m.Memory.SetInstruction(CODE_START+addr, line)
		if err != nil {
			m.Memory.Reset()
			err = &ErrSyntax{LineNo: addr + 1, Line: line, Err: err}
			return
		}
	}

	if m.Verbose {
		log.Printf("machine: loaded %d instructions", len(prog.Lines))
	}

	return
}

// Fetch returns the instruction text at the program counter.
func (m *Machine) Fetch() (text string, err error) {
	return m.Memory.Instruction(m.Registers.Pc)
}

// Decode parses a line of instruction text.
func (m *Machine) Decode(text string) (inst Instruction, err error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrOpcode("")
		return
	}

	op, ok := Lookup(words[0])
	if !ok {
		err = ErrOpcode(words[0])
		return
	}

	inst.Op = op
	args := words[1:]

	kind := op.Operand()
	switch {
	case kind == OPERAND_NONE && len(args) == 0:
		return
	case kind == OPERAND_NONE:
		err = errors.Join(ErrInstructionMalformed, ErrOperandExtra)
		return
	case len(args) == 0:
		err = errors.Join(ErrInstructionMalformed, ErrOperandMissing)
		return
	}

	if kind == OPERAND_SYMBOL {
		if len(args) > 1 {
			err = errors.Join(ErrInstructionMalformed, ErrOperandExtra)
			return
		}
		inst.Symbol = args[0]
		return
	}

	arg := strings.Join(args, " ")
	if len(args) > 1 && !isExpr(arg) {
		err = errors.Join(ErrInstructionMalformed, ErrOperandExtra)
		return
	}

	inst.Value, err = m.valueOf(arg)
	if err != nil {
		err = errors.Join(ErrInstructionMalformed, ErrOperandInvalid, err)
		return
	}

	return
}

// Execute applies a single decoded instruction.
//
// The program counter is set to one before a jump target, as the caller
// advances it after every instruction.
func (m *Machine) Execute(inst Instruction) (err error) {
	if m.Verbose {
		log.Printf("%03d: %v", m.Registers.Pc, inst)
	}

	reg := &m.Registers

	switch inst.Op {
	case OP_DEC:
		var addr int
		addr, err = m.Symbols.Declare(inst.Symbol)
		if err != nil {
			return
		}
		if m.Verbose {
			log.Printf("machine: %v at %d", inst.Symbol, addr)
		}
	case OP_LDA:
		addr, ok := m.resolve(inst.Symbol)
		if !ok {
			return
		}
		reg.A, err = m.Memory.Data(addr)
	case OP_LDI:
		reg.A = inst.Value
	case OP_STR:
		addr, ok := m.resolve(inst.Symbol)
		if !ok {
			return
		}
		err = m.Memory.SetData(addr, reg.A)
	case OP_XCH:
		reg.Exchange()
	case OP_ADD:
		reg.Add()
	case OP_SUB:
		reg.Sub()
	case OP_JMP:
		err = m.jump(inst.Value)
	case OP_JZS:
		if reg.Zero {
			err = m.jump(inst.Value)
		}
	case OP_JVS:
		if reg.Overflow {
			err = m.jump(inst.Value)
		}
	case OP_HLT:
		reg.Halt = true
	default:
		err = ErrOpcode(inst.Op.String())
	}

	return
}

// jump sets the program counter to one before the target.
func (m *Machine) jump(target *big.Int) (err error) {
	target = Word(target)
	if target.Cmp(int32Max) > 0 || target.Cmp(int32Min) < 0 {
		err = ErrAddressRange
		return
	}

	m.Registers.Pc = int(target.Int64()) - 1
	return
}

// resolve looks up a symbol for LDA and STR. A missing symbol is
// logged, and the instruction becomes a no-op.
func (m *Machine) resolve(symbol string) (addr int, ok bool) {
	addr, err := m.Symbols.Resolve(symbol)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	ok = true
	return
}
