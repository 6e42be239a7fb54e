// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"math/big"
)

// Opcode is one of the fixed ALI instructions.
type Opcode int

const (
	OP_NONE = Opcode(iota) // Not an instruction.
	OP_DEC                 // Declare symbol.
	OP_LDA                 // Load symbol into A.
	OP_LDI                 // Load immediate into A.
	OP_STR                 // Store A into symbol.
	OP_XCH                 // Exchange A and B.
	OP_ADD                 // A = A + B
	OP_SUB                 // A = A - B
	OP_JMP                 // Jump.
	OP_JZS                 // Jump if zero flag set.
	OP_JVS                 // Jump if overflow flag set.
	OP_HLT                 // Halt.
	opcodeCount
)

var _opcode_name = [opcodeCount]string{
	OP_NONE: "",
	OP_DEC:  "DEC",
	OP_LDA:  "LDA",
	OP_LDI:  "LDI",
	OP_STR:  "STR",
	OP_XCH:  "XCH",
	OP_ADD:  "ADD",
	OP_SUB:  "SUB",
	OP_JMP:  "JMP",
	OP_JZS:  "JZS",
	OP_JVS:  "JVS",
	OP_HLT:  "HLT",
}

// mnemonicMap is a map of mnemonics to opcodes.
var mnemonicMap = func() map[string]Opcode {
	mm := make(map[string]Opcode, opcodeCount)
	for op := OP_DEC; op < opcodeCount; op++ {
		mm[_opcode_name[op]] = op
	}
	return mm
}()

func (op Opcode) String() string {
	if op < 0 || op >= opcodeCount {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return _opcode_name[op]
}

// OperandKind describes the operand an opcode requires.
type OperandKind int

const (
	OPERAND_NONE   = OperandKind(0) // No operand.
	OPERAND_SYMBOL = OperandKind(1) // Symbol name.
	OPERAND_VALUE  = OperandKind(2) // Integer literal.
	OPERAND_TARGET = OperandKind(3) // Jump target address.
)

// Operand returns the operand kind required by the opcode.
func (op Opcode) Operand() OperandKind {
	switch op {
	case OP_DEC, OP_LDA, OP_STR:
		return OPERAND_SYMBOL
	case OP_LDI:
		return OPERAND_VALUE
	case OP_JMP, OP_JZS, OP_JVS:
		return OPERAND_TARGET
	}
	return OPERAND_NONE
}

// Lookup returns the opcode for a mnemonic.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = mnemonicMap[mnemonic]
	return
}

// Instruction is a decoded line of program text.
type Instruction struct {
	Op     Opcode
	Symbol string   // Operand of OPERAND_SYMBOL opcodes.
	Value  *big.Int // Operand of OPERAND_VALUE and OPERAND_TARGET opcodes.
}

// String returns the canonical program text of the instruction.
func (inst Instruction) String() string {
	switch inst.Op.Operand() {
	case OPERAND_SYMBOL:
		return fmt.Sprintf("%v %v", inst.Op, inst.Symbol)
	case OPERAND_VALUE, OPERAND_TARGET:
		return fmt.Sprintf("%v %d", inst.Op, Word(inst.Value))
	}
	return inst.Op.String()
}
