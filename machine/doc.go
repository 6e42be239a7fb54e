// Package machine implements the memory, register file and instruction
// dispatcher of the ALI accumulator machine.
//
// The address space holds 256 cells. Addresses 0-127 hold instruction
// text, one instruction per program line, and addresses 128-255 hold
// integer data. Data cells are allocated to symbols by DEC, lowest free
// address first.
//
// Eleven opcodes are understood: DEC, LDA, LDI, STR, XCH, ADD, SUB, JMP,
// JZS, JVS and HLT. Integer operands may be literals, predefined equates,
// or $(...) expressions evaluated with Starlark.
package machine
