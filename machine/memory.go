// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"iter"
	"math/big"
)

const (
	CODE_START  = 0   // First instruction address.
	CODE_SIZE   = 128 // Instruction segment size.
	DATA_START  = 128 // First data address.
	DATA_SIZE   = 128 // Data segment size.
	MEMORY_SIZE = CODE_SIZE + DATA_SIZE
)

// Memory is the 256 cell address space. Addresses [0,128) hold
// instruction text, addresses [128,256) hold integers. Unwritten
// data cells read as zero.
type Memory struct {
	code   [CODE_SIZE]string
	data   [DATA_SIZE]*big.Int
	loaded int // Number of instruction cells written by the loader.
}

// IsCode returns true if the address lies in the instruction segment.
func IsCode(addr int) bool {
	return addr >= CODE_START && addr < CODE_START+CODE_SIZE
}

// IsData returns true if the address lies in the data segment.
func IsData(addr int) bool {
	return addr >= DATA_START && addr < DATA_START+DATA_SIZE
}

// Reset clears both segments.
func (mem *Memory) Reset() {
	clear(mem.code[:])
	clear(mem.data[:])
	mem.loaded = 0
}

// Loaded returns the number of instruction cells holding program text.
func (mem *Memory) Loaded() int {
	return mem.loaded
}

// Instruction returns the instruction text at an address.
func (mem *Memory) Instruction(addr int) (text string, err error) {
	if !IsCode(addr) {
		err = ErrAddressRange
		return
	}

	text = mem.code[addr-CODE_START]
	return
}

// SetInstruction writes instruction text at an address.
func (mem *Memory) SetInstruction(addr int, text string) (err error) {
	if !IsCode(addr) {
		err = ErrAddressOverflow
		return
	}

	mem.code[addr-CODE_START] = text
	mem.loaded = max(mem.loaded, addr-CODE_START+1)
	return
}

// Data returns the integer stored at a data address.
func (mem *Memory) Data(addr int) (value *big.Int, err error) {
	if !IsData(addr) {
		err = ErrAddressRange
		return
	}

	value = Word(mem.data[addr-DATA_START])
	return
}

// SetData stores an integer at a data address.
// The value is kept by reference, and must not be modified afterwards.
func (mem *Memory) SetData(addr int, value *big.Int) (err error) {
	if !IsData(addr) {
		err = ErrAddressRange
		return
	}

	mem.data[addr-DATA_START] = value
	return
}

// Program iterates over the loaded instruction cells.
func (mem *Memory) Program() iter.Seq2[int, string] {
	return func(yield func(addr int, text string) bool) {
		for n := range mem.loaded {
			if !yield(CODE_START+n, mem.code[n]) {
				return
			}
		}
	}
}

// SymbolTable maps declared names to data addresses.
type SymbolTable struct {
	address map[string]int
	owner   [DATA_SIZE]string // Symbol name per data cell, "" when free.
}

// Declare allocates the lowest free data address for a symbol.
// A symbol that is already declared keeps its address.
func (st *SymbolTable) Declare(name string) (addr int, err error) {
	addr, ok := st.address[name]
	if ok {
		return
	}

	for n, owner := range st.owner {
		if len(owner) != 0 {
			continue
		}
		if st.address == nil {
			st.address = make(map[string]int, 16)
		}
		addr = DATA_START + n
		st.owner[n] = name
		st.address[name] = addr
		return
	}

	addr = 0
	err = ErrAddressSpaceExhausted
	return
}

// Resolve returns the address of a declared symbol.
func (st *SymbolTable) Resolve(name string) (addr int, err error) {
	addr, ok := st.address[name]
	if !ok {
		err = ErrSymbolNotFound(name)
	}
	return
}

// Symbol returns the symbol owning a data address, if any.
func (st *SymbolTable) Symbol(addr int) (name string, ok bool) {
	if !IsData(addr) {
		return
	}

	name = st.owner[addr-DATA_START]
	ok = len(name) != 0
	return
}

// Len returns the number of declared symbols.
func (st *SymbolTable) Len() int {
	return len(st.address)
}

// Reset forgets all symbols.
func (st *SymbolTable) Reset() {
	clear(st.address)
	clear(st.owner[:])
}
