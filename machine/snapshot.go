package machine

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"strings"

	"github.com/ezrec/ali/internal"
)

// CodeCell is a loaded instruction cell.
type CodeCell struct {
	Address int
	Text    string
	Current bool // Program counter points here.
}

// DataCell is an occupied data cell.
type DataCell struct {
	Address int
	Symbol  string // Owning symbol, "" if none.
	Value   *big.Int
}

// Snapshot is a copy of the visible machine state.
type Snapshot struct {
	A        *big.Int
	B        *big.Int
	Pc       int
	Zero     bool
	Overflow bool

	Code      []CodeCell
	Data      []DataCell
	FreeStart int // First data address past the highest declared symbol.
}

// Snapshot captures the current machine state.
func (m *Machine) Snapshot() (snap Snapshot) {
	reg := m.Registers
	snap = Snapshot{
		A:         Word(reg.A),
		B:         Word(reg.B),
		Pc:        reg.Pc,
		Zero:      reg.Zero,
		Overflow:  reg.Overflow,
		FreeStart: DATA_START,
	}

	for addr, text := range m.Memory.Program() {
		snap.Code = append(snap.Code, CodeCell{
			Address: addr,
			Text:    text,
			Current: addr == reg.Pc,
		})
	}

	for n := range DATA_SIZE {
		addr := DATA_START + n
		value, _ := m.Memory.Data(addr)
		symbol, ok := m.Symbols.Symbol(addr)
		if !ok && value.Sign() == 0 {
			continue
		}
		snap.Data = append(snap.Data, DataCell{
			Address: addr,
			Symbol:  symbol,
			Value:   value,
		})
		if ok {
			snap.FreeStart = addr + 1
		}
	}

	return
}

func (snap Snapshot) registerLines() iter.Seq[string] {
	return slices.Values([]string{
		"---- Registers ----",
		fmt.Sprintf("A/Accum: %d", snap.A),
		fmt.Sprintf("B/Data: %d", snap.B),
		fmt.Sprintf("PC: %d", snap.Pc),
		fmt.Sprintf("ZRB: %d", bit(snap.Zero)),
		fmt.Sprintf("OFB: %d", bit(snap.Overflow)),
	})
}

func (snap Snapshot) codeLines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield("---- Instruction Memory ----") {
			return
		}
		for _, cell := range snap.Code {
			marker := "  "
			if cell.Current {
				marker = "=>"
			}
			if !yield(fmt.Sprintf("%v %d: %v", marker, cell.Address, cell.Text)) {
				return
			}
		}
	}
}

func (snap Snapshot) dataLines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield("---- Data Memory ----") {
			return
		}
		for _, cell := range snap.Data {
			var line string
			if len(cell.Symbol) != 0 {
				line = fmt.Sprintf("%-5d %-7s: %5d", cell.Address, cell.Symbol, cell.Value)
			} else {
				line = fmt.Sprintf("%-5d: %5d", cell.Address, cell.Value)
			}
			if !yield(line) {
				return
			}
		}
		if snap.FreeStart < MEMORY_SIZE {
			yield(fmt.Sprintf("%d - %d  :       0", snap.FreeStart, MEMORY_SIZE-1))
		}
	}
}

// String renders the snapshot in the interactive listing format.
func (snap Snapshot) String() string {
	var text strings.Builder
	for line := range internal.Concat(snap.registerLines(), snap.codeLines(), snap.dataLines()) {
		text.WriteString(line)
		text.WriteString("\n")
	}

	return text.String()
}
