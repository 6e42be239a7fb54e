package machine

import (
	"bufio"
	"io"
	"strings"
)

// Program is a listing of instruction text, one instruction per line.
type Program struct {
	Lines []string
}

// ParseProgram reads a program, one instruction per line.
// Programs larger than the instruction segment are rejected.
func ParseProgram(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineno += 1

		if lineno > CODE_SIZE {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrAddressOverflow}
			prog = nil
			return
		}

		prog.Lines = append(prog.Lines, line)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// EndAddress returns the address of the last instruction line.
func (prog *Program) EndAddress() int {
	if len(prog.Lines) == 0 {
		return CODE_START
	}
	return CODE_START + len(prog.Lines) - 1
}
