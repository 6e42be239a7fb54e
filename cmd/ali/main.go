// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/ali/engine"
)

func main() {
	var budget int
	var verbose bool
	var quiet bool
	defines := map[string]string{}

	flag.IntVar(&budget, "b", engine.INSTRUCTION_BUDGET, "Instructions between continue prompts (0 to never prompt)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Do not print machine state")
	flag.Func("D", "Predefine NAME=VALUE for operands", func(arg string) error {
		name, value, _ := strings.Cut(arg, "=")
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	emu := engine.NewEngine()
	emu.Verbose = verbose
	emu.Budget = budget
	for name, value := range defines {
		emu.Machine.Predefine(name, value)
	}

	s := newSession(emu, os.Stdin, os.Stdout)
	s.prompts = term.IsTerminal(int(os.Stdin.Fd()))
	s.quiet = quiet

	filename := flag.Arg(0)
	if len(filename) == 0 {
		var ok bool
		filename, ok = s.filename()
		if !ok {
			log.Fatalf("%v: no program file", os.Args[0])
		}
	}

	inf, err := os.Open(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	defer inf.Close()

	err = emu.LoadFrom(inf)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	err = s.loop()
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
}
