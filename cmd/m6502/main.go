package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sixtyfive/m6502/cpu"
	"github.com/sixtyfive/m6502/emulator"
)

func main() {
	var compile string
	var binary string
	var budget int
	var save string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble and run")
	flag.StringVar(&binary, "b", "", "binary image to load and run")
	flag.IntVar(&budget, "n", 0, "Maximum instructions to execute (0 = unlimited)")
	flag.StringVar(&save, "s", "", "Save assembled image to file, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(binary) != 0 {
		log.Fatalf("%v: -c and -b are mutually exclusive", os.Args[0])
	}

	machine := emulator.NewMachine()
	machine.Verbose = verbose
	machine.Budget = budget

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if len(save) != 0 {
			err = os.WriteFile(save, prog.Binary(), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", save, err)
			}
			return
		}

		err = machine.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else if len(binary) != 0 {
		image, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}

		err = machine.LoadImage(image)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
	} else {
		flag.Usage()
		os.Exit(2)
	}

	err := machine.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(machine.Cpu)
}
