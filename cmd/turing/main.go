// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/text/message"

	"github.com/ezrec/turing/config"
	"github.com/ezrec/turing/emulator"
	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
	"github.com/ezrec/turing/translate"
)

// Exit statuses per verdict.
var exitCode = map[machine.Verdict]int{
	machine.VERDICT_ACCEPT:              0,
	machine.VERDICT_REJECT_BY_RULE:      255,
	machine.VERDICT_REJECT_BY_NO_RULE:   254,
	machine.VERDICT_TIME_LIMIT_EXCEEDED: 253,
}

// Result messages per verdict.
var resultText = map[machine.Verdict]string{
	machine.VERDICT_ACCEPT:              "Accepted",
	machine.VERDICT_REJECT_BY_RULE:      "Rejected",
	machine.VERDICT_REJECT_BY_NO_RULE:   "Rejected: no suitable rule found",
	machine.VERDICT_TIME_LIMIT_EXCEEDED: "Time limit exceeded",
}

var (
	ErrLimitNegative = errors.New("step limit must not be negative")
	ErrInputConflict = errors.New("-e and an input file are exclusive")
	ErrArgCount      = errors.New("expected a machine file and an optional input file")
)

// checkArgs validates the command line once flags and configuration are merged.
func checkArgs(limit int, expr string, args []string) error {
	switch {
	case len(args) < 1 || len(args) > 2:
		return ErrArgCount
	case limit < 0:
		return ErrLimitNegative
	case len(expr) != 0 && len(args) == 2:
		return ErrInputConflict
	}
	return nil
}

// result returns the localized result message for a verdict.
func result(p *message.Printer, verdict machine.Verdict) string {
	return p.Sprint(resultText[verdict])
}

func main() {
	var limit int
	var timeout time.Duration
	var expr string
	var conf string
	var verbose bool
	var quiet bool

	flag.IntVar(&limit, "t", 0, "Step limit for execution, 0 for none")
	flag.DurationVar(&timeout, "timeout", 0, "Wall clock limit for execution")
	flag.StringVar(&expr, "e", "", "Starlark expression for the initial tape")
	flag.StringVar(&conf, "c", "", ".cue run configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Only print the result")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] machine-file [input-file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if len(conf) != 0 {
		cfg, err := config.Load(conf)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
		set := map[string]bool{}
		flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
		if !set["t"] {
			limit = cfg.Limit
		}
		if !set["timeout"] {
			timeout = cfg.Timeout
		}
		if !set["v"] {
			verbose = cfg.Verbose
		}
		if !set["q"] {
			quiet = cfg.Quiet
		}
	}

	if err := checkArgs(limit, expr, flag.Args()); err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), err)
		flag.Usage()
		os.Exit(2)
	}

	machineFile := flag.Arg(0)
	inf, err := os.Open(machineFile)
	if err != nil {
		log.Fatalf("%v: %v", machineFile, err)
	}
	defer inf.Close()

	parser := &machine.Parser{Verbose: verbose}
	prog, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", machineFile, err)
	}

	var content []tape.Symbol
	switch {
	case len(expr) != 0:
		content, err = tape.Eval(expr, prog.Blank)
		if err != nil {
			log.Fatal(err)
		}
	case flag.NArg() == 2:
		input := flag.Arg(1)
		tinf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer tinf.Close()
		content, err = tape.Read(tinf, prog.Blank)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	default:
		content, err = tape.Read(os.Stdin, prog.Blank)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Timeout = timeout
	if !quiet {
		emu.Trace = os.Stdout
	}
	emu.Reset(content...)

	verdict, err := emu.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	p := translate.Printer()
	p.Printf("Result: %v\n", result(p, verdict))
	p.Printf("Steps: %d\n", emu.Steps())
	fmt.Println(emu)

	os.Exit(exitCode[verdict])
}
