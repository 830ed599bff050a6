// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gopkg.in/tomb.v2"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

const (
	CHECK_INTERVAL = 4096 // Steps between wall clock checks in Run.
)

// Emulator runs a Program: a Machine plus the step budget of the run.
type Emulator struct {
	Verbose          bool             // If set, enables verbose logging.
	*machine.Machine                  // Machine of the current run.
	Program          *machine.Program // Program being run.

	Limit   int           // Maximum number of steps, 0 for unbounded.
	Timeout time.Duration // Wall clock limit for Run, 0 for none.
	Trace   io.Writer     // If set, Run writes the machine before each step.

	steps int
}

// NewEmulator creates a new emulator for a program, with an empty tape.
func NewEmulator(prog *machine.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
	}

	emu.Reset()

	return
}

// Reset starts a new run over a tape with content.
func (emu *Emulator) Reset(content ...tape.Symbol) {
	emu.Machine = emu.Program.NewMachine(content...)
	emu.Machine.Verbose = emu.Verbose
	emu.steps = 0

	if emu.Verbose {
		log.Printf("emulator: reset, %d cells, limit %d", len(content), emu.Limit)
	}
}

// Steps returns the steps taken since the last reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// Verdict returns the verdict of the run so far; done is false while the run
// may continue.
func (emu *Emulator) Verdict() (verdict machine.Verdict, done bool) {
	return emu.Machine.Verdict(emu.steps, emu.Limit)
}

// Tick performs a single step of the emulator, unless the run is over.
// done reports whether the run is over after the tick.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	_, done = emu.Verdict()
	if done {
		return
	}

	_, err = emu.Machine.Step()
	if err != nil {
		err = &ErrRuntime{Step: emu.steps + 1, Err: err}
		return
	}
	emu.steps++

	_, done = emu.Verdict()

	return
}

// Run ticks the emulator until the run is over.
//
// The steps run on a tomb managed goroutine that stops when ctx is done or
// Timeout elapses. A run that halted keeps its verdict; otherwise an elapsed
// deadline is reported as VERDICT_TIME_LIMIT_EXCEEDED and a cancellation as
// an error.
func (emu *Emulator) Run(ctx context.Context) (verdict machine.Verdict, err error) {
	if emu.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, emu.Timeout)
		defer cancel()
	}

	t, _ := tomb.WithContext(ctx)
	t.Go(func() error {
		for n := 0; ; n++ {
			if n%CHECK_INTERVAL == 0 {
				select {
				case <-t.Dying():
					return tomb.ErrDying
				default:
				}
			}

			var done bool
			verdict, done = emu.Verdict()
			if done {
				return nil
			}

			if emu.Trace != nil {
				fmt.Fprintf(emu.Trace, "Step: %d\n%v\n\n", emu.steps, emu)
			}

			_, err := emu.Tick()
			if err != nil {
				return err
			}
		}
	})

	err = t.Wait()
	if final, done := emu.Verdict(); done && (err == nil || ctx.Err() != nil) {
		// A run that halted keeps its verdict even if ctx ended with it.
		verdict = final
		err = nil
	} else if errors.Is(err, context.DeadlineExceeded) {
		if emu.Verbose {
			log.Printf("emulator: deadline after %d steps", emu.steps)
		}
		verdict = machine.VERDICT_TIME_LIMIT_EXCEEDED
		err = nil
	}

	if err == nil && emu.Verbose {
		log.Printf("emulator: %v after %d steps", verdict, emu.steps)
	}

	return
}

// String renders the tape, the head, and the current state.
func (emu *Emulator) String() string {
	return fmt.Sprintf("%v\nState: %v",
		emu.Machine.Tape.Format(emu.Program.Blank),
		emu.Program.StateName(emu.Machine.State))
}
