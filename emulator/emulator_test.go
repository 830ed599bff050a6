package emulator

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

func doParse(program []string, t *testing.T) *machine.Program {
	p := &machine.Parser{}
	prog, err := p.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

var header = []string{
	"start: s0",
	"accept: yes",
	"reject: no",
	"blank: _",
}

func withHeader(rules ...string) []string {
	return append(append([]string{}, header...), rules...)
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(header, t))

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(0, emu.Steps())
	assert.Equal(machine.Intermediate("s0"), emu.Machine.State)
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader(
		"s0 1 -> s0 1 >",
		"s0 _ -> yes _ ^",
	), t))
	emu.Reset(tape.NonBlank("1"), tape.NonBlank("1"))

	for n := 1; n <= 2; n++ {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(n, emu.Steps())
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(3, emu.Steps())

	// Ticks after the run is over are no-ops.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(3, emu.Steps())

	verdict, done := emu.Verdict()
	assert.True(done)
	assert.Equal(machine.VERDICT_ACCEPT, verdict)
}

func TestEmulatorVerdicts(t *testing.T) {
	table := [](struct {
		name    string
		rules   []string
		limit   int
		verdict machine.Verdict
		steps   int
	}){
		{"accept", []string{"s0 _ -> yes _ >"}, 0, machine.VERDICT_ACCEPT, 1},
		{"no rule", nil, 0, machine.VERDICT_REJECT_BY_NO_RULE, 1},
		{"reject", []string{"s0 _ -> no _ ^"}, 0, machine.VERDICT_REJECT_BY_RULE, 1},
		{"loop", []string{"s0 _ -> s0 _ >"}, 5, machine.VERDICT_TIME_LIMIT_EXCEEDED, 5},
		{"limit after halt", []string{"s0 _ -> yes _ >"}, 1, machine.VERDICT_ACCEPT, 1},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := NewEmulator(doParse(withHeader(entry.rules...), t))
			emu.Limit = entry.limit
			emu.Reset()

			verdict, err := emu.Run(context.Background())
			assert.NoError(err)
			assert.Equal(entry.verdict, verdict)
			assert.Equal(entry.steps, emu.Steps())
		})
	}
}

func TestEmulatorTimeout(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader("s0 _ -> s0 _ ^"), t))
	emu.Timeout = 20 * time.Millisecond

	verdict, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(machine.VERDICT_TIME_LIMIT_EXCEEDED, verdict)
	assert.Greater(emu.Steps(), 0)
}

func TestEmulatorCancel(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader("s0 _ -> s0 _ ^"), t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
}

func TestEmulatorHaltedBeforeDeadline(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader("s0 _ -> yes 1 >"), t))

	verdict, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(machine.VERDICT_ACCEPT, verdict)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	verdict, err = emu.Run(ctx)
	assert.NoError(err)
	assert.Equal(machine.VERDICT_ACCEPT, verdict)
	assert.Equal(1, emu.Steps())

	ctx, stop := context.WithCancel(context.Background())
	stop()

	verdict, err = emu.Run(ctx)
	assert.NoError(err)
	assert.Equal(machine.VERDICT_ACCEPT, verdict)
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader("s0 a -> yes b >"), t))
	emu.Reset(tape.NonBlank("a"))

	trace := &bytes.Buffer{}
	emu.Trace = trace

	verdict, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(machine.VERDICT_ACCEPT, verdict)

	assert.Equal("Step: 0\na\n^\nState: s0\n\n", trace.String())
	assert.Equal("b _\n  ^\nState: yes", emu.String())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(withHeader("s0 _ -> s0 _ >"), t))
	emu.Limit = 3
	emu.Verbose = true

	verdict, err := emu.Run(context.Background())
	assert.NoError(err)
	assert.Equal(machine.VERDICT_TIME_LIMIT_EXCEEDED, verdict)
	assert.Equal(3, emu.Steps())

	emu.Reset(tape.NonBlank("x"))
	assert.Equal(0, emu.Steps())
	assert.Equal(tape.NonBlank("x"), emu.Machine.Tape.Current())
	assert.True(emu.Machine.Verbose)
}
