package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/turing/tape"
)

func mustParse(t *testing.T, program ...string) *Program {
	t.Helper()

	prog, err := parseLines(t, program...)
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestMachineAccept(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader("s0 _ -> yes _ >")...)
	m := prog.NewMachine()

	assert.Equal(OUTCOME_IN_PROGRESS, m.Outcome())
	assert.Equal(tape.Blank, m.Tape.Current())

	verdict := m.Run(0)
	assert.Equal(VERDICT_ACCEPT, verdict)
	assert.Equal(1, m.Steps)
	assert.Equal(Accept, m.State)
	assert.Equal(1, m.Tape.Index())
	assert.Equal(2, m.Tape.Len())
}

func TestMachineRejectByNoRule(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, header...)
	m := prog.NewMachine(tape.NonBlank("a"), tape.NonBlank("b"))

	outcome, err := m.Step()
	assert.NoError(err)
	assert.Equal(OUTCOME_REJECT_BY_NO_RULE, outcome)
	assert.Equal(Reject, m.State)
	assert.Equal([]tape.Symbol{tape.NonBlank("a"), tape.NonBlank("b")}, m.Tape.Symbols())
	assert.Equal(0, m.Tape.Index())

	verdict, done := m.Verdict(1, 0)
	assert.True(done)
	assert.Equal(VERDICT_REJECT_BY_NO_RULE, verdict)
}

func TestMachineRejectByRule(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader("s0 _ -> no _ ^")...)
	m := prog.NewMachine()

	verdict := m.Run(0)
	assert.Equal(VERDICT_REJECT_BY_RULE, verdict)
	assert.Equal(1, m.Steps)
	assert.Equal([]tape.Symbol{tape.Blank}, m.Tape.Symbols())
	assert.Equal(0, m.Tape.Index())
}

func TestMachineRejectByRuleWrites(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader("s0 a -> no b <")...)
	m := prog.NewMachine(tape.NonBlank("a"))

	outcome, err := m.Step()
	assert.NoError(err)
	assert.Equal(OUTCOME_REJECT_BY_RULE, outcome)
	assert.Equal([]tape.Symbol{tape.Blank, tape.NonBlank("b")}, m.Tape.Symbols())
	assert.Equal(0, m.Tape.Index())
	assert.Equal(-1, m.Tape.Position())
}

func TestMachineTimeLimit(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader("s0 _ -> s0 _ >")...)
	m := prog.NewMachine()

	verdict := m.Run(5)
	assert.Equal(VERDICT_TIME_LIMIT_EXCEEDED, verdict)
	assert.Equal(5, m.Steps)
	assert.Equal(Intermediate("s0"), m.State)
	assert.Equal(OUTCOME_IN_PROGRESS, m.Outcome())
	assert.Equal(5, m.Tape.Index())
}

func TestMachineLimitNotReached(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader(
		"s0 1 -> s0 1 >",
		"s0 _ -> yes _ <",
	)...)

	m := prog.NewMachine(tape.NonBlank("1"), tape.NonBlank("1"), tape.NonBlank("1"))
	assert.Equal(VERDICT_ACCEPT, m.Run(4))
	assert.Equal(4, m.Steps)

	m = prog.NewMachine(tape.NonBlank("1"), tape.NonBlank("1"), tape.NonBlank("1"))
	assert.Equal(VERDICT_TIME_LIMIT_EXCEEDED, m.Run(3))
	assert.Equal(3, m.Steps)
}

func TestMachineTerminalStart(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, "start: yes", "accept: yes", "reject: no", "blank: _")
	m := prog.NewMachine()
	assert.Equal(OUTCOME_ACCEPT, m.Outcome())
	assert.Equal(VERDICT_ACCEPT, m.Run(1))
	assert.Equal(0, m.Steps)

	prog = mustParse(t, "start: no", "accept: yes", "reject: no", "blank: _")
	m = prog.NewMachine()
	assert.Equal(VERDICT_REJECT_BY_RULE, m.Run(0))
	assert.Equal(0, m.Steps)
}

func TestMachineHalted(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, header...)
	m := prog.NewMachine()

	_, err := m.Step()
	assert.NoError(err)

	outcome, err := m.Step()
	assert.ErrorIs(err, ErrHalted)
	assert.Equal(OUTCOME_REJECT_BY_NO_RULE, outcome)
	assert.Equal(1, m.Steps)
}

// Unary increment: append a 1 to a run of 1s.
func TestMachineIncrement(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t,
		"start: scan",
		"accept: done",
		"reject: fail",
		"blank: B",
		"",
		"scan 1 -> scan 1 >",
		"scan B -> back 1 <",
		"back 1 -> back 1 <",
		"back B -> done B >",
	)

	ones := []tape.Symbol{tape.NonBlank("1"), tape.NonBlank("1"), tape.NonBlank("1")}
	m := prog.NewMachine(ones...)
	m.Verbose = true

	assert.Equal(VERDICT_ACCEPT, m.Run(100))
	assert.Equal(8, m.Steps)
	assert.Equal(0, m.Tape.Position())
	assert.Equal([]tape.Symbol{
		tape.Blank,
		tape.NonBlank("1"), tape.NonBlank("1"), tape.NonBlank("1"), tape.NonBlank("1"),
	}, m.Tape.Symbols())
}

func TestMachineSharedRules(t *testing.T) {
	assert := assert.New(t)

	prog := mustParse(t, withHeader(
		"s0 a -> s0 b >",
		"s0 _ -> yes _ ^",
	)...)

	m1 := prog.NewMachine(tape.NonBlank("a"))
	m2 := prog.NewMachine(tape.NonBlank("a"), tape.NonBlank("a"))

	assert.Equal(VERDICT_ACCEPT, m1.Run(0))
	assert.Equal(VERDICT_ACCEPT, m2.Run(0))
	assert.Equal(2, m1.Steps)
	assert.Equal(3, m2.Steps)
	assert.Equal(2, len(prog.Rules))
}

func TestOutcomeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("in progress", OUTCOME_IN_PROGRESS.String())
	assert.Equal("reject by no rule", OUTCOME_REJECT_BY_NO_RULE.String())
	assert.Equal("time limit exceeded", VERDICT_TIME_LIMIT_EXCEEDED.String())
	assert.Equal("Verdict(9)", Verdict(9).String())
}
