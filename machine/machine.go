// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"log"

	"github.com/ezrec/turing/tape"
)

// Outcome classifies a machine after a step.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_IN_PROGRESS       = Outcome(0) // in progress
	OUTCOME_ACCEPT            = Outcome(1) // accept
	OUTCOME_REJECT_BY_RULE    = Outcome(2) // reject by rule
	OUTCOME_REJECT_BY_NO_RULE = Outcome(3) // reject by no rule
)

// Terminal returns true for every outcome but OUTCOME_IN_PROGRESS.
func (oc Outcome) Terminal() bool {
	return oc != OUTCOME_IN_PROGRESS
}

// outcomeOf classifies a state reached through a rule.
func outcomeOf(st State) Outcome {
	switch st.Kind() {
	case STATE_ACCEPT:
		return OUTCOME_ACCEPT
	case STATE_REJECT:
		return OUTCOME_REJECT_BY_RULE
	}
	return OUTCOME_IN_PROGRESS
}

// Machine is the runtime state of a Turing machine: its tape, its current
// state, and a read-only reference to the transition table.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Tape  *tape.Tape // Tape, with the head.
	State State      // Current state.
	Rules Rules      // Transition table; never modified by the machine.
	Steps int        // Steps taken since creation.

	outcome Outcome
}

// NewMachine creates a machine in state start over tp.
// A terminal start state is classified as accepted or rejected by rule.
func NewMachine(start State, rules Rules, tp *tape.Tape) (m *Machine) {
	m = &Machine{
		Tape:    tp,
		State:   start,
		Rules:   rules,
		outcome: outcomeOf(start),
	}

	return
}

// Outcome returns the classification of the machine's current state.
func (m *Machine) Outcome() Outcome {
	return m.outcome
}

// Step performs a single transition.
//
// If no rule matches the current state and symbol the tape is left untouched,
// the machine moves to Reject and the outcome is OUTCOME_REJECT_BY_NO_RULE.
// Stepping a machine with a terminal outcome returns ErrHalted.
func (m *Machine) Step() (outcome Outcome, err error) {
	if m.outcome.Terminal() {
		err = ErrHalted
		outcome = m.outcome
		return
	}

	name, _ := m.State.Intermediate()
	sym := m.Tape.Current()

	m.Steps++

	action, ok := m.Rules.Lookup(name, sym)
	if !ok {
		if m.Verbose {
			log.Printf("machine: %v %v -> no rule", m.State, sym)
		}
		m.State = Reject
		m.outcome = OUTCOME_REJECT_BY_NO_RULE
		outcome = m.outcome
		return
	}

	if m.Verbose {
		log.Printf("machine: %v %v -> %v %v %v", m.State, sym, action.State, action.Symbol, action.Move)
	}

	m.Tape.Write(action.Symbol)
	m.Tape.Move(action.Move)
	m.State = action.State
	m.outcome = outcomeOf(action.State)
	outcome = m.outcome

	return
}
