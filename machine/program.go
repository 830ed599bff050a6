package machine

import (
	"fmt"
	"strings"

	"github.com/ezrec/turing/tape"
)

// Header keys, in the order a program must declare them.
const (
	HEADER_START  = "start"
	HEADER_ACCEPT = "accept"
	HEADER_REJECT = "reject"
	HEADER_BLANK  = "blank"
)

var headerKeys = []string{HEADER_START, HEADER_ACCEPT, HEADER_REJECT, HEADER_BLANK}

// Program is a parsed Turing machine program.
//
// Accept, Reject and Blank keep the identifiers the program declared, so the
// program can be re-serialized; Start and Rules hold canonical values only.
type Program struct {
	Start  State  // Canonical start state.
	Accept string // Declared accept identifier.
	Reject string // Declared reject identifier.
	Blank  string // Declared blank identifier.
	Rules  Rules  // Transition table.
}

// State canonicalizes a state identifier.
func (prog *Program) State(name string) State {
	switch name {
	case prog.Accept:
		return Accept
	case prog.Reject:
		return Reject
	}
	return Intermediate(name)
}

// Symbol canonicalizes a symbol identifier.
func (prog *Program) Symbol(name string) tape.Symbol {
	return tape.Canonical(name, prog.Blank)
}

// StateName returns the identifier for a state.
func (prog *Program) StateName(st State) string {
	switch st.Kind() {
	case STATE_ACCEPT:
		return prog.Accept
	case STATE_REJECT:
		return prog.Reject
	}
	name, _ := st.Intermediate()
	return name
}

// SymbolName returns the identifier for a symbol.
func (prog *Program) SymbolName(sym tape.Symbol) string {
	return sym.Name(prog.Blank)
}

// RuleString renders a rule the way a program declares it.
func (prog *Program) RuleString(rule Rule) string {
	return fmt.Sprintf("%v %v -> %v %v %v",
		rule.Condition.State,
		prog.SymbolName(rule.Condition.Symbol),
		prog.StateName(rule.Action.State),
		prog.SymbolName(rule.Action.Symbol),
		rule.Move,
	)
}

// String returns the canonical program text: the header, a blank line, and
// the rules sorted by state and symbol.
func (prog *Program) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v: %v\n", HEADER_START, prog.StateName(prog.Start))
	fmt.Fprintf(&sb, "%v: %v\n", HEADER_ACCEPT, prog.Accept)
	fmt.Fprintf(&sb, "%v: %v\n", HEADER_REJECT, prog.Reject)
	fmt.Fprintf(&sb, "%v: %v\n", HEADER_BLANK, prog.Blank)

	first := true
	for rule := range prog.Rules.Sorted() {
		if first {
			sb.WriteString("\n")
			first = false
		}
		sb.WriteString(prog.RuleString(rule))
		sb.WriteString("\n")
	}

	return sb.String()
}

// NewMachine creates a machine in the start state over a tape with content.
func (prog *Program) NewMachine(content ...tape.Symbol) *Machine {
	return NewMachine(prog.Start, prog.Rules, tape.NewTape(content...))
}
