package machine

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/turing/tape"
)

// Condition is the left-hand side of a rule.
type Condition struct {
	State  string      // Intermediate state name.
	Symbol tape.Symbol // Symbol under the head.
}

// Action is the right-hand side of a rule.
type Action struct {
	State  State          // Next state.
	Symbol tape.Symbol    // Symbol to write.
	Move   tape.Direction // Head movement after the write.
}

// Rule is a single transition, with the line it was declared on.
type Rule struct {
	LineNo int
	Condition
	Action
}

// Rules is the transition table. At most one rule exists per Condition.
type Rules map[Condition]Rule

// Lookup returns the action for an intermediate state and symbol.
func (rules Rules) Lookup(state string, sym tape.Symbol) (action Action, ok bool) {
	rule, ok := rules[Condition{State: state, Symbol: sym}]
	if ok {
		action = rule.Action
	}
	return
}

// Add inserts a rule, returning the existing rule if its Condition is taken.
func (rules Rules) Add(rule Rule) (existing Rule, ok bool) {
	existing, dup := rules[rule.Condition]
	if dup {
		return
	}
	rules[rule.Condition] = rule
	return Rule{}, true
}

// compareCondition orders conditions by state name, then symbol, Blank first.
func compareCondition(a, b Condition) int {
	return cmp.Or(
		strings.Compare(a.State, b.State),
		strings.Compare(a.Symbol.Token(), b.Symbol.Token()),
	)
}

// Sorted returns the rules in a stable order: by state name, then symbol.
func (rules Rules) Sorted() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		keys := slices.SortedFunc(maps.Keys(rules), compareCondition)
		for _, key := range keys {
			if !yield(rules[key]) {
				return
			}
		}
	}
}

// Equal returns true if both tables map the same conditions to the same
// actions. Line numbers are ignored.
func (rules Rules) Equal(other Rules) bool {
	return maps.EqualFunc(rules, other, func(a, b Rule) bool {
		return a.Action == b.Action
	})
}
