package machine

import (
	"errors"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted = errors.New(f("machine halted"))

	// Header errors
	ErrHeaderSeparator = errors.New(f("expected whitespace after ':'"))
	ErrIdentifierEmpty = errors.New(f("identifier is empty"))

	// Rule errors
	ErrLeadingSpace = errors.New(f("line begins with whitespace"))
	ErrTrailing     = errors.New(f("unexpected trailing text"))
	ErrArrowMissing = errors.New(f("expected ->"))
	ErrLhsShort     = errors.New(f("left-hand side too short"))
	ErrLhsLong      = errors.New(f("left-hand side too long"))
	ErrRhsShort     = errors.New(f("right-hand side too short"))
	ErrRhsLong      = errors.New(f("right-hand side too long"))
)

// ErrHeaderMissing is a header entry absent from the program.
type ErrHeaderMissing string

func (err ErrHeaderMissing) Error() string {
	return f("no definition found for %v", string(err))
}

// ErrHeaderDuplicate is a header entry defined a second time.
type ErrHeaderDuplicate string

func (err ErrHeaderDuplicate) Error() string {
	return f("double definition of %v", string(err))
}

// ErrHeaderOrder is a known header entry in the wrong position.
type ErrHeaderOrder struct {
	Expected string
	Found    string
}

func (err ErrHeaderOrder) Error() string {
	return f("expected %v, found %v", err.Expected, err.Found)
}

// ErrHeaderKey is an unknown header key.
type ErrHeaderKey struct {
	Expected string
	Found    string
}

func (err ErrHeaderKey) Error() string {
	return f("expected %v:, found %q", err.Expected, err.Found)
}

// ErrIdentifierSpace is an identifier containing whitespace.
type ErrIdentifierSpace string

func (err ErrIdentifierSpace) Error() string {
	return f("identifier %q contains whitespace", string(err))
}

// ErrDirectionInvalid is an unknown head movement glyph.
type ErrDirectionInvalid string

func (err ErrDirectionInvalid) Error() string {
	return f("unknown direction glyph %q", string(err))
}

// ErrAcceptReject is an accept state declared with the reject state's name.
type ErrAcceptReject string

func (err ErrAcceptReject) Error() string {
	return f("accept state and reject state have the same value: %q", string(err))
}

// ErrRuleTerminal is a rule whose left-hand state is the accept or reject state.
type ErrRuleTerminal string

func (err ErrRuleTerminal) Error() string {
	return f("rule from terminal state %q", string(err))
}

// ErrRuleDuplicate is a second rule for a state and symbol.
type ErrRuleDuplicate struct {
	State    string // Left-hand state, as written.
	Symbol   string // Left-hand symbol, as written.
	Existing string // The earlier rule, re-serialized.
	LineNo   int    // Line of the earlier rule.
}

func (err ErrRuleDuplicate) Error() string {
	return f("duplicate rule for state=%v symbol=%v, already defined at line %d as %q",
		err.State, err.Symbol, err.LineNo, err.Existing)
}

// ErrSyntax locates a parse failure in the program text.
type ErrSyntax struct {
	LineNo int    // 1-based line number.
	Column int    // 1-based byte column of Text, 0 if the whole line.
	Line   string // Full text of the line.
	Text   string // Offending text.
	Err    error
}

func (err ErrSyntax) Error() string {
	if err.Column > 0 {
		return f("line %d:%d '%v' %v", err.LineNo, err.Column, err.Text, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Text, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
