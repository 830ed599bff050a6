package machine

// StateKind is the shape of a State.
type StateKind int

//go:generate go tool stringer -linecomment -type=StateKind
const (
	STATE_INTERMEDIATE = StateKind(0) // intermediate
	STATE_ACCEPT       = StateKind(1) // accept
	STATE_REJECT       = StateKind(2) // reject
)

// State is a control state: Accept, Reject, or a named intermediate state.
type State struct {
	kind StateKind
	name string
}

var (
	Accept = State{kind: STATE_ACCEPT} // Accepting halt state.
	Reject = State{kind: STATE_REJECT} // Rejecting halt state.
)

// Intermediate returns the non-terminal state called name.
func Intermediate(name string) State {
	return State{kind: STATE_INTERMEDIATE, name: name}
}

// Kind returns the shape of the state.
func (st State) Kind() StateKind {
	return st.kind
}

// Terminal returns true for Accept and Reject.
func (st State) Terminal() bool {
	return st.kind != STATE_INTERMEDIATE
}

// Intermediate returns the name of an intermediate state.
func (st State) Intermediate() (name string, ok bool) {
	if st.kind != STATE_INTERMEDIATE {
		return
	}
	return st.name, true
}

// String returns the state name, or the kind for terminal states.
func (st State) String() string {
	if st.kind == STATE_INTERMEDIATE {
		return st.name
	}
	return "<" + st.kind.String() + ">"
}
