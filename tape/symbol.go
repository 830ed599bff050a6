package tape

// Symbol is the value of a single tape cell.
//
// The zero value is Blank. Any other symbol carries the identifier token that
// the program text used for it; two non-blank symbols are equal iff their
// tokens are equal.
type Symbol struct {
	token string
}

// Blank is the symbol of every cell that has never been written.
var Blank = Symbol{}

// NonBlank returns the non-blank symbol named by token.
// An empty token yields Blank.
func NonBlank(token string) Symbol {
	return Symbol{token: token}
}

// IsBlank returns true if the symbol is Blank.
func (sym Symbol) IsBlank() bool {
	return len(sym.token) == 0
}

// Token returns the identifier of a non-blank symbol, or "" for Blank.
func (sym Symbol) Token() string {
	return sym.token
}

// Name returns the textual name of the symbol, using blank as the name of
// the Blank symbol.
func (sym Symbol) Name(blank string) string {
	if sym.IsBlank() {
		return blank
	}
	return sym.token
}

// String returns the symbol token, or "<blank>" for Blank.
func (sym Symbol) String() string {
	if sym.IsBlank() {
		return "<blank>"
	}
	return sym.token
}

// Canonical maps an identifier to a symbol: the identifier the program
// declared as blank becomes Blank, everything else is NonBlank.
func Canonical(name string, blank string) Symbol {
	if name == blank {
		return Blank
	}
	return NonBlank(name)
}
