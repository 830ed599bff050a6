package tape

import (
	"errors"
	"unicode"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrExpressionType = errors.New(f("expression is not a string or a list of strings"))
)

// ErrExpressionCell is a tape expression element that is not a valid symbol.
type ErrExpressionCell string

func (err ErrExpressionCell) Error() string {
	return f("%v is not a symbol identifier", string(err))
}

// ErrExpression indicates a failed tape expression.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("tape expression %q: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
