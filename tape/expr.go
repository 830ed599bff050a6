package tape

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval computes initial tape content from a Starlark expression.
//
// The expression must yield either a string, which is split on whitespace, or
// an iterable of strings, one per cell. The predeclared name `blank` holds the
// program's blank identifier. Identifiers equal to blank become Blank.
//
//	["1"] * 3 + ["+"] + ["1"] * 2
//	" ".join(["a", "b"] * 4)
func Eval(expr string, blank string) (content []Symbol, err error) {
	thread := starlark.Thread{Name: "tape"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"blank": starlark.String(blank),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "tape", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrExpressionType}
		return
	}

	if str, ok := rc.(starlark.String); ok {
		for _, name := range strings.Fields(string(str)) {
			content = append(content, Canonical(name, blank))
		}
		return
	}

	iterable, ok := rc.(starlark.Iterable)
	if !ok {
		err = &ErrExpression{Expr: expr, Err: ErrExpressionType}
		return
	}

	it := iterable.Iterate()
	defer it.Done()

	var value starlark.Value
	for it.Next(&value) {
		str, ok := value.(starlark.String)
		if !ok {
			err = &ErrExpression{Expr: expr, Err: ErrExpressionCell(value.String())}
			return
		}
		name := string(str)
		if len(name) == 0 || strings.ContainsFunc(name, isSpace) {
			err = &ErrExpression{Expr: expr, Err: ErrExpressionCell(value.String())}
			return
		}
		content = append(content, Canonical(name, blank))
	}

	return
}
