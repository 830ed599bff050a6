package tape

import (
	"strings"
	"unicode/utf8"
)

// center pads s with spaces to width, extra space going to the left.
func center(s string, width int) string {
	missing := max(width-utf8.RuneCountInString(s), 0)
	right := missing / 2
	left := missing - right
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Format renders the materialized cells on one line, each centered in a
// column as wide as the widest symbol, with a '^' marking the head on the
// line below. Blank cells are shown as blank.
func (tp *Tape) Format(blank string) string {
	var names []string
	width := 1
	for sym := range tp.All() {
		name := sym.Name(blank)
		names = append(names, name)
		width = max(width, utf8.RuneCountInString(name))
	}

	cells := make([]string, len(names))
	marks := make([]string, len(names))
	for n, name := range names {
		cells[n] = center(name, width)
		marks[n] = strings.Repeat(" ", width)
		if n == tp.Index() {
			marks[n] = center("^", width)
		}
	}

	return strings.Join(cells, " ") + "\n" + strings.TrimRight(strings.Join(marks, " "), " ")
}
