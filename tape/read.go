package tape

import (
	"bufio"
	"io"
	"strings"
)

// Read reads the initial tape content from the first line of input.
//
// The line holds whitespace separated symbol identifiers; identifiers equal
// to blank become Blank. Missing or empty input yields no symbols.
func Read(input io.Reader, blank string) (content []Symbol, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, 1<<24)

	if !scanner.Scan() {
		err = scanner.Err()
		return
	}

	for _, name := range strings.Fields(scanner.Text()) {
		content = append(content, Canonical(name, blank))
	}

	return
}
