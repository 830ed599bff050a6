// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"io"
	"log"
	"slices"
	"strings"
	"unicode"

	"github.com/ezrec/turing/tape"
)

// ARROW separates the left- and right-hand sides of a rule.
const ARROW = "->"

// Parser reads Turing machine program text.
//
// The header is exactly four `key: identifier` lines, one line break apart.
// Rules follow, each on its own line, separated by one or more line breaks;
// fields within a rule are separated by spaces or tabs. Trailing line breaks
// are permitted, any other unparsed text is an error.
type Parser struct {
	Verbose bool // If set, logs each line as it is parsed.
}

// token is a whitespace delimited field of a line.
type token struct {
	text   string
	column int // 1-based byte column.
}

// isFieldSpace reports whitespace that may separate fields on a line.
func isFieldSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n' && r != '\r'
}

// fields splits a line into tokens at runs of field whitespace.
func fields(line string) (tokens []token) {
	start := -1
	for n, r := range line {
		if isFieldSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{text: line[start:n], column: start + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = n
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: line[start:], column: start + 1})
	}
	return
}

// lines splits text at "\n" and "\r\n" line breaks.
func lines(text string) (all []string) {
	all = strings.Split(text, "\n")
	for n, line := range all {
		all[n] = strings.TrimSuffix(line, "\r")
	}
	return
}

// Parse parses an input stream into a Program.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return p.ParseString(string(data))
}

// ParseString parses program text into a Program.
func (p *Parser) ParseString(text string) (prog *Program, err error) {
	all := lines(text)

	if p.Verbose {
		for n, line := range all {
			log.Printf("%v: %v\n", n+1, line)
		}
	}

	var names [4]string
	for n, key := range headerKeys {
		names[n], err = p.parseHeader(all, n, key)
		if err != nil {
			return
		}
	}

	parsed := &Program{
		Accept: names[1],
		Reject: names[2],
		Blank:  names[3],
		Rules:  Rules{},
	}
	parsed.Start = parsed.State(names[0])

	if parsed.Accept == parsed.Reject {
		line := all[2]
		err = ErrSyntax{
			LineNo: 3,
			Column: len(line) - len(parsed.Reject) + 1,
			Line:   line,
			Text:   parsed.Reject,
			Err:    ErrAcceptReject(parsed.Reject),
		}
		return
	}

	for n := len(headerKeys); n < len(all); n++ {
		if len(all[n]) == 0 {
			continue
		}

		err = p.parseRule(parsed, all[n], n+1)
		if err != nil {
			return
		}
	}

	prog = parsed

	return
}

// parseHeader parses header entry n, which must be key.
func (p *Parser) parseHeader(all []string, n int, key string) (name string, err error) {
	lineno := n + 1

	if n >= len(all) || len(all[n]) == 0 {
		err = ErrSyntax{LineNo: lineno, Err: ErrHeaderMissing(key)}
		return
	}

	line := all[n]
	fail := func(column int, text string, cause error) {
		err = ErrSyntax{LineNo: lineno, Column: column, Line: line, Text: text, Err: cause}
	}

	found, value, ok := strings.Cut(line, ":")
	if !ok {
		fail(1, line, ErrHeaderKey{Expected: key, Found: line})
		return
	}

	if found != key {
		index := slices.Index(headerKeys, found)
		switch {
		case index < 0:
			fail(1, found, ErrHeaderKey{Expected: key, Found: found})
		case index < n:
			fail(1, found, ErrHeaderDuplicate(found))
		default:
			fail(1, found, ErrHeaderOrder{Expected: key, Found: found})
		}
		return
	}

	column := len(found) + 2
	trimmed := strings.TrimLeftFunc(value, isFieldSpace)
	switch {
	case len(trimmed) == 0:
		fail(column, value, ErrIdentifierEmpty)
		return
	case len(trimmed) == len(value):
		fail(column, value, ErrHeaderSeparator)
		return
	}

	column += len(value) - len(trimmed)
	if strings.ContainsFunc(trimmed, unicode.IsSpace) {
		fail(column, trimmed, ErrIdentifierSpace(trimmed))
		return
	}

	name = trimmed

	return
}

// parseRule parses a rule line into the program's rule table.
func (p *Parser) parseRule(prog *Program, line string, lineno int) (err error) {
	fail := func(column int, text string, cause error) {
		err = ErrSyntax{LineNo: lineno, Column: column, Line: line, Text: text, Err: cause}
	}

	tokens := fields(line)
	if len(tokens) == 0 || tokens[0].column != 1 {
		fail(1, line, ErrLeadingSpace)
		return
	}

	last := tokens[len(tokens)-1]
	if end := last.column - 1 + len(last.text); end != len(line) {
		fail(end+1, line[end:], ErrTrailing)
		return
	}

	for _, tok := range tokens {
		if strings.ContainsFunc(tok.text, unicode.IsSpace) {
			fail(tok.column, tok.text, ErrIdentifierSpace(tok.text))
			return
		}
	}

	if len(tokens) < 3 || tokens[2].text != ARROW {
		key, _, isHeader := strings.Cut(tokens[0].text, ":")
		if isHeader && slices.Contains(headerKeys, key) {
			fail(1, key, ErrHeaderDuplicate(key))
			return
		}

		arrow := slices.IndexFunc(tokens, func(tok token) bool { return tok.text == ARROW })
		switch {
		case arrow >= 0 && arrow < 2:
			fail(tokens[arrow].column, tokens[arrow].text, ErrLhsShort)
		case arrow > 2:
			fail(tokens[2].column, tokens[2].text, ErrLhsLong)
		case len(tokens) >= 3:
			fail(tokens[2].column, tokens[2].text, ErrArrowMissing)
		default:
			fail(len(line)+1, "", ErrArrowMissing)
		}
		return
	}

	rhs := tokens[3:]
	switch {
	case len(rhs) < 3:
		at := tokens[len(tokens)-1]
		fail(at.column, at.text, ErrRhsShort)
		return
	case len(rhs) > 3:
		fail(rhs[3].column, rhs[3].text, ErrRhsLong)
		return
	}

	move, ok := tape.ParseDirection(rhs[2].text)
	if !ok {
		fail(rhs[2].column, rhs[2].text, ErrDirectionInvalid(rhs[2].text))
		return
	}

	from := tokens[0].text
	if prog.State(from).Terminal() {
		fail(tokens[0].column, from, ErrRuleTerminal(from))
		return
	}

	rule := Rule{
		LineNo: lineno,
		Condition: Condition{
			State:  from,
			Symbol: prog.Symbol(tokens[1].text),
		},
		Action: Action{
			State:  prog.State(rhs[0].text),
			Symbol: prog.Symbol(rhs[1].text),
			Move:   move,
		},
	}

	existing, ok := prog.Rules.Add(rule)
	if !ok {
		lhs := line[:tokens[1].column-1+len(tokens[1].text)]
		fail(1, lhs, ErrRuleDuplicate{
			State:    from,
			Symbol:   tokens[1].text,
			Existing: prog.RuleString(existing),
			LineNo:   existing.LineNo,
		})
		return
	}

	return
}
