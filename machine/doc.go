// Package machine implements the control of a single-tape Turing machine and
// the parser for its program text.
//
// A program declares its start, accept and reject states and its blank symbol
// in a fixed four line header, followed by transition rules:
//
//	start: s0
//	accept: yes
//	reject: no
//	blank: _
//
//	s0 _ -> yes _ >
//
// The parser canonicalizes the declared accept/reject/blank identifiers into
// the Accept, Reject and tape.Blank values, so the rest of the machine never
// compares against user chosen names.
package machine
