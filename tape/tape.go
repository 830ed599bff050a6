// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"iter"
	"slices"

	"github.com/ezrec/turing/internal"
)

// Tape is an infinite-in-both-directions sequence of symbols with a head.
//
// The materialized window is kept as two growable halves around the origin
// (the first cell of the initial content): right holds the origin and every
// cell to its right, left holds the cells to the left of the origin, nearest
// first. Growing either edge is an append.
type Tape struct {
	left  []Symbol
	right []Symbol
	pos   int // Head position relative to the origin.
}

// NewTape creates a tape holding content, with the head on its first cell.
// An empty content yields a tape of a single Blank cell.
func NewTape(content ...Symbol) (tp *Tape) {
	tp = &Tape{
		right: slices.Clone(content),
	}

	if len(tp.right) == 0 {
		tp.right = append(tp.right, Blank)
	}

	return
}

// Len returns the number of materialized cells.
func (tp *Tape) Len() int {
	return len(tp.left) + len(tp.right)
}

// Index returns the head's index into the materialized cells.
func (tp *Tape) Index() int {
	return tp.pos + len(tp.left)
}

// Position returns the head position relative to the first cell of the
// initial content.
func (tp *Tape) Position() int {
	return tp.pos
}

// cell returns a reference to the cell under the head.
func (tp *Tape) cell() *Symbol {
	if tp.pos >= 0 {
		return &tp.right[tp.pos]
	}
	return &tp.left[-tp.pos-1]
}

// Current returns the symbol under the head.
func (tp *Tape) Current() Symbol {
	return *tp.cell()
}

// Write replaces the symbol under the head.
func (tp *Tape) Write(sym Symbol) {
	*tp.cell() = sym
}

// Move moves the head, materializing a Blank cell if it steps past an edge.
func (tp *Tape) Move(dir Direction) {
	switch dir {
	case LEFT:
		if tp.Index() == 0 {
			tp.left = append(tp.left, Blank)
		}
		tp.pos--
	case RIGHT:
		tp.pos++
		if tp.pos == len(tp.right) {
			tp.right = append(tp.right, Blank)
		}
	case STAY:
	}
}

// All returns an iterator over every materialized cell, leftmost first.
func (tp *Tape) All() iter.Seq[Symbol] {
	return internal.IterSeqConcat(
		internal.IterSeqBackward(tp.left),
		slices.Values(tp.right),
	)
}

// Symbols returns a copy of the materialized cells, leftmost first.
func (tp *Tape) Symbols() []Symbol {
	return slices.Collect(tp.All())
}
