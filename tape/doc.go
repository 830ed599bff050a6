// Package tape implements the bidirectionally-infinite tape of a single-tape
// Turing machine.
//
// A Tape holds a cursor over a materialized window of cells. Every cell outside
// the window is Blank; moving the head past either edge of the window
// materializes exactly one more Blank cell on that edge. The window never
// shrinks, so memory is bounded by the number of head moves, not by the
// logical extent of the tape.
package tape
