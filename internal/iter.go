package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqBackward yields the elements of a slice from last to first.
func IterSeqBackward[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := len(items) - 1; n >= 0; n-- {
			if !yield(items[n]) {
				return
			}
		}
	}
}
