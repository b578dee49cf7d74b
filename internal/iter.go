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
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqAs yields each item of a slice as the interface type U.
// Items that do not implement U are skipped.
func IterSeqAs[U any, T any](items []T) iter.Seq[U] {
	return func(yield func(U) bool) {
		for _, item := range items {
			val, ok := any(item).(U)
			if !ok {
				continue
			}
			if !yield(val) {
				return
			}
		}
	}
}
