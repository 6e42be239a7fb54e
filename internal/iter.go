// Package internal holds helpers shared by the ALI packages.
package internal

import (
	"iter"
)

// Concat joins sequences end to end, stopping early when the consumer does.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
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
