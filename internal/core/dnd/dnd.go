// Package dnd computes new orderings from drag-and-drop drop events.
// It is pure: inputs are never modified.
package dnd

import (
	"errors"
	"slices"
)

// ErrIndexOutOfRange is returned when a drop event points outside the sequence.
var ErrIndexOutOfRange = errors.New("drop index out of range")

// DropResult describes one drop on one container.
//
// A single-list reorder sets both indices. A move between containers is two
// drop results: the source sees only RemovedIndex, the destination sees only
// AddedIndex together with the moved Payload.
type DropResult[T any] struct {
	RemovedIndex *int
	AddedIndex   *int
	Payload      T
}

// IsNoop reports whether the drop touches this container at all.
func (d DropResult[T]) IsNoop() bool {
	return d.RemovedIndex == nil && d.AddedIndex == nil
}

// Move builds a single-list reorder.
func Move[T any](from, to int) DropResult[T] {
	return DropResult[T]{RemovedIndex: &from, AddedIndex: &to}
}

// Remove builds the source half of a cross-list move.
func Remove[T any](at int) DropResult[T] {
	return DropResult[T]{RemovedIndex: &at}
}

// Insert builds the destination half of a cross-list move.
func Insert[T any](at int, payload T) DropResult[T] {
	return DropResult[T]{AddedIndex: &at, Payload: payload}
}

// Apply returns seq reordered by drop.
//
// With no indices the input is returned unchanged. Otherwise the element at
// RemovedIndex is taken out first, and the item to insert (that element, or
// Payload when nothing was removed) is placed at AddedIndex of the shortened
// sequence. All other elements keep their relative order.
func Apply[T any](seq []T, drop DropResult[T]) ([]T, error) {
	if drop.IsNoop() {
		return seq, nil
	}

	result := slices.Clone(seq)
	item := drop.Payload

	if drop.RemovedIndex != nil {
		i := *drop.RemovedIndex
		if i < 0 || i >= len(result) {
			return seq, ErrIndexOutOfRange
		}
		item = result[i]
		result = slices.Delete(result, i, i+1)
	}

	if drop.AddedIndex != nil {
		i := *drop.AddedIndex
		if i < 0 || i > len(result) {
			return seq, ErrIndexOutOfRange
		}
		result = slices.Insert(result, i, item)
	}

	return result, nil
}
