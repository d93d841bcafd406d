package sim

import "container/heap"

// PriorityQueue is a min-ordered container over any element type.
// Ordering comes entirely from the less function supplied at construction.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-PriorityQueue
type PriorityQueue[T any] struct {
	h itemHeap[T]
}

// NewPriorityQueue creates an empty queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: itemHeap[T]{less: less}}
}

// Push inserts an element in O(log n).
func (q *PriorityQueue[T]) Push(x T) {
	heap.Push(&q.h, x)
}

// Pop removes and returns the minimum element, or ErrEmpty.
func (q *PriorityQueue[T]) Pop() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return heap.Pop(&q.h).(T), nil
}

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int {
	return len(q.h.items)
}

// Clear drops all queued elements.
func (q *PriorityQueue[T]) Clear() {
	q.h.items = q.h.items[:0]
}

// itemHeap implements heap.Interface.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h itemHeap[T]) Len() int           { return len(h.items) }
func (h itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	h.items = old[0 : n-1]
	return item
}
