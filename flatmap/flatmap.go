// Package flatmap provides a sorted key-value multimap backed by a single
// contiguous slice instead of a tree. Keys are kept in ascending order at
// all times, so lookups are O(log n) binary searches and iteration is a
// cache-local scan. The price is O(n) insertion and erasure, since elements
// after the target position must shift.
//
// Unlike a tree-based map, a flat map offers O(1) positional access to the
// i-th smallest element.
package flatmap

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/exp/constraints"
)

// ErrIndexRange is returned by At for indices outside [0, Len()).
var ErrIndexRange = errors.New("index out of range")

// Node is one (key, value) pair of a map. Keys are immutable once inserted:
// changing a key in place could break the sort order, so a key change has to
// go through an erase followed by an insert.
type Node[K, V any] struct {
	Key   K
	Value V
}

// Map is a contiguous sequence of nodes sorted ascending by key. Duplicate
// keys are allowed; among equal keys, insertion order is preserved.
//
// A Map is not safe for concurrent mutation. Concurrent reads are fine as
// long as no goroutine mutates the map at the same time.
type Map[K, V any] struct {
	less  func(a, b K) bool
	nodes []Node[K, V]
}

// New creates an empty map ordered by the natural < of the key type.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc creates an empty map ordered by the given comparison function.
// less must be a strict weak ordering over K.
func NewFunc[K, V any](less func(a, b K) bool) *Map[K, V] {
	if less == nil {
		log.Fatal("Comparison function given to flatmap.NewFunc() is nil.")
	}
	return &Map[K, V]{less: less}
}

// From creates a map holding the given nodes, which may be in any order.
func From[K constraints.Ordered, V any](nodes []Node[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.InsertNodes(nodes)
	return m
}

// FromFunc creates a map ordered by less and holding the given nodes, which
// may be in any order.
func FromFunc[K, V any](
	nodes []Node[K, V], less func(a, b K) bool,
) *Map[K, V] {
	m := NewFunc[K, V](less)
	m.InsertNodes(nodes)
	return m
}

// lowerBound returns the first index whose key is not less than k, or
// m.Len() if there is none.
//
// This is a hand-rolled binary search rather than a sort.Search wrapper so
// the hot path stays free of closure allocation and so nothing about the
// element type beyond the key ordering is ever required.
func (m *Map[K, V]) lowerBound(k K) int {
	lo, hi := 0, len(m.nodes)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.less(m.nodes[mid].Key, k) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index whose key is greater than k, or
// m.Len() if there is none.
func (m *Map[K, V]) upperBound(k K) int {
	lo, hi := 0, len(m.nodes)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if !m.less(k, m.nodes[mid].Key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Insert adds a node at its sorted position and returns that position.
// A node whose key is already present goes after the existing run of equal
// keys, so equal keys keep their insertion order. O(n) worst case.
func (m *Map[K, V]) Insert(n Node[K, V]) int {
	i := m.upperBound(n.Key)
	m.nodes = append(m.nodes, Node[K, V]{})
	copy(m.nodes[i+1:], m.nodes[i:])
	m.nodes[i] = n
	return i
}

// InsertNodes inserts each node of the given slice in order and returns the
// position of the last one inserted, or -1 if the slice is empty. Capacity
// for the whole slice is reserved up front, so at most one reallocation
// happens regardless of len(nodes).
func (m *Map[K, V]) InsertNodes(nodes []Node[K, V]) int {
	m.Reserve(len(m.nodes) + len(nodes))
	i := -1
	for _, n := range nodes {
		i = m.Insert(n)
	}
	return i
}

// Find returns the position of a node with the given key, or (Len(), false)
// if no such node exists. If several nodes share the key, the first of the
// run is returned. O(log n).
func (m *Map[K, V]) Find(k K) (int, bool) {
	i := m.lowerBound(k)
	if i < len(m.nodes) && !m.less(k, m.nodes[i].Key) {
		return i, true
	}
	return len(m.nodes), false
}

// LowerBound returns the first position whose key is not less than k.
func (m *Map[K, V]) LowerBound(k K) int { return m.lowerBound(k) }

// UpperBound returns the first position whose key is greater than k.
func (m *Map[K, V]) UpperBound(k K) int { return m.upperBound(k) }

// EqualRange returns the half-open position range [lo, hi) of the nodes
// whose keys equal k. The range is empty (lo == hi) if k is absent.
func (m *Map[K, V]) EqualRange(k K) (lo, hi int) {
	return m.lowerBound(k), m.upperBound(k)
}

// Count returns the number of nodes whose keys equal k.
func (m *Map[K, V]) Count(k K) int {
	lo, hi := m.EqualRange(k)
	return hi - lo
}

// EraseKey removes every node whose key equals k and returns how many were
// removed. Erasing an absent key is a no-op returning 0.
func (m *Map[K, V]) EraseKey(k K) int {
	lo, hi := m.EqualRange(k)
	m.EraseRange(lo, hi)
	return hi - lo
}

// EraseAt removes the node at position i.
func (m *Map[K, V]) EraseAt(i int) {
	m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
}

// EraseRange removes the nodes in the half-open position range [lo, hi).
func (m *Map[K, V]) EraseRange(lo, hi int) {
	m.nodes = append(m.nodes[:lo], m.nodes[hi:]...)
}

// At returns the node at position i, or ErrIndexRange if i is out of range.
func (m *Map[K, V]) At(i int) (Node[K, V], error) {
	if i < 0 || i >= len(m.nodes) {
		var zero Node[K, V]
		return zero, fmt.Errorf(
			"flatmap: position %d with map size %d: %w",
			i, len(m.nodes), ErrIndexRange,
		)
	}
	return m.nodes[i], nil
}

// Nth returns the node at position i without a bounds check. O(1).
func (m *Map[K, V]) Nth(i int) Node[K, V] { return m.nodes[i] }

// Front returns the node with the smallest key. The map must not be empty.
func (m *Map[K, V]) Front() Node[K, V] { return m.nodes[0] }

// Back returns the node with the largest key. The map must not be empty.
func (m *Map[K, V]) Back() Node[K, V] { return m.nodes[len(m.nodes)-1] }

// Len returns the number of nodes.
func (m *Map[K, V]) Len() int { return len(m.nodes) }

// Empty reports whether the map holds no nodes.
func (m *Map[K, V]) Empty() bool { return len(m.nodes) == 0 }

// Reserve grows the backing slice's capacity to at least n nodes.
func (m *Map[K, V]) Reserve(n int) {
	if n <= cap(m.nodes) {
		return
	}
	nodes := make([]Node[K, V], len(m.nodes), n)
	copy(nodes, m.nodes)
	m.nodes = nodes
}

// Clear removes all nodes but keeps the allocated capacity.
func (m *Map[K, V]) Clear() { m.nodes = m.nodes[:0] }

// Assign replaces the map's contents with the given nodes, which may be in
// any order.
func (m *Map[K, V]) Assign(nodes []Node[K, V]) {
	m.Clear()
	m.InsertNodes(nodes)
}

// Swap exchanges the contents of two maps, comparison functions included.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	m.less, o.less = o.less, m.less
	m.nodes, o.nodes = o.nodes, m.nodes
}

// Clone returns a deep copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	nodes := make([]Node[K, V], len(m.nodes))
	copy(nodes, m.nodes)
	return &Map[K, V]{less: m.less, nodes: nodes}
}

// Nodes returns the map's backing slice in sorted order. The slice is a
// read-only view: callers must not modify it, and any mutating call on the
// map invalidates it.
func (m *Map[K, V]) Nodes() []Node[K, V] { return m.nodes }

// Equal reports whether two maps hold the same node sequence.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			return false
		}
	}
	return true
}

// Compare orders two maps lexicographically over their node sequences,
// keys before values. It returns -1, 0, or +1.
func Compare[K, V constraints.Ordered](a, b *Map[K, V]) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		an, bn := a.nodes[i], b.nodes[i]
		switch {
		case an.Key < bn.Key:
			return -1
		case bn.Key < an.Key:
			return +1
		case an.Value < bn.Value:
			return -1
		case bn.Value < an.Value:
			return +1
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case b.Len() < a.Len():
		return +1
	}
	return 0
}
