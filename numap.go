// Package numap provides interpolating maps: sorted, array-backed
// containers of (key, value) sample nodes that can be evaluated as
// continuous or step functions at arbitrary query keys.
//
// An InterpolatingMap behaves like an ordered multimap over its nodes and
// simultaneously like a function of the key type. Storage is delegated to
// a flatmap.Map, evaluation to an interpolate.Interpolator.
package numap

import (
	"log"

	"github.com/muellan/numeric-map/flatmap"
	"github.com/muellan/numeric-map/interpolate"
)

// InterpolatingMap owns a sorted node sequence and one interpolation
// strategy. All container operations forward to the underlying flat map;
// Eval and EvalAll delegate to the strategy over the current nodes.
//
// The map is single-owner and not safe for concurrent mutation.
type InterpolatingMap[K, V interpolate.Real] struct {
	ipl   interpolate.Interpolator[K, V]
	nodes *flatmap.Map[K, V]
}

// New creates an empty interpolating map using the given strategy.
// Initial nodes may be passed in any order.
func New[K, V interpolate.Real](
	ipl interpolate.Interpolator[K, V], nodes ...flatmap.Node[K, V],
) *InterpolatingMap[K, V] {
	if ipl == nil {
		log.Fatal("Interpolator given to numap.New() is nil.")
	}
	m := &InterpolatingMap[K, V]{ipl: ipl, nodes: flatmap.New[K, V]()}
	m.InsertNodes(nodes)
	return m
}

// NewStep creates a piecewise-constant map.
func NewStep[K, V interpolate.Real](
	nodes ...flatmap.Node[K, V],
) *InterpolatingMap[K, V] {
	return New[K, V](interpolate.Step[K, V]{}, nodes...)
}

// NewLinear creates a piecewise-linear map.
func NewLinear[K, V interpolate.Real](
	nodes ...flatmap.Node[K, V],
) *InterpolatingMap[K, V] {
	return New[K, V](interpolate.Linear[K, V]{}, nodes...)
}

// NewLogLinear creates a piecewise-log-linear map.
func NewLogLinear[K, V interpolate.Real](
	nodes ...flatmap.Node[K, V],
) *InterpolatingMap[K, V] {
	return New[K, V](interpolate.LogLinear[K, V]{}, nodes...)
}

// Eval returns the interpolated value at x.
func (m *InterpolatingMap[K, V]) Eval(x K) V {
	return m.ipl.Eval(m.nodes.Nodes(), x)
}

// EvalAll evaluates at all the given keys. If an output slice is given,
// the results are written to the first one (which is also returned).
func (m *InterpolatingMap[K, V]) EvalAll(xs []K, out ...[]V) []V {
	return m.ipl.EvalAll(m.nodes.Nodes(), xs, out...)
}

// Interpolator returns the map's strategy.
func (m *InterpolatingMap[K, V]) Interpolator() interpolate.Interpolator[K, V] {
	return m.ipl
}

// Insert adds a node at its sorted position and returns that position.
func (m *InterpolatingMap[K, V]) Insert(n flatmap.Node[K, V]) int {
	return m.nodes.Insert(n)
}

// InsertNodes inserts every node of the slice and returns the position of
// the last one inserted, or -1 for an empty slice.
func (m *InterpolatingMap[K, V]) InsertNodes(nodes []flatmap.Node[K, V]) int {
	return m.nodes.InsertNodes(nodes)
}

// EraseKey removes all nodes with the given key and returns the count.
func (m *InterpolatingMap[K, V]) EraseKey(k K) int {
	return m.nodes.EraseKey(k)
}

// EraseAt removes the node at position i.
func (m *InterpolatingMap[K, V]) EraseAt(i int) { m.nodes.EraseAt(i) }

// EraseRange removes the nodes in the position range [lo, hi).
func (m *InterpolatingMap[K, V]) EraseRange(lo, hi int) {
	m.nodes.EraseRange(lo, hi)
}

// Find returns the position of the first node with the given key, or
// (Len(), false) if the key is absent.
func (m *InterpolatingMap[K, V]) Find(k K) (int, bool) {
	return m.nodes.Find(k)
}

// LowerBound returns the first position whose key is not less than k.
func (m *InterpolatingMap[K, V]) LowerBound(k K) int {
	return m.nodes.LowerBound(k)
}

// UpperBound returns the first position whose key is greater than k.
func (m *InterpolatingMap[K, V]) UpperBound(k K) int {
	return m.nodes.UpperBound(k)
}

// EqualRange returns the position range [lo, hi) of nodes with key k.
func (m *InterpolatingMap[K, V]) EqualRange(k K) (lo, hi int) {
	return m.nodes.EqualRange(k)
}

// Count returns the number of nodes with key k.
func (m *InterpolatingMap[K, V]) Count(k K) int { return m.nodes.Count(k) }

// At returns the node at position i, or flatmap.ErrIndexRange if i is out
// of range.
func (m *InterpolatingMap[K, V]) At(i int) (flatmap.Node[K, V], error) {
	return m.nodes.At(i)
}

// Nth returns the node at position i without a bounds check.
func (m *InterpolatingMap[K, V]) Nth(i int) flatmap.Node[K, V] { return m.nodes.Nth(i) }

// Front returns the node with the smallest key. The map must not be empty.
func (m *InterpolatingMap[K, V]) Front() flatmap.Node[K, V] { return m.nodes.Front() }

// Back returns the node with the largest key. The map must not be empty.
func (m *InterpolatingMap[K, V]) Back() flatmap.Node[K, V] { return m.nodes.Back() }

// Len returns the number of nodes.
func (m *InterpolatingMap[K, V]) Len() int { return m.nodes.Len() }

// Empty reports whether the map holds no nodes.
func (m *InterpolatingMap[K, V]) Empty() bool { return m.nodes.Empty() }

// Reserve grows the node storage's capacity to at least n.
func (m *InterpolatingMap[K, V]) Reserve(n int) { m.nodes.Reserve(n) }

// Clear removes all nodes but keeps the strategy and the capacity.
func (m *InterpolatingMap[K, V]) Clear() { m.nodes.Clear() }

// Assign replaces the map's contents with the given nodes.
func (m *InterpolatingMap[K, V]) Assign(nodes []flatmap.Node[K, V]) {
	m.nodes.Assign(nodes)
}

// Swap exchanges contents and strategies of two maps.
func (m *InterpolatingMap[K, V]) Swap(o *InterpolatingMap[K, V]) {
	m.ipl, o.ipl = o.ipl, m.ipl
	m.nodes.Swap(o.nodes)
}

// Clone returns a deep copy of the map. The strategy is stateless and is
// shared by value.
func (m *InterpolatingMap[K, V]) Clone() *InterpolatingMap[K, V] {
	return &InterpolatingMap[K, V]{ipl: m.ipl, nodes: m.nodes.Clone()}
}

// Nodes returns the node sequence in sorted order as a read-only view.
func (m *InterpolatingMap[K, V]) Nodes() []flatmap.Node[K, V] { return m.nodes.Nodes() }

// Equal reports whether two maps hold the same node sequence. Strategies
// are not compared.
func Equal[K, V interpolate.Real](a, b *InterpolatingMap[K, V]) bool {
	return flatmap.Equal(a.nodes, b.nodes)
}

// Compare orders two maps lexicographically over their node sequences.
func Compare[K, V interpolate.Real](a, b *InterpolatingMap[K, V]) int {
	return flatmap.Compare(a.nodes, b.nodes)
}
