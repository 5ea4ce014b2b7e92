// Package interpolate implements piecewise interpolation strategies over
// sorted node sequences. Each strategy is a stateless value: it holds no
// data of its own and evaluates any node slice handed to it.
//
// All strategies require the node slice to be sorted ascending by key.
// Passing an unsorted slice is not detected and gives meaningless results;
// the interpolating map facade guarantees sortedness through its insertion
// discipline, so the check is never repeated here.
package interpolate

import (
	"math"

	"github.com/muellan/numeric-map/flatmap"
)

// Real is the constraint for key and value types: every built-in number
// kind. The interpolation formulas need subtraction, division and promotion
// to float64, which all of these support.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interpolator evaluates a function described by a sorted node sequence at
// arbitrary query keys.
type Interpolator[K, V Real] interface {
	// Eval returns the interpolated value at x. The nodes must be sorted
	// ascending by key.
	Eval(nodes []flatmap.Node[K, V], x K) V
	// EvalAll evaluates at all the given keys. If an output slice is given,
	// the results are written to the first one (which is also returned).
	EvalAll(nodes []flatmap.Node[K, V], xs []K, out ...[]V) []V
}

var (
	_ Interpolator[float64, float64] = Step[float64, float64]{}
	_ Interpolator[float64, float64] = Linear[float64, float64]{}
	_ Interpolator[float64, float64] = LogLinear[float64, float64]{}
)

// search returns the first index in nodes whose key fails pred, or
// len(nodes) if every key satisfies it. pred must be monotone: true for a
// prefix of the (sorted) keys and false afterwards. O(log n).
func search[K, V Real](nodes []flatmap.Node[K, V], pred func(K) bool) int {
	lo, hi := 0, len(nodes)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(nodes[mid].Key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// bracket returns the index p1 of the right node of the bracketing
// interval for x: the first node with key >= x, clamped to [1, n-1] so a
// predecessor always exists. Callers take p0 = p1-1. Requires n >= 2.
func bracket[K, V Real](nodes []flatmap.Node[K, V], x K) int {
	p1 := search(nodes, func(k K) bool { return k < x })
	if p1 == 0 {
		p1 = 1
	} else if p1 == len(nodes) {
		p1 = len(nodes) - 1
	}
	return p1
}

// Step evaluates a piecewise-constant function: the value at x is the value
// of the last node whose key is <= x, or the first node's value if x lies
// before every key.
//
// An empty node slice evaluates to the zero value of V; a single node
// evaluates to that node's value for every x.
type Step[K, V Real] struct{}

func (Step[K, V]) Eval(nodes []flatmap.Node[K, V], x K) V {
	if len(nodes) == 0 {
		var zero V
		return zero
	}
	if len(nodes) == 1 {
		return nodes[0].Value
	}

	p := search(nodes, func(k K) bool { return k <= x })
	if p == 0 {
		return nodes[0].Value
	}
	return nodes[p-1].Value
}

func (s Step[K, V]) EvalAll(
	nodes []flatmap.Node[K, V], xs []K, out ...[]V,
) []V {
	if len(out) == 0 {
		out = [][]V{make([]V, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = s.Eval(nodes, x)
	}
	return out[0]
}

// Linear evaluates a piecewise-linear function through the nodes. Queries
// beyond the first or last key extrapolate along the nearest segment's
// line: the formula is the same in- and out-of-range.
//
// An empty node slice evaluates to the zero value of V; a single node
// evaluates to that node's value for every x. Arithmetic is carried out in
// float64 and converted back to V.
type Linear[K, V Real] struct{}

func (Linear[K, V]) Eval(nodes []flatmap.Node[K, V], x K) V {
	if len(nodes) == 0 {
		var zero V
		return zero
	}
	if len(nodes) == 1 {
		return nodes[0].Value
	}

	p1 := bracket(nodes, x)
	p0 := p1 - 1
	k0, v0 := float64(nodes[p0].Key), float64(nodes[p0].Value)
	k1, v1 := float64(nodes[p1].Key), float64(nodes[p1].Value)

	slope := (v1 - v0) / (k1 - k0)
	return V(v0 + slope*(float64(x)-k0))
}

func (lin Linear[K, V]) EvalAll(
	nodes []flatmap.Node[K, V], xs []K, out ...[]V,
) []V {
	if len(out) == 0 {
		out = [][]V{make([]V, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(nodes, x)
	}
	return out[0]
}

// LogLinear evaluates a function that is linear in log(key): the value at x
// is v0 + (v1-v0) * log(x/k0) / log(k1/k0) over the bracketing nodes.
//
// The logarithm is undefined for non-positive arguments, so a query at
// x <= 0 returns the first node's value. A bracket whose left key is <= 0
// falls back to plain linear interpolation for that segment, so finite
// inputs never produce NaN. Empty and singleton node slices behave as for
// Linear.
type LogLinear[K, V Real] struct{}

func (LogLinear[K, V]) Eval(nodes []flatmap.Node[K, V], x K) V {
	if len(nodes) == 0 {
		var zero V
		return zero
	}
	if len(nodes) == 1 || float64(x) <= 0 {
		return nodes[0].Value
	}

	p1 := bracket(nodes, x)
	p0 := p1 - 1
	k0, v0 := float64(nodes[p0].Key), float64(nodes[p0].Value)
	k1, v1 := float64(nodes[p1].Key), float64(nodes[p1].Value)

	if k0 <= 0 {
		slope := (v1 - v0) / (k1 - k0)
		return V(v0 + slope*(float64(x)-k0))
	}

	slope := (v1 - v0) / math.Log(k1/k0)
	return V(v0 + slope*math.Log(float64(x)/k0))
}

func (ll LogLinear[K, V]) EvalAll(
	nodes []flatmap.Node[K, V], xs []K, out ...[]V,
) []V {
	if len(out) == 0 {
		out = [][]V{make([]V, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = ll.Eval(nodes, x)
	}
	return out[0]
}
