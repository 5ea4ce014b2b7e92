package numap

import (
	"github.com/muellan/numeric-map/flatmap"
	"github.com/muellan/numeric-map/interpolate"
)

// The statistics below scan the whole node sequence in O(n) and order
// nodes by value, not by key. They require a non-empty map: calling any of
// them on an empty map panics with an index error, there is no defensive
// check.

// Min returns the node with the smallest value. Ties go to the node
// encountered first in key order.
func Min[K, V interpolate.Real](m *InterpolatingMap[K, V]) flatmap.Node[K, V] {
	nodes := m.Nodes()
	best := nodes[0]
	for _, n := range nodes[1:] {
		if n.Value < best.Value {
			best = n
		}
	}
	return best
}

// Max returns the node with the largest value. Ties go to the node
// encountered first in key order.
func Max[K, V interpolate.Real](m *InterpolatingMap[K, V]) flatmap.Node[K, V] {
	nodes := m.Nodes()
	best := nodes[0]
	for _, n := range nodes[1:] {
		if n.Value > best.Value {
			best = n
		}
	}
	return best
}

// Total returns the sum of all node values.
func Total[K, V interpolate.Real](m *InterpolatingMap[K, V]) V {
	var sum V
	for _, n := range m.Nodes() {
		sum += n.Value
	}
	return sum
}

// Mean returns the arithmetic mean of all node values, computed in the
// value type's own arithmetic.
func Mean[K, V interpolate.Real](m *InterpolatingMap[K, V]) V {
	return Total(m) / V(m.Len())
}
