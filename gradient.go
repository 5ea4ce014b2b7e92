package numap

import (
	"github.com/muellan/numeric-map/flatmap"
	"github.com/muellan/numeric-map/interpolate"
)

// Gradient is a numeric mapping with known endpoint values. The argument
// is usually a parameter in [0, 1]; think "gradient" as in "color
// gradient".
type Gradient[A, R interpolate.Real] interface {
	Eval(A) R
	// MinValue returns the value of the node with the smallest key.
	MinValue() R
	// MaxValue returns the value of the node with the largest key.
	MaxValue() R
}

var _ Gradient[float64, float64] = &InterpolatingGradient[float64, float64]{}

// InterpolatingGradient adapts an InterpolatingMap to the Gradient
// interface. The map is held by reference, not copied: mutations made to
// it after wrapping are visible through the gradient. Use Clone on the map
// first for a snapshot-isolated gradient. The wrapped map must not be
// empty when the endpoint accessors are called.
type InterpolatingGradient[A, R interpolate.Real] struct {
	m *InterpolatingMap[A, R]
}

// NewGradient wraps an existing interpolating map.
func NewGradient[A, R interpolate.Real](
	m *InterpolatingMap[A, R],
) *InterpolatingGradient[A, R] {
	return &InterpolatingGradient[A, R]{m: m}
}

// LinearGradient creates a gradient interpolating linearly between the
// given nodes.
func LinearGradient[A, R interpolate.Real](
	nodes ...flatmap.Node[A, R],
) *InterpolatingGradient[A, R] {
	return NewGradient(NewLinear[A, R](nodes...))
}

// StepGradient creates a gradient holding each node's value until the next
// node's key.
func StepGradient[A, R interpolate.Real](
	nodes ...flatmap.Node[A, R],
) *InterpolatingGradient[A, R] {
	return NewGradient(NewStep[A, R](nodes...))
}

func (g *InterpolatingGradient[A, R]) Eval(p A) R { return g.m.Eval(p) }

func (g *InterpolatingGradient[A, R]) MinValue() R {
	return g.m.Front().Value
}

func (g *InterpolatingGradient[A, R]) MaxValue() R {
	return g.m.Back().Value
}

// Len returns the number of nodes of the wrapped map.
func (g *InterpolatingGradient[A, R]) Len() int { return g.m.Len() }
