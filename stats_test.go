package numap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muellan/numeric-map/flatmap"
)

func statsMap() *InterpolatingMap[float64, float64] {
	return NewLinear(nodes(1, 3, 2, 1, 3, 4, 4, 1, 5, 5)...)
}

func TestMin(t *testing.T) {
	n := Min(statsMap())
	assert.Equal(t, 1.0, n.Value, "smallest value")
	assert.Equal(t, 2.0, n.Key, "first of the tied nodes wins")
}

func TestMax(t *testing.T) {
	n := Max(statsMap())
	assert.Equal(t, 5.0, n.Value, "largest value")
	assert.Equal(t, 5.0, n.Key, "its key")
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 14.0, Total(statsMap()), "sum of values")
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.8, Mean(statsMap()), eps, "total over size")
}

func TestIntStats(t *testing.T) {
	m := NewStep[int, int](
		flatmap.Node[int, int]{Key: 1, Value: 3}, flatmap.Node[int, int]{Key: 2, Value: 1}, flatmap.Node[int, int]{Key: 3, Value: 4},
		flatmap.Node[int, int]{Key: 4, Value: 1}, flatmap.Node[int, int]{Key: 5, Value: 5},
	)

	assert.Equal(t, 1, Min(m).Value, "int min")
	assert.Equal(t, 5, Max(m).Value, "int max")
	assert.Equal(t, 14, Total(m), "int total")
	assert.Equal(t, 2, Mean(m), "int mean truncates")
}
