package flatmap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isSorted[V any](m *Map[int, V]) bool {
	nodes := m.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Key < nodes[i-1].Key {
			return false
		}
	}
	return true
}

func TestInsertKeepsSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	m := New[int, string]()
	for i := 0; i < 200; i++ {
		m.Insert(Node[int, string]{Key: rng.Intn(50), Value: "v"})
		assert.True(t, isSorted(m), "sorted after insert")
	}
	for i := 0; i < 50; i++ {
		m.EraseKey(rng.Intn(50))
		assert.True(t, isSorted(m), "sorted after erase")
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []int{10, 2, 5, 12, 3, 4, 15, 1}

	m := New[int, int]()
	for _, k := range keys {
		m.Insert(Node[int, int]{Key: k, Value: k * k})
	}

	want := append([]int{}, keys...)
	sort.Ints(want)

	assert.Equal(t, len(want), m.Len(), "length")
	for i, k := range want {
		assert.Equal(t, k, m.Nth(i).Key, "key order")
		assert.Equal(t, k*k, m.Nth(i).Value, "value follows key")
	}
}

func TestFind(t *testing.T) {
	m := From([]Node[int, string]{
		{1, "one"}, {3, "three"}, {7, "seven"},
	})

	i, ok := m.Find(3)
	assert.True(t, ok, "present key found")
	assert.Equal(t, "three", m.Nth(i).Value, "found node")

	i, ok = m.Find(4)
	assert.False(t, ok, "absent key not found")
	assert.Equal(t, m.Len(), i, "end sentinel for absent key")
}

func TestDuplicateKeysAreStable(t *testing.T) {
	m := New[int, string]()
	m.Insert(Node[int, string]{2, "a"})
	m.Insert(Node[int, string]{1, "low"})
	m.Insert(Node[int, string]{2, "b"})
	m.Insert(Node[int, string]{3, "high"})
	m.Insert(Node[int, string]{2, "c"})

	lo, hi := m.EqualRange(2)
	assert.Equal(t, 3, hi-lo, "equal run length")
	assert.Equal(t, "a", m.Nth(lo).Value, "first inserted first")
	assert.Equal(t, "b", m.Nth(lo+1).Value, "second inserted second")
	assert.Equal(t, "c", m.Nth(lo+2).Value, "third inserted third")
}

func TestBounds(t *testing.T) {
	m := From([]Node[int, int]{
		{1, 1}, {3, 3}, {3, 30}, {5, 5},
	})

	assert.Equal(t, 1, m.LowerBound(3), "lower bound")
	assert.Equal(t, 3, m.UpperBound(3), "upper bound")
	assert.Equal(t, 2, m.Count(3), "count")
	assert.Equal(t, 0, m.Count(2), "count of absent key")
	assert.Equal(t, 4, m.LowerBound(9), "lower bound past the end")
}

func TestEraseKey(t *testing.T) {
	m := From([]Node[int, int]{
		{1, 1}, {3, 3}, {3, 30}, {5, 5},
	})

	assert.Equal(t, 2, m.EraseKey(3), "erase removes the whole run")
	assert.Equal(t, 2, m.Len(), "length after erase")
	assert.Equal(t, 0, m.EraseKey(3), "erase of absent key is a no-op")
	assert.Equal(t, 0, m.EraseKey(3), "and stays a no-op")
	assert.Equal(t, 2, m.Len(), "length unchanged")
	assert.True(t, isSorted(m), "sorted after erase")
}

func TestErasePositional(t *testing.T) {
	m := From([]Node[int, int]{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5},
	})

	m.EraseAt(0)
	assert.Equal(t, 2, m.Front().Key, "erase at front")

	m.EraseRange(1, 3)
	assert.Equal(t, 2, m.Len(), "erase range length")
	assert.Equal(t, 2, m.Nth(0).Key, "erase range keeps prefix")
	assert.Equal(t, 5, m.Nth(1).Key, "erase range keeps suffix")
}

func TestAt(t *testing.T) {
	m := From([]Node[int, int]{{1, 10}, {2, 20}})

	n, err := m.At(1)
	assert.NoError(t, err, "in-range index")
	assert.Equal(t, 20, n.Value, "in-range node")

	_, err = m.At(2)
	assert.ErrorIs(t, err, ErrIndexRange, "index past the end")
	_, err = m.At(-1)
	assert.ErrorIs(t, err, ErrIndexRange, "negative index")
}

func TestPositionalAgreement(t *testing.T) {
	m := From([]Node[int, int]{
		{4, 40}, {1, 10}, {3, 30}, {2, 20},
	})

	for i, n := range m.Nodes() {
		assert.Equal(t, n, m.Nth(i), "Nth agrees with iteration order")
	}
}

func TestCustomOrder(t *testing.T) {
	m := NewFunc[int, int](func(a, b int) bool { return a > b })
	for _, k := range []int{3, 1, 4, 1, 5} {
		m.Insert(Node[int, int]{k, k})
	}

	keys := []int{}
	for _, n := range m.Nodes() {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []int{5, 4, 3, 1, 1}, keys, "descending comparison")
}

func TestEqual(t *testing.T) {
	a := From([]Node[int, int]{{1, 1}, {2, 2}})
	b := From([]Node[int, int]{{2, 2}, {1, 1}})
	c := From([]Node[int, int]{{1, 1}, {2, 3}})

	assert.True(t, Equal(a, b), "same nodes regardless of insert order")
	assert.False(t, Equal(a, c), "different values")
	c.EraseAt(1)
	assert.False(t, Equal(a, c), "different lengths")
}

func TestCompare(t *testing.T) {
	a := From([]Node[int, int]{{1, 1}, {2, 2}})
	b := From([]Node[int, int]{{1, 1}, {2, 3}})
	c := From([]Node[int, int]{{1, 1}})

	assert.Equal(t, 0, Compare(a, a), "equal maps")
	assert.Equal(t, -1, Compare(a, b), "smaller value orders first")
	assert.Equal(t, +1, Compare(b, a), "larger value orders last")
	assert.Equal(t, -1, Compare(c, a), "prefix orders first")
}

func TestAssignClearClone(t *testing.T) {
	m := From([]Node[int, int]{{1, 1}, {2, 2}})

	clone := m.Clone()
	m.Assign([]Node[int, int]{{9, 9}, {7, 7}, {8, 8}})
	assert.Equal(t, 3, m.Len(), "assign replaces contents")
	assert.Equal(t, 7, m.Front().Key, "assign sorts")
	assert.Equal(t, 2, clone.Len(), "clone unaffected by assign")

	m.Clear()
	assert.True(t, m.Empty(), "clear empties the map")
	assert.Equal(t, 0, m.EraseKey(7), "erase on empty map")
}

func TestSwap(t *testing.T) {
	a := From([]Node[int, int]{{1, 1}})
	b := From([]Node[int, int]{{2, 2}, {3, 3}})

	a.Swap(b)
	assert.Equal(t, 2, a.Len(), "a got b's nodes")
	assert.Equal(t, 1, b.Len(), "b got a's nodes")
	assert.Equal(t, 2, a.Front().Key, "a front")
	assert.Equal(t, 1, b.Front().Key, "b front")
}

func TestInsertNodesReserves(t *testing.T) {
	m := New[int, int]()
	nodes := make([]Node[int, int], 100)
	for i := range nodes {
		nodes[i] = Node[int, int]{Key: 100 - i, Value: i}
	}

	last := m.InsertNodes(nodes)
	assert.Equal(t, 100, m.Len(), "all nodes inserted")
	assert.Equal(t, 0, last, "last inserted node has the smallest key")
	assert.True(t, cap(m.Nodes()) >= 100, "capacity reserved up front")

	assert.Equal(t, -1, m.InsertNodes(nil), "empty bulk insert")
}
