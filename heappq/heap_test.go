package heappq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathlab/core"
	"pathlab/heappq"
)

func k(primary core.Cost32, tie uint32) core.Key {
	return core.Key{Primary: primary, Tie: tie}
}

func TestHeapPQ_PushPopOrder(t *testing.T) {
	h := heappq.New(0)
	h.Push(3, k(30, 0))
	h.Push(1, k(10, 1))
	h.Push(2, k(20, 2))

	assert.Equal(t, uint64(3), h.Metrics().Pushes)

	var order []core.NodeId
	for !h.Empty() {
		u, _ := h.Pop()
		order = append(order, u)
	}
	assert.Equal(t, []core.NodeId{1, 2, 3}, order)
	assert.Equal(t, uint64(3), h.Metrics().Pops)
}

func TestHeapPQ_PushExistingDelegatesToDecrease(t *testing.T) {
	h := heappq.New(0)
	h.Push(1, k(50, 0))
	h.Push(1, k(10, 1)) // improves -> counted as a decrease, not a second push

	assert.Equal(t, uint64(1), h.Metrics().Pushes)
	assert.Equal(t, uint64(1), h.Metrics().Decreases)
	key, ok := h.KeyOf(1)
	require.True(t, ok)
	assert.Equal(t, k(10, 1), key)
}

func TestHeapPQ_DecreaseNoOpWhenNotStrictlySmaller(t *testing.T) {
	h := heappq.New(0)
	h.Push(1, k(10, 5))

	h.Decrease(1, k(10, 5)) // equal key: no-op
	h.Decrease(1, k(20, 0)) // larger primary: no-op

	assert.Equal(t, uint64(0), h.Metrics().Decreases)
	key, _ := h.KeyOf(1)
	assert.Equal(t, k(10, 5), key)
}

func TestHeapPQ_DecreaseOnAbsentDelegatesToPush(t *testing.T) {
	h := heappq.New(0)
	h.Decrease(7, k(5, 0))

	assert.True(t, h.Contains(7))
	assert.Equal(t, uint64(1), h.Metrics().Pushes)
	assert.Equal(t, uint64(0), h.Metrics().Decreases)
}

func TestHeapPQ_PopRemovesMembership(t *testing.T) {
	h := heappq.New(0)
	h.Push(1, k(1, 0))
	require.True(t, h.Contains(1))
	h.Pop()
	assert.False(t, h.Contains(1))
	_, ok := h.KeyOf(1)
	assert.False(t, ok)
}

func TestHeapPQ_OpportunisticGrowthBeyondReserve(t *testing.T) {
	h := heappq.New(0)
	h.Reserve(2)
	h.Push(100, k(1, 0)) // far beyond the reserved range

	assert.True(t, h.Contains(100))
	u, key := h.Top()
	assert.Equal(t, core.NodeId(100), u)
	assert.Equal(t, k(1, 0), key)
}

func TestHeapPQ_ClearResetsStateAndMetrics(t *testing.T) {
	h := heappq.New(0)
	h.Push(1, k(1, 0))
	h.Pop()
	h.Clear()

	assert.True(t, h.Empty())
	assert.Equal(t, core.PQMetrics{}, h.Metrics())
}

func TestHeapPQ_TopDoesNotMutate(t *testing.T) {
	h := heappq.New(0)
	h.Push(1, k(1, 0))
	h.Push(2, k(2, 0))

	u1, _ := h.Top()
	u2, _ := h.Top()
	assert.Equal(t, u1, u2)
	assert.Equal(t, 2, h.Size())
}

func TestHeapPQ_PopOnEmptyPanics(t *testing.T) {
	h := heappq.New(0)
	assert.Panics(t, func() { h.Pop() })
}

func TestHeapPQ_SwapCountsTwoMovesEach(t *testing.T) {
	h := heappq.New(0)
	// Three pushes in decreasing-priority order force at least one sift-up
	// swap; every swap increments Moves by exactly two.
	h.Push(1, k(30, 0))
	h.Push(2, k(20, 1))
	h.Push(3, k(10, 2))

	assert.Zero(t, h.Metrics().Moves%2)
	assert.Greater(t, h.Metrics().Moves, uint64(0))
}
