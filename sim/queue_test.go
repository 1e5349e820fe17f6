package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitQueue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with arrivals at 1, 2, 3
	wq := NewWaitQueue(10)
	for _, at := range []float64{1, 2, 3} {
		require.NoError(t, wq.Enqueue(at))
	}

	// WHEN all entries are dequeued
	var got []float64
	for wq.Len() > 0 {
		at, ok := wq.Dequeue()
		require.True(t, ok)
		got = append(got, at)
	}

	// THEN they come out in arrival order
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with arrivals [A, B]
	wq := NewWaitQueue(5)
	require.NoError(t, wq.Enqueue(1.5))
	require.NoError(t, wq.Enqueue(2.5))

	// WHEN Peek() is called
	got, ok := wq.Peek()

	// THEN it returns the front element without removing it
	assert.True(t, ok)
	assert.Equal(t, 1.5, got)
	assert.Equal(t, 2, wq.Len())
}

func TestWaitQueue_Empty(t *testing.T) {
	wq := NewWaitQueue(1)

	_, ok := wq.Peek()
	assert.False(t, ok)
	_, ok = wq.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, wq.Len())
}

func TestWaitQueue_Overflow_AtCapacity(t *testing.T) {
	// GIVEN a queue filled to its capacity of 3
	wq := NewWaitQueue(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, wq.Enqueue(float64(i)))
	}

	// WHEN one more arrival is enqueued
	err := wq.Enqueue(9.0)

	// THEN a QueueOverflowError is returned and the queue is unchanged
	var overflow *QueueOverflowError
	require.True(t, errors.As(err, &overflow), "expected QueueOverflowError, got %v", err)
	assert.Equal(t, 3, overflow.Capacity)
	assert.Equal(t, 9.0, overflow.Time)
	assert.Equal(t, 3, wq.Len())
	assert.Equal(t, 3, wq.Cap())
}

func TestWaitQueue_ReuseAfterDequeue(t *testing.T) {
	// Capacity is about the current length, not the total ever enqueued.
	wq := NewWaitQueue(2)
	for i := 0; i < 50; i++ {
		require.NoError(t, wq.Enqueue(float64(i)))
		require.NoError(t, wq.Enqueue(float64(i)+0.5))
		front, ok := wq.Dequeue()
		require.True(t, ok)
		assert.Equal(t, float64(i), front)
		_, _ = wq.Dequeue()
	}
	assert.Equal(t, 0, wq.Len())
}

func TestNewWaitQueue_NonPositiveCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { NewWaitQueue(0) })
}

func TestWaitQueue_String(t *testing.T) {
	wq := NewWaitQueue(3)
	require.NoError(t, wq.Enqueue(1))
	require.NoError(t, wq.Enqueue(2.5))
	assert.Equal(t, "[1 2.5]", wq.String())
}
