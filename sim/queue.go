// Implements the WaitQueue, which holds the arrival times of customers
// waiting for the server. Customers are enqueued when they arrive to a busy server.

package sim

import (
	"fmt"
	"strings"
)

// DefaultQueueCapacity bounds the waiting line when no capacity is configured.
const DefaultQueueCapacity = 100

// WaitQueue is a bounded FIFO of arrival timestamps. The front element is
// always the arrival time of the customer who will next begin service.
type WaitQueue struct {
	queue    []float64 // FIFO of arrival times
	capacity int
}

// NewWaitQueue creates an empty queue holding at most capacity entries.
func NewWaitQueue(capacity int) *WaitQueue {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewWaitQueue: capacity must be positive, got %d", capacity))
	}
	return &WaitQueue{
		queue:    make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// Enqueue appends an arrival time to the back of the queue. When the queue
// already holds Cap() entries the queue is left unchanged and a
// *QueueOverflowError is returned.
func (wq *WaitQueue) Enqueue(arrivalTime float64) error {
	if len(wq.queue) >= wq.capacity {
		return &QueueOverflowError{Time: arrivalTime, Capacity: wq.capacity}
	}
	wq.queue = append(wq.queue, arrivalTime)
	return nil
}

// Dequeue removes and returns the front arrival time.
// Returns ok=false if the queue is empty.
func (wq *WaitQueue) Dequeue() (float64, bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front, true
}

// Peek returns the front arrival time without removing it.
func (wq *WaitQueue) Peek() (float64, bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	return wq.queue[0], true
}

// Len returns the number of waiting customers.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Cap returns the maximum number of waiting customers.
func (wq *WaitQueue) Cap() int {
	return wq.capacity
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
