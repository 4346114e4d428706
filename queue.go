package quadpipe

import "sync"

// HandoffQueue defines an unbounded FIFO queue with a blocking Dequeue and a one way Close.
//
// It is the link between the producer and the consumer of a bucket, but nothing assumes a single producer or a single
// consumer: every operation holds the queue mutex.
type HandoffQueue[T any] struct {
	mu     sync.Mutex
	cond   sync.Cond
	items  []T
	head   int
	closed bool
}

// NewHandoffQueue creates an empty, open queue.
func NewHandoffQueue[T any]() *HandoffQueue[T] {
	q := &HandoffQueue[T]{}
	q.cond.L = &q.mu
	return q
}

// Enqueue appends an item and wakes one waiting consumer. It never blocks.
func (q *HandoffQueue[T]) Enqueue(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, item)
	q.cond.Signal()
}

// Dequeue removes and returns the oldest item. It blocks while the queue is empty and open, and returns false once the
// queue is closed and drained.
func (q *HandoffQueue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) && !q.closed {
		q.cond.Wait()
	}
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	q.compact()
	return item, true
}

// Close marks the queue as closed and wakes every waiter. Items already enqueued stay available. Close is idempotent.
func (q *HandoffQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of pending items.
func (q *HandoffQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Closed reports whether Close was called.
func (q *HandoffQueue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// compact reclaims the consumed prefix of items. Must be called with the mutex held.
func (q *HandoffQueue[T]) compact() {
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= 64 && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}
