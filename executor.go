package gremlingo

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// TraversalExecutor is the seam between the bytecode a GraphTraversal
// builds and whatever actually runs it — a remote Gremlin Server
// connection, an embedded TinkerGraph, or a test double. Submitting
// bytecode and transporting it to a server is explicitly out of scope for
// this module (§1 Non-goals); TraversalExecutor is the interface a caller
// implements to supply that transport.
type TraversalExecutor interface {
	Execute(ctx context.Context, bytecode *Bytecode) ([]Value, error)
}

// ResultStream buffers a terminal step's results and hands them out one at
// a time, so HasNext/Next can be implemented without holding the whole
// result set in a slice the caller indexes by hand. It is backed by the
// same FIFO queue the rest of the pack reaches for (linkedlistqueue),
// rather than a hand-rolled ring buffer.
type ResultStream struct {
	queue *linkedlistqueue.Queue
}

// newResultStream wraps a batch of results returned by a TraversalExecutor
// into a ResultStream, preserving order.
func newResultStream(results []Value) *ResultStream {
	q := linkedlistqueue.New()
	for _, r := range results {
		q.Enqueue(r)
	}
	return &ResultStream{queue: q}
}

// HasNext reports whether another result is available without consuming
// it.
func (s *ResultStream) HasNext() bool {
	return !s.queue.Empty()
}

// Next dequeues and returns the next result. Calling Next when HasNext is
// false returns (nil, false).
func (s *ResultStream) Next() (Value, bool) {
	v, ok := s.queue.Dequeue()
	if !ok {
		return nil, false
	}
	return v, true
}

// Drain consumes and returns every remaining result, in order.
func (s *ResultStream) Drain() []Value {
	out := make([]Value, 0, s.queue.Size())
	for !s.queue.Empty() {
		v, _ := s.queue.Dequeue()
		out = append(out, v)
	}
	return out
}
