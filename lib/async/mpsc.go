package async

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// queueNode is a single element of the intrusive linked list backing Queue
type queueNode[T any] struct {
	value T
	next  atomic.Pointer[queueNode[T]]
}

// Queue is an unbounded lock-free multi-producer single-consumer queue.
// Producers append via compare-and-swap on the tail; a dedicated consumer
// goroutine walks the list and forwards items to the output channel.
//
// Ordering: items pushed from a single goroutine are delivered in push order.
// Across concurrent producers the order is determined by which CAS wins,
// not by which producer started first.
type Queue[T any] struct {
	head     atomic.Pointer[queueNode[T]]
	tail     atomic.Pointer[queueNode[T]]
	out      chan T
	consumer sync.WaitGroup
	closed   atomic.Bool

	// wakes the consumer when it ran dry
	mu   sync.Mutex
	cond *sync.Cond

	// set by the consumer, under mu, the moment it decides to exit.
	// Push uses it to detect nodes appended into a list nobody drains.
	exited bool
}

// NewQueue creates a queue and starts its consumer goroutine. The goroutine
// exits once Close has been called and all accepted items were delivered.
func NewQueue[T any]() *Queue[T] {
	sentinel := &queueNode[T]{}

	q := &Queue[T]{
		out: make(chan T),
	}
	q.cond = sync.NewCond(&q.mu)
	q.head.Store(sentinel)
	q.tail.Store(sentinel)

	q.consumer.Add(1)
	go q.consume()

	return q
}

// Push appends an item. It returns false if the queue is closed, in which
// case the item was not accepted.
//
// Safe for concurrent use from any number of goroutines.
func (q *Queue[T]) Push(value T) bool {
	if q.closed.Load() {
		return false
	}

	newNode := &queueNode[T]{value: value}

	var backoff uint8
	for {
		tailNode := q.tail.Load()

		next := tailNode.next.Load()
		if next == nil {
			if tailNode.next.CompareAndSwap(nil, newNode) {
				// The tail CAS below may lose to a helping producer,
				// which is fine: someone updated it.
				q.tail.CompareAndSwap(tailNode, newNode)

				// Close may have landed between the closed check above
				// and the append. A node the consumer never saw must be
				// reported as rejected, or the caller would wait for a
				// delivery that can never happen.
				if q.closed.Load() && q.strandedAfterClose(newNode) {
					return false
				}

				q.wakeConsumer()
				return true
			}
		} else {
			// another producer appended but has not advanced tail yet, help out
			q.tail.CompareAndSwap(tailNode, next)
		}

		// Exponential backoff keeps producers from hammering the same
		// cache line after a lost CAS.
		if backoff < 10 {
			backoff++
			for i := 0; i < 1<<backoff; i++ {
				runtime.Gosched()
			}
		}
		runtime.Gosched()
	}
}

// wakeConsumer signals the consumer under the mutex. Taking the lock first
// guarantees the consumer is either before its re-check (and will see the
// new state) or parked in Wait (and receives the signal) - a bare Signal
// could fall between the two and be lost.
func (q *Queue[T]) wakeConsumer() {
	q.mu.Lock()
	q.cond.Signal()
	q.mu.Unlock()
}

// strandedAfterClose reports whether the freshly appended node can never be
// delivered: the consumer has exited and the node is still in the list.
// Taken under mu, it is ordered against the consumer's exit decision, so
// either the consumer saw the node (it delivers it, possibly before we get
// here - then the node is no longer reachable) or it exited and we see that.
func (q *Queue[T]) strandedAfterClose(n *queueNode[T]) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.exited {
		// the consumer is still running and cannot exit past a reachable
		// node, it will deliver this one
		return false
	}
	for cur := q.head.Load().next.Load(); cur != nil; cur = cur.next.Load() {
		if cur == n {
			return true
		}
	}
	return false
}

// consume walks the list, forwarding values to the output channel and
// releasing consumed nodes to the GC as it goes.
func (q *Queue[T]) consume() {
	defer q.consumer.Done()
	defer close(q.out)

	var zero T
	for {
		hasItems := false

		for {
			head := q.head.Load()
			next := head.next.Load()
			if next == nil {
				break
			}
			hasItems = true

			value := next.value
			q.head.Store(next)
			q.out <- value

			next.value = zero
		}

		if !hasItems && q.closed.Load() {
			// the empty-check and the exit decision must share one
			// critical section with Push's consumerExited, otherwise a
			// node appended right here would be lost silently
			q.mu.Lock()
			if q.head.Load().next.Load() == nil {
				q.exited = true
				q.mu.Unlock()
				return
			}
			q.mu.Unlock()
			continue
		}

		if !hasItems {
			q.mu.Lock()
			// re-check under the lock so a Push between the scan and
			// the Wait cannot be missed
			head := q.head.Load()
			if head.next.Load() == nil && !q.closed.Load() {
				q.cond.Wait()
			}
			q.mu.Unlock()
		}
	}
}

// Recv returns the receive side of the queue. The channel closes after
// Close has been called and all accepted items have been delivered.
func (q *Queue[T]) Recv() <-chan T {
	return q.out
}

// Close rejects all further pushes. Items already accepted are still
// delivered before the Recv channel closes. Close is idempotent.
func (q *Queue[T]) Close() {
	q.closed.Store(true)
	q.wakeConsumer()
}

// IsClosed returns true once Close has been called.
func (q *Queue[T]) IsClosed() bool {
	return q.closed.Load()
}
