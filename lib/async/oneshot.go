package async

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSenderDropped is returned by Receiver.Recv when the sending side was
// dropped without ever providing a value.
var ErrSenderDropped = errors.New("sender dropped without sending a value")

// oneshotState is the channel pair shared by one Sender/Receiver pair
type oneshotState[T any] struct {
	ch       chan T        // cap 1, closed by the sender exactly once
	recvGone chan struct{} // closed when the receiver abandons the handoff
}

// Sender is the producing half of a oneshot handoff. Exactly one of Send or
// Drop must be called, exactly once.
type Sender[T any] struct {
	state *oneshotState[T]
	used  atomic.Bool
}

// Receiver is the consuming half of a oneshot handoff.
type Receiver[T any] struct {
	state   *oneshotState[T]
	dropped atomic.Bool
}

// NewOneshot creates a connected Sender/Receiver pair carrying a single
// value of type T.
func NewOneshot[T any]() (*Sender[T], *Receiver[T]) {
	state := &oneshotState[T]{
		ch:       make(chan T, 1),
		recvGone: make(chan struct{}),
	}
	return &Sender[T]{state: state}, &Receiver[T]{state: state}
}

// Send delivers the value to the receiver. It returns false if the receiver
// already abandoned the handoff (or Send/Drop was already called), in which
// case the value is discarded. Send never blocks.
func (s *Sender[T]) Send(value T) bool {
	if !s.used.CompareAndSwap(false, true) {
		return false
	}

	select {
	case <-s.state.recvGone:
		// nobody is listening anymore
		close(s.state.ch)
		return false
	default:
	}

	// cap 1 and sole producer, this cannot block
	s.state.ch <- value
	close(s.state.ch)
	return true
}

// Drop releases the sender without providing a value. A receiver waiting in
// Recv observes ErrSenderDropped. Calling Drop after Send is a no-op.
func (s *Sender[T]) Drop() {
	if s.used.CompareAndSwap(false, true) {
		close(s.state.ch)
	}
}

// Recv waits for the value. It returns ErrSenderDropped if the sender was
// dropped without sending, or the context error if ctx ends first. A context
// abort abandons the handoff, so a later Send by the peer reports failure.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case value, ok := <-r.state.ch:
		if !ok {
			return zero, ErrSenderDropped
		}
		return value, nil
	case <-ctx.Done():
		r.Drop()
		return zero, ctx.Err()
	}
}

// Drop abandons the handoff. After Drop, the peer's Send reports delivery
// failure instead of handing the value to nobody.
func (r *Receiver[T]) Drop() {
	if r.dropped.CompareAndSwap(false, true) {
		close(r.state.recvGone)
	}
}
