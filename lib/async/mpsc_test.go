package async

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestQueueBasicOperations tests basic push and consume functionality
func TestQueueBasicOperations(t *testing.T) {
	q := NewQueue[int]()
	defer q.Close()

	// Push 10 items
	for i := 0; i < 10; i++ {
		if !q.Push(i) {
			t.Fatalf("Failed to push item %d", i)
		}
	}

	// Consume 10 items
	for i := 0; i < 10; i++ {
		select {
		case val := <-q.Recv():
			if val != i {
				t.Errorf("Expected %d, got %v", i, val)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Timeout waiting for item %d", i)
		}
	}

	// Make sure the queue is empty
	select {
	case val := <-q.Recv():
		t.Errorf("Queue should be empty, but got %v", val)
	case <-time.After(10 * time.Millisecond):
		// Expected timeout, queue is empty
	}
}

// TestQueueConcurrentProducers verifies the queue works correctly with many producers
func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue[int]()
	defer q.Close()

	const numProducers = 10
	const itemsPerProducer = 1000
	totalItems := numProducers * itemsPerProducer

	// Track received items to detect duplicates or losses
	received := make(map[int]bool)
	receivedCount := 0

	done := make(chan struct{})
	go func() {
		defer close(done)

		for receivedCount < totalItems {
			select {
			case val := <-q.Recv():
				if received[val] {
					t.Errorf("Duplicate item received: %v", val)
				}
				received[val] = true
				receivedCount++
			case <-time.After(2 * time.Second):
				t.Errorf("Timeout waiting for items, received %d of %d", receivedCount, totalItems)
				return
			}
		}
	}()

	// Start producers
	var wg sync.WaitGroup
	wg.Add(numProducers)

	for p := 0; p < numProducers; p++ {
		go func(producerID int) {
			defer wg.Done()

			base := producerID * itemsPerProducer
			for i := 0; i < itemsPerProducer; i++ {
				if !q.Push(base + i) {
					t.Errorf("Producer %d failed to push item %d", producerID, i)
				}

				// Add some randomness to producer timing
				if i%100 == 0 {
					runtime.Gosched()
				}
			}
		}(p)
	}

	wg.Wait()

	select {
	case <-done:
		// Consumer finished
	case <-time.After(5 * time.Second):
		t.Fatalf("Timeout waiting for consumer to finish")
	}

	if receivedCount != totalItems {
		t.Errorf("Expected %d items, got %d", totalItems, receivedCount)
	}
}

// TestQueueClose verifies closing behavior
func TestQueueClose(t *testing.T) {
	q := NewQueue[int]()

	// Push some items
	for i := 0; i < 5; i++ {
		q.Push(i)
	}

	q.Close()

	// Verify we can't push after closing
	if q.Push(100) {
		t.Error("Should not be able to push after queue is closed")
	}
	if !q.IsClosed() {
		t.Error("IsClosed should report true after Close")
	}

	// Verify we can still read items accepted before the close
	for i := 0; i < 5; i++ {
		select {
		case val := <-q.Recv():
			if val != i {
				t.Errorf("Expected %d, got %v", i, val)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Timeout waiting for item %d after close", i)
		}
	}

	// After draining, the channel itself must close
	select {
	case _, ok := <-q.Recv():
		if ok {
			t.Error("Channel should be closed but delivered a value")
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for Recv channel to close")
	}
}

// TestQueueCloseRace verifies every item Push accepted is delivered even
// when pushes race Close: an accepted-but-undelivered item would leave its
// producer waiting forever
func TestQueueCloseRace(t *testing.T) {
	const rounds = 2000
	const numProducers = 4
	const pushesPerProducer = 20

	for round := 0; round < rounds; round++ {
		q := NewQueue[int]()

		var accepted atomic.Int64
		start := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(numProducers)
		for p := 0; p < numProducers; p++ {
			go func() {
				defer wg.Done()
				<-start
				for i := 0; i < pushesPerProducer; i++ {
					if q.Push(i) {
						accepted.Add(1)
					}
				}
			}()
		}

		delivered := 0
		consumed := make(chan struct{})
		go func() {
			defer close(consumed)
			for range q.Recv() {
				delivered++
			}
		}()

		// close while the producers are mid-push
		close(start)
		q.Close()

		wg.Wait()
		select {
		case <-consumed:
		case <-time.After(5 * time.Second):
			t.Fatalf("Round %d: consumer never finished", round)
		}

		if int64(delivered) != accepted.Load() {
			t.Fatalf("Round %d: %d items accepted but %d delivered",
				round, accepted.Load(), delivered)
		}
	}
}

// TestQueueSingleProducerOrdering verifies FIFO delivery with one producer
func TestQueueSingleProducerOrdering(t *testing.T) {
	q := NewQueue[int]()
	defer q.Close()

	const itemCount = 10000
	go func() {
		for i := 0; i < itemCount; i++ {
			q.Push(i)
		}
	}()

	prev := -1
	for i := 0; i < itemCount; i++ {
		select {
		case val := <-q.Recv():
			if val < prev {
				t.Fatalf("Out of order: got %d after %d", val, prev)
			}
			prev = val
		case <-time.After(1 * time.Second):
			t.Fatalf("Timeout waiting for item %d", i)
		}
	}
}
