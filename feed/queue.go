package feed

import (
	"sync"
	"sync/atomic"

	"github.com/juju/collections/deque"

	"github.com/arloliu/pillow/node"
)

// eventQueue is the unbounded FIFO between the producer and the consumer.
//
// The mutex is held only for a push or a pop. The signal channel holds at
// most one pending wakeup; since the consumer re-checks the queue after every
// wakeup, coalesced signals lose nothing.
type eventQueue struct {
	mu     sync.Mutex
	items  *deque.Deque
	closed bool

	signal chan struct{}
	status atomic.Int32
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		items:  deque.New(),
		signal: make(chan struct{}, 1),
	}
}

// push appends an event and wakes the consumer. It never blocks.
func (q *eventQueue) push(event *node.Node) {
	q.mu.Lock()
	q.items.PushBack(event)
	q.mu.Unlock()

	q.status.CompareAndSwap(int32(Waiting), int32(Ready))
	q.notify()
}

// pop removes the oldest event. ok is false when the queue is empty.
func (q *eventQueue) pop() (event *node.Node, ok bool) {
	q.mu.Lock()
	item, ok := q.items.PopFront()
	q.mu.Unlock()
	if !ok {
		return nil, false
	}
	event, _ = item.(*node.Node)

	return event, true
}

func (q *eventQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Len()
}

// close marks the end of the stream. Queued events stay poppable.
func (q *eventQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.status.Store(int32(Done))
	q.notify()
}

// wait blocks until events were pushed or the queue was closed. It returns
// false once the queue is closed; events may still be queued then.
func (q *eventQueue) wait() bool {
	q.status.CompareAndSwap(int32(Stale), int32(Waiting))
	<-q.signal

	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return false
	}
	q.status.CompareAndSwap(int32(Ready), int32(Stale))
	q.status.CompareAndSwap(int32(Waiting), int32(Stale))

	return true
}

func (q *eventQueue) state() Status {
	return Status(q.status.Load())
}

func (q *eventQueue) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
