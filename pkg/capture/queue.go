package capture

import (
	"sync"
	"time"
)

// ChunkQueue is an unbounded single-consumer FIFO. Push never waits for the
// consumer; Pop waits up to a timeout.
type ChunkQueue struct {
	locker   sync.Mutex
	items    []Chunk
	notifyCh chan struct{}
}

func NewChunkQueue() *ChunkQueue {
	return &ChunkQueue{
		notifyCh: make(chan struct{}, 1),
	}
}

func (q *ChunkQueue) Push(c Chunk) {
	q.locker.Lock()
	q.items = append(q.items, c)
	q.locker.Unlock()
	q.Wake()
}

// Wake makes a waiting Pop return, even if the queue is empty.
func (q *ChunkQueue) Wake() {
	select {
	case q.notifyCh <- struct{}{}:
	default:
	}
}

func (q *ChunkQueue) tryPop() (Chunk, bool) {
	q.locker.Lock()
	defer q.locker.Unlock()
	if len(q.items) == 0 {
		return Chunk{}, false
	}
	c := q.items[0]
	q.items[0] = Chunk{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return c, true
}

// Pop returns the oldest chunk. It returns false if nothing arrived within
// the timeout or if the queue was woken up while empty.
func (q *ChunkQueue) Pop(timeout time.Duration) (Chunk, bool) {
	if c, ok := q.tryPop(); ok {
		return c, true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-q.notifyCh:
	case <-timer.C:
	}
	return q.tryPop()
}

func (q *ChunkQueue) Len() int {
	q.locker.Lock()
	defer q.locker.Unlock()
	return len(q.items)
}
