package soundcard

import "sync"

// LineQueue is the FIFO hand-off between a session's reader goroutine and the
// caller. Push and Drain may be called concurrently.
type LineQueue struct {
	mu    sync.Mutex
	lines []string
}

// NewLineQueue creates an empty queue
func NewLineQueue() *LineQueue {
	return &LineQueue{}
}

// Push appends a line
func (q *LineQueue) Push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
}

// Drain removes and returns every queued line in arrival order. It returns nil
// when the queue is empty and never blocks on the producer.
func (q *LineQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	lines := q.lines
	q.lines = nil
	return lines
}

// Len returns the number of queued lines
func (q *LineQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lines)
}
