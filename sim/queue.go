// Implements the ReadyQueue, which holds every process that has arrived and
// is waiting for the CPU. Processes are enqueued on arrival and after preemption.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of handles into the simulator's process table.
// A handle is the index of the process in the table, so the queue never
// holds pointers into process records.
type ReadyQueue struct {
	queue []int // FIFO queue of process table indices
	head  int   // index of the front element in queue
}

// Enqueue adds a handle to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(idx int) {
	rq.queue = append(rq.queue, idx)
}

// Dequeue removes the handle at the front of the queue.
// The second return value is false when the queue is empty.
func (rq *ReadyQueue) Dequeue() (int, bool) {
	if rq.Len() == 0 {
		return 0, false
	}
	idx := rq.queue[rq.head]
	rq.head++
	// Compact once the consumed prefix dominates, keeping append amortized O(1).
	if rq.head > 32 && rq.head*2 >= len(rq.queue) {
		n := copy(rq.queue, rq.queue[rq.head:])
		rq.queue = rq.queue[:n]
		rq.head = 0
	}
	return idx, true
}

// Peek returns the handle at the front of the queue without removing it.
func (rq *ReadyQueue) Peek() (int, bool) {
	if rq.Len() == 0 {
		return 0, false
	}
	return rq.queue[rq.head], true
}

// Len returns the number of handles in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue) - rq.head
}

// Items returns the queue contents, front first.
// The returned slice aliases the queue's storage; callers MUST NOT modify it.
func (rq *ReadyQueue) Items() []int {
	return rq.queue[rq.head:]
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.Items() {
		sb.WriteString(fmt.Sprint(val))
		if i < rq.Len()-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
