// Package trace provides decision-trace recording for scheduling analysis.
// It has no dependencies on sim/ and stores plain data types only.
package trace

// SliceOutcome says how an executed slice ended.
type SliceOutcome string

const (
	// OutcomePreempted means the quantum expired and the process went back to the ready queue.
	OutcomePreempted SliceOutcome = "preempted"
	// OutcomeCompleted means the process finished within the slice.
	OutcomeCompleted SliceOutcome = "completed"
)

// AdmissionRecord captures a process entering the ready queue on arrival.
type AdmissionRecord struct {
	PID        int64
	Clock      int64
	QueueDepth int // ready queue length after the admission
}

// SliceRecord captures one dispatch of a process onto the CPU.
type SliceRecord struct {
	PID       int64
	Start     int64
	End       int64
	Remaining int64 // remaining burst after the slice
	Outcome   SliceOutcome
}

// Duration returns the number of ticks the slice ran for.
func (r SliceRecord) Duration() int64 {
	return r.End - r.Start
}

// IdleRecord captures a span during which the ready queue was empty.
type IdleRecord struct {
	Start int64
	End   int64
}
