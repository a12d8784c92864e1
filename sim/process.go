// Defines the Process struct that models one schedulable unit of work in the simulation.
// Tracks arrival time, burst time, remaining work, and the timestamps used for
// waiting and response time.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNotArrived ProcessState = "not-arrived"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateDone       ProcessState = "done"
)

// Process models a single process's lifecycle in the simulation.
// PID, ArrivalTime and BurstTime come from the process table and never change.
// Every other field is owned by the Simulator that runs the process.
type Process struct {
	PID         int64 // Identifier from the process table (uniqueness is not enforced)
	ArrivalTime int64 // Tick at which the process becomes eligible to run
	BurstTime   int64 // Total CPU ticks required to complete

	State          ProcessState // not-arrived, ready, running, done
	RemainingTime  int64        // Set to BurstTime on admission, 0 exactly at completion
	Started        bool         // Tracks whether StartTime has been set
	StartTime      int64        // Tick of first dispatch
	CompletionTime int64        // Tick at which RemainingTime reached 0
	WaitingTime    int64        // CompletionTime - ArrivalTime - BurstTime
	ResponseTime   int64        // StartTime - ArrivalTime
}

// NewProcess creates a Process in the not-arrived state.
func NewProcess(pid, arrivalTime, burstTime int64) Process {
	return Process{
		PID:         pid,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		State:       StateNotArrived,
	}
}

// TurnaroundTime returns CompletionTime - ArrivalTime. Only meaningful once done.
func (p Process) TurnaroundTime() int64 {
	return p.CompletionTime - p.ArrivalTime
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, State: %s, Remaining: %d, ArrivalTime: %d)", p.PID, p.State, p.RemainingTime, p.ArrivalTime)
}
