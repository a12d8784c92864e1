// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rr-sim/rr-sim/sim/trace"
)

// Simulator is the scheduler session: it owns the process table, the simulation
// clock, the ready queue and the running totals for one Round-Robin run.
type Simulator struct {
	Clock   int64
	Quantum int64
	// Processes is the simulator's private copy of the process table, in table order.
	Processes []Process
	// ReadyQ holds handles (indices into Processes) of arrived, unfinished processes.
	ReadyQ  *ReadyQueue
	Metrics *Metrics
	// Trace is nil unless the config enables tracing.
	Trace *trace.SimulationTrace

	// arrivalOrder lists process indices sorted by arrival time, ties in table order.
	arrivalOrder []int
	nextArrival  int
	lastPID      int64
	dispatched   bool
	finished     bool
}

// NewSimulator validates cfg and the process table and returns a session ready to Run.
// The table is copied; the caller's slice is never modified.
func NewSimulator(cfg SimConfig, procs []Process) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table := make([]Process, len(procs))
	for i, p := range procs {
		if p.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: process %d (pid %d) has burst time %d", ErrInvalidProcess, i, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d (pid %d) has arrival time %d", ErrInvalidProcess, i, p.PID, p.ArrivalTime)
		}
		table[i] = NewProcess(p.PID, p.ArrivalTime, p.BurstTime)
	}

	order := make([]int, len(table))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return table[order[a]].ArrivalTime < table[order[b]].ArrivalTime
	})

	s := &Simulator{
		Clock:        0,
		Quantum:      cfg.Quantum,
		Processes:    table,
		ReadyQ:       &ReadyQueue{},
		Metrics:      NewMetrics(len(table)),
		arrivalOrder: order,
	}
	if cfg.Trace.Enabled() {
		s.Trace = trace.NewSimulationTrace(cfg.Trace)
	}
	return s, nil
}

// Run simulates until every process has completed and returns the metrics.
// Calling Run again on a finished session returns the same metrics.
func (sim *Simulator) Run() *Metrics {
	if sim.Finished() {
		return sim.Metrics
	}
	sim.admitArrivals()
	for sim.Metrics.CompletedProcesses < len(sim.Processes) {
		idx, ok := sim.ReadyQ.Dequeue()
		if !ok {
			sim.idle()
			continue
		}
		sim.dispatch(idx)
		sim.logReadyQueue()
	}
	sim.finished = true
	sim.Metrics.SimEndedTime = sim.Clock
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return sim.Metrics
}

// Finished reports whether every process has completed.
func (sim *Simulator) Finished() bool {
	return sim.finished
}

// admitArrivals moves every process arriving at the current tick into the ready
// queue, in table order.
func (sim *Simulator) admitArrivals() {
	for sim.nextArrival < len(sim.arrivalOrder) {
		idx := sim.arrivalOrder[sim.nextArrival]
		p := &sim.Processes[idx]
		if p.ArrivalTime > sim.Clock {
			return
		}
		sim.nextArrival++
		p.State = StateReady
		p.RemainingTime = p.BurstTime
		sim.ReadyQ.Enqueue(idx)
		logrus.Debugf("[tick %07d] Queuing: pid %d", sim.Clock, p.PID)
		if sim.Trace != nil {
			sim.Trace.RecordAdmission(trace.AdmissionRecord{PID: p.PID, Clock: sim.Clock, QueueDepth: sim.ReadyQ.Len()})
		}
	}
}

func (sim *Simulator) logReadyQueue() {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	if next, ok := sim.ReadyQ.Peek(); ok {
		logrus.Debugf("[tick %07d] Ready queue %s, next pid %d", sim.Clock, sim.ReadyQ.String(), sim.Processes[next].PID)
	}
}

// advance moves the clock forward one tick and admits whatever arrives at the new tick.
func (sim *Simulator) advance() {
	sim.Clock++
	sim.admitArrivals()
}

func (sim *Simulator) idle() {
	start := sim.Clock
	sim.advance()
	sim.Metrics.IdleTicks++
	if sim.Trace != nil {
		sim.Trace.RecordIdle(start, sim.Clock)
	}
}

// dispatch runs the process at idx for at most one quantum, one tick at a time,
// then either completes it or puts it back at the tail of the ready queue.
// Processes arriving during the slice are queued ahead of the preempted process.
func (sim *Simulator) dispatch(idx int) {
	p := &sim.Processes[idx]
	if !p.Started {
		p.Started = true
		p.StartTime = sim.Clock
	}
	if sim.dispatched && sim.lastPID != p.PID {
		sim.Metrics.ContextSwitches++
	}
	sim.dispatched = true
	sim.lastPID = p.PID
	sim.Metrics.Dispatches++
	p.State = StateRunning

	start := sim.Clock
	slice := min(sim.Quantum, p.RemainingTime)
	logrus.Debugf("[tick %07d] Dispatch: pid %d for %d ticks (remaining %d)", sim.Clock, p.PID, slice, p.RemainingTime)
	for range slice {
		p.RemainingTime--
		sim.advance()
	}

	outcome := trace.OutcomePreempted
	if p.RemainingTime == 0 {
		outcome = trace.OutcomeCompleted
		sim.complete(idx)
	} else {
		p.State = StateReady
		sim.ReadyQ.Enqueue(idx)
		logrus.Debugf("[tick %07d] Preempted: pid %d (remaining %d)", sim.Clock, p.PID, p.RemainingTime)
	}
	if sim.Trace != nil {
		sim.Trace.RecordSlice(trace.SliceRecord{
			PID:       p.PID,
			Start:     start,
			End:       sim.Clock,
			Remaining: p.RemainingTime,
			Outcome:   outcome,
		})
	}
}

func (sim *Simulator) complete(idx int) {
	p := &sim.Processes[idx]
	p.State = StateDone
	p.CompletionTime = sim.Clock
	p.WaitingTime = p.CompletionTime - p.ArrivalTime - p.BurstTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
	sim.Metrics.recordCompletion(idx, p)
	logrus.Infof("[tick %07d] Finished: pid %d (waiting %d, response %d)", sim.Clock, p.PID, p.WaitingTime, p.ResponseTime)
}
