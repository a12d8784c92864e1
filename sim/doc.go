// Package sim provides the discrete-event Round-Robin CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (not-arrived → ready → running → ready | done)
//   - queue.go: the ReadyQueue of process table handles
//   - simulator.go: the scheduler session, its clock and the dispatch loop
//
// # Time model
//
// The clock is an integer tick counter advanced only by the simulator. A slice of
// up to Quantum ticks is executed one tick at a time, and arrivals are admitted
// after every tick, so a process that arrives during a slice is queued ahead of
// the process that slice preempts. Simultaneous arrivals keep table order.
//
// # Sub-packages
//
//   - sim/workload/: process table loading from the digit-token text format
//   - sim/trace/: admission, slice and idle recording plus Gantt summaries
package sim
