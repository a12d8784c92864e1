package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rr-sim/rr-sim/sim/trace"
)

// procs builds a process table from (pid, arrival, burst) triples.
func procs(triples ...[3]int64) []Process {
	out := make([]Process, 0, len(triples))
	for _, tr := range triples {
		out = append(out, NewProcess(tr[0], tr[1], tr[2]))
	}
	return out
}

// mustRun builds a traced simulator, runs it to completion and returns the session.
func mustRun(t *testing.T, quantum int64, table []Process) *Simulator {
	t.Helper()
	cfg := SimConfig{Quantum: quantum, Trace: trace.TraceConfig{Level: trace.TraceLevelSlices}}
	s, err := NewSimulator(cfg, table)
	require.NoError(t, err)
	s.Run()
	require.True(t, s.Finished())
	return s
}

// sliceOrder flattens the trace into "pid[start-end]" tuples for order assertions.
func sliceOrder(s *Simulator) [][3]int64 {
	out := make([][3]int64, 0, len(s.Trace.Slices))
	for _, sl := range s.Trace.Slices {
		out = append(out, [3]int64{sl.PID, sl.Start, sl.End})
	}
	return out
}
