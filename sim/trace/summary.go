package trace

import "sort"

// IdleLabel marks Gantt segments where the CPU had nothing to run.
const IdleLabel = int64(-1)

// GanttSegment is a maximal span of CPU time given to one process (or idle).
type GanttSegment struct {
	PID   int64 // IdleLabel for idle spans
	Start int64
	End   int64
}

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Admissions      int
	Dispatches      int
	Preemptions     int
	Completions     int
	ContextSwitches int // dispatches whose process differs from the previous dispatch
	BusyTicks       int64
	IdleTicks       int64
	Makespan        int64
	Utilization     float64 // BusyTicks / Makespan; 0 if Makespan is 0
	Gantt           []GanttSegment
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		Gantt: make([]GanttSegment, 0),
	}
	if st == nil {
		return summary
	}

	summary.Admissions = len(st.Admissions)
	summary.Dispatches = len(st.Slices)

	segments := make([]GanttSegment, 0, len(st.Slices)+len(st.Idle))
	for i, s := range st.Slices {
		switch s.Outcome {
		case OutcomePreempted:
			summary.Preemptions++
		case OutcomeCompleted:
			summary.Completions++
		}
		if i > 0 && st.Slices[i-1].PID != s.PID {
			summary.ContextSwitches++
		}
		summary.BusyTicks += s.Duration()
		summary.Makespan = max(summary.Makespan, s.End)
		segments = append(segments, GanttSegment{PID: s.PID, Start: s.Start, End: s.End})
	}
	for _, idle := range st.Idle {
		summary.IdleTicks += idle.End - idle.Start
		summary.Makespan = max(summary.Makespan, idle.End)
		segments = append(segments, GanttSegment{PID: IdleLabel, Start: idle.Start, End: idle.End})
	}
	if summary.Makespan > 0 {
		summary.Utilization = float64(summary.BusyTicks) / float64(summary.Makespan)
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	for _, seg := range segments {
		n := len(summary.Gantt)
		if n > 0 && summary.Gantt[n-1].PID == seg.PID && summary.Gantt[n-1].End == seg.Start {
			summary.Gantt[n-1].End = seg.End
			continue
		}
		summary.Gantt = append(summary.Gantt, seg)
	}

	return summary
}
