package trace

import (
	"testing"
)

func TestSimulationTrace_RecordAdmission_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for slices
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSlices})

	// WHEN an admission record is recorded
	st.RecordAdmission(AdmissionRecord{PID: 3, Clock: 10, QueueDepth: 1})

	// THEN the trace contains one admission record with correct data
	if len(st.Admissions) != 1 {
		t.Fatalf("expected 1 admission, got %d", len(st.Admissions))
	}
	if st.Admissions[0].PID != 3 || st.Admissions[0].Clock != 10 {
		t.Errorf("unexpected admission record %+v", st.Admissions[0])
	}
}

func TestSimulationTrace_RecordSlice_PreservesOrder(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSlices})

	st.RecordSlice(SliceRecord{PID: 1, Start: 0, End: 2, Remaining: 2, Outcome: OutcomePreempted})
	st.RecordSlice(SliceRecord{PID: 2, Start: 2, End: 3, Outcome: OutcomeCompleted})

	if len(st.Slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(st.Slices))
	}
	if st.Slices[0].PID != 1 || st.Slices[1].PID != 2 {
		t.Error("slice order not preserved")
	}
	if st.Slices[0].Duration() != 2 {
		t.Errorf("expected duration 2, got %d", st.Slices[0].Duration())
	}
}

func TestSimulationTrace_RecordIdle_MergesAdjacentSpans(t *testing.T) {
	// GIVEN consecutive one-tick idle spans followed by a gap
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelSlices})
	st.RecordIdle(0, 1)
	st.RecordIdle(1, 2)
	st.RecordIdle(5, 6)

	// THEN touching spans are merged
	if len(st.Idle) != 2 {
		t.Fatalf("expected 2 idle spans, got %d: %+v", len(st.Idle), st.Idle)
	}
	if st.Idle[0] != (IdleRecord{Start: 0, End: 2}) {
		t.Errorf("first span = %+v, want [0,2)", st.Idle[0])
	}
	if st.Idle[1] != (IdleRecord{Start: 5, End: 6}) {
		t.Errorf("second span = %+v, want [5,6)", st.Idle[1])
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"slices", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"SLICES", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

func TestTraceConfig_Enabled(t *testing.T) {
	if (TraceConfig{}).Enabled() {
		t.Error("zero config must be disabled")
	}
	if (TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("none must be disabled")
	}
	if !(TraceConfig{Level: TraceLevelSlices}).Enabled() {
		t.Error("slices must be enabled")
	}
}
