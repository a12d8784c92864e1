package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSlices captures every admission, executed slice and idle span.
	TraceLevelSlices TraceLevel = "slices"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelSlices: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether the config asks for any records at all.
func (c TraceConfig) Enabled() bool {
	return c.Level != "" && c.Level != TraceLevelNone
}

// SimulationTrace collects scheduling decisions during a simulation run.
type SimulationTrace struct {
	Config     TraceConfig
	Admissions []AdmissionRecord
	Slices     []SliceRecord
	Idle       []IdleRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Admissions: make([]AdmissionRecord, 0),
		Slices:     make([]SliceRecord, 0),
		Idle:       make([]IdleRecord, 0),
	}
}

// RecordAdmission appends an admission record.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

// RecordSlice appends an executed slice record.
func (st *SimulationTrace) RecordSlice(record SliceRecord) {
	st.Slices = append(st.Slices, record)
}

// RecordIdle appends an idle span, merging it into the previous span when they touch.
func (st *SimulationTrace) RecordIdle(start, end int64) {
	if n := len(st.Idle); n > 0 && st.Idle[n-1].End == start {
		st.Idle[n-1].End = end
		return
	}
	st.Idle = append(st.Idle, IdleRecord{Start: start, End: end})
}
