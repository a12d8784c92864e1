package sim

import (
	"fmt"

	"github.com/rr-sim/rr-sim/sim/trace"
)

// SimConfig groups the parameters of a single scheduling run.
type SimConfig struct {
	Quantum int64             // max contiguous ticks granted per dispatch (must be > 0)
	Trace   trace.TraceConfig // decision trace collection (zero value = none)
}

// NewSimConfig creates a SimConfig with tracing disabled.
func NewSimConfig(quantum int64) SimConfig {
	return SimConfig{
		Quantum: quantum,
		Trace:   trace.TraceConfig{Level: trace.TraceLevelNone},
	}
}

// Validate checks the configuration before a run starts.
func (c SimConfig) Validate() error {
	if c.Quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, c.Quantum)
	}
	if !trace.IsValidTraceLevel(string(c.Trace.Level)) {
		return fmt.Errorf("unknown trace level %q", c.Trace.Level)
	}
	return nil
}
