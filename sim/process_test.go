package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessState_Constants_HaveExpectedStringValues(t *testing.T) {
	assert.Equal(t, ProcessState("not-arrived"), StateNotArrived)
	assert.Equal(t, ProcessState("ready"), StateReady)
	assert.Equal(t, ProcessState("running"), StateRunning)
	assert.Equal(t, ProcessState("done"), StateDone)
}

func TestNewProcess_DefaultState_IsNotArrived(t *testing.T) {
	// GIVEN table values
	// WHEN NewProcess is called
	p := NewProcess(4, 10, 3)

	// THEN immutable fields are set and mutable ones are zero
	assert.Equal(t, int64(4), p.PID)
	assert.Equal(t, int64(10), p.ArrivalTime)
	assert.Equal(t, int64(3), p.BurstTime)
	assert.Equal(t, StateNotArrived, p.State)
	assert.Zero(t, p.RemainingTime)
	assert.False(t, p.Started)
}

func TestProcess_String_IncludesState(t *testing.T) {
	p := NewProcess(1, 0, 2)
	assert.Contains(t, p.String(), "not-arrived")
	assert.Contains(t, p.String(), "PID: 1")
}

func TestProcess_TurnaroundTime(t *testing.T) {
	p := Process{ArrivalTime: 3, CompletionTime: 11}
	assert.Equal(t, int64(8), p.TurnaroundTime())
}
