// Package testutil provides shared test infrastructure for the rr-sim simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenProcess is one process table row of a golden test case.
type GoldenProcess struct {
	PID         int64 `json:"pid"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Quantum   int64           `json:"quantum"`
	Processes []GoldenProcess `json:"processes"`
	Metrics   GoldenMetrics   `json:"metrics"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	TotalWaitingTime  int64 `json:"total_waiting_time"`
	TotalResponseTime int64 `json:"total_response_time"`
	SimEndedTime      int64 `json:"sim_ended_time"`
	IdleTicks         int64 `json:"idle_ticks"`
	Dispatches        int   `json:"dispatches"`
	ContextSwitches   int   `json:"context_switches"`

	// Averages
	AvgWaitingTime  float64 `json:"avg_waiting_time"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

// RepoPath resolves a path relative to the repository root.
// The path is resolved relative to this source file: sim/internal/testutil/ → repo root.
func RepoPath(t *testing.T, elem ...string) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	parts := append([]string{filepath.Dir(thisFile), "..", "..", ".."}, elem...)
	return filepath.Join(parts...)
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	data, err := os.ReadFile(RepoPath(t, "testdata", "goldendataset.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
