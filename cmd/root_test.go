package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/rr-sim/rr-sim/sim"
	"github.com/rr-sim/rr-sim/sim/workload"
)

// runCLI executes a fresh command tree with args and returns stdout and the error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log", "warn"))
	err := root.Execute()
	return out.String(), err
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd_TieBreakScenario_PrintsCanonicalReport(t *testing.T) {
	// GIVEN the two-equal-arrivals table
	path := filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt")

	// WHEN run with quantum 2
	out, err := runCLI(t, path, "2")

	// THEN only the two report lines are printed
	require.NoError(t, err)
	assert.Equal(t, "Average waiting time: 3.00\nAverage response time: 1.00\n", out)
}

func TestRootCmd_ClassicTable(t *testing.T) {
	out, err := runCLI(t, filepath.Join("..", "testdata", "tables", "classic_four.txt"), "3")
	require.NoError(t, err)
	assert.Equal(t, "Average waiting time: 7.00\nAverage response time: 2.75\n", out)
}

func TestRootCmd_Determinism(t *testing.T) {
	path := filepath.Join("..", "testdata", "tables", "classic_four.txt")
	first, err := runCLI(t, path, "2")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := runCLI(t, path, "2")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRootCmd_Errors_MapToExitStatus(t *testing.T) {
	good := writeTable(t, "1 1 0 3\n")
	truncated := writeTable(t, "2 1 0 3\n")
	zeroBurst := writeTable(t, "1 1 0 0\n")

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStatus int
	}{
		{"no arguments", nil, ErrUsage, int(unix.EINVAL)},
		{"one argument", []string{good}, ErrUsage, int(unix.EINVAL)},
		{"three arguments", []string{good, "2", "x"}, ErrUsage, int(unix.EINVAL)},
		{"zero quantum", []string{good, "0"}, sim.ErrInvalidQuantum, int(unix.EINVAL)},
		{"empty quantum", []string{good, ""}, sim.ErrInvalidQuantum, int(unix.EINVAL)},
		{"negative quantum text", []string{good, "-2"}, ErrUsage, int(unix.EINVAL)},
		{"quantum with letters", []string{good, "2a"}, ErrMalformedQuantum, int(unix.EINVAL)},
		{"quantum with space", []string{good, " 2"}, ErrMalformedQuantum, int(unix.EINVAL)},
		{"truncated table", []string{truncated, "2"}, workload.ErrTruncatedInput, int(unix.EINVAL)},
		{"zero burst", []string{zeroBurst, "2"}, sim.ErrInvalidProcess, int(unix.EINVAL)},
		{"missing table", []string{filepath.Join(t.TempDir(), "missing.txt"), "2"}, os.ErrNotExist, int(unix.ENOENT)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantStatus, exitStatus(err))
			assert.Empty(t, out, "no partial results may be printed")
		})
	}
}

func TestRootCmd_Details_AppendsTable(t *testing.T) {
	out, err := runCLI(t, filepath.Join("..", "testdata", "tables", "classic_four.txt"), "3", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "Average waiting time: 7.00\nAverage response time: 2.75\n")
	assert.Contains(t, out, "TURNAROUND")
}

func TestRootCmd_Gantt_AppendsChart(t *testing.T) {
	out, err := runCLI(t, filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt"), "2", "--gantt")
	require.NoError(t, err)
	assert.Contains(t, out, "Gantt chart")
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "Switches 3")
}

func TestRootCmd_ResultsPath_WritesJSON(t *testing.T) {
	resultsPath := filepath.Join(t.TempDir(), "results.json")
	_, err := runCLI(t, filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt"), "2", "--results-path", resultsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(resultsPath)
	require.NoError(t, err)
	var out sim.MetricsOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, int64(2), out.Quantum)
	assert.Equal(t, 3.0, out.AverageWaitingTime)
}

func TestRootCmd_ConfigFile_SuppliesDefaults(t *testing.T) {
	// GIVEN a config file turning on the Gantt chart
	cfgPath := filepath.Join(t.TempDir(), "rr-sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("gantt: true\nlog_level: warn\n"), 0o644))

	// WHEN run without --gantt
	out, err := runCLI(t, filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt"), "2", "--config", cfgPath)

	// THEN the chart is printed
	require.NoError(t, err)
	assert.Contains(t, out, "Gantt chart")
}

func TestRootCmd_ExplicitFlagBeatsConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "rr-sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("details: true\n"), 0o644))

	out, err := runCLI(t, filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt"), "2", "--config", cfgPath, "--details=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "TURNAROUND")
}

func TestRootCmd_InvalidLogLevel_IsUsageError(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{filepath.Join("..", "testdata", "tables", "two_equal_arrivals.txt"), "2", "--log", "loud"})
	err := root.Execute()
	assert.ErrorIs(t, err, ErrUsage)
}
