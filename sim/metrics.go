// Tracks simulation-wide and per-process scheduling metrics such as
// waiting time, response time and CPU idle time.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// ProcessResult is the final timing record of one completed process.
type ProcessResult struct {
	PID            int64 `json:"pid"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	StartTime      int64 `json:"start_time"`
	CompletionTime int64 `json:"completion_time"`
	WaitingTime    int64 `json:"waiting_time"`
	ResponseTime   int64 `json:"response_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	NumProcesses        int   // Size of the process table
	CompletedProcesses  int   // Number of processes that reached done
	TotalWaitingTime    int64 // Sum of per-process waiting times
	TotalResponseTime   int64 // Sum of per-process response times
	TotalTurnaroundTime int64 // Sum of completion - arrival
	TotalBurstTime      int64 // Sum of burst times (busy CPU ticks)
	IdleTicks           int64 // Ticks with an empty ready queue
	Dispatches          int   // Number of slices executed
	ContextSwitches     int   // Dispatches whose process differs from the previous one
	SimEndedTime        int64 // Clock value when the last process completed

	// Processes holds one result per process table entry, in table order.
	// Entries for processes that have not completed are zero-valued.
	Processes []ProcessResult
}

// NewMetrics creates Metrics sized for n processes.
func NewMetrics(n int) *Metrics {
	return &Metrics{
		NumProcesses: n,
		Processes:    make([]ProcessResult, n),
	}
}

// recordCompletion accumulates the totals for a process that just completed.
func (m *Metrics) recordCompletion(idx int, p *Process) {
	m.CompletedProcesses++
	m.TotalWaitingTime += p.WaitingTime
	m.TotalResponseTime += p.ResponseTime
	m.TotalTurnaroundTime += p.TurnaroundTime()
	m.TotalBurstTime += p.BurstTime
	m.Processes[idx] = ProcessResult{
		PID:            p.PID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		StartTime:      p.StartTime,
		CompletionTime: p.CompletionTime,
		WaitingTime:    p.WaitingTime,
		ResponseTime:   p.ResponseTime,
		TurnaroundTime: p.TurnaroundTime(),
	}
}

func (m *Metrics) average(total int64) float64 {
	if m.NumProcesses == 0 {
		return 0
	}
	return float64(total) / float64(m.NumProcesses)
}

// AverageWaitingTime is the mean waiting time over all processes.
func (m *Metrics) AverageWaitingTime() float64 { return m.average(m.TotalWaitingTime) }

// AverageResponseTime is the mean response time over all processes.
func (m *Metrics) AverageResponseTime() float64 { return m.average(m.TotalResponseTime) }

// AverageTurnaroundTime is the mean turnaround time over all processes.
func (m *Metrics) AverageTurnaroundTime() float64 { return m.average(m.TotalTurnaroundTime) }

// CPUUtilization is the fraction of simulated ticks spent running a process.
func (m *Metrics) CPUUtilization() float64 {
	if m.SimEndedTime == 0 {
		return 0
	}
	return float64(m.TotalBurstTime) / float64(m.SimEndedTime)
}

// Throughput is completed processes per tick.
func (m *Metrics) Throughput() float64 {
	if m.SimEndedTime == 0 {
		return 0
	}
	return float64(m.CompletedProcesses) / float64(m.SimEndedTime)
}

// Print writes the two report lines: average waiting time and average response time.
func (m *Metrics) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Average waiting time: %.2f\n", m.AverageWaitingTime()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average response time: %.2f\n", m.AverageResponseTime())
	return err
}

// PrintDetails renders the per-process schedule table with averages in the footer.
func (m *Metrics) PrintDetails(w io.Writer) {
	rows := make([][]string, 0, len(m.Processes))
	for _, p := range m.Processes {
		rows = append(rows, []string{
			strconv.FormatInt(p.PID, 10),
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.FormatInt(p.BurstTime, 10),
			strconv.FormatInt(p.StartTime, 10),
			strconv.FormatInt(p.CompletionTime, 10),
			strconv.FormatInt(p.WaitingTime, 10),
			strconv.FormatInt(p.ResponseTime, 10),
			strconv.FormatInt(p.TurnaroundTime, 10),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Exit", "Wait", "Response", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Util %.2f", m.CPUUtilization()),
		fmt.Sprintf("Avg %.2f", m.AverageWaitingTime()),
		fmt.Sprintf("Avg %.2f", m.AverageResponseTime()),
		fmt.Sprintf("Avg %.2f", m.AverageTurnaroundTime())})
	table.Render()
}

// MetricsOutput is the JSON document written by SaveResults.
type MetricsOutput struct {
	RunID                 string          `json:"run_id"`
	Quantum               int64           `json:"quantum"`
	NumProcesses          int             `json:"num_processes"`
	CompletedProcesses    int             `json:"completed_processes"`
	SimEndedTime          int64           `json:"sim_ended_time"`
	IdleTicks             int64           `json:"idle_ticks"`
	Dispatches            int             `json:"dispatches"`
	ContextSwitches       int             `json:"context_switches"`
	CPUUtilization        float64         `json:"cpu_utilization"`
	Throughput            float64         `json:"throughput"`
	AverageWaitingTime    float64         `json:"average_waiting_time"`
	AverageResponseTime   float64         `json:"average_response_time"`
	AverageTurnaroundTime float64         `json:"average_turnaround_time"`
	WaitingTimeP50        float64         `json:"waiting_time_p50"`
	WaitingTimeP90        float64         `json:"waiting_time_p90"`
	WaitingTimeP99        float64         `json:"waiting_time_p99"`
	Processes             []ProcessResult `json:"processes"`
}

// Output builds the JSON-ready view of the metrics.
func (m *Metrics) Output(runID string, quantum int64) MetricsOutput {
	waits := make([]int64, 0, len(m.Processes))
	for _, p := range m.Processes {
		waits = append(waits, p.WaitingTime)
	}
	sortInt64s(waits)
	return MetricsOutput{
		RunID:                 runID,
		Quantum:               quantum,
		NumProcesses:          m.NumProcesses,
		CompletedProcesses:    m.CompletedProcesses,
		SimEndedTime:          m.SimEndedTime,
		IdleTicks:             m.IdleTicks,
		Dispatches:            m.Dispatches,
		ContextSwitches:       m.ContextSwitches,
		CPUUtilization:        m.CPUUtilization(),
		Throughput:            m.Throughput(),
		AverageWaitingTime:    m.AverageWaitingTime(),
		AverageResponseTime:   m.AverageResponseTime(),
		AverageTurnaroundTime: m.AverageTurnaroundTime(),
		WaitingTimeP50:        CalculatePercentile(waits, 50),
		WaitingTimeP90:        CalculatePercentile(waits, 90),
		WaitingTimeP99:        CalculatePercentile(waits, 99),
		Processes:             m.Processes,
	}
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path, runID string, quantum int64) error {
	data, err := json.MarshalIndent(m.Output(runID, quantum), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
