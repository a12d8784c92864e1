package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rr-sim/rr-sim/sim"
	"github.com/rr-sim/rr-sim/sim/trace"
	"github.com/rr-sim/rr-sim/sim/workload"
)

// rootOptions holds the CLI flags shared by every command.
type rootOptions struct {
	logLevel    string // Log verbosity level
	configPath  string // Optional YAML defaults file
	details     bool   // Print the per-process table
	gantt       bool   // Print the Gantt chart
	resultsPath string // Write JSON results here when non-empty

	config *Config // loaded from configPath, nil when not given
}

// newRootCmd builds the rr-sim command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "rr-sim <process-table> <quantum>",
		Short: "Discrete-event simulator for Round-Robin CPU scheduling",
		Long: "Simulates a single CPU running the processes in <process-table> under Round-Robin " +
			"scheduling with the given quantum, then prints the average waiting and response times.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: expected 2 arguments (process table path, quantum), got %d", ErrUsage, len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout(), args[0], args[1])
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.PersistentFlags().StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML file with defaults for the optional flags")
	root.Flags().BoolVar(&opts.details, "details", false, "Print the per-process schedule table")
	root.Flags().BoolVar(&opts.gantt, "gantt", false, "Print the Gantt chart of executed slices")
	root.Flags().StringVar(&opts.resultsPath, "results-path", "", "Write the metrics as JSON to this file")

	root.AddCommand(newServeCmd(opts))
	return root
}

// setup loads the optional config file and configures logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.configPath != "" {
		cfg, err := loadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.config = cfg
		overrideString(cmd, "log", &o.logLevel, cfg.LogLevel)
		if cmd.Flags().Lookup("details") != nil {
			overrideBool(cmd, "details", &o.details, cfg.Details)
			overrideBool(cmd, "gantt", &o.gantt, cfg.Gantt)
			overrideString(cmd, "results-path", &o.resultsPath, cfg.ResultsPath)
		}
	}

	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("%w: invalid log level %q", ErrUsage, o.logLevel)
	}
	logrus.SetLevel(level)
	return nil
}

// run loads the table, simulates it and writes the report to out.
func (o *rootOptions) run(out io.Writer, tablePath, quantumArg string) error {
	quantum, err := parseQuantum(quantumArg)
	if err != nil {
		return err
	}
	procs, err := workload.LoadProcessTable(tablePath)
	if err != nil {
		return err
	}

	cfg := sim.NewSimConfig(quantum)
	if o.gantt {
		cfg.Trace.Level = trace.TraceLevelSlices
	}
	s, err := sim.NewSimulator(cfg, procs)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logrus.WithField("run_id", runID)
	log.Infof("Starting simulation with %d processes, quantum=%d", len(procs), quantum)
	m := s.Run()
	log.Infof("Simulation complete at tick %d", m.SimEndedTime)

	if err := m.Print(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if o.details {
		m.PrintDetails(out)
	}
	if o.gantt {
		printGantt(out, trace.Summarize(s.Trace))
	}
	if o.resultsPath != "" {
		if err := m.SaveResults(o.resultsPath, runID, quantum); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command and exits with the mapped status on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(exitStatus(err))
	}
}
