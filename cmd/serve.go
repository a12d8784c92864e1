package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rr-sim/rr-sim/sim"
	"github.com/rr-sim/rr-sim/sim/trace"
)

// defaultMaxTicks bounds a single HTTP run. The simulator steps one tick at a
// time, so an unbounded table would hold its handler indefinitely.
const defaultMaxTicks = 10_000_000

// ProcessRow is one process table row in an HTTP request.
type ProcessRow struct {
	PID         int64 `json:"pid"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
}

// ScheduleRequest is the body of POST /api/v1/rr.
type ScheduleRequest struct {
	Quantum   int64        `json:"quantum"` // 0 = use the server default
	Processes []ProcessRow `json:"processes"`
	Gantt     bool         `json:"gantt"`
}

// ScheduleResponse is the body returned for a successful run.
type ScheduleResponse struct {
	sim.MetricsOutput
	Gantt []trace.GanttSegment `json:"gantt,omitempty"`
}

// scheduleHandler serves Round-Robin runs. Every request gets its own simulator.
type scheduleHandler struct {
	defaultQuantum int64
	maxTicks       int64 // 0 = unlimited
}

func (h *scheduleHandler) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (h *scheduleHandler) RoundRobin(ctx *fiber.Ctx) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	quantum := request.Quantum
	if quantum == 0 {
		quantum = h.defaultQuantum
	}
	cfg := sim.NewSimConfig(quantum)
	if request.Gantt {
		cfg.Trace.Level = trace.TraceLevelSlices
	}
	procs := make([]sim.Process, 0, len(request.Processes))
	for _, p := range request.Processes {
		procs = append(procs, sim.NewProcess(p.PID, p.ArrivalTime, p.BurstTime))
	}

	s, err := sim.NewSimulator(cfg, procs)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := checkTickLimit(procs, h.maxTicks); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	runID := uuid.NewString()
	m := s.Run()
	logrus.WithField("run_id", runID).Infof("Served run: %d processes, quantum=%d, ended at tick %d", len(procs), quantum, m.SimEndedTime)

	response := ScheduleResponse{MetricsOutput: m.Output(runID, quantum)}
	if s.Trace != nil {
		response.Gantt = trace.Summarize(s.Trace).Gantt
	}
	return ctx.JSON(response)
}

// checkTickLimit rejects tables whose run could end after limit ticks.
// A run ends no later than the latest arrival plus the sum of all bursts.
// procs must already have passed simulator validation, so every value is non-negative.
func checkTickLimit(procs []sim.Process, limit int64) error {
	if limit <= 0 {
		return nil
	}
	var horizon, latest int64
	for _, p := range procs {
		if p.ArrivalTime > limit || p.BurstTime > limit-horizon {
			return fmt.Errorf("%w: bound is %d ticks", ErrTickLimit, limit)
		}
		horizon += p.BurstTime
		latest = max(latest, p.ArrivalTime)
	}
	if latest > limit-horizon {
		return fmt.Errorf("%w: bound is %d ticks", ErrTickLimit, limit)
	}
	return nil
}

// newServer wires the HTTP routes.
func newServer(defaultQuantum, maxTicks int64) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := &scheduleHandler{defaultQuantum: defaultQuantum, maxTicks: maxTicks}

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", h.Health)
		v1.Post("/rr", h.RoundRobin)
	}
	return app
}

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		listen         string
		defaultQuantum int64
		maxTicks       int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Round-Robin simulations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.config != nil {
				overrideString(cmd, "listen", &listen, root.config.Serve.Listen)
				overrideInt64(cmd, "default-quantum", &defaultQuantum, root.config.Serve.DefaultQuantum)
				overrideInt64(cmd, "max-ticks", &maxTicks, root.config.Serve.MaxTicks)
			}
			if defaultQuantum < 0 {
				return fmt.Errorf("%w: default quantum must be non-negative, got %d", ErrUsage, defaultQuantum)
			}
			if maxTicks < 0 {
				return fmt.Errorf("%w: max ticks must be non-negative, got %d", ErrUsage, maxTicks)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, newServer(defaultQuantum, maxTicks), listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":9095", "Address to listen on")
	cmd.Flags().Int64Var(&defaultQuantum, "default-quantum", 0, "Quantum used when a request omits one (0 = require it)")
	cmd.Flags().Int64Var(&maxTicks, "max-ticks", defaultMaxTicks, "Reject requests whose run could last longer than this many ticks (0 = unlimited)")
	return cmd
}

// serve runs app until ctx is cancelled.
func serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", addr)
		errCh <- app.Listen(addr)
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		logrus.Info("Shutting down")
		if err := app.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
