package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/steer/config"
	"github.com/plus3/steer/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	sessions := flag.Int("sessions", 1, "Number of independent worlds to simulate.")
	parallel := flag.Int("parallel", runtime.GOMAXPROCS(0), "Maximum number of worlds simulated at once.")
	duration := flag.Duration("duration", 30*time.Second, "Simulated time per session.")
	dt := flag.Float64("dt", 1.0/60.0, "Fixed tick length in seconds.")
	timeout := flag.Duration("timeout", time.Minute, "Wall-clock limit for the whole run.")
	seed := flag.Uint64("seed", 1, "Seed for the scripted input.")
	retarget := flag.Float64("retarget", 2, "Seconds between bot move targets.")
	logLevel := flag.String("log-level", "", "Overrides log.level from the config.")
	flag.Parse()

	if err := run(*configPath, *sessions, *parallel, *duration, float32(*dt), *timeout, *seed, *retarget, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// validateFlags rejects run parameters the session loop cannot use.
func validateFlags(sessions, parallel int, duration time.Duration, dt float32, timeout time.Duration, retarget float64) error {
	switch {
	case sessions < 1:
		return fmt.Errorf("sessions must be at least 1, got %d", sessions)
	case parallel < 1:
		return fmt.Errorf("parallel must be at least 1, got %d", parallel)
	case duration < 0:
		return fmt.Errorf("duration must not be negative, got %v", duration)
	case !(dt > 0) || math.IsInf(float64(dt), 0):
		return fmt.Errorf("dt must be positive and finite, got %v", dt)
	case timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %v", timeout)
	case math.IsNaN(retarget) || math.IsInf(retarget, 0):
		return fmt.Errorf("retarget must be finite, got %v", retarget)
	}
	return nil
}

func run(configPath string, sessions, parallel int, duration time.Duration, dt float32, timeout time.Duration, seed uint64, retarget float64, logLevel string) error {
	if err := validateFlags(sessions, parallel, duration, dt, timeout, retarget); err != nil {
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	runID := uuid.NewString()
	logger = logger.With(zap.String("run", runID))
	logger.Info("starting headless run",
		zap.Int("sessions", sessions),
		zap.Duration("duration", duration),
		zap.Uint64("seed", seed),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report := &Report{
		RunID:    runID,
		Config:   configPath,
		Sessions: sessions,
		Parallel: parallel,
		Duration: duration,
		DeltaT:   dt,
		Seed:     seed,
		Results:  make([]*SessionResult, sessions),
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < sessions; i++ {
		g.Go(func() error {
			result, err := runSession(gctx, cfg, sessionOptions{
				seed:     seed,
				session:  i,
				dt:       dt,
				duration: duration,
				retarget: retarget,
			}, logger.With(zap.Int("session", i)))
			if err != nil {
				return err
			}
			report.Results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	report.WallTime = time.Since(start)

	return report.Generate(os.Stdout)
}
