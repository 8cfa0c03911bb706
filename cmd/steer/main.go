// Command steer is the interactive host: an Ebiten window showing the commander, its
// projectiles and the obstacles, with an optional Dear ImGui overlay.
//
// Controls: WASD or arrow keys steer, left mouse sets a seek target, space or right
// mouse fires at the pointer, F1 toggles the steering vectors, Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/steer/config"
	"github.com/plus3/steer/logging"
	"github.com/plus3/steer/sim"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the ImGui overlay. Overrides host.debug from the config.")
	logLevel := flag.String("log-level", "", "Overrides log.level from the config.")
	flag.Parse()

	if err := run(*configPath, *debug, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool, logLevel string) error {
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
	if debug {
		cfg.Host.Debug = true
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var ov *overlay
	opts := []sim.Option{sim.WithLogger(logger)}
	if cfg.Host.Debug {
		ov = newOverlay(cfg.Host)
		opts = append(opts, ov.option())
	} else {
		ebiten.SetWindowSize(cfg.Host.Width, cfg.Host.Height)
		ebiten.SetWindowTitle(cfg.Host.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Host.TPS)

	world, err := sim.New(cfg, opts...)
	if err != nil {
		logger.Error("creating world", zap.Error(err))
		return err
	}

	game := NewGame(world, cfg.Host, logger)
	if ov != nil {
		game.attachOverlay(ov)
	}

	logger.Info("starting host",
		zap.String("title", cfg.Host.Title),
		zap.Int("tps", cfg.Host.TPS),
		zap.Bool("debug", cfg.Host.Debug),
	)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", zap.Error(err))
		return err
	}
	logger.Info("host stopped", zap.Float64("sim_time", world.Now()), zap.Uint64("frames", world.Frame()))
	return nil
}
