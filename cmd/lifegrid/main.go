// CLAUDE:SUMMARY CLI entry point for lifegrid — fetch contributions, simulate Life, write the animated SVG.
// Command lifegrid renders a GitHub contribution calendar as an animated
// Game of Life SVG.
//
// Usage:
//
//	lifegrid -username octocat                    # defaults, writes assets/life.svg
//	lifegrid -username octocat -steps 120 -out docs/life.svg
//	lifegrid -config lifegrid.yaml                # YAML config, flags override
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hazyhaar/lifegrid/config"
	"github.com/hazyhaar/lifegrid/contrib"
	"github.com/hazyhaar/lifegrid/life"
	"github.com/hazyhaar/lifegrid/render"
)

func main() {
	configPath := flag.String("config", "", "path to lifegrid.yaml config file")
	username := flag.String("username", "", "GitHub username (required unless set in config)")
	steps := flag.Int("steps", 60, "number of frames to simulate")
	frameDuration := flag.Float64("frame-duration", 0.08, "seconds per frame")
	cell := flag.Int("cell", 10, "cell size in px")
	gap := flag.Int("gap", 2, "gap between cells in px")
	aliveColor := flag.String("alive-color", "#2ea043", "fill color for alive cells")
	deadColor := flag.String("dead-color", "#ebedf0", "fill color for dead cells")
	out := flag.String("out", "assets/life.svg", "output SVG path")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			logger.Error("lifegrid: load config", "error", err, "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicitly passed flags win over config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "username":
			cfg.Username = *username
		case "steps":
			cfg.Steps = *steps
		case "frame-duration":
			cfg.FrameDuration = *frameDuration
		case "cell":
			cfg.Cell = *cell
		case "gap":
			cfg.Gap = *gap
		case "alive-color":
			cfg.AliveColor = *aliveColor
		case "dead-color":
			cfg.DeadColor = *deadColor
		case "out":
			cfg.Out = *out
		}
	})

	if cfg.Username == "" {
		fmt.Fprintln(os.Stderr, "usage: lifegrid -username <github-user> [flags] | lifegrid -config <file>")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("lifegrid: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	fetcher := contrib.New(contrib.Config{})
	grid, err := fetcher.Fetch(ctx, cfg.Username)
	if err != nil {
		return fmt.Errorf("fetch contributions: %w", err)
	}
	logger.Info("contributions fetched",
		"user", cfg.Username, "rows", grid.Rows(), "cols", grid.Cols())

	frames, err := life.Simulate(grid, cfg.Steps)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	doc, err := render.Render(frames, render.Style{
		Cell:          cfg.Cell,
		Gap:           cfg.Gap,
		AliveColor:    cfg.AliveColor,
		DeadColor:     cfg.DeadColor,
		FrameDuration: cfg.FrameDuration,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := render.WriteFile(cfg.Out, doc); err != nil {
		return err
	}
	logger.Info("svg written", "path", cfg.Out, "frames", len(frames),
		"cycle_seconds", strconv.FormatFloat(cfg.FrameDuration*float64(len(frames)), 'f', -1, 64))

	fmt.Printf("wrote %s\n", cfg.Out)
	return nil
}
