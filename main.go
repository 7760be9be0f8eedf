package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-wireworld/model"
	"github.com/sheikhrachel/go-wireworld/server"
	"github.com/sheikhrachel/go-wireworld/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	logger := utils.NewLogger()
	logger.Info("Wireworld")

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("%+v", err)
			os.Exit(1)
		}
		logger.Info("Using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	world, err := initializeWorld(config)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Mode {
	case utils.ModeServe:
		if err := runServer(ctx, config, world, logger); err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
	default:
		runTerminal(ctx, config, world)
	}
}

func runServer(ctx context.Context, config utils.Config, world *model.World, logger *utils.Logger) error {
	hub := server.NewHub(logger)
	go hub.Run(ctx)

	session := server.NewSession(world, config.FrameRate, hub, logger)
	go session.Run(ctx)

	return server.NewServer(session, hub, logger).ListenAndServe(ctx, config.ListenAddr)
}

func runTerminal(ctx context.Context, config utils.Config, world *model.World) {
	var (
		out           = os.Stdout
		renderer      = &model.TerminalRenderer{Out: out}
		history       = model.NewHistory(model.DefaultHistorySize)
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
	)
	displayGameInfo(out, config, world)
	time.Sleep(2 * time.Second)

	for {
		frameStart := time.Now()
		renderer.Clear()

		state := updateGameState(world, history, lastFrameTime, stats)
		lastFrameTime = frameStart

		displayGameStatus(out, world, state, stats)
		renderer.Display(world)

		if stop, reason := checkStopConditions(world, state, config); stop {
			fmt.Fprintf(out, "\nStopping: %s\n", reason)
			return
		}

		world.Tick()

		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down gracefully...")
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				world.Generation(), stats.Runtime().Seconds())
			return
		case <-time.After(config.FrameRate):
		}
	}
}
