package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/go-wireworld/model"
	"github.com/sheikhrachel/go-wireworld/utils"
)

// initializeWorld builds the engine and seeds it with the configured pattern
func initializeWorld(config utils.Config) (*model.World, error) {
	opts := model.Options{Workers: config.Workers}
	if config.Workers == 0 {
		opts.Workers = model.DefaultWorkers()
	}
	if config.UseMemoryPool {
		opts.Pool = model.NewGridPool()
	}

	pattern, err := loadPattern(config)
	if err != nil {
		return nil, err
	}

	world := model.NewWorldWithOptions(config.Width, config.Height, opts)
	world.Place(pattern, config.PatternRow, config.PatternCol)
	return world, nil
}

// loadPattern prefers a pattern file over a builtin pattern name
func loadPattern(config utils.Config) (model.Pattern, error) {
	if config.PatternFile != "" {
		return model.LoadPatternFile(config.PatternFile)
	}
	if config.Pattern == "" {
		return nil, nil
	}
	return model.BuiltinPattern(config.Pattern)
}

// displayGameInfo shows the initial simulation information
func displayGameInfo(out io.Writer, config utils.Config, world *model.World) {
	census := world.Census()
	fmt.Fprintf(out, "Features: Memory Pool: %v, Workers: %d\n", config.UseMemoryPool, config.Workers)
	fmt.Fprintf(out, "Grid: %dx%d | Wire cells: %d | Heads: %d\n",
		world.Width(), world.Height(), census.Conductors+census.Heads+census.Tails, census.Heads)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// gameState is what the terminal loop reports after every frame
type gameState struct {
	census model.Census
	period int
	cyclic bool
}

// updateGameState records the current grid and checks it against recent ones
func updateGameState(
	world *model.World,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) gameState {
	census := world.Census()
	stats.Update(world.Generation(), census.Heads, time.Since(lastFrameTime))

	hash := world.Hash()
	period, cyclic := history.Period(hash)
	history.Push(hash)

	return gameState{census: census, period: period, cyclic: cyclic}
}

// displayGameStatus shows the current simulation status
func displayGameStatus(out io.Writer, world *model.World, state gameState, stats *utils.Stats) {
	status := "Active"
	switch {
	case state.census.Heads == 0 && state.census.Tails == 0:
		status = "Idle"
	case state.cyclic:
		status = fmt.Sprintf("Cycle (period %d)", state.period)
	}

	fmt.Fprintf(out, "Gen: %d | Heads: %d | Tails: %d | Wire: %d | Status: %s\n",
		world.Generation(), state.census.Heads, state.census.Tails, state.census.Conductors, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Heads: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AverageHeads, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// checkStopConditions determines if the terminal loop should end
func checkStopConditions(world *model.World, state gameState, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && world.Generation() >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if config.StopOnCycle && state.cyclic {
		return true, fmt.Sprintf("cycle of period %d detected", state.period)
	}
	return false, ""
}
