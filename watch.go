package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sawwave/nybblelife/model"
	"github.com/Sawwave/nybblelife/utils"
)

// runWatch animates the board in the terminal: one frame per generation,
// with stagnation detection and automatic restarts.
func runWatch(cfg utils.Config) error {
	board, err := model.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	board.ResetWithInterestingPatterns(rng, cfg.RandomDensity)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	displayGameInfo(cfg, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return nil
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(board, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(board)

		if cfg.MaxGenerations > 0 && generation >= cfg.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", cfg.MaxGenerations)
			return nil
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, cfg)

		if shouldRestart && cfg.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", restartReason)
			time.Sleep(1 * time.Second)

			board.ResetWithInterestingPatterns(rng, cfg.RandomDensity)
			fmt.Printf("New patterns loaded! Living cells: %d\n", board.CountLivingCells())

			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < cfg.StagnationThreshold {
			// Inject some life to try to break the stagnation
			board.InjectRandomLife(rng, cfg.InjectionCount)
		}

		board.AdvanceParallel(cfg.Workers)
		generation++

		// Wait before next frame
		time.Sleep(cfg.FrameRate)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(cfg utils.Config, board *model.Board) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		board.GetWidth(), board.GetHeight(), board.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	board *model.Board,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := board.CountLivingCells()
	density := float64(livingCells) / float64(board.GetWidth()*board.GetHeight()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Update history for stagnation detection
	board.UpdateHistory()

	// Check for stagnation
	isStagnant := board.IsStagnant()

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	cfg utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= cfg.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}
