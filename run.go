package main

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/Sawwave/nybblelife/model"
	"github.com/Sawwave/nybblelife/utils"
)

// runBenchmark seeds a board, advances it the configured number of
// generations, and reports elapsed wall-clock time for the advance loop
// only; rendering happens outside the timed section.
func runBenchmark(cfg utils.Config) error {
	board, err := model.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	board.Randomize(rng, cfg.RandomDensity)

	renderer := &model.TerminalRenderer{}
	if cfg.Print {
		renderer.Display(board)
	}

	slog.Info("starting advance loop",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("generations", cfg.Generations),
		slog.Int("workers", cfg.Workers),
		slog.Int("initial_living", board.CountLivingCells()),
	)

	start := time.Now()
	for rep := 0; rep < cfg.Generations; rep++ {
		board.AdvanceParallel(cfg.Workers)
	}
	elapsed := time.Since(start)

	perSec := 0.0
	if elapsed > 0 {
		perSec = float64(cfg.Generations) / elapsed.Seconds()
	}
	slog.Info("advance loop complete",
		slog.Int("generations", cfg.Generations),
		slog.Duration("elapsed", elapsed),
		slog.Float64("generations_per_sec", perSec),
		slog.Int("living_cells", board.CountLivingCells()),
	)

	if cfg.Print {
		renderer.Display(board)
	}
	return nil
}
