// floortrader - a day-driven stock trading game for the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davezimmer/floortrader/internal/game"
	"github.com/davezimmer/floortrader/internal/storage"
)

var version = "0.1.0"

var (
	configPath string
	seed       int64
	days       int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floortrader",
		Short: "A day-driven stock trading game",
		Long: `floortrader simulates a stock market one trading day at a time:
prices drift with per-stock trends, scripted company events and
scheduled bull/bear regimes move the market, and you try to grow
your starting capital before the final day.`,
		RunE: runPlay,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (default: built-in config)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based); the same seed replays the same game")
	rootCmd.PersistentFlags().IntVar(&days, "days", 0, "game length in days (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set log level to debug")

	rootCmd.AddCommand(playCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("floortrader version %s\n", version)
		},
	}
}

// loadConfig resolves the effective config from file, flags and env.
func loadConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = game.Load(configPath)
		if err != nil {
			return game.Config{}, err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if days > 0 {
		cfg.TotalDays = days
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	setupLogger(cfg.Log)
	return cfg, nil
}

func setupLogger(cfg game.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// recordResult saves a finished game; failures are logged, never
// fatal, the player still gets their report.
func recordResult(cfg game.Config, g *game.Game) {
	if cfg.Storage.DSN == "" {
		return
	}
	store, err := storage.Open(cfg.Storage.DSN)
	if err != nil {
		slog.Warn("results store unavailable", "err", err, "dsn", cfg.Storage.DSN)
		return
	}
	defer store.Close()

	err = store.SaveResult(context.Background(), storage.Result{
		DaysPlayed:     g.Day(),
		TotalDays:      g.TotalDays(),
		Outcome:        g.Outcome().String(),
		FinalCapital:   g.Capital(),
		PortfolioValue: g.PortfolioValue(),
		TotalWorth:     g.TotalWorth(),
	})
	if err != nil {
		slog.Warn("failed to record game result", "err", err)
	}
}
