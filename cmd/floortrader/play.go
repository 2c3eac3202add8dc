package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/davezimmer/floortrader/internal/cli"
	"github.com/davezimmer/floortrader/internal/game"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the game in classic line mode",
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g := game.New(cfg)
	slog.Debug("game starting", "days", cfg.TotalDays, "capital", cfg.StartingCapital, "seed", cfg.Seed)

	outcome := cli.New(g, os.Stdin, os.Stdout).Run()
	recordResult(cfg, g)
	slog.Debug("game finished", "outcome", outcome, "worth", g.TotalWorth())
	return nil
}
