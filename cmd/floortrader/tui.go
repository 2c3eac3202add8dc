package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/davezimmer/floortrader/internal/game"
	"github.com/davezimmer/floortrader/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in the full-screen terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			g := game.New(cfg)
			slog.Debug("starting tui game",
				"days", cfg.TotalDays, "capital", cfg.StartingCapital, "seed", cfg.Seed)

			p := tea.NewProgram(tui.NewModel(g), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running ui: %w", err)
			}

			if g.Done() {
				fmt.Printf("Final worth: %.2f (started with %.2f)\n",
					g.TotalWorth(), cfg.StartingCapital)
				recordResult(cfg, g)
			}
			return nil
		},
	}
}
