package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/davezimmer/floortrader/internal/storage"
)

func historyCmd() *cobra.Command {
	var limit int
	var best bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past game results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.DSN == "" {
				return fmt.Errorf("result recording is disabled (empty storage dsn)")
			}

			store, err := storage.Open(cfg.Storage.DSN)
			if err != nil {
				return err
			}
			defer store.Close()

			var results []storage.Result
			if best {
				results, err = store.Best(context.Background(), limit)
			} else {
				results, err = store.Recent(context.Background(), limit)
			}
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No games recorded yet.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Played", "Days", "Outcome", "Capital", "Portfolio", "Total Worth")
			for _, r := range results {
				table.Append(
					r.PlayedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d/%d", r.DaysPlayed, r.TotalDays),
					r.Outcome,
					fmt.Sprintf("%.2f", r.FinalCapital),
					fmt.Sprintf("%.2f", r.PortfolioValue),
					fmt.Sprintf("%.2f", r.TotalWorth),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of games to show")
	cmd.Flags().BoolVar(&best, "best", false, "order by total worth instead of date")
	return cmd
}
