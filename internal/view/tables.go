package view

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/internal/portfolio"
)

// Banner prints the welcome screen and rules.
func Banner(w io.Writer, totalDays int, capital float64, stocks []market.Stock) {
	fmt.Fprint(w, "\n"+separator('='))
	fmt.Fprint(w, center("Welcome to Floor Trader!"))
	fmt.Fprint(w, separator('='))
	fmt.Fprint(w, center(fmt.Sprintf("Goal: grow your capital over %d days.", totalDays)))
	fmt.Fprint(w, center(fmt.Sprintf("Starting capital: %.0f", capital)))
	fmt.Fprint(w, center("Stock prices change every day."))
	fmt.Fprint(w, center("Your total worth is scored at the end."))
	fmt.Fprint(w, separator('='))

	table := tablewriter.NewWriter(w)
	table.Header("Stock", "Opening Price")
	for _, s := range stocks {
		table.Append(string(s.Symbol), fmt.Sprintf("%.2f", s.InitialPrice))
	}
	table.Render()
}

// DayHeader prints the banner that opens a trading day.
func DayHeader(w io.Writer, day int) {
	fmt.Fprint(w, "\n"+separator('='))
	fmt.Fprint(w, center(fmt.Sprintf("=== DAY %d ===", day)))
	fmt.Fprint(w, separator('='))
}

// Headlines prints the day's company and market-wide events, if any.
func Headlines(w io.Writer, report market.DayReport) {
	if len(report.Headlines) == 0 {
		return
	}
	fmt.Fprintln(w, "\nEvents:")
	for _, h := range report.Headlines {
		if h.Symbol != "" {
			fmt.Fprintf(w, "  %s: %s\n", h.Symbol, h.Text)
		} else {
			fmt.Fprintf(w, "  %s\n", h.Text)
		}
	}
}

// DailyPrices prints today's prices with their move against the
// previous day's close.
func DailyPrices(w io.Writer, order []market.Symbol, prices, prev map[market.Symbol]float64) {
	fmt.Fprint(w, "\n"+center("TODAY'S PRICES"))
	table := tablewriter.NewWriter(w)
	table.Header("Stock", "Price", "Change")
	for _, sym := range order {
		change := market.PercentChange(prices[sym], prev[sym])
		table.Append(string(sym),
			fmt.Sprintf("%.2f", prices[sym]),
			fmt.Sprintf("%+.2f%%", change))
	}
	table.Render()
}

// PortfolioOverview prints every open lot with its value and
// unrealized gain, per-stock subtotals, and the grand totals.
func PortfolioOverview(w io.Writer, positions []portfolio.Position, prices map[market.Symbol]float64, capital float64) {
	fmt.Fprint(w, "\n"+separator('='))
	fmt.Fprint(w, center("PORTFOLIO OVERVIEW"))
	fmt.Fprint(w, separator('='))

	if len(positions) == 0 {
		fmt.Fprintln(w, "No open positions.")
	}

	var totalValue, totalGain float64
	for _, pos := range positions {
		table := tablewriter.NewWriter(w)
		table.Header("Lot", fmt.Sprintf("%s  (now %.2f)", pos.Symbol, prices[pos.Symbol]), "Value", "Gain/Loss")
		for i, lot := range pos.Lots {
			table.Append(
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d shares @ %.2f", lot.Quantity, lot.Price),
				fmt.Sprintf("%.2f", lot.Value(prices[pos.Symbol])),
				fmt.Sprintf("%+.2f", lot.GainLoss(prices[pos.Symbol])),
			)
		}
		table.Append("", "subtotal",
			fmt.Sprintf("%.2f", pos.Value),
			fmt.Sprintf("%+.2f", pos.GainLoss))
		table.Render()

		totalValue += pos.Value
		totalGain += pos.GainLoss
	}

	fmt.Fprint(w, separator('='))
	fmt.Fprintf(w, "Portfolio value:     %.2f\n", totalValue)
	fmt.Fprintf(w, "Capital:             %.2f\n", capital)
	fmt.Fprintf(w, "Total gain/loss:     %+.2f\n", totalGain)
	fmt.Fprintf(w, "Total worth:         %.2f\n", capital+totalValue)
	fmt.Fprint(w, separator('='))
}

// FinalReport prints the end-of-game valuation.
func FinalReport(w io.Writer, totalWorth float64) {
	fmt.Fprint(w, "\n"+separator('='))
	fmt.Fprint(w, center("--- GAME OVER ---"))
	fmt.Fprintf(w, "Your total worth is: %.2f\n", totalWorth)
	fmt.Fprint(w, separator('='))
}
