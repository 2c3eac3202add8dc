// Package view renders game state for the line-oriented front end:
// tables for prices and holdings, and the classic ASCII history
// charts. Everything renders to a string or an io.Writer so tests
// can capture output.
package view

import (
	"fmt"
	"strings"

	"github.com/davezimmer/floortrader/internal/market"
)

// StockIndexChart draws a stock's price history as a column chart:
// one `#` column per day, y-axis in steps of 20, padded to the full
// game length so the chart does not jump around as days pass.
func StockIndexChart(sym market.Symbol, prices []float64, totalDays int) string {
	if len(prices) == 0 {
		return fmt.Sprintf("No price history for %s yet.\n", sym)
	}

	var b strings.Builder
	b.WriteString(separator('='))
	b.WriteString(center(fmt.Sprintf("Price history for %s", sym)))
	b.WriteString(separator('='))

	for _, level := range chartLevels(prices, 20) {
		fmt.Fprintf(&b, "%4d |", level)
		writeColumns(&b, prices, float64(level), totalDays)
		b.WriteByte('\n')
	}

	b.WriteString("     " + strings.Repeat("-", totalDays) + "\n")
	b.WriteString(separator('='))
	return b.String()
}

// TotalWorthChart draws the capital-plus-portfolio series with a
// y-axis in steps of 1000, labeled in thousands.
func TotalWorthChart(history []float64, totalDays int) string {
	if len(history) == 0 {
		return "No total worth history yet.\n"
	}

	var b strings.Builder
	b.WriteString(separator('='))
	b.WriteString(center("TOTAL WORTH HISTORY"))
	b.WriteString(separator('='))

	for _, level := range chartLevels(history, 1000) {
		fmt.Fprintf(&b, "%6s |", fmt.Sprintf("%dk", level/1000))
		writeColumns(&b, history, float64(level), totalDays)
		b.WriteByte('\n')
	}

	b.WriteString("       " + strings.Repeat("-", totalDays) + "\n")
	b.WriteString(separator('='))
	return b.String()
}

// chartLevels returns the y-axis values from the series maximum down
// to zero in the given step.
func chartLevels(series []float64, step int) []int {
	maxVal := series[0]
	for _, v := range series[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	var levels []int
	for level := 0; level <= int(maxVal)+step-1; level += step {
		levels = append(levels, level)
	}
	// Top to bottom.
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	return levels
}

// writeColumns emits one chart row: a `#` for every day whose value
// reaches the level, blanks for future days.
func writeColumns(b *strings.Builder, series []float64, level float64, totalDays int) {
	for i := 0; i < totalDays; i++ {
		if i < len(series) && series[i] >= level {
			b.WriteByte('#')
		} else {
			b.WriteByte(' ')
		}
	}
}

const lineWidth = 60

func separator(ch byte) string {
	return strings.Repeat(string(ch), lineWidth) + "\n"
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s + "\n"
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s + "\n"
}
