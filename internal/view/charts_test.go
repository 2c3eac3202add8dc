package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/internal/portfolio"
)

func TestStockIndexChartShape(t *testing.T) {
	chart := StockIndexChart("Tesla", []float64{30, 50, 10}, 5)
	lines := strings.Split(chart, "\n")

	require.Contains(t, chart, "Price history for Tesla")

	// Levels 60..0 in steps of 20, top down.
	var rows []string
	for _, l := range lines {
		if strings.Contains(l, "|") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 4)
	assert.True(t, strings.HasPrefix(rows[0], "  60 |"))
	assert.True(t, strings.HasPrefix(rows[3], "   0 |"))

	// Day 2 (price 50) reaches the 40 level, days 1 and 3 do not;
	// days 4-5 have no data yet.
	assert.Equal(t, "  40 | #   ", rows[1])
	// Every played day reaches the zero level.
	assert.Equal(t, "   0 |###  ", rows[3])
}

func TestStockIndexChartEmpty(t *testing.T) {
	chart := StockIndexChart("Tesla", nil, 50)
	assert.Contains(t, chart, "No price history")
}

func TestTotalWorthChartLabels(t *testing.T) {
	chart := TotalWorthChart([]float64{20000, 21500}, 10)

	assert.Contains(t, chart, "TOTAL WORTH HISTORY")
	assert.Contains(t, chart, "22k |")
	assert.Contains(t, chart, "0k |")
	assert.Contains(t, chart, "##")
}

func TestDailyPricesTable(t *testing.T) {
	var buf bytes.Buffer
	order := []market.Symbol{"Tesla", "Apple"}
	prices := map[market.Symbol]float64{"Tesla": 330, "Apple": 190}
	prev := map[market.Symbol]float64{"Tesla": 300, "Apple": 200}

	DailyPrices(&buf, order, prices, prev)
	out := buf.String()

	assert.Contains(t, out, "Tesla")
	assert.Contains(t, out, "330.00")
	assert.Contains(t, out, "+10.00%")
	assert.Contains(t, out, "-5.00%")
}

func TestPortfolioOverviewTotals(t *testing.T) {
	p := portfolio.New()
	_, err := p.Buy("Tesla", 2, 300)
	require.NoError(t, err)

	prices := map[market.Symbol]float64{"Tesla": 310}
	positions := p.Positions([]market.Symbol{"Tesla"}, prices)

	var buf bytes.Buffer
	PortfolioOverview(&buf, positions, prices, 1000)
	out := buf.String()

	assert.Contains(t, out, "PORTFOLIO OVERVIEW")
	assert.Contains(t, out, "2 shares @ 300.00")
	assert.Contains(t, out, "620.00") // portfolio value
	assert.Contains(t, out, "+20.00") // gain
	assert.Contains(t, out, "1620.00") // total worth
}

func TestPortfolioOverviewEmpty(t *testing.T) {
	var buf bytes.Buffer
	PortfolioOverview(&buf, nil, nil, 500)
	assert.Contains(t, buf.String(), "No open positions")
}
