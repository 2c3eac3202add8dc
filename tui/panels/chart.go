package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/tui/styles"
)

// ChartPanel draws the selected stock's price history as a bar
// chart scaled to the panel size, most recent days to the right.
type ChartPanel struct {
	symbol  market.Symbol
	prices  []float64
	focused bool
	width   int
	height  int
}

// NewChartPanel creates an empty chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init implements the panel lifecycle.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the chart follows the market panel selection.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *ChartPanel) View() string {
	rows := p.height - 6
	cols := p.width - 12
	if rows < 3 {
		rows = 3
	}
	if cols < 10 {
		cols = 10
	}

	var content strings.Builder
	if len(p.prices) == 0 {
		content.WriteString(styles.MutedStyle.Render("no history yet"))
	} else {
		content.WriteString(p.renderChart(rows, cols))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("History %s", p.symbol), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// renderChart scales the series into rows x cols character cells.
func (p *ChartPanel) renderChart(rows, cols int) string {
	series := p.prices
	if len(series) > cols {
		series = series[len(series)-cols:]
	}

	maxVal := series[0]
	for _, v := range series {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	var b strings.Builder
	for row := rows; row >= 1; row-- {
		threshold := maxVal * float64(row) / float64(rows)
		b.WriteString(fmt.Sprintf("%7.0f |", threshold))
		for _, v := range series {
			if v >= threshold {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n        " + strings.Repeat("-", len(series)))
	return b.String()
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSeries points the chart at a stock's history.
func (p *ChartPanel) SetSeries(sym market.Symbol, prices []float64) {
	p.symbol = sym
	p.prices = prices
}
