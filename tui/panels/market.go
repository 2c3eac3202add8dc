package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/tui/styles"
)

// MarketPanel lists every stock with today's price and its move
// against yesterday's close. The selected row drives the chart and
// trade panels.
type MarketPanel struct {
	symbols       []market.Symbol
	prices        map[market.Symbol]float64
	prev          map[market.Symbol]float64
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates the panel over the catalog order.
func NewMarketPanel(symbols []market.Symbol) *MarketPanel {
	return &MarketPanel{symbols: symbols}
}

// Init implements the panel lifecycle.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles selection movement while focused.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.symbols)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-10s %10s %10s", "Stock", "Price", "Change")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, sym := range p.symbols {
		price := p.prices[sym]
		change := market.PercentChange(price, p.prev[sym])

		row := fmt.Sprintf("%-10s %10.2f ", sym, price)
		changeStr := fmt.Sprintf("%+9.2f%%", change)

		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString(style.Render(row) + styles.Signed(changeStr, change < 0))
		if i < len(p.symbols)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Market", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetPrices updates today's and yesterday's prices.
func (p *MarketPanel) SetPrices(prices, prev map[market.Symbol]float64) {
	p.prices = prices
	p.prev = prev
}

// Selected returns the currently selected symbol.
func (p *MarketPanel) Selected() market.Symbol {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.symbols) {
		return p.symbols[p.selectedIndex]
	}
	return ""
}
