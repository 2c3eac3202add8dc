package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/internal/portfolio"
	"github.com/davezimmer/floortrader/tui/styles"
)

// PortfolioPanel shows the open lots with their unrealized gains
// plus the capital and total worth footer.
type PortfolioPanel struct {
	positions []portfolio.Position
	prices    map[market.Symbol]float64
	capital   float64
	focused   bool
	width     int
	height    int
}

// NewPortfolioPanel creates an empty portfolio panel.
func NewPortfolioPanel() *PortfolioPanel {
	return &PortfolioPanel{}
}

// Init implements the panel lifecycle.
func (p *PortfolioPanel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the panel is display-only.
func (p *PortfolioPanel) Update(msg tea.Msg) (*PortfolioPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *PortfolioPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-10s %-4s %16s %10s %10s", "Stock", "Lot", "Shares @ Price", "Value", "Gain")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	if len(p.positions) == 0 {
		content.WriteString(styles.MutedStyle.Render("no open positions"))
	}

	var totalValue float64
	for _, pos := range p.positions {
		price := p.prices[pos.Symbol]
		for i, lot := range pos.Lots {
			gain := lot.GainLoss(price)
			row := fmt.Sprintf("%-10s %-4d %9d @ %6.2f %10.2f ",
				pos.Symbol, i+1, lot.Quantity, lot.Price, lot.Value(price))
			content.WriteString(styles.RowStyle.Render(row))
			content.WriteString(styles.Signed(fmt.Sprintf("%+10.2f", gain), gain < 0))
			content.WriteString("\n")
		}
		totalValue += pos.Value
	}

	content.WriteString("\n")
	content.WriteString(styles.HeaderStyle.Render(
		fmt.Sprintf("capital %10.2f   portfolio %10.2f   worth %10.2f",
			p.capital, totalValue, p.capital+totalValue)))

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Portfolio", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PortfolioPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PortfolioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetHoldings refreshes the displayed positions and balances.
func (p *PortfolioPanel) SetHoldings(positions []portfolio.Position, prices map[market.Symbol]float64, capital float64) {
	p.positions = positions
	p.prices = prices
	p.capital = capital
}
