package panels

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/tui/styles"
)

// TradeSide is the direction of a submitted trade.
type TradeSide uint8

const (
	TradeBuy TradeSide = iota
	TradeSell
)

func (s TradeSide) String() string {
	if s == TradeSell {
		return "SELL"
	}
	return "BUY"
}

// TradeMsg is emitted when the player submits the trade form. Lot is
// 1-based and only meaningful for sells.
type TradeMsg struct {
	Side     TradeSide
	Symbol   market.Symbol
	Lot      int
	Quantity int
}

// tradeField indexes the form inputs.
type tradeField int

const (
	fieldQuantity tradeField = iota
	fieldLot
)

// TradePanel is the buy/sell entry form for the selected stock.
type TradePanel struct {
	symbol market.Symbol
	side   TradeSide

	quantityInput textinput.Model
	lotInput      textinput.Model
	activeField   tradeField

	errMsg  string
	focused bool
	width   int
	height  int
}

// NewTradePanel creates the form.
func NewTradePanel() *TradePanel {
	quantity := textinput.New()
	quantity.Placeholder = "quantity"
	quantity.CharLimit = 8
	quantity.Width = 10

	lot := textinput.New()
	lot.Placeholder = "lot #"
	lot.CharLimit = 4
	lot.Width = 10

	return &TradePanel{
		quantityInput: quantity,
		lotInput:      lot,
	}
}

// Init implements the panel lifecycle.
func (p *TradePanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form interaction while focused.
func (p *TradePanel) Update(msg tea.Msg) (*TradePanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "b":
			if !p.typing() {
				p.setSide(TradeBuy)
				return p, nil
			}
		case "s":
			if !p.typing() {
				p.setSide(TradeSell)
				return p, nil
			}
		case "up", "down":
			p.cycleField()
			return p, nil
		case "enter":
			return p, p.submit()
		case "esc":
			p.reset()
			return p, nil
		}
	}

	var cmd tea.Cmd
	switch p.activeField {
	case fieldQuantity:
		p.quantityInput, cmd = p.quantityInput.Update(msg)
	case fieldLot:
		p.lotInput, cmd = p.lotInput.Update(msg)
	}
	return p, cmd
}

// typing reports whether the active field already holds input, in
// which case b/s are passed through instead of switching side.
func (p *TradePanel) typing() bool {
	if p.activeField == fieldLot {
		return p.lotInput.Value() != ""
	}
	return p.quantityInput.Value() != ""
}

func (p *TradePanel) setSide(side TradeSide) {
	p.side = side
	p.errMsg = ""
	p.activeField = fieldQuantity
	p.syncFocus()
}

func (p *TradePanel) cycleField() {
	if p.side == TradeBuy {
		p.activeField = fieldQuantity
	} else if p.activeField == fieldQuantity {
		p.activeField = fieldLot
	} else {
		p.activeField = fieldQuantity
	}
	p.syncFocus()
}

func (p *TradePanel) syncFocus() {
	p.quantityInput.Blur()
	p.lotInput.Blur()
	if !p.focused {
		return
	}
	switch p.activeField {
	case fieldQuantity:
		p.quantityInput.Focus()
	case fieldLot:
		p.lotInput.Focus()
	}
}

func (p *TradePanel) submit() tea.Cmd {
	quantity, err := strconv.Atoi(strings.TrimSpace(p.quantityInput.Value()))
	if err != nil || quantity <= 0 {
		p.errMsg = "quantity must be a positive number"
		return nil
	}

	lot := 1
	if p.side == TradeSell {
		lot, err = strconv.Atoi(strings.TrimSpace(p.lotInput.Value()))
		if err != nil || lot <= 0 {
			p.errMsg = "lot must be a positive number"
			return nil
		}
	}

	msg := TradeMsg{
		Side:     p.side,
		Symbol:   p.symbol,
		Lot:      lot,
		Quantity: quantity,
	}
	p.reset()
	return func() tea.Msg { return msg }
}

func (p *TradePanel) reset() {
	p.quantityInput.SetValue("")
	p.lotInput.SetValue("")
	p.errMsg = ""
	p.activeField = fieldQuantity
	p.syncFocus()
}

// View renders the form.
func (p *TradePanel) View() string {
	var content strings.Builder

	sideLabel := styles.GainStyle.Render("BUY")
	if p.side == TradeSell {
		sideLabel = styles.LossStyle.Render("SELL")
	}
	content.WriteString(fmt.Sprintf("%s %s\n\n", sideLabel, styles.HeaderStyle.Render(string(p.symbol))))

	content.WriteString("Quantity: " + p.quantityInput.View() + "\n")
	if p.side == TradeSell {
		content.WriteString("Lot:      " + p.lotInput.View() + "\n")
	}

	if p.errMsg != "" {
		content.WriteString("\n" + styles.LossStyle.Render(p.errMsg))
	} else {
		content.WriteString("\n" + styles.MutedStyle.Render("b/s side · ↑↓ field · enter submit · esc clear"))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Trade", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel and its inputs.
func (p *TradePanel) SetFocus(focused bool) {
	p.focused = focused
	p.syncFocus()
}

// SetSize sets the panel dimensions.
func (p *TradePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSymbol points the form at the market panel's selection.
func (p *TradePanel) SetSymbol(sym market.Symbol) {
	p.symbol = sym
}
