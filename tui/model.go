// Package tui is the full-screen front end: the same game engine as
// the line CLI, presented as live panels.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/game"
	"github.com/davezimmer/floortrader/tui/panels"
	"github.com/davezimmer/floortrader/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusMarket    PanelFocus = 0
	FocusChart     PanelFocus = 1
	FocusPortfolio PanelFocus = 2
	FocusEvents    PanelFocus = 3
	FocusTrade     PanelFocus = 4
)

const panelCount = 5

// Model is the main TUI application model.
type Model struct {
	game *game.Game

	marketPanel    *panels.MarketPanel
	chartPanel     *panels.ChartPanel
	portfolioPanel *panels.PortfolioPanel
	eventsPanel    *panels.EventsPanel
	tradePanel     *panels.TradePanel

	focusedPanel PanelFocus

	width  int
	height int

	statusMsg string
	ready     bool
}

// NewModel wires the panels over a fresh game and opens day 1.
func NewModel(g *game.Game) *Model {
	m := &Model{
		game:           g,
		marketPanel:    panels.NewMarketPanel(g.Market().Symbols),
		chartPanel:     panels.NewChartPanel(),
		portfolioPanel: panels.NewPortfolioPanel(),
		eventsPanel:    panels.NewEventsPanel(),
		tradePanel:     panels.NewTradePanel(),
		focusedPanel:   FocusMarket,
	}

	if report, err := g.BeginDay(); err == nil {
		m.eventsPanel.AddReport(report)
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.chartPanel.Init(),
		m.portfolioPanel.Init(),
		m.eventsPanel.Init(),
		m.tradePanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if !m.game.Done() {
				m.game.Quit()
			}
			return m, tea.Quit

		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % panelCount
		case "shift+tab":
			m.focusedPanel--
			if m.focusedPanel < 0 {
				m.focusedPanel = panelCount - 1
			}
		case "f1":
			m.focusedPanel = FocusMarket
		case "f2":
			m.focusedPanel = FocusChart
		case "f3":
			m.focusedPanel = FocusPortfolio
		case "f4":
			m.focusedPanel = FocusEvents
		case "f5":
			m.focusedPanel = FocusTrade

		case "q":
			if m.focusedPanel != FocusTrade {
				if !m.game.Done() {
					m.game.Quit()
				}
				return m, tea.Quit
			}
		case "n":
			if m.focusedPanel != FocusTrade {
				m.advanceDay()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case panels.TradeMsg:
		m.handleTrade(msg)
	}

	m.updateFocusedPanel(msg, &cmds)
	m.refresh()

	return m, tea.Batch(cmds...)
}

// advanceDay closes the current day and opens the next one.
func (m *Model) advanceDay() {
	if m.game.Done() {
		return
	}
	if err := m.game.EndDay(); err != nil {
		return
	}
	if m.game.Done() {
		m.statusMsg = fmt.Sprintf("Game over! Final worth %.2f. Press q to leave.", m.game.TotalWorth())
		return
	}
	report, err := m.game.BeginDay()
	if err != nil {
		return
	}
	m.eventsPanel.AddReport(report)
	m.statusMsg = fmt.Sprintf("Day %d/%d", m.game.Day(), m.game.TotalDays())
}

// handleTrade applies a submitted trade to the game.
func (m *Model) handleTrade(msg panels.TradeMsg) {
	switch msg.Side {
	case panels.TradeBuy:
		lot, err := m.game.Buy(msg.Symbol, msg.Quantity)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Buy failed: %v", err)
			return
		}
		m.statusMsg = fmt.Sprintf("Bought %d %s @ %.2f", lot.Quantity, lot.Symbol, lot.Price)
	case panels.TradeSell:
		revenue, err := m.game.Sell(msg.Symbol, msg.Lot-1, msg.Quantity)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Sell failed: %v", err)
			return
		}
		m.statusMsg = fmt.Sprintf("Sold %d %s for %.2f", msg.Quantity, msg.Symbol, revenue)
	}
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusMarket:
		m.marketPanel, cmd = m.marketPanel.Update(msg)
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusPortfolio:
		m.portfolioPanel, cmd = m.portfolioPanel.Update(msg)
	case FocusEvents:
		m.eventsPanel, cmd = m.eventsPanel.Update(msg)
	case FocusTrade:
		m.tradePanel, cmd = m.tradePanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// refresh pushes current game state into every panel.
func (m *Model) refresh() {
	g := m.game
	m.marketPanel.SetPrices(g.Market().Prices, g.PrevPrices())
	m.portfolioPanel.SetHoldings(
		g.Portfolio().Positions(g.Market().Symbols, g.Market().Prices),
		g.Market().Prices, g.Capital())

	selected := m.marketPanel.Selected()
	if selected != "" {
		m.chartPanel.SetSeries(selected, g.Market().History[selected])
		m.tradePanel.SetSymbol(selected)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.marketPanel.SetFocus(m.focusedPanel == FocusMarket)
	m.chartPanel.SetFocus(m.focusedPanel == FocusChart)
	m.portfolioPanel.SetFocus(m.focusedPanel == FocusPortfolio)
	m.eventsPanel.SetFocus(m.focusedPanel == FocusEvents)
	m.tradePanel.SetFocus(m.focusedPanel == FocusTrade)

	// Layout:
	// ┌───────────────┬───────────────────────┐
	// │    Market     │       History         │
	// ├───────────────┼───────────┬───────────┤
	// │   Portfolio   │  Events   │   Trade   │
	// └───────────────┴───────────┴───────────┘

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth

	topHeight := (m.height - 3) / 2
	bottomHeight := m.height - topHeight - 3

	m.marketPanel.SetSize(leftWidth, topHeight)
	m.chartPanel.SetSize(rightWidth, topHeight)
	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.marketPanel.View(),
		m.chartPanel.View(),
	)

	eventsWidth := rightWidth / 2
	tradeWidth := rightWidth - eventsWidth
	m.portfolioPanel.SetSize(leftWidth, bottomHeight)
	m.eventsPanel.SetSize(eventsWidth, bottomHeight)
	m.tradePanel.SetSize(tradeWidth, bottomHeight)
	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.portfolioPanel.View(),
		m.eventsPanel.View(),
		m.tradePanel.View(),
	)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, statusBar)
}

func (m *Model) renderStatusBar() string {
	day := styles.StatusBarKeyStyle.Render(fmt.Sprintf("Day %d/%d", m.game.Day(), m.game.TotalDays())) +
		styles.StatusBarDescStyle.Render(fmt.Sprintf("  capital %.2f  worth %.2f", m.game.Capital(), m.game.TotalWorth()))

	help := []string{
		styles.StatusBarKeyStyle.Render("n") + styles.StatusBarDescStyle.Render(" next day"),
		styles.StatusBarKeyStyle.Render("tab") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}
	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2])

	status := ""
	if m.statusMsg != "" {
		status = " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(day + " │ " + helpStr + status)
}
