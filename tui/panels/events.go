package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/tui/styles"
)

// eventTapeSize caps how many headlines the feed keeps.
const eventTapeSize = 100

type eventEntry struct {
	day      int
	headline market.Headline
}

// EventsPanel is the rolling feed of company and market-wide
// headlines, newest first.
type EventsPanel struct {
	entries []eventEntry
	focused bool
	width   int
	height  int
}

// NewEventsPanel creates an empty feed.
func NewEventsPanel() *EventsPanel {
	return &EventsPanel{}
}

// Init implements the panel lifecycle.
func (p *EventsPanel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the feed is display-only.
func (p *EventsPanel) Update(msg tea.Msg) (*EventsPanel, tea.Cmd) {
	return p, nil
}

// AddReport appends a day's headlines to the feed.
func (p *EventsPanel) AddReport(report market.DayReport) {
	for _, h := range report.Headlines {
		p.entries = append(p.entries, eventEntry{day: report.Day, headline: h})
	}
	if len(p.entries) > eventTapeSize {
		p.entries = p.entries[len(p.entries)-eventTapeSize:]
	}
}

// View renders the panel.
func (p *EventsPanel) View() string {
	var content strings.Builder

	visible := p.height - 4
	if visible < 1 {
		visible = 1
	}

	if len(p.entries) == 0 {
		content.WriteString(styles.MutedStyle.Render("a quiet day on the market"))
	}

	// Newest first.
	shown := 0
	for i := len(p.entries) - 1; i >= 0 && shown < visible; i-- {
		e := p.entries[i]
		prefix := styles.MutedStyle.Render(fmt.Sprintf("d%02d ", e.day))
		line := e.headline.Text
		if e.headline.Symbol != "" {
			line = fmt.Sprintf("%s: %s", e.headline.Symbol, line)
		}
		content.WriteString(prefix + styles.RowStyle.Render(truncate(line, p.width-10)))
		if shown < visible-1 {
			content.WriteString("\n")
		}
		shown++
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("Events", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *EventsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *EventsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
