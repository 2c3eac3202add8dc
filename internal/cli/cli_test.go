package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davezimmer/floortrader/internal/game"
)

func newTestGame(days int) *game.Game {
	cfg := game.DefaultConfig()
	cfg.TotalDays = days
	cfg.Seed = 1234
	cfg.Storage.DSN = ""
	return game.New(cfg)
}

// run scripts a session: each element is one line of player input.
func run(t *testing.T, g *game.Game, lines ...string) (game.Outcome, string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	outcome := New(g, in, &out).Run()
	return outcome, out.String()
}

func TestQuitImmediately(t *testing.T) {
	g := newTestGame(50)
	outcome, out := run(t, g, "7")

	assert.Equal(t, game.OutcomeQuit, outcome)
	assert.Contains(t, out, "Welcome to Floor Trader!")
	assert.Contains(t, out, "=== DAY 1 ===")
	assert.Contains(t, out, "Quitting the game")
	// Quit forfeits the rest: no final valuation.
	assert.NotContains(t, out, "GAME OVER")
}

func TestPlayThroughCompletes(t *testing.T) {
	g := newTestGame(2)
	outcome, out := run(t, g, "6", "6")

	assert.Equal(t, game.OutcomeCompleted, outcome)
	assert.Contains(t, out, "=== DAY 2 ===")
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Your total worth is:")
}

func TestBuyFlow(t *testing.T) {
	g := newTestGame(1)
	// Buy → stock #1 (Tesla) → 5 shares, then finish the day.
	outcome, out := run(t, g, "1", "1", "5", "6")

	require.Equal(t, game.OutcomeCompleted, outcome)
	assert.Contains(t, out, "Bought 5 Tesla shares")
	require.Len(t, g.Portfolio().Lots("Tesla"), 1)
	assert.Equal(t, 5, g.Portfolio().Lots("Tesla")[0].Quantity)
	assert.Less(t, g.Capital(), 20000.0)
}

func TestBuySellRoundTripByName(t *testing.T) {
	g := newTestGame(1)
	outcome, _ := run(t, g,
		"1", "Tesla", "2", // buy 2 Tesla by name
		"2", "Tesla", "1", "2", // sell lot 1, both shares
		"6",
	)

	require.Equal(t, game.OutcomeCompleted, outcome)
	assert.True(t, g.Portfolio().Empty())
	assert.InDelta(t, 20000, g.Capital(), 1e-9)
}

func TestInsufficientFundsReported(t *testing.T) {
	g := newTestGame(1)
	_, out := run(t, g, "1", "1", "999999", "7")

	assert.Contains(t, out, "Buy rejected")
	assert.Contains(t, out, "insufficient funds")
	assert.Equal(t, 20000.0, g.Capital())
}

func TestSellWithoutHoldingsReported(t *testing.T) {
	g := newTestGame(1)
	_, out := run(t, g, "2", "Apple", "7")

	assert.Contains(t, out, "You own no Apple shares")
}

func TestOversellRejectedAndLotUnchanged(t *testing.T) {
	g := newTestGame(1)
	_, out := run(t, g,
		"1", "1", "3", // buy 3
		"2", "1", "1", "4", // try to sell 4 from lot 1
		"7",
	)

	assert.Contains(t, out, "Sell rejected")
	require.Len(t, g.Portfolio().Lots("Tesla"), 1)
	assert.Equal(t, 3, g.Portfolio().Lots("Tesla")[0].Quantity)
}

func TestInvalidMenuInputReprompts(t *testing.T) {
	g := newTestGame(1)
	_, out := run(t, g, "99", "banana", "7")

	assert.Contains(t, out, "Invalid input. Please try again.")
}

func TestViewsRender(t *testing.T) {
	g := newTestGame(1)
	_, out := run(t, g,
		"1", "1", "2", // hold something so the portfolio view has rows
		"3", // portfolio + worth chart
		"4", // today's prices
		"5", "1", // index chart for Tesla
		"7",
	)

	assert.Contains(t, out, "PORTFOLIO OVERVIEW")
	assert.Contains(t, out, "TOTAL WORTH HISTORY")
	assert.Contains(t, out, "TODAY'S PRICES")
	assert.Contains(t, out, "Price history for Tesla")
}

func TestEOFQuitsGracefully(t *testing.T) {
	g := newTestGame(50)
	outcome, _ := run(t, g) // single blank line, then EOF

	assert.Equal(t, game.OutcomeQuit, outcome)
}
