// Package cli is the line-oriented front end: numbered menus, digit
// validated input, re-prompt on anything invalid. It drives a
// game.Game one day at a time and never touches os.Stdin/Stdout
// directly, so sessions can be scripted in tests.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davezimmer/floortrader/internal/game"
	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/internal/view"
)

// CLI runs one interactive game session.
type CLI struct {
	game *game.Game
	in   *bufio.Scanner
	out  io.Writer
}

// New wires a session over the given reader and writer.
func New(g *game.Game, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		game: g,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run plays the game to its end and returns the outcome. Invalid
// input is reported and re-prompted; it never aborts the loop.
func (c *CLI) Run() game.Outcome {
	g := c.game
	view.Banner(c.out, g.TotalDays(), g.Capital(), catalog(g))

	for !g.Done() {
		report, err := g.BeginDay()
		if err != nil {
			break
		}
		view.DayHeader(c.out, report.Day)
		view.Headlines(c.out, report)
		view.DailyPrices(c.out, g.Market().Symbols, g.Market().Prices, g.PrevPrices())

		c.playerActions()
	}

	if g.Outcome() == game.OutcomeCompleted {
		view.FinalReport(c.out, g.TotalWorth())
		view.PortfolioOverview(c.out,
			g.Portfolio().Positions(g.Market().Symbols, g.Market().Prices),
			g.Market().Prices, g.Capital())
	}
	return g.Outcome()
}

// playerActions loops on the day's menu until the player advances
// the day or quits.
func (c *CLI) playerActions() {
	g := c.game
	for {
		c.printMenu()
		choice, ok := c.prompt("Choose an action: ")
		if !ok {
			// Input stream ended; treat as quit.
			g.Quit()
			return
		}

		switch choice {
		case "1":
			c.handleBuy()
		case "2":
			c.handleSell()
		case "3":
			view.PortfolioOverview(c.out,
				g.Portfolio().Positions(g.Market().Symbols, g.Market().Prices),
				g.Market().Prices, g.Capital())
			fmt.Fprint(c.out, view.TotalWorthChart(g.TotalHistory(), g.TotalDays()))
		case "4":
			view.DailyPrices(c.out, g.Market().Symbols, g.Market().Prices, g.PrevPrices())
		case "5":
			c.handleIndex()
		case "6":
			if err := g.EndDay(); err == nil {
				return
			}
		case "7":
			fmt.Fprintln(c.out, "Quitting the game. Thanks for playing!")
			g.Quit()
			return
		default:
			fmt.Fprintln(c.out, "Invalid input. Please try again.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out, "\n"+strings.Repeat("-", 60))
	fmt.Fprintln(c.out, "ACTIONS")
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
	fmt.Fprintln(c.out, "1: Buy")
	fmt.Fprintln(c.out, "2: Sell")
	fmt.Fprintln(c.out, "3: View portfolio")
	fmt.Fprintln(c.out, "4: View today's prices")
	fmt.Fprintln(c.out, "5: View stock index")
	fmt.Fprintln(c.out, "6: Start next day")
	fmt.Fprintln(c.out, "7: Quit game")
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
}

func (c *CLI) handleBuy() {
	g := c.game
	fmt.Fprintf(c.out, "Current capital: %.2f\n", g.Capital())
	sym, ok := c.chooseStock()
	if !ok {
		return
	}

	amount, ok := c.promptQuantity(fmt.Sprintf("How many %s shares to buy?: ", sym))
	if !ok {
		return
	}

	lot, err := g.Buy(sym, amount)
	if err != nil {
		fmt.Fprintf(c.out, "Buy rejected: %v\n", err)
		return
	}
	cost := float64(lot.Quantity) * lot.Price
	fmt.Fprintf(c.out, "Bought %d %s shares for %.2f. Remaining capital: %.2f\n",
		lot.Quantity, sym, cost, g.Capital())
}

func (c *CLI) handleSell() {
	g := c.game
	sym, ok := c.chooseStock()
	if !ok {
		return
	}
	lots := g.Portfolio().Lots(sym)
	if len(lots) == 0 {
		fmt.Fprintf(c.out, "You own no %s shares.\n", sym)
		return
	}

	fmt.Fprintf(c.out, "\nYour %s purchases:\n", sym)
	for i, lot := range lots {
		fmt.Fprintf(c.out, "%d: %d shares @ %.2f\n", i+1, lot.Quantity, lot.Price)
	}

	index, ok := c.promptQuantity("Choose the lot to sell from (number): ")
	if !ok || index < 1 || index > len(lots) {
		fmt.Fprintln(c.out, "Invalid lot number!")
		return
	}

	amount, ok := c.promptQuantity(fmt.Sprintf("How many shares from this lot? (max %d): ", lots[index-1].Quantity))
	if !ok {
		return
	}

	revenue, err := g.Sell(sym, index-1, amount)
	if err != nil {
		fmt.Fprintf(c.out, "Sell rejected: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Sold %d %s shares for %.2f. New capital: %.2f\n",
		amount, sym, revenue, g.Capital())
}

func (c *CLI) handleIndex() {
	g := c.game
	sym, ok := c.chooseStock()
	if !ok {
		return
	}
	fmt.Fprint(c.out, view.StockIndexChart(sym, g.Market().History[sym], g.TotalDays()))
}

// chooseStock asks for a stock by list number or name, re-prompting
// until the answer is valid or input runs out.
func (c *CLI) chooseStock() (market.Symbol, bool) {
	g := c.game
	for {
		fmt.Fprintln(c.out, "\nChoose a stock:")
		for i, sym := range g.Market().Symbols {
			fmt.Fprintf(c.out, "%d: %s\n", i+1, sym)
		}
		answer, ok := c.prompt("Enter the number or name of the stock: ")
		if !ok {
			return "", false
		}

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(g.Market().Symbols) {
			return g.Market().Symbols[n-1], true
		}
		if g.Market().Has(market.Symbol(answer)) {
			return market.Symbol(answer), true
		}
		fmt.Fprintln(c.out, "Invalid input. Please try again.")
	}
}

// promptQuantity reads one line and requires a positive integer.
func (c *CLI) promptQuantity(label string) (int, bool) {
	answer, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		fmt.Fprintln(c.out, "Invalid number. Please try again.")
		return 0, false
	}
	return n, true
}

func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func catalog(g *game.Game) []market.Stock {
	stocks := make([]market.Stock, 0, len(g.Market().Symbols))
	for _, sym := range g.Market().Symbols {
		stocks = append(stocks, market.Stock{
			Symbol:       sym,
			InitialPrice: g.Market().History[sym][0],
		})
	}
	return stocks
}
