// Package game owns the day-driven simulation loop: phase
// transitions, the player's capital, and the history series. All
// state lives on the Game struct; there is no package-level state and
// no concurrency, the front ends drive the loop one call at a time.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/davezimmer/floortrader/internal/market"
	"github.com/davezimmer/floortrader/internal/portfolio"
)

var (
	// ErrInsufficientFunds rejects a buy whose cost exceeds capital.
	ErrInsufficientFunds = errors.New("game: insufficient funds")
	// ErrUnknownSymbol rejects an action on an unlisted stock.
	ErrUnknownSymbol = errors.New("game: unknown symbol")
	// ErrWrongPhase rejects a call that is invalid in the current
	// phase, e.g. trading before the day's prices are in.
	ErrWrongPhase = errors.New("game: action not valid in this phase")
)

// Phase is the simulation loop's current state.
type Phase uint8

const (
	// PhaseDayStart means the next day's price update is pending.
	PhaseDayStart Phase = iota
	// PhasePlayerAction means prices are in and the player may act.
	PhasePlayerAction
	// PhaseGameOver is terminal.
	PhaseGameOver
)

// Outcome says how a finished game ended.
type Outcome uint8

const (
	// OutcomeCompleted means all days were played.
	OutcomeCompleted Outcome = iota
	// OutcomeQuit means the player left early, forfeiting the
	// remaining days.
	OutcomeQuit
)

func (o Outcome) String() string {
	if o == OutcomeQuit {
		return "quit"
	}
	return "completed"
}

// Game is the full simulation state.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	mkt      *market.Market
	schedule []market.MegaEvent
	port     *portfolio.Portfolio

	capital      float64
	day          int
	phase        Phase
	outcome      Outcome
	prevPrices   map[market.Symbol]float64
	totalHistory []float64
}

// New sets up a fresh game at day 0: market at opening prices, empty
// portfolio, mega-events planned for the whole run, and the starting
// worth recorded as the first history entry.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mkt := market.New(cfg.Catalog(), market.CompanyEvents(), rng)
	return &Game{
		cfg:          cfg,
		rng:          rng,
		mkt:          mkt,
		schedule:     market.PlanMegaEvents(cfg.TotalDays, rng),
		port:         portfolio.New(),
		capital:      cfg.StartingCapital,
		prevPrices:   mkt.Snapshot(),
		totalHistory: []float64{cfg.StartingCapital},
	}
}

// BeginDay advances to the next day and runs the price model.
func (g *Game) BeginDay() (market.DayReport, error) {
	if g.phase != PhaseDayStart {
		return market.DayReport{}, fmt.Errorf("%w: begin day in %v", ErrWrongPhase, g.phase)
	}
	g.day++
	report := g.mkt.UpdatePrices(g.day, g.schedule, g.rng)
	g.phase = PhasePlayerAction
	return report, nil
}

// Buy purchases quantity shares at the current price as a new lot.
// It is rejected without any state change if the cost exceeds
// capital, so capital can never go negative.
func (g *Game) Buy(sym market.Symbol, quantity int) (portfolio.Lot, error) {
	if g.phase != PhasePlayerAction {
		return portfolio.Lot{}, fmt.Errorf("%w: buy in %v", ErrWrongPhase, g.phase)
	}
	price, err := g.mkt.Price(sym)
	if err != nil {
		return portfolio.Lot{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, sym)
	}
	if quantity <= 0 {
		return portfolio.Lot{}, fmt.Errorf("%w: %d", portfolio.ErrInvalidQuantity, quantity)
	}
	cost := float64(quantity) * price
	if cost > g.capital {
		return portfolio.Lot{}, fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, cost, g.capital)
	}
	lot, err := g.port.Buy(sym, quantity, price)
	if err != nil {
		return portfolio.Lot{}, err
	}
	g.capital -= cost
	return lot, nil
}

// Sell disposes quantity shares from the lot at index (purchase
// order) at the current price and credits the revenue to capital.
func (g *Game) Sell(sym market.Symbol, index, quantity int) (float64, error) {
	if g.phase != PhasePlayerAction {
		return 0, fmt.Errorf("%w: sell in %v", ErrWrongPhase, g.phase)
	}
	price, err := g.mkt.Price(sym)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, sym)
	}
	revenue, err := g.port.Sell(sym, index, quantity, price)
	if err != nil {
		return 0, err
	}
	g.capital += revenue
	return revenue, nil
}

// EndDay closes the player-action phase: the day's total worth is
// appended to the history and prices are snapshotted for the next
// day's change display. After the final day the game is over.
func (g *Game) EndDay() error {
	if g.phase != PhasePlayerAction {
		return fmt.Errorf("%w: end day in %v", ErrWrongPhase, g.phase)
	}
	g.totalHistory = append(g.totalHistory, g.TotalWorth())
	g.prevPrices = g.mkt.Snapshot()
	if g.day >= g.cfg.TotalDays {
		g.phase = PhaseGameOver
		g.outcome = OutcomeCompleted
	} else {
		g.phase = PhaseDayStart
	}
	return nil
}

// Quit ends the game immediately, forfeiting any remaining days.
func (g *Game) Quit() {
	g.phase = PhaseGameOver
	g.outcome = OutcomeQuit
}

// Done reports whether the game reached its terminal state.
func (g *Game) Done() bool { return g.phase == PhaseGameOver }

// Outcome is only meaningful once Done reports true.
func (g *Game) Outcome() Outcome { return g.outcome }

// Phase returns the loop's current state.
func (g *Game) Phase() Phase { return g.phase }

// Day is the current day, 0 before the first BeginDay.
func (g *Game) Day() int { return g.day }

// TotalDays is the configured game length.
func (g *Game) TotalDays() int { return g.cfg.TotalDays }

// Capital is the player's current cash.
func (g *Game) Capital() float64 { return g.capital }

// Market exposes the read side of the market state.
func (g *Game) Market() *market.Market { return g.mkt }

// Portfolio exposes the player's open lots.
func (g *Game) Portfolio() *portfolio.Portfolio { return g.port }

// PrevPrices are the closing prices of the previous day, used for
// daily percentage-change display.
func (g *Game) PrevPrices() map[market.Symbol]float64 { return g.prevPrices }

// TotalHistory is the per-day series of capital + portfolio value,
// starting with the pre-game worth.
func (g *Game) TotalHistory() []float64 { return g.totalHistory }

// PortfolioValue is the portfolio's worth at current prices.
func (g *Game) PortfolioValue() float64 {
	return g.port.Value(g.mkt.Prices)
}

// TotalWorth is capital plus portfolio value at current prices.
func (g *Game) TotalWorth() float64 {
	return g.capital + g.PortfolioValue()
}

func (p Phase) String() string {
	switch p {
	case PhaseDayStart:
		return "day start"
	case PhasePlayerAction:
		return "player action"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
