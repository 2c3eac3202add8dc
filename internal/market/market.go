package market

import "fmt"

// Market holds the mutable per-stock state of the simulation: current
// prices, drift trends and the append-only price history. All methods
// are synchronous; the game loop is the only caller.
type Market struct {
	Symbols []Symbol // catalog order, also the daily draw order
	Prices  map[Symbol]float64
	Trends  map[Symbol]Trend
	History map[Symbol][]float64

	events map[Symbol][]CompanyEvent
}

// New creates a Market from the stock catalog. Each stock starts at
// its initial price with a randomly chosen trend, and the opening
// price is the first entry of its history.
func New(stocks []Stock, events map[Symbol][]CompanyEvent, rng Rand) *Market {
	m := &Market{
		Symbols: make([]Symbol, 0, len(stocks)),
		Prices:  make(map[Symbol]float64, len(stocks)),
		Trends:  make(map[Symbol]Trend, len(stocks)),
		History: make(map[Symbol][]float64, len(stocks)),
		events:  events,
	}
	for _, s := range stocks {
		m.Symbols = append(m.Symbols, s.Symbol)
		m.Prices[s.Symbol] = s.InitialPrice
		m.Trends[s.Symbol] = randSign(rng)
		m.History[s.Symbol] = []float64{s.InitialPrice}
	}
	return m
}

// Price returns the current price for a symbol.
func (m *Market) Price(sym Symbol) (float64, error) {
	p, ok := m.Prices[sym]
	if !ok {
		return 0, fmt.Errorf("market: unknown symbol %q", sym)
	}
	return p, nil
}

// Has reports whether the symbol is listed.
func (m *Market) Has(sym Symbol) bool {
	_, ok := m.Prices[sym]
	return ok
}

// Snapshot returns a copy of the current prices, for previous-day
// comparisons.
func (m *Market) Snapshot() map[Symbol]float64 {
	out := make(map[Symbol]float64, len(m.Prices))
	for sym, p := range m.Prices {
		out[sym] = p
	}
	return out
}

// PercentChange is the signed percentage move against the previous
// price; zero when there is no previous price.
func PercentChange(current, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (current - prev) / prev * 100
}

func randSign(rng Rand) Trend {
	if rng.Intn(2) == 0 {
		return TrendDown
	}
	return TrendUp
}
