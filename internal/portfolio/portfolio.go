// Package portfolio tracks the player's open lots and values them
// against current market prices.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/davezimmer/floortrader/internal/market"
)

var (
	// ErrInvalidLot is returned when a sell targets a lot index that
	// does not exist for the symbol.
	ErrInvalidLot = errors.New("portfolio: invalid lot selection")
	// ErrInvalidQuantity is returned when a buy or sell quantity is
	// non-positive or a sell exceeds the lot's remaining quantity.
	ErrInvalidQuantity = errors.New("portfolio: invalid quantity")
)

// Lot is one discrete purchase: a quantity of a stock bought at a
// price. Quantity is decremented by partial sells; a lot is removed
// the moment it reaches zero.
type Lot struct {
	ID       string
	Symbol   market.Symbol
	Quantity int
	Price    float64
}

// Value is the lot's worth at the given market price.
func (l Lot) Value(price float64) float64 {
	return float64(l.Quantity) * price
}

// GainLoss is the lot's unrealized profit at the given market price.
func (l Lot) GainLoss(price float64) float64 {
	return float64(l.Quantity) * (price - l.Price)
}

// Portfolio maps symbols to their open lots in purchase order.
type Portfolio struct {
	lots map[market.Symbol][]Lot
}

// New returns an empty portfolio.
func New() *Portfolio {
	return &Portfolio{lots: make(map[market.Symbol][]Lot)}
}

// Buy appends a new lot. The caller is responsible for the funds
// check; capital belongs to the game state, not the portfolio.
func (p *Portfolio) Buy(sym market.Symbol, quantity int, price float64) (Lot, error) {
	if quantity <= 0 {
		return Lot{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	lot := Lot{
		ID:       uuid.New().String(),
		Symbol:   sym,
		Quantity: quantity,
		Price:    price,
	}
	p.lots[sym] = append(p.lots[sym], lot)
	return lot, nil
}

// Sell removes quantity shares from the lot at index (purchase
// order) and returns the revenue at the current price. A sell that
// exceeds the lot's remaining quantity is rejected with no state
// change; a lot sold down to zero is removed.
func (p *Portfolio) Sell(sym market.Symbol, index, quantity int, price float64) (float64, error) {
	lots := p.lots[sym]
	if index < 0 || index >= len(lots) {
		return 0, fmt.Errorf("%w: %s lot %d", ErrInvalidLot, sym, index+1)
	}
	if quantity <= 0 || quantity > lots[index].Quantity {
		return 0, fmt.Errorf("%w: %d (lot holds %d)", ErrInvalidQuantity, quantity, lots[index].Quantity)
	}

	lots[index].Quantity -= quantity
	if lots[index].Quantity == 0 {
		p.lots[sym] = append(lots[:index], lots[index+1:]...)
	}
	return float64(quantity) * price, nil
}

// Lots returns the open lots for a symbol in purchase order.
func (p *Portfolio) Lots(sym market.Symbol) []Lot {
	return p.lots[sym]
}

// Empty reports whether no lots are open at all.
func (p *Portfolio) Empty() bool {
	for _, lots := range p.lots {
		if len(lots) > 0 {
			return false
		}
	}
	return true
}

// Value sums quantity * current price over every open lot.
func (p *Portfolio) Value(prices map[market.Symbol]float64) float64 {
	var total float64
	for sym, lots := range p.lots {
		for _, lot := range lots {
			total += lot.Value(prices[sym])
		}
	}
	return total
}

// GainLoss sums quantity * (current - purchase price) over every
// open lot.
func (p *Portfolio) GainLoss(prices map[market.Symbol]float64) float64 {
	var total float64
	for sym, lots := range p.lots {
		for _, lot := range lots {
			total += lot.GainLoss(prices[sym])
		}
	}
	return total
}

// Position is the aggregate view of one symbol's open lots.
type Position struct {
	Symbol   market.Symbol
	Lots     []Lot
	Quantity int
	Value    float64
	GainLoss float64
}

// Positions returns per-symbol summaries ordered by the given symbol
// order, skipping symbols with no open lots.
func (p *Portfolio) Positions(order []market.Symbol, prices map[market.Symbol]float64) []Position {
	var out []Position
	for _, sym := range order {
		lots := p.lots[sym]
		if len(lots) == 0 {
			continue
		}
		pos := Position{Symbol: sym, Lots: lots}
		for _, lot := range lots {
			pos.Quantity += lot.Quantity
			pos.Value += lot.Value(prices[sym])
			pos.GainLoss += lot.GainLoss(prices[sym])
		}
		out = append(out, pos)
	}
	return out
}
