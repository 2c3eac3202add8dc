package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davezimmer/floortrader/internal/market"
)

func TestBuyAppendsLotsInOrder(t *testing.T) {
	p := New()

	first, err := p.Buy("Tesla", 5, 300)
	require.NoError(t, err)
	second, err := p.Buy("Tesla", 3, 310)
	require.NoError(t, err)

	lots := p.Lots("Tesla")
	require.Len(t, lots, 2)
	assert.Equal(t, first.ID, lots[0].ID)
	assert.Equal(t, second.ID, lots[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 5, lots[0].Quantity)
	assert.Equal(t, 300.0, lots[0].Price)
}

func TestBuyRejectsNonPositiveQuantity(t *testing.T) {
	p := New()

	_, err := p.Buy("Tesla", 0, 300)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = p.Buy("Tesla", -2, 300)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, p.Empty())
}

func TestSellPartialAndFull(t *testing.T) {
	p := New()
	_, err := p.Buy("Apple", 10, 200)
	require.NoError(t, err)

	revenue, err := p.Sell("Apple", 0, 4, 210)
	require.NoError(t, err)
	assert.Equal(t, 4*210.0, revenue)
	require.Len(t, p.Lots("Apple"), 1)
	assert.Equal(t, 6, p.Lots("Apple")[0].Quantity)

	// Selling the remainder removes the lot.
	_, err = p.Sell("Apple", 0, 6, 210)
	require.NoError(t, err)
	assert.Empty(t, p.Lots("Apple"))
	assert.True(t, p.Empty())
}

func TestSellRejectionsLeaveLotUnchanged(t *testing.T) {
	p := New()
	_, err := p.Buy("Apple", 10, 200)
	require.NoError(t, err)

	_, err = p.Sell("Apple", 0, 11, 210)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = p.Sell("Apple", 0, 0, 210)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = p.Sell("Apple", 1, 1, 210)
	assert.ErrorIs(t, err, ErrInvalidLot)
	_, err = p.Sell("Tesla", 0, 1, 210)
	assert.ErrorIs(t, err, ErrInvalidLot)

	require.Len(t, p.Lots("Apple"), 1)
	assert.Equal(t, 10, p.Lots("Apple")[0].Quantity)
}

func TestValueAndGainLoss(t *testing.T) {
	p := New()
	_, err := p.Buy("Tesla", 2, 300)
	require.NoError(t, err)
	_, err = p.Buy("Tesla", 1, 320)
	require.NoError(t, err)
	_, err = p.Buy("Apple", 5, 200)
	require.NoError(t, err)

	prices := map[market.Symbol]float64{"Tesla": 310, "Apple": 190}

	assert.InDelta(t, 2*310+1*310+5*190, p.Value(prices), 1e-9)
	assert.InDelta(t, 2*10+1*(-10)+5*(-10), p.GainLoss(prices), 1e-9)
}

func TestPositionsFollowSymbolOrder(t *testing.T) {
	p := New()
	_, err := p.Buy("Apple", 5, 200)
	require.NoError(t, err)
	_, err = p.Buy("Tesla", 2, 300)
	require.NoError(t, err)

	prices := map[market.Symbol]float64{"Tesla": 310, "Apple": 190}
	order := []market.Symbol{"Tesla", "Apple", "Amazon"}

	positions := p.Positions(order, prices)
	require.Len(t, positions, 2)
	assert.Equal(t, market.Symbol("Tesla"), positions[0].Symbol)
	assert.Equal(t, market.Symbol("Apple"), positions[1].Symbol)
	assert.Equal(t, 5, positions[1].Quantity)
	assert.InDelta(t, 5*190.0, positions[1].Value, 1e-9)
	assert.InDelta(t, -50.0, positions[1].GainLoss, 1e-9)
}
