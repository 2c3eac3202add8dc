package market

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptRand replays a fixed sequence of draws. Intn values must be
// valid for the n they will be drawn against.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		panic("scriptRand: out of int draws")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scriptRand: draw out of range")
	}
	return v
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		panic("scriptRand: out of float draws")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func singleStockMarket(t *testing.T, price float64, trend Trend) *Market {
	t.Helper()
	// One Intn(2) draw per stock for the initial trend.
	seed := 0
	if trend == TrendUp {
		seed = 1
	}
	m := New(
		[]Stock{{Symbol: "Tesla", InitialPrice: price}},
		CompanyEvents(),
		&scriptRand{ints: []int{seed}},
	)
	require.Equal(t, trend, m.Trends["Tesla"])
	return m
}

func TestUpdatePricesPureDrift(t *testing.T) {
	m := singleStockMarket(t, 300, TrendUp)

	// Draws: base Intn(10)=6 → drift +7, event roll Intn(10)=9 →
	// no event, trend roll Intn(5)=1 → trend kept.
	rng := &scriptRand{ints: []int{6, 9, 1}}
	report := m.UpdatePrices(1, nil, rng)

	assert.Equal(t, 307.0, m.Prices["Tesla"])
	assert.Empty(t, report.Headlines)
	assert.Nil(t, report.Mega)
	assert.Equal(t, []float64{300, 307}, m.History["Tesla"])
	assert.Equal(t, TrendUp, m.Trends["Tesla"])
}

func TestUpdatePricesBearMegaEvent(t *testing.T) {
	m := singleStockMarket(t, 2, TrendDown)
	schedule := []MegaEvent{{Type: Bear, StartDay: 1, Duration: 3}}

	// base -10, bear swing -15, no company event, no trend flip:
	// max(1, 2-25) clamps to the floor.
	rng := &scriptRand{ints: []int{9, 10, 9, 1}}
	report := m.UpdatePrices(1, schedule, rng)

	assert.Equal(t, 1.0, m.Prices["Tesla"])
	require.NotNil(t, report.Mega)
	assert.Equal(t, Bear, report.Mega.Type)
	require.Len(t, report.Headlines, 1)
	assert.Contains(t, report.Headlines[0].Text, "bear market")
}

func TestUpdatePricesCompanyEventReplacesDrift(t *testing.T) {
	m := singleStockMarket(t, 200, TrendUp)

	// base +10 is drawn but must be discarded: the event roll fires
	// (Intn(10)=0 → 1 ≤ 3), picks catalog entry 0 and draws the
	// effect at the middle of its range.
	rng := &scriptRand{ints: []int{9, 0, 0, 1}, floats: []float64{0.5}}
	report := m.UpdatePrices(1, nil, rng)

	catalog := CompanyEvents()["Tesla"][0]
	effect := catalog.EffectLow + 0.5*(catalog.EffectHi-catalog.EffectLow)
	assert.InDelta(t, 200*(1+effect/100), m.Prices["Tesla"], 1e-9)

	require.Len(t, report.Headlines, 1)
	assert.Equal(t, Symbol("Tesla"), report.Headlines[0].Symbol)
	assert.Contains(t, report.Headlines[0].Text, catalog.Headline)
}

func TestUpdatePricesTrendReroll(t *testing.T) {
	m := singleStockMarket(t, 300, TrendUp)

	// Trend roll Intn(5)=0 → 1-in-5 hit, fresh sign Intn(2)=0 → down.
	rng := &scriptRand{ints: []int{4, 9, 0, 0}}
	m.UpdatePrices(1, nil, rng)

	assert.Equal(t, TrendDown, m.Trends["Tesla"])
}

func TestUpdatePricesClampOverManyDays(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := New(DefaultStocks(), CompanyEvents(), rng)
	schedule := PlanMegaEvents(50, rng)

	for day := 1; day <= 50; day++ {
		m.UpdatePrices(day, schedule, rng)
		for _, sym := range m.Symbols {
			assert.GreaterOrEqual(t, m.Prices[sym], 1.0, "symbol %s day %d", sym, day)
		}
	}

	// History got one entry per day on top of the opening price.
	for _, sym := range m.Symbols {
		assert.Len(t, m.History[sym], 51)
	}
}

func TestUpdatePricesDeterministicForSeed(t *testing.T) {
	run := func() map[Symbol]float64 {
		rng := rand.New(rand.NewSource(99))
		m := New(DefaultStocks(), CompanyEvents(), rng)
		schedule := PlanMegaEvents(50, rng)
		for day := 1; day <= 50; day++ {
			m.UpdatePrices(day, schedule, rng)
		}
		return m.Prices
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsACopy(t *testing.T) {
	m := singleStockMarket(t, 300, TrendUp)
	snap := m.Snapshot()
	m.Prices["Tesla"] = 100

	assert.Equal(t, 300.0, snap["Tesla"])
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 10, PercentChange(110, 100), 1e-9)
	assert.InDelta(t, -50, PercentChange(50, 100), 1e-9)
	assert.Zero(t, PercentChange(5, 0))
}
