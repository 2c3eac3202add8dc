package market

// Symbol identifies a listed stock.
type Symbol string

// Trend is the per-stock signed bias applied to routine daily drift.
// It is always +1 or -1.
type Trend int8

const (
	TrendUp   Trend = 1
	TrendDown Trend = -1
)

// Stock is a catalog entry: a listed company and its opening price.
type Stock struct {
	Symbol       Symbol
	InitialPrice float64
}

// MegaEventType distinguishes market-wide bull and bear regimes.
type MegaEventType uint8

const (
	Bull MegaEventType = iota
	Bear
)

func (t MegaEventType) String() string {
	switch t {
	case Bull:
		return "bull market"
	case Bear:
		return "bear market"
	default:
		return "unknown"
	}
}

// MegaEvent is a scheduled multi-day market-wide regime. Immutable
// once planned.
type MegaEvent struct {
	Type     MegaEventType
	StartDay int
	Duration int
}

// Active reports whether the event covers the given day. The covered
// range is [StartDay, StartDay+Duration).
func (e MegaEvent) Active(day int) bool {
	return e.StartDay <= day && day < e.StartDay+e.Duration
}

// CompanyEvent is a single-day scripted narrative event for one stock
// with a percentage price-effect range.
type CompanyEvent struct {
	Headline  string
	EffectLow float64
	EffectHi  float64
}

// Rand is the slice of math/rand the simulation draws from.
// *rand.Rand satisfies it; tests may script the draws.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Headline is one entry in a day's event log.
type Headline struct {
	Symbol Symbol // empty for market-wide notices
	Text   string
}

// DayReport is what a single price update produces: the day's
// headlines plus the active mega-event, if any.
type DayReport struct {
	Day       int
	Headlines []Headline
	Mega      *MegaEvent
}
