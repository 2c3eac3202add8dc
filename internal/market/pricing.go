package market

import "fmt"

// UpdatePrices runs one day of the price model over every stock in
// catalog order and returns the day's report.
//
// Per stock the draws happen in a fixed order so a seeded source
// reproduces identical games:
//
//  1. base drift: trend * [1,10]
//  2. if a mega-event is active, an extra [5,15] up (bull) or
//     down (bear)
//  3. a 3-in-10 roll fires a company event; its percentage effect,
//     drawn from the event's range, then replaces the drift for the
//     day entirely
//  4. a 1-in-5 roll re-rolls the trend to a fresh random sign
//
// The drift draws are consumed even when a company event fires.
// Prices are clamped to a floor of 1.
func (m *Market) UpdatePrices(day int, schedule []MegaEvent, rng Rand) DayReport {
	report := DayReport{Day: day}
	mega := activeMegaEvent(schedule, day)

	for _, sym := range m.Symbols {
		change := float64(m.Trends[sym]) * float64(1+rng.Intn(10))

		if mega != nil {
			swing := float64(5 + rng.Intn(11))
			if mega.Type == Bull {
				change += swing
			} else {
				change -= swing
			}
		}

		// Stocks without a scripted catalog (custom configs) fall
		// back to plain drift; the roll is still consumed so the
		// draw order stays seed-stable.
		if catalog := m.events[sym]; 1+rng.Intn(10) <= 3 && len(catalog) > 0 {
			ev := catalog[rng.Intn(len(catalog))]
			effect := ev.EffectLow + rng.Float64()*(ev.EffectHi-ev.EffectLow)
			report.Headlines = append(report.Headlines, Headline{
				Symbol: sym,
				Text:   fmt.Sprintf("%s. Price moves %+.2f%%", ev.Headline, effect),
			})
			m.Prices[sym] = max(1, m.Prices[sym]*(1+effect/100))
		} else {
			m.Prices[sym] = max(1, m.Prices[sym]+change)
		}

		m.History[sym] = append(m.History[sym], m.Prices[sym])

		if 1+rng.Intn(5) == 1 {
			m.Trends[sym] = randSign(rng)
		}
	}

	if mega != nil {
		report.Mega = mega
		report.Headlines = append(report.Headlines, Headline{
			Text: fmt.Sprintf("Active %s from day %d to day %d!",
				mega.Type, mega.StartDay, mega.StartDay+mega.Duration),
		})
	}

	return report
}
