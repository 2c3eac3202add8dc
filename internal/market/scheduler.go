package market

// PlanMegaEvents lays out the mega-events for a game of totalDays
// days: exactly four regimes alternating bull, bear, bull, bear,
// evenly spaced at totalDays/5 with an independent random duration of
// 3-6 days each. Durations never exceed the spacing for any game of
// 30+ days, so at most one event is active on a given day.
func PlanMegaEvents(totalDays int, rng Rand) []MegaEvent {
	const numEvents = 4
	spacing := totalDays / (numEvents + 1)

	events := make([]MegaEvent, 0, numEvents)
	kind := Bull
	for i := 0; i < numEvents; i++ {
		events = append(events, MegaEvent{
			Type:     kind,
			StartDay: (i + 1) * spacing,
			Duration: 3 + rng.Intn(4),
		})
		if kind == Bull {
			kind = Bear
		} else {
			kind = Bull
		}
	}
	return events
}

// activeMegaEvent returns the first scheduled event covering day.
func activeMegaEvent(schedule []MegaEvent, day int) *MegaEvent {
	for i := range schedule {
		if schedule[i].Active(day) {
			return &schedule[i]
		}
	}
	return nil
}
