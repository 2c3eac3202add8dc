package market

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMegaEventsLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	events := PlanMegaEvents(50, rng)

	require.Len(t, events, 4)

	wantStarts := []int{10, 20, 30, 40}
	wantTypes := []MegaEventType{Bull, Bear, Bull, Bear}
	for i, ev := range events {
		assert.Equal(t, wantStarts[i], ev.StartDay, "event %d start", i)
		assert.Equal(t, wantTypes[i], ev.Type, "event %d type", i)
		assert.GreaterOrEqual(t, ev.Duration, 3, "event %d duration", i)
		assert.LessOrEqual(t, ev.Duration, 6, "event %d duration", i)
	}
}

func TestPlanMegaEventsNeverOverlap(t *testing.T) {
	// Spacing is totalDays/5 and durations top out at 6, so for any
	// game of 30+ days no two events can cover the same day.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		events := PlanMegaEvents(50, rng)
		for day := 1; day <= 50; day++ {
			active := 0
			for _, ev := range events {
				if ev.Active(day) {
					active++
				}
			}
			assert.LessOrEqual(t, active, 1, "seed %d day %d", seed, day)
		}
	}
}

func TestMegaEventActiveRange(t *testing.T) {
	ev := MegaEvent{Type: Bull, StartDay: 10, Duration: 3}

	assert.False(t, ev.Active(9))
	assert.True(t, ev.Active(10))
	assert.True(t, ev.Active(12))
	assert.False(t, ev.Active(13))
}
