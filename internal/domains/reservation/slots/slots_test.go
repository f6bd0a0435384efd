package slots_test

import (
	"testing"
	"time"

	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/schedule"
	"reservo/internal/domains/reservation/slots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requested = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newSearcher() slots.Searcher {
	return slots.New(conflict.New(schedule.Default()))
}

func labels(candidates []model.TimeSlotCandidate) []string {
	res := make([]string, len(candidates))
	for i, c := range candidates {
		res[i] = c.Label
	}

	return res
}

func TestFindNextAvailableSkipsConflicts(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}
	existing := []model.Reservation{model.NewCandidate("R1", "T1", 2, requested.Add(-time.Hour), 75)}

	res := newSearcher().FindNextAvailable(table, requested, 90, 2, existing, nil)

	require.Len(t, res, 3)
	assert.Equal(t, []string{"+15 min", "+30 min", "+60 min"}, labels(res))
	assert.Equal(t, requested.Add(15*time.Minute), res[0].StartTime)
	assert.Equal(t, requested.Add(105*time.Minute), res[0].EndTime)
	assert.Equal(t, 90, res[0].DurationMinutes)
	assert.Equal(t, "T1", res[0].Table.ID)
}

func TestFindNextAvailableChronological(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}

	res := newSearcher().FindNextAvailable(table, requested, 90, 2, nil, []int{30, 15})

	assert.Equal(t, []string{"-30 min", "-15 min", "Requested time", "+15 min", "+30 min"}, labels(res))

	for i := 1; i < len(res); i++ {
		assert.True(t, res[i-1].StartTime.Before(res[i].StartTime))
	}
}

func TestFindNextAvailableRespectsHoursAndCapacity(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}

	t.Run("late request keeps shifts ending after midnight", func(t *testing.T) {
		late := time.Date(2025, 3, 15, 22, 45, 0, 0, time.UTC)

		res := newSearcher().FindNextAvailable(table, late, 90, 2, nil, []int{15})

		assert.Equal(t, []string{"-15 min", "Requested time", "+15 min"}, labels(res))
		assert.Equal(t, time.Date(2025, 3, 16, 0, 30, 0, 0, time.UTC), res[2].EndTime)
	})

	t.Run("early shift before opening is dropped", func(t *testing.T) {
		early := time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC)

		res := newSearcher().FindNextAvailable(table, early, 90, 2, nil, []int{15})

		assert.Equal(t, []string{"Requested time", "+15 min"}, labels(res))
	})

	t.Run("party too large for the table", func(t *testing.T) {
		assert.Empty(t, newSearcher().FindNextAvailable(table, requested, 90, 6, nil, nil))
	})
}

func TestFindNextAvailableInvalidInput(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}
	searcher := newSearcher()

	tests := []struct {
		name     string
		start    time.Time
		duration int
		party    int
	}{
		{name: "zero party", start: requested, duration: 90, party: 0},
		{name: "negative duration", start: requested, duration: -15, party: 2},
		{name: "missing start", duration: 90, party: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := searcher.FindNextAvailable(table, tt.start, tt.duration, tt.party, nil, nil)

			assert.NotNil(t, res)
			assert.Empty(t, res)
		})
	}
}

func TestFindNextAvailableAcrossAllTables(t *testing.T) {
	tables := []model.Table{
		{ID: "T1", SortOrder: 1, Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T2", SortOrder: 2, Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T3", SortOrder: 3, Capacity: model.Capacity{Min: 6, Max: 8}},
	}
	existing := []model.Reservation{
		model.NewCandidate("R1", "T1", 2, requested.Add(-time.Hour), 75),
		model.NewCandidate("R2", "T2", 2, requested.Add(30*time.Minute), 120),
	}

	res := newSearcher().FindNextAvailableAcrossAllTables(tables, requested, 90, 3, existing, nil)

	require.NotEmpty(t, res)

	for i, slot := range res {
		assert.NotEqual(t, "T3", slot.Table.ID)

		for _, r := range existing {
			if r.TableID != slot.Table.ID {
				continue
			}

			overlaps := slot.StartTime.Before(r.EndTime) && r.StartTime.Before(slot.EndTime)
			assert.False(t, overlaps, "slot %s on %s overlaps %s", slot.Label, slot.Table.ID, r.ID)
		}

		if i > 0 {
			assert.False(t, res[i].StartTime.Before(res[i-1].StartTime))
		}
	}

	t.Run("same start time keeps table order", func(t *testing.T) {
		res := newSearcher().FindNextAvailableAcrossAllTables(tables[:2], requested, 30, 2, nil, []int{15})

		require.Len(t, res, 6)
		assert.Equal(t, "T1", res[0].Table.ID)
		assert.Equal(t, "T2", res[1].Table.ID)
	})
}

func TestOffsetLabel(t *testing.T) {
	assert.Equal(t, "Requested time", slots.OffsetLabel(0))
	assert.Equal(t, "+15 min", slots.OffsetLabel(15))
	assert.Equal(t, "-30 min", slots.OffsetLabel(-30))
}
