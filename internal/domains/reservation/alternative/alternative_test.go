package alternative_test

import (
	"testing"
	"time"

	"reservo/internal/domains/reservation/alternative"
	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC)

func newFinder() alternative.Finder {
	return alternative.New(conflict.New(schedule.Default()))
}

func TestTables(t *testing.T) {
	tables := []model.Table{
		{ID: "T1", Name: "Alpha", SectorID: "main", Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T2", Name: "Delta", SectorID: "main", Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T3", Name: "Charlie", SectorID: "terrace", Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T4", Name: "Bravo", SectorID: "main", Capacity: model.Capacity{Min: 2, Max: 4}},
		{ID: "T5", Name: "Echo", Capacity: model.Capacity{Min: 8, Max: 10}},
	}
	sectors := []model.Sector{{ID: "main", Name: "Main"}, {ID: "terrace", Name: "Terrace"}}

	target := model.NewCandidate("R1", "T1", 3, start, 90)
	reservations := []model.Reservation{
		target,
		model.NewCandidate("R2", "T1", 2, start.Add(30*time.Minute), 60),
		model.NewCandidate("R3", "T4", 2, start.Add(-30*time.Minute), 60),
	}

	res := newFinder().Tables(target, tables, reservations, sectors, "T1")

	require.Len(t, res, 3)

	names := []string{res[0].Table.Name, res[1].Table.Name, res[2].Table.Name}
	assert.Equal(t, []string{"Charlie", "Delta", "Bravo"}, names)

	assert.False(t, res[0].HasConflict)
	require.NotNil(t, res[0].Sector)
	assert.Equal(t, "Terrace", res[0].Sector.Name)

	assert.True(t, res[2].HasConflict)
	assert.Equal(t, model.ReasonOverlap, res[2].Conflict.Reason)
	assert.Equal(t, []string{"R3"}, res[2].Conflict.ConflictingReservationIDs)
}

func TestTablesWithoutExclusion(t *testing.T) {
	tables := []model.Table{{ID: "T1", Name: "Alpha", Capacity: model.Capacity{Min: 2, Max: 4}}}
	target := model.NewCandidate("R1", "T1", 3, start, 90)

	res := newFinder().Tables(target, tables, []model.Reservation{target}, nil, "")

	require.Len(t, res, 1)
	assert.False(t, res[0].HasConflict)
	assert.Nil(t, res[0].Sector)
}

func TestTimes(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}
	target := model.NewCandidate("R1", "T1", 2, start, 90)
	reservations := []model.Reservation{
		target,
		model.NewCandidate("R2", "T1", 2, start.Add(-60*time.Minute), 45),
	}

	res := newFinder().Times(target, reservations, table, nil)

	require.Len(t, res, 4)

	offsets := make([]int, len(res))
	for i, alt := range res {
		offsets[i] = alt.OffsetMinutes
	}

	assert.Equal(t, []int{-15, 15, 30, -30}, offsets)
	assert.False(t, res[0].HasConflict)
	assert.Equal(t, "-15 min", res[0].Label)
	assert.Equal(t, start.Add(-15*time.Minute), res[0].StartTime)
	assert.Equal(t, start.Add(75*time.Minute), res[0].EndTime)

	assert.True(t, res[3].HasConflict)
	assert.Equal(t, []string{"R2"}, res[3].Conflict.ConflictingReservationIDs)
}

func TestTimesDropsShiftsOutsideServiceHours(t *testing.T) {
	table := model.Table{ID: "T1", Capacity: model.Capacity{Min: 2, Max: 4}}
	target := model.NewCandidate("R1", "T1", 2, time.Date(2025, 3, 15, 11, 15, 0, 0, time.UTC), 60)

	res := newFinder().Times(target, nil, table, []int{-30, -15, 15, 30})

	offsets := make([]int, len(res))
	for i, alt := range res {
		offsets[i] = alt.OffsetMinutes
	}

	assert.Equal(t, []int{-15, 15, 30}, offsets)
}
