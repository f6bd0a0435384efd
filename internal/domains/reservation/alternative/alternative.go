// Package alternative lists other tables and nearby times for a reservation
// that already conflicts. Unlike ranking, unavailable options are kept and
// flagged so a resolution dialog can explain them.
package alternative

import (
	"cmp"
	"slices"
	"strings"

	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/slots"
)

// DefaultOffsets are the shifts tried by Times, in minutes.
var DefaultOffsets = []int{-30, -15, 15, 30}

type Finder struct {
	checker conflict.Checker
}

func New(checker conflict.Checker) Finder {
	return Finder{checker: checker}
}

// Tables evaluates the reservation on every other table able to seat the
// party. excludeTableID is usually the reservation's current table.
func (f Finder) Tables(
	reservation model.Reservation,
	tables []model.Table,
	reservations []model.Reservation,
	sectors []model.Sector,
	excludeTableID string,
) []model.AlternativeTable {
	res := []model.AlternativeTable{}

	for _, table := range tables {
		if excludeTableID != "" && table.ID == excludeTableID {
			continue
		}

		if !table.Capacity.Fits(reservation.PartySize) {
			continue
		}

		result := f.checker.All(reservation.OnTable(table.ID), reservations, table, reservation.ID)

		res = append(res, model.AlternativeTable{
			Table:       table,
			Sector:      model.FindSector(sectors, table.SectorID),
			HasConflict: result.HasConflict,
			Conflict:    result,
		})
	}

	slices.SortStableFunc(res, CompareTables)

	return res
}

// Times shifts the reservation by each offset on the given table. Shifts
// leaving service hours are dropped; the rest are flagged.
func (f Finder) Times(
	reservation model.Reservation,
	reservations []model.Reservation,
	table model.Table,
	offsets []int,
) []model.AlternativeTime {
	res := []model.AlternativeTime{}

	if offsets == nil {
		offsets = DefaultOffsets
	}

	for _, offset := range offsets {
		if offset == 0 {
			continue
		}

		shifted := reservation.OnTable(table.ID).Shift(offset)
		if f.checker.ServiceHours(shifted.StartTime, shifted.EndTime).HasConflict {
			continue
		}

		result := f.checker.All(shifted, reservations, table, reservation.ID)

		res = append(res, model.AlternativeTime{
			StartTime:     shifted.StartTime,
			EndTime:       shifted.EndTime,
			OffsetMinutes: offset,
			Label:         slots.OffsetLabel(offset),
			HasConflict:   result.HasConflict,
			Conflict:      result,
		})
	}

	slices.SortStableFunc(res, CompareTimes)

	return res
}

// CompareTables puts conflict-free tables first, then sorts by name.
func CompareTables(a, b model.AlternativeTable) int {
	if c := compareConflict(a.HasConflict, b.HasConflict); c != 0 {
		return c
	}

	if c := strings.Compare(a.Table.Name, b.Table.Name); c != 0 {
		return c
	}

	return cmp.Compare(a.Table.ID, b.Table.ID)
}

// CompareTimes puts conflict-free shifts first, then the smallest shift, and
// the earlier one when two shifts are equally far.
func CompareTimes(a, b model.AlternativeTime) int {
	if c := compareConflict(a.HasConflict, b.HasConflict); c != 0 {
		return c
	}

	if c := cmp.Compare(abs(a.OffsetMinutes), abs(b.OffsetMinutes)); c != 0 {
		return c
	}

	return cmp.Compare(a.OffsetMinutes, b.OffsetMinutes)
}

func compareConflict(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
