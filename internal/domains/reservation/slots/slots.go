// Package slots finds the nearest free start times around a requested time.
package slots

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
)

const LabelRequested = "Requested time"

// DefaultOffsets are probed on both sides of the requested time.
var DefaultOffsets = []int{15, 30, 60}

type Searcher struct {
	checker conflict.Checker
}

func New(checker conflict.Checker) Searcher {
	return Searcher{checker: checker}
}

// FindNextAvailable probes the requested start and then requestedStart±offset
// for each offset, returning every free start in chronological order. Invalid
// input (non-positive party or duration, zero start) yields an empty list.
func (s Searcher) FindNextAvailable(
	table model.Table,
	requestedStart time.Time,
	durationMinutes, partySize int,
	existing []model.Reservation,
	offsets []int,
) []model.TimeSlotCandidate {
	res := []model.TimeSlotCandidate{}

	if partySize <= 0 || durationMinutes <= 0 || requestedStart.IsZero() {
		return res
	}

	if offsets == nil {
		offsets = DefaultOffsets
	}

	for _, probe := range probes(offsets) {
		start := requestedStart.Add(time.Duration(probe) * time.Minute)
		candidate := model.NewCandidate("", table.ID, partySize, start, durationMinutes)

		if s.checker.All(candidate, existing, table, "").HasConflict {
			continue
		}

		res = append(res, model.TimeSlotCandidate{
			Table:           table,
			StartTime:       candidate.StartTime,
			EndTime:         candidate.EndTime,
			DurationMinutes: durationMinutes,
			Label:           OffsetLabel(probe),
		})
	}

	slices.SortStableFunc(res, CompareCandidates)

	return res
}

// FindNextAvailableAcrossAllTables searches every table that can seat the
// party independently and merges the results chronologically.
func (s Searcher) FindNextAvailableAcrossAllTables(
	tables []model.Table,
	requestedStart time.Time,
	durationMinutes, partySize int,
	existing []model.Reservation,
	offsets []int,
) []model.TimeSlotCandidate {
	res := []model.TimeSlotCandidate{}

	for _, table := range tables {
		if !table.Capacity.Fits(partySize) {
			continue
		}

		res = append(res, s.FindNextAvailable(table, requestedStart, durationMinutes, partySize, existing, offsets)...)
	}

	slices.SortStableFunc(res, CompareCandidates)

	return res
}

// CompareCandidates orders by start time, then by table sort order and id.
func CompareCandidates(a, b model.TimeSlotCandidate) int {
	if c := a.StartTime.Compare(b.StartTime); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Table.SortOrder, b.Table.SortOrder); c != 0 {
		return c
	}

	return cmp.Compare(a.Table.ID, b.Table.ID)
}

func OffsetLabel(offset int) string {
	switch {
	case offset > 0:
		return fmt.Sprintf("+%d min", offset)
	case offset < 0:
		return fmt.Sprintf("%d min", offset)
	default:
		return LabelRequested
	}
}

// probes expands offsets into the signed deltas to try: 0 first, then +o and
// -o for each distinct magnitude.
func probes(offsets []int) []int {
	res := []int{0}
	seen := map[int]bool{0: true}

	for _, offset := range offsets {
		if offset < 0 {
			offset = -offset
		}

		if seen[offset] {
			continue
		}

		seen[offset] = true
		res = append(res, offset, -offset)
	}

	return res
}
