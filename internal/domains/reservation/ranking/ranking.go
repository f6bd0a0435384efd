// Package ranking orders the tables that can seat a party at a given window.
// Lower scores are better.
package ranking

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
)

const (
	fitWeight            = 10.0
	oversizeBase         = 50.0
	oversizeWeight       = 50.0
	preferredSectorBonus = -5.0
)

type Options struct {
	PartySize          int
	StartTime          time.Time
	DurationMinutes    int
	Existing           []model.Reservation
	Tables             []model.Table
	Sectors            []model.Sector
	PreferredSectorIDs []string

	// ExcludeReservationID ignores one existing reservation, used when
	// re-seating a reservation that is already on the timeline.
	ExcludeReservationID string
}

type Ranker struct {
	checker conflict.Checker
}

func New(checker conflict.Checker) Ranker {
	return Ranker{checker: checker}
}

// Suggest returns the tables free at the requested window, best fit first.
// Tables that are too small never appear. Tables whose minimum exceeds the
// party are kept but penalised.
func (r Ranker) Suggest(opts Options) []model.TableSuggestion {
	res := []model.TableSuggestion{}

	if opts.PartySize <= 0 || opts.DurationMinutes <= 0 || opts.StartTime.IsZero() {
		return res
	}

	for _, table := range opts.Tables {
		if table.Capacity.Max < opts.PartySize {
			continue
		}

		candidate := model.NewCandidate("", table.ID, opts.PartySize, opts.StartTime, opts.DurationMinutes)
		if r.checker.Availability(candidate, opts.Existing, opts.ExcludeReservationID).HasConflict {
			continue
		}

		res = append(res, suggestion(table, opts))
	}

	slices.SortStableFunc(res, CompareSuggestions)

	return res
}

// CompareSuggestions orders by score, then by the table's sort order, then by
// table id so equal scores still give a stable ranking.
func CompareSuggestions(a, b model.TableSuggestion) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}

	if c := cmp.Compare(a.Table.SortOrder, b.Table.SortOrder); c != 0 {
		return c
	}

	return cmp.Compare(a.Table.ID, b.Table.ID)
}

func suggestion(table model.Table, opts Options) model.TableSuggestion {
	size, sizeReason := SizeScore(opts.PartySize, table.Capacity)
	sector := model.FindSector(opts.Sectors, table.SectorID)

	res := model.TableSuggestion{
		Table:   table,
		Score:   size,
		Reasons: []string{sizeReason},
		Sector:  sector,
	}

	if slices.Contains(opts.PreferredSectorIDs, table.SectorID) {
		res.Score += preferredSectorBonus
		res.Reasons = append(res.Reasons, "Preferred sector: "+sectorName(sector, table.SectorID))
	}

	return res
}

// SizeScore rates how tightly a capacity range brackets the party. A table
// whose maximum equals the party scores 0; unused headroom grows the score up
// to 10. A table whose minimum is above the party starts at 50.
func SizeScore(partySize int, capacity model.Capacity) (float64, string) {
	if partySize < capacity.Min {
		waste := float64(capacity.Min-partySize) / float64(max(capacity.Min, 1))

		return oversizeBase + waste*oversizeWeight,
			fmt.Sprintf("Larger than needed: seats %d-%d guests", capacity.Min, capacity.Max)
	}

	waste := float64(capacity.Max-partySize) / float64(max(capacity.Max-capacity.Min, 1))

	if capacity.Max == partySize {
		return waste * fitWeight, fmt.Sprintf("Perfect fit for %d guests", partySize)
	}

	return waste * fitWeight,
		fmt.Sprintf("Fits %d-%d guests, %d seats spare", capacity.Min, capacity.Max, capacity.Max-partySize)
}

func sectorName(sector *model.Sector, id string) string {
	if sector == nil || sector.Name == "" {
		return id
	}

	return sector.Name
}
