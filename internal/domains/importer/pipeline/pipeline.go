// Package pipeline assigns imported rows to tables one at a time. Every
// assigned row joins the reservation set the next rows are checked against,
// so the order of the rows decides which table each one gets.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"reservo/internal/domains/importer/model"
	"reservo/internal/domains/reservation/conflict"
	resModel "reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/ranking"
	"reservo/internal/domains/reservation/schedule"
	"reservo/shared/timezone"

	"github.com/google/uuid"
)

const DefaultLargeGroupSize = 8

type Pipeline struct {
	checker        conflict.Checker
	ranker         ranking.Ranker
	schedule       schedule.Config
	largeGroupSize int
	newID          func() string
}

func New(sched schedule.Config, largeGroupSize int) Pipeline {
	if largeGroupSize <= 0 {
		largeGroupSize = DefaultLargeGroupSize
	}

	checker := conflict.New(sched)

	return Pipeline{
		checker:        checker,
		ranker:         ranking.New(checker),
		schedule:       sched,
		largeGroupSize: largeGroupSize,
		newID:          uuid.NewString,
	}
}

// WithIDs replaces the id generator, mostly for deterministic tests.
func (p Pipeline) WithIDs(newID func() string) Pipeline {
	p.newID = newID

	return p
}

func (p Pipeline) Run(
	rows []model.Row,
	existing []resModel.Reservation,
	tables []resModel.Table,
	sectors []resModel.Sector,
) model.Result {
	accumulated := append([]resModel.Reservation(nil), existing...)
	res := model.Result{Rows: make([]model.RowResult, 0, len(rows))}

	for _, row := range rows {
		result := p.assign(row, accumulated, tables, sectors)
		if result.Reservation != nil {
			accumulated = append(accumulated, *result.Reservation)
		}

		res.Rows = append(res.Rows, result)
	}

	res.Reservations = accumulated

	return res
}

func (p Pipeline) assign(
	row model.Row,
	accumulated []resModel.Reservation,
	tables []resModel.Table,
	sectors []resModel.Sector,
) model.RowResult {
	if row.Invalid != "" {
		return rejected(row, model.RejectInvalidRow, row.Invalid)
	}

	if row.PartySize <= 0 {
		return rejected(row, model.RejectInvalidRow, "party size must be positive")
	}

	start, err := timezone.ParseDateTime(row.Date, row.Time)
	if err != nil {
		return rejected(row, model.RejectInvalidRow, err.Error())
	}

	duration := row.DurationMinutes
	if duration == 0 {
		duration = p.schedule.DefaultDurationMinutes
	}

	if duration < 0 {
		return rejected(row, model.RejectInvalidRow, "duration must be positive")
	}

	var table resModel.Table

	if row.Table != "" {
		found := lookupTable(tables, row.Table)
		if found == nil {
			return rejected(row, model.RejectUnknownTable, fmt.Sprintf("table %q is not on the floor plan", row.Table))
		}

		candidate := resModel.NewCandidate("", found.ID, row.PartySize, start, duration)
		if result := p.checker.All(candidate, accumulated, *found, ""); result.HasConflict {
			return rejected(row, model.RejectFromConflict(result.Reason), describe(result))
		}

		table = *found
	} else {
		suggestions := p.ranker.Suggest(ranking.Options{
			PartySize:          row.PartySize,
			StartTime:          start,
			DurationMinutes:    duration,
			Existing:           accumulated,
			Tables:             tables,
			Sectors:            sectors,
			PreferredSectorIDs: sectorIDs(sectors, row.Sector),
		})
		if len(suggestions) == 0 {
			return rejected(row, model.RejectNoTableAvailable, "no table can seat the party at that time")
		}

		table = suggestions[0].Table
	}

	reservation := p.reservation(row, table.ID, start, duration)

	return model.RowResult{
		Line:        row.Line,
		Outcome:     model.OutcomeAssigned,
		Message:     "assigned to " + tableLabel(table),
		Reservation: &reservation,
	}
}

func (p Pipeline) reservation(row model.Row, tableID string, start time.Time, duration int) resModel.Reservation {
	res := resModel.NewCandidate(p.newID(), tableID, row.PartySize, start, duration)
	res.Customer = resModel.Customer{Name: row.Name, Phone: row.Phone, Email: row.Email}
	res.Status = resModel.StatusConfirmed
	res.Notes = row.Notes

	switch {
	case row.VIP:
		res.Priority = resModel.PriorityVIP
	case row.PartySize >= p.largeGroupSize:
		res.Priority = resModel.PriorityLargeGroup
	default:
		res.Priority = resModel.PriorityStandard
	}

	return res
}

func rejected(row model.Row, reason model.RejectReason, msg string) model.RowResult {
	return model.RowResult{
		Line:    row.Line,
		Outcome: model.OutcomeRejected,
		Reason:  reason,
		Message: msg,
	}
}

func describe(result resModel.ConflictResult) string {
	if len(result.ConflictingReservationIDs) == 0 {
		return string(result.Reason)
	}

	return fmt.Sprintf("%s with %s", result.Reason, strings.Join(result.ConflictingReservationIDs, ", "))
}

// lookupTable matches by id first, then by name ignoring case.
func lookupTable(tables []resModel.Table, ref string) *resModel.Table {
	if table := resModel.FindTable(tables, ref); table != nil {
		return table
	}

	for i := range tables {
		if strings.EqualFold(tables[i].Name, ref) {
			return &tables[i]
		}
	}

	return nil
}

func sectorIDs(sectors []resModel.Sector, ref string) []string {
	if ref == "" {
		return nil
	}

	for _, sector := range sectors {
		if sector.ID == ref || strings.EqualFold(sector.Name, ref) {
			return []string{sector.ID}
		}
	}

	return nil
}

func tableLabel(table resModel.Table) string {
	if table.Name != "" {
		return table.Name
	}

	return table.ID
}
