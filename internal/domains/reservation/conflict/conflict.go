// Package conflict decides whether a reservation may legally occupy a table.
//
// The three predicates are independent. All applies them in priority order
// (overlap, capacity, service hours) and stops at the first failure.
package conflict

import (
	"time"

	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/schedule"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

type Checker struct {
	schedule schedule.Config
}

func New(cfg schedule.Config) Checker {
	return Checker{schedule: cfg}
}

func (c Checker) Schedule() schedule.Config {
	return c.schedule
}

// Overlap reports every reservation on the candidate's table whose interval
// intersects the candidate's. Intervals are half-open, so a reservation ending
// exactly when another starts does not conflict. excludeID, when not empty,
// skips the reservation being edited in place.
func Overlap(candidate model.Reservation, existing []model.Reservation, excludeID string) model.ConflictResult {
	ids := []string{}

	for _, res := range existing {
		if res.TableID != candidate.TableID {
			continue
		}

		if excludeID != "" && res.ID == excludeID {
			continue
		}

		if candidate.StartTime.Before(res.EndTime) && res.StartTime.Before(candidate.EndTime) {
			ids = append(ids, res.ID)
		}
	}

	if len(ids) == 0 {
		return model.NoConflict()
	}

	return model.Conflict(model.ReasonOverlap, ids...)
}

func Capacity(partySize int, table model.Table) model.ConflictResult {
	if !table.Capacity.Fits(partySize) {
		return model.Conflict(model.ReasonCapacityExceeded)
	}

	return model.NoConflict()
}

// ServiceHours checks the window against the configured opening hours using
// the wall clock of each timestamp. An end at exactly 00:00 counts as hour 24;
// any other end after midnight compares by its clock value, so 23:00 to 00:30
// passes. A start after midnight (01:00) compares below the opening hour and
// is reported as outside service hours.
func (c Checker) ServiceHours(start, end time.Time) model.ConflictResult {
	startHour := hourOfDay(start)
	endHour := closingHourOf(end)

	if startHour < float64(c.schedule.OpenHour) || endHour > float64(c.schedule.CloseHour) {
		return model.Conflict(model.ReasonOutsideServiceHours)
	}

	return model.NoConflict()
}

// All runs the predicates in priority order. existing may contain
// reservations of any table; only the candidate's table is considered.
func (c Checker) All(candidate model.Reservation, existing []model.Reservation, table model.Table, excludeID string) model.ConflictResult {
	if res := Overlap(candidate, onTable(existing, candidate.TableID), excludeID); res.HasConflict {
		return res
	}

	if res := Capacity(candidate.PartySize, table); res.HasConflict {
		return res
	}

	return c.ServiceHours(candidate.StartTime, candidate.EndTime)
}

// Availability is All without the capacity predicate: it answers whether the
// table is free at the candidate's window, whatever the party size.
func (c Checker) Availability(candidate model.Reservation, existing []model.Reservation, excludeID string) model.ConflictResult {
	if res := Overlap(candidate, onTable(existing, candidate.TableID), excludeID); res.HasConflict {
		return res
	}

	return c.ServiceHours(candidate.StartTime, candidate.EndTime)
}

func onTable(existing []model.Reservation, tableID string) []model.Reservation {
	res := make([]model.Reservation, 0, len(existing))

	for _, r := range existing {
		if r.TableID == tableID {
			res = append(res, r)
		}
	}

	return res
}

func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/minutesPerHour
}

// closingHourOf reads end on the wall clock, with 00:00 standing for hour 24.
// An end past midnight keeps its small clock value (00:30 is 0.5).
func closingHourOf(end time.Time) float64 {
	if end.Hour() == 0 && end.Minute() == 0 {
		return hoursPerDay
	}

	return hourOfDay(end)
}
