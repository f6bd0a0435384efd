package model

import (
	resModel "reservo/internal/domains/reservation/model"
)

// Row is one line of an import. Invalid carries a parse problem found before
// the row reached the pipeline.
type Row struct {
	Line            int
	Name            string
	Phone           string
	Email           string
	PartySize       int
	Date            string
	Time            string
	DurationMinutes int
	Table           string
	Sector          string
	VIP             bool
	Notes           string
	Invalid         string
}

type Outcome string

const (
	OutcomeAssigned Outcome = "assigned"
	OutcomeRejected Outcome = "rejected"
)

type RejectReason string

const (
	RejectInvalidRow          RejectReason = "invalid_row"
	RejectUnknownTable        RejectReason = "unknown_table"
	RejectNoTableAvailable    RejectReason = "no_table_available"
	RejectOverlap             RejectReason = "overlap"
	RejectCapacityExceeded    RejectReason = "capacity_exceeded"
	RejectOutsideServiceHours RejectReason = "outside_service_hours"
)

func RejectFromConflict(reason resModel.ConflictReason) RejectReason {
	switch reason {
	case resModel.ReasonOverlap:
		return RejectOverlap
	case resModel.ReasonCapacityExceeded:
		return RejectCapacityExceeded
	case resModel.ReasonOutsideServiceHours:
		return RejectOutsideServiceHours
	case resModel.ReasonNone:
	}

	return RejectInvalidRow
}

type RowResult struct {
	Line        int
	Outcome     Outcome
	Reason      RejectReason
	Message     string
	Reservation *resModel.Reservation
}

type Result struct {
	Rows []RowResult
	// Reservations is the snapshot after the import: the existing reservations
	// followed by the ones created, in row order.
	Reservations []resModel.Reservation
}

func (r Result) Count(outcome Outcome) int {
	count := 0

	for _, row := range r.Rows {
		if row.Outcome == outcome {
			count++
		}
	}

	return count
}
