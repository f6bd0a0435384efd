package model

import "time"

// ConflictReason is a closed set. Callers treat the empty value as "no conflict".
type ConflictReason string

const (
	ReasonNone                ConflictReason = ""
	ReasonOverlap             ConflictReason = "overlap"
	ReasonCapacityExceeded    ConflictReason = "capacity_exceeded"
	ReasonOutsideServiceHours ConflictReason = "outside_service_hours"
)

func (r ConflictReason) Valid() bool {
	switch r {
	case ReasonOverlap, ReasonCapacityExceeded, ReasonOutsideServiceHours:
		return true
	}

	return false
}

type ConflictResult struct {
	HasConflict               bool
	ConflictingReservationIDs []string
	Reason                    ConflictReason
}

func NoConflict() ConflictResult {
	return ConflictResult{ConflictingReservationIDs: []string{}}
}

func Conflict(reason ConflictReason, ids ...string) ConflictResult {
	if ids == nil {
		ids = []string{}
	}

	return ConflictResult{
		HasConflict:               true,
		ConflictingReservationIDs: ids,
		Reason:                    reason,
	}
}

type TableSuggestion struct {
	Table   Table
	Score   float64
	Reasons []string
	Sector  *Sector
}

type TimeSlotCandidate struct {
	Table           Table
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Label           string
}

type AlternativeTable struct {
	Table       Table
	Sector      *Sector
	HasConflict bool
	Conflict    ConflictResult
}

type AlternativeTime struct {
	StartTime     time.Time
	EndTime       time.Time
	OffsetMinutes int
	Label         string
	HasConflict   bool
	Conflict      ConflictResult
}
