package model

import "time"

const (
	EntityName = "reservation"

	FieldID        = "id"
	FieldTableID   = "table_id"
	FieldPartySize = "party_size"
	FieldStartTime = "start_time"
	FieldDuration  = "duration_minutes"
	FieldReason    = "reason"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusSeated    Status = "SEATED"
	StatusFinished  Status = "FINISHED"
	StatusNoShow    Status = "NO_SHOW"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusFinished, StatusNoShow, StatusCancelled:
		return true
	}

	return false
}

type Priority string

const (
	PriorityStandard   Priority = "STANDARD"
	PriorityVIP        Priority = "VIP"
	PriorityLargeGroup Priority = "LARGE_GROUP"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityStandard, PriorityVIP, PriorityLargeGroup:
		return true
	}

	return false
}

type Customer struct {
	Name  string
	Phone string
	Email string
}

// Reservation is owned by the caller. The engine only reads it.
type Reservation struct {
	ID              string
	TableID         string
	Customer        Customer
	PartySize       int
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          Status
	Priority        Priority
	Notes           string
}

// NewCandidate builds a reservation whose EndTime is derived from the duration.
func NewCandidate(id, tableID string, partySize int, start time.Time, durationMinutes int) Reservation {
	return Reservation{
		ID:              id,
		TableID:         tableID,
		PartySize:       partySize,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Status:          StatusPending,
		Priority:        PriorityStandard,
	}
}

// Shift returns a copy moved by the given amount of minutes, keeping the duration.
func (r Reservation) Shift(minutes int) Reservation {
	delta := time.Duration(minutes) * time.Minute
	r.StartTime = r.StartTime.Add(delta)
	r.EndTime = r.EndTime.Add(delta)

	return r
}

// OnTable returns a copy reassigned to another table.
func (r Reservation) OnTable(tableID string) Reservation {
	r.TableID = tableID

	return r
}

// Capacity is an inclusive party-size range.
type Capacity struct {
	Min int
	Max int
}

func (c Capacity) Fits(partySize int) bool {
	return partySize >= c.Min && partySize <= c.Max
}

type Table struct {
	ID        string
	SectorID  string
	Name      string
	Capacity  Capacity
	SortOrder int
}

type Sector struct {
	ID        string
	Name      string
	Color     string
	SortOrder int
}

func FindSector(sectors []Sector, id string) *Sector {
	for i := range sectors {
		if sectors[i].ID == id {
			return &sectors[i]
		}
	}

	return nil
}

func FindTable(tables []Table, id string) *Table {
	for i := range tables {
		if tables[i].ID == id {
			return &tables[i]
		}
	}

	return nil
}
