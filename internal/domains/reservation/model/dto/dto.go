package dto

import (
	"fmt"
	"time"

	"reservo/internal/domains/reservation/model"
	"reservo/shared/constant"
	"reservo/shared/timezone"
)

type CustomerPayload struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
}

type ReservationPayload struct {
	ID              string          `json:"id"               validate:"omitempty,max=64"`
	TableID         string          `json:"table_id"         validate:"required"`
	Customer        CustomerPayload `json:"customer"`
	PartySize       int             `json:"party_size"       validate:"gt=0"`
	StartTime       string          `json:"start_time"       validate:"required,starttime"`
	DurationMinutes int             `json:"duration_minutes" validate:"gt=0"`
	Status          model.Status    `json:"status"           validate:"omitempty,enum"`
	Priority        model.Priority  `json:"priority"         validate:"omitempty,enum"`
	Notes           string          `json:"notes"            validate:"omitempty,max=500"`
}

// ToModel derives EndTime from the start and duration so the pair is always consistent.
func (p ReservationPayload) ToModel() (model.Reservation, error) {
	start, err := timezone.ParseStart(p.StartTime)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("reservation %q: %w", p.ID, err)
	}

	res := model.NewCandidate(p.ID, p.TableID, p.PartySize, start, p.DurationMinutes)
	res.Customer = model.Customer{Name: p.Customer.Name, Phone: p.Customer.Phone, Email: p.Customer.Email}
	res.Notes = p.Notes

	if p.Status != "" {
		res.Status = p.Status
	}

	if p.Priority != "" {
		res.Priority = p.Priority
	}

	return res, nil
}

type TablePayload struct {
	ID          string `json:"id"           validate:"required"`
	SectorID    string `json:"sector_id"`
	Name        string `json:"name"`
	MinCapacity int    `json:"min_capacity" validate:"gte=0"`
	MaxCapacity int    `json:"max_capacity" validate:"gtefield=MinCapacity"`
	SortOrder   int    `json:"sort_order"`
}

func (p TablePayload) ToModel() model.Table {
	return model.Table{
		ID:        p.ID,
		SectorID:  p.SectorID,
		Name:      p.Name,
		Capacity:  model.Capacity{Min: p.MinCapacity, Max: p.MaxCapacity},
		SortOrder: p.SortOrder,
	}
}

type SectorPayload struct {
	ID        string `json:"id"    validate:"required"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

func (p SectorPayload) ToModel() model.Sector {
	return model.Sector{ID: p.ID, Name: p.Name, Color: p.Color, SortOrder: p.SortOrder}
}

// Snapshot is the caller-owned state every engine request is evaluated against.
type Snapshot struct {
	Reservations []ReservationPayload `json:"reservations" validate:"dive"`
	Tables       []TablePayload       `json:"tables"       validate:"dive"`
	Sectors      []SectorPayload      `json:"sectors"      validate:"dive"`
}

func (s Snapshot) ReservationModels() ([]model.Reservation, error) {
	res := make([]model.Reservation, 0, len(s.Reservations))

	for _, payload := range s.Reservations {
		r, err := payload.ToModel()
		if err != nil {
			return nil, err
		}

		res = append(res, r)
	}

	return res, nil
}

func (s Snapshot) TableModels() []model.Table {
	res := make([]model.Table, len(s.Tables))
	for i, payload := range s.Tables {
		res[i] = payload.ToModel()
	}

	return res
}

func (s Snapshot) SectorModels() []model.Sector {
	res := make([]model.Sector, len(s.Sectors))
	for i, payload := range s.Sectors {
		res[i] = payload.ToModel()
	}

	return res
}

type CheckConflictRequest struct {
	Snapshot
	Reservation ReservationPayload `json:"reservation"`
	ExcludeID   string             `json:"exclude_id"`
	// Snap quantizes the start and duration to the slot grid first, as a drag or resize would.
	Snap bool `json:"snap"`
}

// The search requests below deliberately leave party size, duration and start
// unvalidated: a form that is mid-edit gets an empty list back, not an error.

type SuggestTablesRequest struct {
	Snapshot
	PartySize            int      `json:"party_size"`
	StartTime            string   `json:"start_time"`
	DurationMinutes      int      `json:"duration_minutes"`
	PreferredSectorIDs   []string `json:"preferred_sector_ids"`
	ExcludeReservationID string   `json:"exclude_reservation_id"`
}

type NextSlotsRequest struct {
	Snapshot
	TableID         string `json:"table_id"         validate:"required"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	PartySize       int    `json:"party_size"`
	Offsets         []int  `json:"offsets"`
}

type NextSlotsAcrossTablesRequest struct {
	Snapshot
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	PartySize       int    `json:"party_size"`
	Offsets         []int  `json:"offsets"`
}

type AlternativeTablesRequest struct {
	Snapshot
	Reservation    ReservationPayload `json:"reservation"`
	ExcludeTableID string             `json:"exclude_table_id"`
}

type AlternativeTimesRequest struct {
	Snapshot
	Reservation ReservationPayload `json:"reservation"`
	Offsets     []int              `json:"offsets"`
}

type ConflictResponse struct {
	HasConflict               bool     `json:"has_conflict"`
	ConflictingReservationIDs []string `json:"conflicting_reservation_ids"`
	Reason                    string   `json:"reason,omitempty"`
}

func (r *ConflictResponse) FromModel(result model.ConflictResult) {
	r.HasConflict = result.HasConflict
	r.ConflictingReservationIDs = result.ConflictingReservationIDs
	r.Reason = string(result.Reason)

	if r.ConflictingReservationIDs == nil {
		r.ConflictingReservationIDs = []string{}
	}
}

type TableResponse struct {
	ID          string `json:"id"`
	SectorID    string `json:"sector_id"`
	Name        string `json:"name"`
	MinCapacity int    `json:"min_capacity"`
	MaxCapacity int    `json:"max_capacity"`
	SortOrder   int    `json:"sort_order"`
}

func (r *TableResponse) FromModel(table model.Table) {
	r.ID = table.ID
	r.SectorID = table.SectorID
	r.Name = table.Name
	r.MinCapacity = table.Capacity.Min
	r.MaxCapacity = table.Capacity.Max
	r.SortOrder = table.SortOrder
}

type SectorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func sectorResponse(sector *model.Sector) *SectorResponse {
	if sector == nil {
		return nil
	}

	return &SectorResponse{ID: sector.ID, Name: sector.Name, Color: sector.Color}
}

type SuggestionResponse struct {
	Table   TableResponse   `json:"table"`
	Score   float64         `json:"score"`
	Reasons []string        `json:"reasons"`
	Sector  *SectorResponse `json:"sector,omitempty"`
}

func (r *SuggestionResponse) FromModel(suggestion model.TableSuggestion) {
	r.Table.FromModel(suggestion.Table)
	r.Score = suggestion.Score
	r.Reasons = suggestion.Reasons
	r.Sector = sectorResponse(suggestion.Sector)
}

func FromSuggestions(suggestions []model.TableSuggestion) []SuggestionResponse {
	res := make([]SuggestionResponse, len(suggestions))
	for i, suggestion := range suggestions {
		res[i].FromModel(suggestion)
	}

	return res
}

type SlotResponse struct {
	Table           TableResponse `json:"table"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Label           string        `json:"label"`
}

func (r *SlotResponse) FromModel(slot model.TimeSlotCandidate) {
	r.Table.FromModel(slot.Table)
	r.StartTime = formatTime(slot.StartTime)
	r.EndTime = formatTime(slot.EndTime)
	r.DurationMinutes = slot.DurationMinutes
	r.Label = slot.Label
}

func FromSlots(slots []model.TimeSlotCandidate) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		res[i].FromModel(slot)
	}

	return res
}

type AlternativeTableResponse struct {
	Table       TableResponse    `json:"table"`
	Sector      *SectorResponse  `json:"sector,omitempty"`
	HasConflict bool             `json:"has_conflict"`
	Conflict    ConflictResponse `json:"conflict"`
}

func FromAlternativeTables(alternatives []model.AlternativeTable) []AlternativeTableResponse {
	res := make([]AlternativeTableResponse, len(alternatives))
	for i, alt := range alternatives {
		res[i].Table.FromModel(alt.Table)
		res[i].Sector = sectorResponse(alt.Sector)
		res[i].HasConflict = alt.HasConflict
		res[i].Conflict.FromModel(alt.Conflict)
	}

	return res
}

type AlternativeTimeResponse struct {
	StartTime     string           `json:"start_time"`
	EndTime       string           `json:"end_time"`
	OffsetMinutes int              `json:"offset_minutes"`
	Label         string           `json:"label"`
	HasConflict   bool             `json:"has_conflict"`
	Conflict      ConflictResponse `json:"conflict"`
}

func FromAlternativeTimes(alternatives []model.AlternativeTime) []AlternativeTimeResponse {
	res := make([]AlternativeTimeResponse, len(alternatives))
	for i, alt := range alternatives {
		res[i].StartTime = formatTime(alt.StartTime)
		res[i].EndTime = formatTime(alt.EndTime)
		res[i].OffsetMinutes = alt.OffsetMinutes
		res[i].Label = alt.Label
		res[i].HasConflict = alt.HasConflict
		res[i].Conflict.FromModel(alt.Conflict)
	}

	return res
}

type ReservationResponse struct {
	ID              string          `json:"id"`
	TableID         string          `json:"table_id"`
	Customer        CustomerPayload `json:"customer"`
	PartySize       int             `json:"party_size"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	DurationMinutes int             `json:"duration_minutes"`
	Status          model.Status    `json:"status"`
	Priority        model.Priority  `json:"priority"`
	Notes           string          `json:"notes,omitempty"`
}

func (r *ReservationResponse) FromModel(res model.Reservation) {
	r.ID = res.ID
	r.TableID = res.TableID
	r.Customer = CustomerPayload{Name: res.Customer.Name, Phone: res.Customer.Phone, Email: res.Customer.Email}
	r.PartySize = res.PartySize
	r.StartTime = formatTime(res.StartTime)
	r.EndTime = formatTime(res.EndTime)
	r.DurationMinutes = res.DurationMinutes
	r.Status = res.Status
	r.Priority = res.Priority
	r.Notes = res.Notes
}

func formatTime(t time.Time) string {
	return t.Format(constant.DateFormat)
}
