package dto

import (
	"reservo/internal/domains/importer/model"
	resDto "reservo/internal/domains/reservation/model/dto"
)

type RowPayload struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,max=30"`
	Email           string `json:"email"            validate:"omitempty,email,max=100"`
	PartySize       int    `json:"party_size"       validate:"gt=0"`
	Date            string `json:"date"             validate:"required"`
	Time            string `json:"time"             validate:"required,clock"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Table           string `json:"table"`
	Sector          string `json:"sector"`
	VIP             bool   `json:"vip"`
	Notes           string `json:"notes"            validate:"omitempty,max=500"`
}

func (p RowPayload) ToModel(line int) model.Row {
	return model.Row{
		Line:            line,
		Name:            p.Name,
		Phone:           p.Phone,
		Email:           p.Email,
		PartySize:       p.PartySize,
		Date:            p.Date,
		Time:            p.Time,
		DurationMinutes: p.DurationMinutes,
		Table:           p.Table,
		Sector:          p.Sector,
		VIP:             p.VIP,
		Notes:           p.Notes,
	}
}

type ImportRequest struct {
	resDto.Snapshot
	Rows []RowPayload `json:"rows" validate:"required,min=1,dive"`
}

// Rows are numbered from 1 in request order.
func (r ImportRequest) RowModels() []model.Row {
	res := make([]model.Row, len(r.Rows))
	for i, payload := range r.Rows {
		res[i] = payload.ToModel(i + 1)
	}

	return res
}

type CSVImportRequest struct {
	resDto.Snapshot
	CSV string `json:"csv" validate:"required"`
}

type RowResultResponse struct {
	Line        int                         `json:"line"`
	Outcome     model.Outcome               `json:"outcome"`
	Reason      model.RejectReason          `json:"reason,omitempty"`
	Message     string                      `json:"message"`
	Reservation *resDto.ReservationResponse `json:"reservation,omitempty"`
}

type ImportResponse struct {
	Assigned int                 `json:"assigned"`
	Rejected int                 `json:"rejected"`
	Rows     []RowResultResponse `json:"rows"`
}

func (r *ImportResponse) FromModel(result model.Result) {
	r.Assigned = result.Count(model.OutcomeAssigned)
	r.Rejected = result.Count(model.OutcomeRejected)

	r.Rows = make([]RowResultResponse, len(result.Rows))
	for i, row := range result.Rows {
		r.Rows[i] = RowResultResponse{
			Line:    row.Line,
			Outcome: row.Outcome,
			Reason:  row.Reason,
			Message: row.Message,
		}

		if row.Reservation != nil {
			reservation := resDto.ReservationResponse{}
			reservation.FromModel(*row.Reservation)
			r.Rows[i].Reservation = &reservation
		}
	}
}
