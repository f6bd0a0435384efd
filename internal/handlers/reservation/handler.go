package reservation

import (
	"context"
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/reservation/service"
	"reservo/shared/constant"
	"reservo/shared/validator"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/conflicts", handler.CheckConflicts)
		routerGroup.Post("/suggestions", handler.SuggestTables)
		routerGroup.Post("/slots", handler.NextAvailableSlots)
		routerGroup.Post("/slots/all", handler.NextAvailableAcrossTables)
		routerGroup.Post("/alternatives/tables", handler.AlternativeTables)
		routerGroup.Post("/alternatives/times", handler.AlternativeTimes)
	})
}

// CheckConflicts reports whether a reservation can be placed on its table.
// @Summary Check a reservation for conflicts
// @Description Runs overlap, capacity and service-hours checks against the supplied snapshot.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CheckConflictRequest true "Reservation and floor snapshot"
// @Success 200 {object} response.Data[dto.ConflictResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/conflicts [post]
// @Security ApiKeyAuth
func (handler *Handler) CheckConflicts(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "CheckConflicts", handler.service.CheckConflicts)
}

// SuggestTables ranks the tables that can seat a party.
// @Summary Suggest tables
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.SuggestTablesRequest true "Party details and floor snapshot"
// @Success 200 {object} response.Data[[]dto.SuggestionResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/suggestions [post]
// @Security ApiKeyAuth
func (handler *Handler) SuggestTables(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "SuggestTables", handler.service.SuggestTables)
}

// NextAvailableSlots lists free start times near the requested one on a single table.
// @Summary Next available slots on a table
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.NextSlotsRequest true "Table, time and floor snapshot"
// @Success 200 {object} response.Data[[]dto.SlotResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/slots [post]
// @Security ApiKeyAuth
func (handler *Handler) NextAvailableSlots(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "NextAvailableSlots", handler.service.NextAvailableSlots)
}

// NextAvailableAcrossTables lists free start times near the requested one on every table.
// @Summary Next available slots across tables
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.NextSlotsAcrossTablesRequest true "Time and floor snapshot"
// @Success 200 {object} response.Data[[]dto.SlotResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/slots/all [post]
// @Security ApiKeyAuth
func (handler *Handler) NextAvailableAcrossTables(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "NextAvailableAcrossTables", handler.service.NextAvailableAcrossTables)
}

// AlternativeTables lists other tables for an existing reservation.
// @Summary Alternative tables
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.AlternativeTablesRequest true "Reservation and floor snapshot"
// @Success 200 {object} response.Data[[]dto.AlternativeTableResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/alternatives/tables [post]
// @Security ApiKeyAuth
func (handler *Handler) AlternativeTables(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "AlternativeTables", handler.service.AlternativeTables)
}

// AlternativeTimes lists shifted start times for an existing reservation on its table.
// @Summary Alternative times
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.AlternativeTimesRequest true "Reservation, offsets and floor snapshot"
// @Success 200 {object} response.Data[[]dto.AlternativeTimeResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/alternatives/times [post]
// @Security ApiKeyAuth
func (handler *Handler) AlternativeTimes(writer http.ResponseWriter, request *http.Request) {
	serve(handler, writer, request, "AlternativeTimes", handler.service.AlternativeTimes)
}

func serve[Req, Res any](
	handler *Handler,
	writer http.ResponseWriter,
	request *http.Request,
	name string,
	call func(context.Context, Req) (Res, error),
) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	var req Req
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", name).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := call(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", name).Msg("failed to evaluate reservation request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
