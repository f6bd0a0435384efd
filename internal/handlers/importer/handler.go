package importer

import (
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/importer/model/dto"
	"reservo/internal/domains/importer/service"
	"reservo/shared/constant"
	"reservo/shared/validator"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Importer
	otel    otel.Otel
}

func New(service service.Importer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/imports", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Import)
		routerGroup.Post("/csv", handler.ImportCSV)
	})
}

// Import assigns a batch of walk-in or phone rows to tables.
// @Summary Import reservation rows
// @Description Rows are processed in order; each accepted row becomes visible to the rows after it.
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Rows and floor snapshot"
// @Success 200 {object} response.Data[dto.ImportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/imports [post]
// @Security ApiKeyAuth
func (handler *Handler) Import(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	req := dto.ImportRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Import(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import rows")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("import.assigned", res.Assigned)
	response.WithJSON(writer, http.StatusOK, res)
}

// ImportCSV assigns the rows of an embedded CSV document to tables.
// @Summary Import reservations from CSV
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.CSVImportRequest true "CSV document and floor snapshot"
// @Success 200 {object} response.Data[dto.ImportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/imports/csv [post]
// @Security ApiKeyAuth
func (handler *Handler) ImportCSV(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportCSV")
	defer scope.End()

	req := dto.CSVImportRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ImportCSV(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import csv")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("import.assigned", res.Assigned)
	response.WithJSON(writer, http.StatusOK, res)
}
