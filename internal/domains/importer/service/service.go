package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"reservo/config"
	"reservo/infras/otel"
	"reservo/internal/domains/importer/model"
	"reservo/internal/domains/importer/model/dto"
	"reservo/internal/domains/importer/parser"
	"reservo/internal/domains/importer/pipeline"
	resDto "reservo/internal/domains/reservation/model/dto"
	"reservo/internal/domains/reservation/schedule"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/validator"

	"github.com/rs/zerolog/log"
)

type Importer interface {
	Import(ctx context.Context, req dto.ImportRequest) (dto.ImportResponse, error)
	ImportCSV(ctx context.Context, req dto.CSVImportRequest) (dto.ImportResponse, error)
}

type serviceImpl struct {
	pipeline pipeline.Pipeline
	otel     otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Importer {
	return &serviceImpl{
		pipeline: pipeline.New(schedule.FromConfig(cfg), cfg.Restaurant.LargeGroupSize),
		otel:     otel,
	}
}

func (s *serviceImpl) Import(ctx context.Context, req dto.ImportRequest) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelImporterScopeName, constant.OtelImporterScopeName+".Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.run(ctx, req.RowModels(), req.Snapshot)
}

func (s *serviceImpl) ImportCSV(ctx context.Context, req dto.CSVImportRequest) (res dto.ImportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelImporterScopeName, constant.OtelImporterScopeName+".ImportCSV")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	rows, err := parser.Parse(strings.NewReader(req.CSV))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse import csv")

		return res, failure.BadRequest(err)
	}

	return s.run(ctx, rows, req.Snapshot)
}

func (s *serviceImpl) run(ctx context.Context, rows []model.Row, snapshot resDto.Snapshot) (res dto.ImportResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelImporterScopeName, constant.OtelImporterScopeName+".run")
	defer scope.End()

	existing, err := snapshot.ReservationModels()
	if err != nil {
		log.Error().Err(err).Msg("failed to read reservation snapshot")

		return res, failure.BadRequest(fmt.Errorf("invalid reservation snapshot: %w", err))
	}

	result := s.pipeline.Run(rows, existing, snapshot.TableModels(), snapshot.SectorModels())

	for _, row := range result.Rows {
		if row.Outcome == model.OutcomeRejected {
			log.Info().
				Int("line", row.Line).
				Str("reason", string(row.Reason)).
				Str("message", row.Message).
				Msg("import row rejected")
		}
	}

	res.FromModel(result)

	scope.SetAttributes(map[string]any{
		"import.rows":     len(rows),
		"import.assigned": res.Assigned,
		"import.rejected": res.Rejected,
	})

	log.Info().Int("assigned", res.Assigned).Int("rejected", res.Rejected).Msg("import finished")

	return res, nil
}
