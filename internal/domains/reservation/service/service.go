package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"reservo/config"
	"reservo/infras/otel"
	"reservo/internal/domains/reservation/alternative"
	"reservo/internal/domains/reservation/conflict"
	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/model/dto"
	"reservo/internal/domains/reservation/ranking"
	"reservo/internal/domains/reservation/schedule"
	"reservo/internal/domains/reservation/slots"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/timezone"
	"reservo/shared/validator"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	CheckConflicts(ctx context.Context, req dto.CheckConflictRequest) (dto.ConflictResponse, error)
	SuggestTables(ctx context.Context, req dto.SuggestTablesRequest) ([]dto.SuggestionResponse, error)
	NextAvailableSlots(ctx context.Context, req dto.NextSlotsRequest) ([]dto.SlotResponse, error)
	NextAvailableAcrossTables(ctx context.Context, req dto.NextSlotsAcrossTablesRequest) ([]dto.SlotResponse, error)
	AlternativeTables(ctx context.Context, req dto.AlternativeTablesRequest) ([]dto.AlternativeTableResponse, error)
	AlternativeTimes(ctx context.Context, req dto.AlternativeTimesRequest) ([]dto.AlternativeTimeResponse, error)
}

type serviceImpl struct {
	schedule    schedule.Config
	checker     conflict.Checker
	ranker      ranking.Ranker
	searcher    slots.Searcher
	alternative alternative.Finder
	otel        otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Reservation {
	sched := schedule.FromConfig(cfg)
	checker := conflict.New(sched)

	return &serviceImpl{
		schedule:    sched,
		checker:     checker,
		ranker:      ranking.New(checker),
		searcher:    slots.New(checker),
		alternative: alternative.New(checker),
		otel:        otel,
	}
}

func (s *serviceImpl) CheckConflicts(ctx context.Context, req dto.CheckConflictRequest) (res dto.ConflictResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	candidate, existing, table, err := s.resolveReservation(req.Reservation, req.Snapshot)
	if err != nil {
		return res, err
	}

	if req.Snap {
		candidate = s.snap(candidate)
	}

	result := s.checker.All(candidate, existing, table, req.ExcludeID)

	scope.SetAttributes(map[string]any{
		"reservation.table_id": table.ID,
		"conflict.reason":      string(result.Reason),
	})

	log.Debug().
		Str(model.FieldTableID, table.ID).
		Str(model.FieldReason, string(result.Reason)).
		Bool("conflict", result.HasConflict).
		Msg("checked reservation placement")

	res.FromModel(result)

	return res, nil
}

func (s *serviceImpl) SuggestTables(ctx context.Context, req dto.SuggestTablesRequest) (res []dto.SuggestionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SuggestTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	existing, err := s.existing(req.Snapshot)
	if err != nil {
		return nil, err
	}

	suggestions := s.ranker.Suggest(ranking.Options{
		PartySize:            req.PartySize,
		StartTime:            tolerantStart(req.StartTime),
		DurationMinutes:      req.DurationMinutes,
		Existing:             existing,
		Tables:               req.TableModels(),
		Sectors:              req.SectorModels(),
		PreferredSectorIDs:   req.PreferredSectorIDs,
		ExcludeReservationID: req.ExcludeReservationID,
	})

	scope.SetAttribute("suggestion.count", len(suggestions))

	return dto.FromSuggestions(suggestions), nil
}

func (s *serviceImpl) NextAvailableSlots(ctx context.Context, req dto.NextSlotsRequest) (res []dto.SlotResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextAvailableSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	table := model.FindTable(req.TableModels(), req.TableID)
	if table == nil {
		return nil, failure.Unprocessable(fmt.Sprintf("table %s is not part of the snapshot", req.TableID))
	}

	existing, err := s.existing(req.Snapshot)
	if err != nil {
		return nil, err
	}

	found := s.searcher.FindNextAvailable(*table, tolerantStart(req.StartTime), req.DurationMinutes, req.PartySize, existing, req.Offsets)

	scope.SetAttribute("slot.count", len(found))

	return dto.FromSlots(found), nil
}

func (s *serviceImpl) NextAvailableAcrossTables(ctx context.Context, req dto.NextSlotsAcrossTablesRequest) (res []dto.SlotResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NextAvailableAcrossTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	existing, err := s.existing(req.Snapshot)
	if err != nil {
		return nil, err
	}

	found := s.searcher.FindNextAvailableAcrossAllTables(
		req.TableModels(), tolerantStart(req.StartTime), req.DurationMinutes, req.PartySize, existing, req.Offsets)

	scope.SetAttribute("slot.count", len(found))

	return dto.FromSlots(found), nil
}

func (s *serviceImpl) AlternativeTables(ctx context.Context, req dto.AlternativeTablesRequest) (res []dto.AlternativeTableResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlternativeTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	reservation, err := req.Reservation.ToModel()
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	existing, err := s.existing(req.Snapshot)
	if err != nil {
		return nil, err
	}

	alternatives := s.alternative.Tables(reservation, req.TableModels(), existing, req.SectorModels(), req.ExcludeTableID)

	return dto.FromAlternativeTables(alternatives), nil
}

func (s *serviceImpl) AlternativeTimes(ctx context.Context, req dto.AlternativeTimesRequest) (res []dto.AlternativeTimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AlternativeTimes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	reservation, existing, table, err := s.resolveReservation(req.Reservation, req.Snapshot)
	if err != nil {
		return nil, err
	}

	alternatives := s.alternative.Times(reservation, existing, table, req.Offsets)

	return dto.FromAlternativeTimes(alternatives), nil
}

// resolveReservation converts the payload and finds the table it points at.
func (s *serviceImpl) resolveReservation(
	payload dto.ReservationPayload,
	snapshot dto.Snapshot,
) (model.Reservation, []model.Reservation, model.Table, error) {
	reservation, err := payload.ToModel()
	if err != nil {
		return model.Reservation{}, nil, model.Table{}, failure.BadRequest(err)
	}

	table := model.FindTable(snapshot.TableModels(), reservation.TableID)
	if table == nil {
		log.Error().Str(model.FieldTableID, reservation.TableID).Msg("reservation points at an unknown table")

		return model.Reservation{}, nil, model.Table{},
			failure.Unprocessable(fmt.Sprintf("table %s is not part of the snapshot", reservation.TableID))
	}

	existing, err := s.existing(snapshot)
	if err != nil {
		return model.Reservation{}, nil, model.Table{}, err
	}

	return reservation, existing, *table, nil
}

func (s *serviceImpl) existing(snapshot dto.Snapshot) ([]model.Reservation, error) {
	existing, err := snapshot.ReservationModels()
	if err != nil {
		log.Error().Err(err).Msg("failed to read reservation snapshot")

		return nil, failure.BadRequest(err)
	}

	return existing, nil
}

// snap quantizes start and duration to the slot grid of the reservation's service day.
func (s *serviceImpl) snap(reservation model.Reservation) model.Reservation {
	start := s.schedule.SnapTime(reservation.StartTime, reservation.StartTime)
	duration := s.schedule.SnapDuration(reservation.DurationMinutes)

	snapped := model.NewCandidate(reservation.ID, reservation.TableID, reservation.PartySize, start, duration)
	snapped.Customer = reservation.Customer
	snapped.Status = reservation.Status
	snapped.Priority = reservation.Priority
	snapped.Notes = reservation.Notes

	return snapped
}

// tolerantStart returns the zero time for a missing or unparsable start so the
// engine answers with an empty list.
func tolerantStart(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	start, err := timezone.ParseStart(value)
	if err != nil {
		log.Debug().Err(err).Str(model.FieldStartTime, value).Msg("ignoring unparsable start time")

		return time.Time{}
	}

	return start
}
