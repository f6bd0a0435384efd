package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reservo/config"
	otelMocks "reservo/infras/otel/mocks"
	importerMocks "reservo/internal/domains/importer/mocks"
	reservationMocks "reservo/internal/domains/reservation/mocks"
	"reservo/internal/domains/reservation/model/dto"
	importerHandler "reservo/internal/handlers/importer"
	reservationHandler "reservo/internal/handlers/reservation"
	"reservo/shared/constant"
	transport "reservo/transport/http"
	"reservo/transport/http/middleware"
	"reservo/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) (*transport.HTTP, *reservationMocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reservations := reservationMocks.NewMockReservation(ctrl)
	imports := importerMocks.NewMockImporter(ctrl)
	recorder := otelMocks.NewOtel()

	r := router.New(router.DomainHandlers{
		Reservation: reservationHandler.New(reservations, recorder),
		Importer:    importerHandler.New(imports, recorder),
	})

	return transport.New(cfg, r, middleware.NewAppMiddleware(recorder, cfg, nil)), reservations
}

func TestHealth(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"state": "ready"}}`, rec.Body.String())
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestRoutesBehindAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "s3cret"

	server, reservations := newServer(t, cfg)

	body := `{"party_size": 2, "start_time": "2025-03-15T20:00", "duration_minutes": 90}`

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations/suggestions", strings.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	reservations.EXPECT().SuggestTables(gomock.Any(), gomock.Any()).Return([]dto.SuggestionResponse{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/suggestions", strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderAPIKey, "s3cret")

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://floor.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodPost}

	server, _ := newServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/v1/reservations/conflicts", nil)
	req.Header.Set("Origin", "https://floor.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://floor.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerStateString(t *testing.T) {
	assert.Equal(t, "grace_period", transport.ServerStateInGracePeriod.String())
	assert.Equal(t, "cleanup_period", transport.ServerStateInCleanupPeriod.String())
	assert.Equal(t, "starting", transport.ServerState(0).String())
}
