package importer_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "reservo/infras/otel/mocks"
	"reservo/internal/domains/importer/mocks"
	"reservo/internal/domains/importer/model"
	"reservo/internal/domains/importer/model/dto"
	"reservo/internal/handlers/importer"
	"reservo/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockImporter, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockImporter(ctrl)
	handler := importer.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func TestImport(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		Import(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req dto.ImportRequest) (dto.ImportResponse, error) {
			require.Len(t, req.Rows, 1)
			assert.Equal(t, "Ana", req.Rows[0].Name)

			return dto.ImportResponse{
				Assigned: 1,
				Rows:     []dto.RowResultResponse{{Line: 1, Outcome: model.OutcomeAssigned, Message: "assigned to Window"}},
			}, nil
		})

	body := `{"rows": [{"name": "Ana", "party_size": 2, "date": "2025-03-15", "time": "19:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/imports", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"assigned":1`)
	assert.Contains(t, rec.Body.String(), "assigned to Window")
}

func TestImportValidation(t *testing.T) {
	_, router := setup(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "no rows", body: `{"rows": []}`, want: "rows must be greater than or equal to 1"},
		{name: "bad clock", body: `{"rows": [{"name": "Ana", "party_size": 2, "date": "2025-03-15", "time": "7pm"}]}`, want: "time must be HH:MM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/imports", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestImportCSV(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		ImportCSV(gomock.Any(), gomock.Any()).
		Return(dto.ImportResponse{}, failure.BadRequestFromString("csv is missing a required column: time"))

	req := httptest.NewRequest(http.MethodPost, "/v1/imports/csv", strings.NewReader(`{"csv": "name\nAna\n"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "csv is missing a required column: time"}`, rec.Body.String())
}
