package list_barber_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type stubService struct {
	req *models.GetBarberScheduleRequest
	err error
}

func (s *stubService) GetBarberSchedule(ctx context.Context, req *models.GetBarberScheduleRequest) (*models.AppointmentListResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

var (
	shopID   = uuid.MustParse("0f6c6d1e-7a43-4c8b-9e55-1b2f3a4c5d6e")
	barberID = uuid.MustParse("3a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
)

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/barbershops/{barbershopId}/barbers/{barberId}/appointments", h.Handle)

	req := httptest.NewRequest(http.MethodGet, "/barbershops/"+shopID.String()+"/barbers/"+barberID.String()+"/appointments"+query, nil)
	req.Header.Set(middleware.UserIDHeader, barberID.String())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "?date=2025-06-10&includeCancelled=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), svc.req.Date)
	assert.True(t, svc.req.IncludeCancelled)
	assert.Equal(t, barberID, svc.req.BarberID)
}

func TestHandle_BadParams(t *testing.T) {
	h := NewHandler(&stubService{}, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, serve(h, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "?date=2025-06-10&includeCancelled=maybe").Code)
}

func TestHandle_ServiceError(t *testing.T) {
	h := NewHandler(&stubService{err: appointments.ErrInternal}, logger.NewNop())
	assert.Equal(t, http.StatusInternalServerError, serve(h, "?date=2025-06-10").Code)
}
