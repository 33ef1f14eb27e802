package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	userID uuid.UUID
	resp   *models.AppointmentResponse
	err    error
}

func (s *stubService) GetByID(ctx context.Context, barbershopID, id, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.userID = userID
	return s.resp, s.err
}

var (
	shopID = uuid.MustParse("0f6c6d1e-7a43-4c8b-9e55-1b2f3a4c5d6e")
	aptID  = uuid.MustParse("9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d")
	userID = uuid.MustParse("5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a")
)

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/barbershops/{barbershopId}/appointments/{appointmentId}", h.Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, userID.String())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{resp: &models.AppointmentResponse{ID: aptID, StartTime: "10:00", Status: "confirmed"}}
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "/barbershops/"+shopID.String()+"/appointments/"+aptID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, svc.userID)

	var body models.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, aptID, body.ID)
}

func TestHandle_Errors(t *testing.T) {
	valid := "/barbershops/" + shopID.String() + "/appointments/" + aptID.String()

	h := NewHandler(&stubService{}, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, serve(h, "/barbershops/"+shopID.String()+"/appointments/1").Code)

	cases := map[error]int{
		appointments.ErrAppointmentNotFound: http.StatusNotFound,
		appointments.ErrAccessDenied:        http.StatusForbidden,
		appointments.ErrInternal:            http.StatusInternalServerError,
	}
	for err, status := range cases {
		h := NewHandler(&stubService{err: err}, logger.NewNop())
		assert.Equal(t, status, serve(h, valid).Code, err.Error())
	}
}
