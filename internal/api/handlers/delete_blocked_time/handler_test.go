package delete_blocked_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	blockedTimes "github.com/m04kA/SMC-BarberService/internal/service/blocked_times"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type stubService struct {
	deleted uuid.UUID
	err     error
}

func (s *stubService) Delete(ctx context.Context, barbershopID, id uuid.UUID) error {
	s.deleted = id
	return s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/barbershops/{barbershopId}/blocked-times/{blockedTimeId}", h.Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/barbershops/"+uuid.NewString()+"/blocked-times/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()
	svc := &stubService{}

	assert.Equal(t, http.StatusNoContent, serve(NewHandler(svc, logger.NewNop()), id.String()).Code)
	assert.Equal(t, id, svc.deleted)

	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(svc, logger.NewNop()), "7").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(NewHandler(&stubService{err: blockedTimes.ErrBlockedTimeNotFound}, logger.NewNop()), id.String()).Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&stubService{err: blockedTimes.ErrInternal}, logger.NewNop()), id.String()).Code)
}
