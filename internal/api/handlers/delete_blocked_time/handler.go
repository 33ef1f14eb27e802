package delete_blocked_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	blockedTimes "github.com/m04kA/SMC-BarberService/internal/service/blocked_times"
)

const (
	msgInvalidBarbershopID  = "некорректный ID барбершопа"
	msgInvalidBlockedTimeID = "некорректный ID блокировки"
	msgNotFound             = "блокировка не найдена"
)

type Handler struct {
	service BlockedTimeService
	logger  Logger
}

func NewHandler(service BlockedTimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/barbershops/{barbershopId}/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("DELETE /barbershops/{id}/blocked-times/{id} - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	blockedTimeID, err := handlers.ParseUUID(vars["blockedTimeId"])
	if err != nil {
		h.logger.Warn("DELETE /barbershops/{id}/blocked-times/{id} - Invalid blocked time ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedTimeID)
		return
	}

	if err := h.service.Delete(r.Context(), barbershopID, blockedTimeID); err != nil {
		if errors.Is(err, blockedTimes.ErrBlockedTimeNotFound) {
			h.logger.Warn("DELETE /barbershops/{id}/blocked-times/{id} - Blocked time not found: id=%s", blockedTimeID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /barbershops/{id}/blocked-times/{id} - Failed to delete blocked time: id=%s, error=%v",
			blockedTimeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /barbershops/{id}/blocked-times/{id} - Blocked time deleted successfully: id=%s", blockedTimeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
