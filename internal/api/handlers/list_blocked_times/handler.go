package list_blocked_times

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidBarberID     = "некорректный ID барбера"
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

// Handle GET /api/v1/barbershops/{barbershopId}/barbers/{barberId}/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/blocked-times - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	barberID, err := handlers.ParseUUID(vars["barberId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/blocked-times - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.service.ListByBarber(r.Context(), barbershopID, barberID)
	if err != nil {
		h.logger.Error("GET /barbershops/{id}/barbers/{id}/blocked-times - Failed to list blocked times: barber_id=%s, error=%v",
			barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops/{id}/barbers/{id}/blocked-times - Blocked times retrieved successfully: barber_id=%s, count=%d",
		barberID, len(result.BlockedTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
