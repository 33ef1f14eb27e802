package get_buffer

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

const msgInvalidBarbershopID = "некорректный ID барбершопа"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/settings/buffer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, err := handlers.ParseUUID(mux.Vars(r)["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/settings/buffer - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	result, err := h.service.GetBuffer(r.Context(), barbershopID)
	if err != nil {
		h.logger.Error("GET /barbershops/{id}/settings/buffer - Failed to get buffer: barbershop_id=%s, error=%v",
			barbershopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops/{id}/settings/buffer - Buffer retrieved successfully: barbershop_id=%s, buffer=%d",
		barbershopID, result.BufferMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
