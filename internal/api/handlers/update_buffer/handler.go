package update_buffer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidBuffer       = "буфер должен быть от 0 до 240 минут"
)

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

// Handle PUT /api/v1/barbershops/{barbershopId}/settings/buffer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, err := handlers.ParseUUID(mux.Vars(r)["barbershopId"])
	if err != nil {
		h.logger.Warn("PUT /barbershops/{id}/settings/buffer - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbershops/{id}/settings/buffer - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateBufferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbershops/{id}/settings/buffer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.BarbershopID = barbershopID

	result, err := h.service.UpdateBuffer(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidBuffer), errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /barbershops/{id}/settings/buffer - Invalid buffer: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBuffer)

		default:
			h.logger.Error("PUT /barbershops/{id}/settings/buffer - Failed to update buffer: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbershops/{id}/settings/buffer - Buffer updated successfully: barbershop_id=%s, buffer=%d, user_id=%s",
		barbershopID, result.BufferMinutes, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
