package create_blocked_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	blockedTimes "github.com/m04kA/SMC-BarberService/internal/service/blocked_times"
	"github.com/m04kA/SMC-BarberService/internal/service/blocked_times/models"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidBarberID     = "некорректный ID барбера"
	msgInvalidRequestBody  = "некорректное тело запроса: startAt и endAt в формате RFC 3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidTimeRange    = "конец блокировки должен быть позже начала"
	msgInvalidData         = "некорректные данные блокировки"
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

// Handle POST /api/v1/barbershops/{barbershopId}/barbers/{barberId}/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	barberID, err := handlers.ParseUUID(vars["barberId"])
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.BarbershopID = barbershopID
	req.BarberID = barberID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blockedTimes.ErrInvalidTimeRange):
			h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blockedTimes.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/barbers/{id}/blocked-times - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /barbershops/{id}/barbers/{id}/blocked-times - Failed to create blocked time: barber_id=%s, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/barbers/{id}/blocked-times - Blocked time created successfully: id=%s, barber_id=%s",
		result.ID, barberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
