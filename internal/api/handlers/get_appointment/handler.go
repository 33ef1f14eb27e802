package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
)

const (
	msgInvalidBarbershopID  = "некорректный ID барбершопа"
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	appointmentID, err := handlers.ParseUUID(vars["appointmentId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис сам проверит права доступа
	apt, err := h.service.GetByID(r.Context(), barbershopID, appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /barbershops/{id}/appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /barbershops/{id}/appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/appointments/{id} - Appointment retrieved successfully: appointment_id=%s, user_id=%s",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, apt)
}
