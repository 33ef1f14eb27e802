package cancel_appointment

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "запись не может быть отменена"
	msgInvalidData          = "слишком длинная причина отмены"
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

// Handle PATCH /api/v1/barbershops/{barbershopId}/appointments/{appointmentId}/cancel
// Тело запроса необязательно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	appointmentID, err := handlers.ParseUUID(vars["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelAppointmentRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	err = h.service.Cancel(r.Context(), barbershopID, appointmentID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /barbershops/{id}/appointments/{id}/cancel - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /barbershops/{id}/appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbershops/{id}/appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, user_id=%s",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
