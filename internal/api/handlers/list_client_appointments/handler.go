package list_client_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidClientID     = "некорректный ID клиента"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgForbidden           = "доступ запрещен"
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

// Handle GET /api/v1/barbershops/{barbershopId}/clients/{clientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/clients/{id}/appointments - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	clientID, err := handlers.ParseUUID(vars["clientId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/clients/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetClientAppointments(r.Context(), &models.GetClientAppointmentsRequest{
		UserID:       userID,
		BarbershopID: barbershopID,
		ClientID:     clientID,
	})
	if err != nil {
		if errors.Is(err, appointments.ErrAccessDenied) {
			h.logger.Warn("GET /barbershops/{id}/clients/{id}/appointments - Access denied: client_id=%s, user_id=%s", clientID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /barbershops/{id}/clients/{id}/appointments - Failed to get appointments: client_id=%s, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops/{id}/clients/{id}/appointments - Appointments retrieved successfully: client_id=%s, count=%d",
		clientID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
