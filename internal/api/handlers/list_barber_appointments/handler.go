package list_barber_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidBarberID     = "некорректный ID барбера"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidParams       = "некорректные параметры запроса: date (YYYY-MM-DD), includeCancelled"
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

// Handle GET /api/v1/barbershops/{barbershopId}/barbers/{barberId}/appointments
// Query params: date (required), includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barbershopID, err := handlers.ParseUUID(vars["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/appointments - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	barberID, err := handlers.ParseUUID(vars["barberId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/appointments - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(barbershopID, barberID, userID, query.Get("date"), query.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/barbers/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetBarberSchedule(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /barbershops/{id}/barbers/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /barbershops/{id}/barbers/{id}/appointments - Failed to get schedule: barber_id=%s, error=%v",
			barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbershops/{id}/barbers/{id}/appointments - Schedule retrieved successfully: barber_id=%s, count=%d",
		barberID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
