package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректная дата или время: ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidData         = "некорректные данные записи"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга недоступна для записи"
	msgInvalidDate         = "дата записи в прошлом"
	msgTooLateToBook       = "время записи уже прошло"
	msgInvalidTimeSlot     = "некорректный временной слот"
	msgSlotBlocked         = "барбер недоступен в выбранное время"
	msgSlotOccupied        = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbershops/{barbershopId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbershopID, err := handlers.ParseUUID(mux.Vars(r)["barbershopId"])
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/appointments - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	// Клиент - текущий пользователь (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbershops/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbershops/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(barbershopID, clientID)
	if err != nil {
		h.logger.Warn("POST /barbershops/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotBlocked):
			h.logger.Warn("POST /barbershops/{id}/appointments - Slot blocked: barber_id=%s, time=%s", req.BarberID, req.StartTime)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /barbershops/{id}/appointments - Slot occupied: barber_id=%s, time=%s", req.BarberID, req.StartTime)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /barbershops/{id}/appointments - Service not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /barbershops/{id}/appointments - Service inactive: barbershop_id=%s", barbershopID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /barbershops/{id}/appointments - Date in the past: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /barbershops/{id}/appointments - Too late to book: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /barbershops/{id}/appointments - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{id}/appointments - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /barbershops/{id}/appointments - Failed to create appointment: client_id=%s, barbershop_id=%s, error=%v",
				clientID, barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbershops/{id}/appointments - Appointment created successfully: client_id=%s, barber_id=%s, count=%d",
		clientID, req.BarberID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
