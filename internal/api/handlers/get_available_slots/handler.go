package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

const (
	msgInvalidBarbershopID = "некорректный ID барбершопа"
	msgMissingDate         = "дата обязательна"
	msgInvalidParams       = "некорректные параметры запроса: date (YYYY-MM-DD), barberId, serviceIds"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга недоступна для записи"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{barbershopId}/available-slots
// Query params: date (required, YYYY-MM-DD), barberId (optional), serviceIds (optional, через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем barbershopId из URL
	barbershopID, err := handlers.ParseUUID(mux.Vars(r)["barbershopId"])
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarbershopID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты и идентификаторов)
	useCaseReq, err := ToUseCaseRequest(barbershopID, dateStr, query.Get("barberId"), query.Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Маршрут публичный, ID пользователя передается только для логов
	if userID, err := handlers.ParseUUID(r.Header.Get(middleware.UserIDHeader)); err == nil {
		useCaseReq.UserID = userID
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Service not found: barbershop_id=%s", barbershopID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceInactive):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Service inactive: barbershop_id=%s", barbershopID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbershops/{id}/available-slots - Failed to get slots: barbershop_id=%s, error=%v",
				barbershopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/available-slots - Slots retrieved successfully: barbershop_id=%s, barber_id=%s, slots_count=%d",
		barbershopID, useCaseReq.BarberID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
