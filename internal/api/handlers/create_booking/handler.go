package create_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	commitBooking "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPackage     = "unknown package"
	msgOutsideHours       = "requested time is outside business hours"
	msgDayCapExceeded     = "no more bookings available on this date"
	msgConcurrencyCap     = "this time slot is already taken"
	msgStoreUnavailable   = "calendar is temporarily unavailable, try again"
)

type Handler struct {
	useCase CommitBookingUseCase
	logger  Logger
}

func NewHandler(useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Прямая фиксация бронирования без платежной сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Без клиентского ключа каждый запрос - отдельное бронирование
	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = "direct-" + uuid.NewString()
	}

	useCaseReq, err := req.ToUseCaseRequest(idempotencyKey)
	if err != nil {
		h.logger.Warn("POST /bookings - Malformed request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrInvalidPackage):
			h.logger.Warn("POST /bookings - Unknown package: %s", req.Package)
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, commitBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: %s %s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, commitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, commitBooking.ErrDayCapExceeded):
			h.logger.Warn("POST /bookings - Day cap exceeded: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayCapExceeded)

		case errors.Is(err, commitBooking.ErrConcurrencyCapExceeded):
			h.logger.Warn("POST /bookings - Concurrency cap exceeded: %s %s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgConcurrencyCap)

		case errors.Is(err, commitBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Commitment store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed: date=%s, time=%s: %v", req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings - Committed: commitment=%s, replayed=%v", result.CommitmentID, result.Replayed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
