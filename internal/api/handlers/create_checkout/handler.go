package create_checkout

import (
	"errors"
	"net/http"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	createCheckout "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPackage     = "unknown package"
	msgInvalidOptions     = "invalid booking options"
	msgOutsideHours       = "requested time is outside business hours"
	msgSlotUnavailable    = "this time slot is no longer available"
	msgStoreUnavailable   = "calendar is temporarily unavailable, try again"
	msgPaymentFailure     = "payment provider is unavailable, try again"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /checkout - Malformed request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrInvalidPackage):
			h.logger.Warn("POST /checkout - Unknown package: %s", req.Package)
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, createCheckout.ErrInvalidOptions):
			h.logger.Warn("POST /checkout - Invalid options: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOptions)

		case errors.Is(err, createCheckout.ErrOutsideBusinessHours):
			h.logger.Warn("POST /checkout - Outside business hours: %s %s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createCheckout.ErrSlotUnavailable):
			h.logger.Warn("POST /checkout - Slot unavailable: %s %s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createCheckout.ErrStoreUnavailable):
			h.logger.Error("POST /checkout - Commitment store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, createCheckout.ErrPaymentProvider):
			h.logger.Error("POST /checkout - Payment provider failure: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailure)

		default:
			h.logger.Error("POST /checkout - Failed: date=%s, time=%s: %v", req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Session created: session=%s, due_now=$%d", result.SessionID, result.Quote.DueNow)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
