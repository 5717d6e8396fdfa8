package generate_link

import (
	"errors"
	"net/http"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	createCheckout "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
	generateLink "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/generate_link"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownPIN         = "unknown pin"
	msgInvalidOptions     = "invalid booking options"
	msgSlotUnavailable    = "this time slot is no longer available"
	msgStoreUnavailable   = "calendar is temporarily unavailable, try again"
	msgPaymentFailure     = "payment provider is unavailable, try again"
)

type Handler struct {
	useCase GenerateLinkUseCase
	logger  Logger
}

func NewHandler(useCase GenerateLinkUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/affiliate/link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateLinkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /affiliate/link - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /affiliate/link - Malformed request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateLink.ErrAffiliateNotFound):
			h.logger.Warn("POST /affiliate/link - Unknown pin")
			handlers.RespondNotFound(w, msgUnknownPIN)

		case errors.Is(err, generateLink.ErrInvalidInput),
			errors.Is(err, createCheckout.ErrInvalidInput),
			errors.Is(err, createCheckout.ErrOutsideBusinessHours):
			h.logger.Warn("POST /affiliate/link - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createCheckout.ErrInvalidPackage),
			errors.Is(err, createCheckout.ErrInvalidOptions):
			h.logger.Warn("POST /affiliate/link - Invalid options: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOptions)

		case errors.Is(err, createCheckout.ErrSlotUnavailable):
			h.logger.Warn("POST /affiliate/link - Slot unavailable: %s %s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createCheckout.ErrStoreUnavailable):
			h.logger.Error("POST /affiliate/link - Commitment store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, createCheckout.ErrPaymentProvider):
			h.logger.Error("POST /affiliate/link - Payment provider failure: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailure)

		default:
			h.logger.Error("POST /affiliate/link - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /affiliate/link - Link created: session=%s, affiliate=%s",
		result.SessionID, result.AffiliateName)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
