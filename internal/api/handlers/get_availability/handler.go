package get_availability

import (
	"errors"
	"net/http"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	getAvailability "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "date is required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMissingPackage   = "pkg is required"
	msgInvalidPackage   = "unknown package"
	msgStoreUnavailable = "calendar is temporarily unavailable, try again"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), pkg (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	pkg := r.URL.Query().Get("pkg")
	if pkg == "" {
		h.logger.Warn("GET /availability - Missing package")
		handlers.RespondBadRequest(w, msgMissingPackage)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, pkg)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidPackage):
			h.logger.Warn("GET /availability - Unknown package: pkg=%s", pkg)
			handlers.RespondBadRequest(w, msgInvalidPackage)

		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailability.ErrStoreUnavailable):
			// Недоступный календарь - это 503, а не пустой список слотов
			h.logger.Error("GET /availability - Commitment store unavailable: date=%s: %v", dateStr, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /availability - Failed: date=%s, pkg=%s: %v", dateStr, pkg, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots for date=%s, pkg=%s", len(result.Slots), dateStr, pkg)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
