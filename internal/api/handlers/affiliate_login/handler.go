package affiliate_login

import (
	"errors"
	"net/http"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	"github.com/Admin-dev32/Manna-Affiliate/internal/service/affiliates"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownPIN         = "unknown pin"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginResponse профиль аффилиата с его ставками комиссии
type LoginResponse struct {
	Name               string           `json:"name"`
	Email              *string          `json:"email,omitempty"`
	BundleRate         float64          `json:"bundleRate"`
	Commissions        map[string]int64 `json:"commissions"`
	FountainCommission int64            `json:"fountainCommission"`
}

type Handler struct {
	service AffiliateService
	logger  Logger
}

func NewHandler(service AffiliateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/affiliate/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /affiliate/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	affiliate, err := h.service.GetByPIN(r.Context(), req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, affiliates.ErrAffiliateNotFound), errors.Is(err, affiliates.ErrInvalidPIN):
			h.logger.Warn("POST /affiliate/login - Unknown pin")
			handlers.RespondNotFound(w, msgUnknownPIN)
		default:
			h.logger.Error("POST /affiliate/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	commissions := make(map[string]int64, len(affiliate.CommissionByPkg))
	for pkg, amount := range affiliate.CommissionByPkg {
		commissions[string(pkg)] = amount
	}

	h.logger.Info("POST /affiliate/login - Authenticated: affiliate=%s", affiliate.Name)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Name:               affiliate.Name,
		Email:              affiliate.Email,
		BundleRate:         affiliate.BundleRate,
		Commissions:        commissions,
		FountainCommission: affiliate.FountainCommission,
	})
}
