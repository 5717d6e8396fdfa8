package affiliate_login

import (
	"context"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

type AffiliateService interface {
	GetByPIN(ctx context.Context, pin string) (*domain.Affiliate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
