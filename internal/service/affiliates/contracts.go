package affiliates

import (
	"context"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// AffiliateRepository интерфейс репозитория аффилиатов
type AffiliateRepository interface {
	GetByPIN(ctx context.Context, pin string) (*domain.Affiliate, error)
	List(ctx context.Context) ([]*domain.Affiliate, error)
	Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
