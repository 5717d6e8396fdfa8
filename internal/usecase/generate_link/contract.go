package generate_link

import (
	"context"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
)

// AffiliateProvider интерфейс сервиса аффилиатов
type AffiliateProvider interface {
	GetByPIN(ctx context.Context, pin string) (*domain.Affiliate, error)
}

// CheckoutCreator интерфейс создания платежной сессии
type CheckoutCreator interface {
	Execute(ctx context.Context, req *create_checkout.Request) (*create_checkout.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
