package create_checkout

import (
	"context"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/integrations/stripeapi"
)

// CommitmentStore интерфейс хранилища обязательств
type CommitmentStore interface {
	// ListWindow возвращает все обязательства, пересекающие интервал [from, to)
	ListWindow(ctx context.Context, from, to time.Time) ([]*domain.Commitment, error)
}

// PaymentProvider интерфейс платежного провайдера
type PaymentProvider interface {
	CreateCheckoutSession(req stripeapi.CheckoutRequest) (*stripeapi.CheckoutSession, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
