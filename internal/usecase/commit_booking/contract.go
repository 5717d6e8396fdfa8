package commit_booking

import (
	"context"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// CommitmentStore интерфейс хранилища обязательств
type CommitmentStore interface {
	// ListWindow возвращает все обязательства, пересекающие интервал [from, to)
	ListWindow(ctx context.Context, from, to time.Time) ([]*domain.Commitment, error)

	// Insert записывает новое обязательство
	Insert(ctx context.Context, window domain.OperationalWindow, meta domain.CommitmentMetadata) (*domain.Commitment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
