package google

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// MetricsCollector интерфейс для метрик внешних вызовов
type MetricsCollector interface {
	ObserveExternalCall(target, operation string, duration time.Duration, err error)
}
