package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPackage возвращается при неизвестном пакете обслуживания
	ErrInvalidPackage = errors.New("unknown service package")

	// ErrStoreUnavailable возвращается, когда хранилище обязательств недоступно.
	// Недоступность никогда не маскируется пустым списком слотов
	ErrStoreUnavailable = errors.New("commitment store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
