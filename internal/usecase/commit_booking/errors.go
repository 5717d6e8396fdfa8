package commit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPackage возвращается при неизвестном пакете обслуживания
	ErrInvalidPackage = errors.New("unknown service package")

	// ErrOutsideBusinessHours возвращается, когда запрошенное время
	// вне рабочего дня или не лежит на сетке шага
	ErrOutsideBusinessHours = errors.New("requested start is outside business hours")

	// ErrDayCapExceeded возвращается при исчерпанном дневном лимите
	ErrDayCapExceeded = errors.New("daily booking cap exceeded")

	// ErrConcurrencyCapExceeded возвращается при исчерпанном лимите
	// одновременных обслуживаний
	ErrConcurrencyCapExceeded = errors.New("concurrent booking cap exceeded")

	// ErrStoreUnavailable возвращается, когда хранилище обязательств недоступно
	ErrStoreUnavailable = errors.New("commitment store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
