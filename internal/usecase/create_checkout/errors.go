package create_checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPackage возвращается при неизвестном пакете обслуживания
	ErrInvalidPackage = errors.New("unknown service package")

	// ErrInvalidOptions возвращается при неизвестном баре, размере фонтана
	// или некорректной скидке
	ErrInvalidOptions = errors.New("invalid booking options")

	// ErrOutsideBusinessHours возвращается, когда запрошенное время
	// вне рабочего дня или не лежит на сетке шага
	ErrOutsideBusinessHours = errors.New("requested start is outside business hours")

	// ErrSlotUnavailable возвращается, когда слот уже занят на момент
	// создания платежной сессии
	ErrSlotUnavailable = errors.New("requested slot is no longer available")

	// ErrStoreUnavailable возвращается, когда хранилище обязательств недоступно
	ErrStoreUnavailable = errors.New("commitment store unavailable")

	// ErrPaymentProvider возвращается при ошибке платежного провайдера
	ErrPaymentProvider = errors.New("payment provider failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
