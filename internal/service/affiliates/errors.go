package affiliates

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда PIN не зарегистрирован
	ErrAffiliateNotFound = errors.New("affiliate not found")

	// ErrInvalidPIN возвращается при пустом или некорректном PIN
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrPINTaken возвращается при попытке зарегистрировать занятый PIN
	ErrPINTaken = errors.New("pin already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
