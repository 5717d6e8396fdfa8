package stripeapi

import "errors"

var (
	// ErrCreateSession возвращается при ошибке создания checkout-сессии
	ErrCreateSession = errors.New("stripeapi client: failed to create checkout session")

	// ErrInvalidSignature возвращается, когда подпись webhook-события не проходит проверку
	ErrInvalidSignature = errors.New("stripeapi client: invalid webhook signature")

	// ErrInvalidPayload возвращается при некорректном теле webhook-события
	ErrInvalidPayload = errors.New("stripeapi client: invalid webhook payload")
)
