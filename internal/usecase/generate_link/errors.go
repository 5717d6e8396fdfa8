package generate_link

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAffiliateNotFound возвращается при незарегистрированном PIN
	ErrAffiliateNotFound = errors.New("affiliate not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
