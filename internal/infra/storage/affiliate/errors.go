package affiliate

import "errors"

var (
	// ErrAffiliateNotFound возвращается, когда аффилиат не найден
	ErrAffiliateNotFound = errors.New("affiliate.repository: affiliate not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("affiliate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("affiliate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("affiliate.repository: failed to scan row")

	// ErrDuplicatePIN возвращается при попытке создать аффилиата с занятым PIN
	ErrDuplicatePIN = errors.New("affiliate.repository: pin already registered")
)
