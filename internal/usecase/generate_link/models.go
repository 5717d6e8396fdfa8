package generate_link

import (
	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
)

// Request модель запроса на генерацию платежной ссылки аффилиатом.
// PIN идентифицирует аффилиата, остальное - параметры бронирования
type Request struct {
	PIN     string
	Booking create_checkout.Request
}

// Response платежная ссылка и расчет комиссии аффилиата
type Response struct {
	SessionID     string
	URL           string
	Quote         domain.Quote
	AffiliateName string
	Commissions   domain.CommissionBreakdown
}
