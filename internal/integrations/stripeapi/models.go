package stripeapi

// Ключи metadata checkout-сессии.
// Записываются при создании сессии и читаются обратно из
// webhook-события checkout.session.completed
const (
	MetaPackage      = "pkg"
	MetaDate         = "date"
	MetaTime         = "time"
	MetaMainBar      = "mainBar"
	MetaSecondBar    = "secondBar"
	MetaFountainSize = "fountainSize"
	MetaFountainType = "fountainType"
	MetaPayMode      = "payMode"
	MetaName         = "name"
	MetaPhone        = "phone"
	MetaEmail        = "email"
	MetaVenue        = "venue"
	MetaNotes        = "notes"
	MetaAffiliatePIN = "pin"
	MetaTotal        = "total"
	MetaDueNow       = "dueNow"
)

// CheckoutRequest параметры новой checkout-сессии
type CheckoutRequest struct {
	// Сумма к списанию в центах
	AmountCents int64

	ProductName   string
	Description   string
	CustomerEmail string

	// Metadata полный контекст бронирования.
	// Возвращается Stripe обратно в webhook-событии и используется
	// для создания бронирования после оплаты
	Metadata map[string]string
}

// CheckoutSession созданная checkout-сессия
type CheckoutSession struct {
	ID  string
	URL string
}
