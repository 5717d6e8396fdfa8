package create_checkout

import (
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// Request модель запроса на создание платежной сессии
type Request struct {
	Date   time.Time // Календарный день обслуживания
	Hour   int       // Час начала обслуживания (локальное время)
	Minute int

	Package string
	MainBar string

	SecondBar  string // пусто, если второй бар не выбран
	SecondSize string // размер второго бара кодом пакета

	FountainSize  string // пусто, если фонтан не выбран
	FountainWhite bool

	DiscountMode  string
	DiscountValue float64
	PayMode       string

	Name  string
	Phone string
	Email string
	Venue string

	AffiliatePIN string
	Notes        string
}

// Response созданная платежная сессия и расчет стоимости
type Response struct {
	SessionID string
	URL       string
	Quote     domain.Quote
}
