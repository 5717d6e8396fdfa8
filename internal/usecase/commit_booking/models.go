package commit_booking

import (
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// Customer контактные данные клиента
type Customer struct {
	Name  string
	Phone string
	Email string
	Venue string // адрес проведения мероприятия
}

// Request модель запроса на фиксацию бронирования
type Request struct {
	Date   time.Time // Календарный день обслуживания
	Hour   int       // Час начала обслуживания (локальное время)
	Minute int       // Минута начала обслуживания

	Package string

	// IdempotencyKey внешний ключ идемпотентности.
	// Повторная фиксация с тем же ключом возвращает существующее
	// обязательство вместо создания дубликата
	IdempotencyKey string

	Customer Customer

	MainBar       string
	SecondBar     string // пусто, если второй бар не выбран
	SecondSize    string // размер второго бара кодом пакета
	FountainSize  string // пусто, если фонтан не выбран
	FountainWhite bool
	PayMode       string
	AffiliatePIN  string
	Notes         string

	// Суммы в долларах, посчитанные при создании платежной сессии
	TotalDollars int64
	PaidDollars  int64
}

// Response результат фиксации бронирования
type Response struct {
	CommitmentID string
	Start        time.Time
	Window       domain.OperationalWindow

	// Replayed true, если обязательство с этим ключом идемпотентности
	// уже существовало и новое не создавалось
	Replayed bool
}
