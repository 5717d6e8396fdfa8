package get_availability

import (
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	Date    time.Time // Календарный день, на который запрашиваются слоты
	Package string    // Код пакета обслуживания (например, "50-150-5h")
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time
	Package domain.Package
	Slots   []Slot
}

// Slot доступное время начала обслуживания
type Slot struct {
	Start     time.Time // Момент начала обслуживания в локальной таймзоне
	StartTime string    // Лейбл времени начала (например, "10:00")
}
