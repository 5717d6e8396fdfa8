package domain

import "time"

// CommitmentStatus represents the status of a calendar commitment
type CommitmentStatus string

const (
	StatusActive    CommitmentStatus = "active"
	StatusCancelled CommitmentStatus = "cancelled"
)

// Commitment represents an occupied interval on the external calendar.
// The calendar store owns persisted commitments; this service only reads
// them and appends new ones.
type Commitment struct {
	ID             string
	Start          time.Time
	End            time.Time
	Status         CommitmentStatus
	IdempotencyKey string // пустая строка, если событие создано не этим сервисом
}

// IsActive returns true if the commitment counts toward capacity
func (c *Commitment) IsActive() bool {
	return c.Status == StatusActive
}

// Window returns the interval the commitment occupies
func (c *Commitment) Window() OperationalWindow {
	return OperationalWindow{Start: c.Start, End: c.End}
}

// CommitmentMetadata данные, которые записываются в создаваемое событие
// календаря. На проверки вместимости не влияют.
type CommitmentMetadata struct {
	Summary     string
	Description string
	Location    string
	Private     map[string]string // extended properties события
}

// CapacityLimits limits enforced when admitting a new commitment.
// Fixed at deployment, never mutated at runtime.
type CapacityLimits struct {
	MaxPerDay     int // активных commitments, пересекающих календарный день
	MaxConcurrent int // активных commitments, пересекающих операционное окно
}
