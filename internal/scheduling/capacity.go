package scheduling

import (
	"errors"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

var (
	// ErrDayCapExceeded возвращается, когда в календарном дне кандидата
	// уже достигнут лимит активных commitments
	ErrDayCapExceeded = errors.New("scheduling: day capacity exceeded")

	// ErrConcurrencyCapExceeded возвращается, когда операционное окно
	// кандидата пересекает лимитное число активных commitments
	ErrConcurrencyCapExceeded = errors.New("scheduling: concurrency capacity exceeded")
)

// CapacityEvaluator decides whether admitting one more commitment would
// violate the per-day cap or the per-window concurrency cap, given the
// commitments already on record.
//
// Каждый кандидат оценивается независимо против одного и того же снимка
// commitments: предложенный слот не расходует вместимость, пока не
// закоммичен. Availability - это справка, не резервирование.
type CapacityEvaluator struct {
	resolver *Resolver
	limits   domain.CapacityLimits
}

// NewCapacityEvaluator создает оценщик вместимости
func NewCapacityEvaluator(resolver *Resolver, limits domain.CapacityLimits) *CapacityEvaluator {
	return &CapacityEvaluator{resolver: resolver, limits: limits}
}

// Evaluate returns nil when the candidate is admissible, otherwise
// ErrDayCapExceeded or ErrConcurrencyCapExceeded.
//
// Дневной лимит проверяется первым и зависит только от календарного дня
// начала обслуживания, не от окна кандидата.
func (e *CapacityEvaluator) Evaluate(
	serviceStart time.Time,
	window domain.OperationalWindow,
	commitments []*domain.Commitment,
) error {
	day := e.resolver.CalendarDay(serviceStart)

	dayCount := 0
	for _, c := range commitments {
		if !c.IsActive() {
			continue
		}
		if day.Overlaps(c.Window()) {
			dayCount++
		}
	}
	if dayCount >= e.limits.MaxPerDay {
		return ErrDayCapExceeded
	}

	overlapping := 0
	for _, c := range commitments {
		if !c.IsActive() {
			continue
		}
		if window.Overlaps(c.Window()) {
			overlapping++
		}
	}
	if overlapping >= e.limits.MaxConcurrent {
		return ErrConcurrencyCapExceeded
	}

	return nil
}
