package commit_booking

import (
	"fmt"
	"strings"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, openHour, closeHour, stepMinutes int) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return fmt.Errorf("%w: idempotency key is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	if req.Minute < 0 || req.Minute > 59 || req.Hour < 0 || req.Hour > 23 {
		return fmt.Errorf("%w: malformed time %02d:%02d", ErrInvalidInput, req.Hour, req.Minute)
	}

	// Время начала должно лежать на сетке шага внутри рабочего дня.
	// Проверяется запрошенное настенное время, до разрешения таймзоны
	wall := req.Hour*60 + req.Minute
	if wall < openHour*60 || wall >= closeHour*60 {
		return fmt.Errorf("%w: %02d:%02d is outside %02d:00-%02d:00",
			ErrOutsideBusinessHours, req.Hour, req.Minute, openHour, closeHour)
	}
	if (wall-openHour*60)%stepMinutes != 0 {
		return fmt.Errorf("%w: %02d:%02d is not on the %d-minute grid",
			ErrOutsideBusinessHours, req.Hour, req.Minute, stepMinutes)
	}

	return nil
}
