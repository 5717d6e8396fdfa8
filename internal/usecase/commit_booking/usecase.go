package commit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/scheduling"
)

// UseCase use case фиксации бронирования в хранилище обязательств
type UseCase struct {
	store       CommitmentStore
	resolver    *scheduling.Resolver
	windows     *scheduling.WindowCalculator
	capacity    *scheduling.CapacityEvaluator
	openHour    int
	closeHour   int
	stepMinutes int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store CommitmentStore,
	resolver *scheduling.Resolver,
	windows *scheduling.WindowCalculator,
	capacity *scheduling.CapacityEvaluator,
	openHour, closeHour, stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:       store,
		resolver:    resolver,
		windows:     windows,
		capacity:    capacity,
		openHour:    openHour,
		closeHour:   closeHour,
		stepMinutes: stepMinutes,
		logger:      logger,
	}
}

// Execute фиксирует бронирование.
// Порядок строгий: идемпотентность проверяется до лимитов по свежему
// снимку календаря, лимиты - по тому же снимку непосредственно перед записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitBooking: date=%s, time=%02d:%02d, package=%s, key=%s",
		req.Date.Format(domain.DateFormat), req.Hour, req.Minute, req.Package, req.IdempotencyKey)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.openHour, uc.closeHour, uc.stepMinutes); err != nil {
		uc.logger.Warn("CommitBooking: validation failed: %v", err)
		return nil, err
	}

	pkg, err := domain.ParsePackage(req.Package)
	if err != nil {
		uc.logger.Warn("CommitBooking: unknown package=%s", req.Package)
		return nil, fmt.Errorf("%w: %s", ErrInvalidPackage, req.Package)
	}

	// 2. Разрешаем запрошенное локальное время в конкретный момент
	serviceStart := uc.resolver.LocalWallClock(
		req.Date.Year(), req.Date.Month(), req.Date.Day(), req.Hour, req.Minute)

	window, err := uc.windows.Window(serviceStart, pkg)
	if err != nil {
		return nil, fmt.Errorf("%w: compute window: %v", ErrInternal, err)
	}

	// 3. Свежий снимок календаря на день, расширенный на максимальный
	// размах окна для захвата обязательств соседних дней
	day := uc.resolver.CalendarDay(serviceStart)
	span := uc.windows.MaxSpan()

	commitments, err := uc.store.ListWindow(ctx, day.Start.Add(-span), day.End.Add(span))
	if err != nil {
		uc.logger.Error("CommitBooking: commitment store failure: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 4. Идемпотентность: ключ уже зафиксирован - возвращаем существующее
	// обязательство и не трогаем лимиты
	for _, c := range commitments {
		if c.IsActive() && c.IdempotencyKey == req.IdempotencyKey {
			uc.logger.Info("CommitBooking: idempotent replay: key=%s, commitment=%s",
				req.IdempotencyKey, c.ID)
			return &Response{
				CommitmentID: c.ID,
				Start:        serviceStart,
				Window:       c.Window(),
				Replayed:     true,
			}, nil
		}
	}

	// 5. Лимиты по тому же снимку
	if err := uc.capacity.Evaluate(serviceStart, window, commitments); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrDayCapExceeded):
			uc.logger.Warn("CommitBooking: day cap exceeded for date=%s", req.Date.Format(domain.DateFormat))
			return nil, ErrDayCapExceeded
		case errors.Is(err, scheduling.ErrConcurrencyCapExceeded):
			uc.logger.Warn("CommitBooking: concurrency cap exceeded for start=%s", serviceStart)
			return nil, ErrConcurrencyCapExceeded
		default:
			return nil, fmt.Errorf("%w: evaluate capacity: %v", ErrInternal, err)
		}
	}

	// 6. Запись обязательства
	created, err := uc.store.Insert(ctx, window, uc.buildMetadata(req, pkg))
	if err != nil {
		uc.logger.Error("CommitBooking: insert failed for key=%s: %v", req.IdempotencyKey, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	uc.logger.Info("CommitBooking: committed: key=%s, commitment=%s, window=[%s, %s)",
		req.IdempotencyKey, created.ID, window.Start, window.End)

	return &Response{
		CommitmentID: created.ID,
		Start:        serviceStart,
		Window:       window,
		Replayed:     false,
	}, nil
}

// buildMetadata собирает содержимое события календаря
func (uc *UseCase) buildMetadata(req *Request, pkg domain.Package) domain.CommitmentMetadata {
	summary := fmt.Sprintf("%s, %s", pkg.Label(), req.Customer.Name)

	lines := []string{
		fmt.Sprintf("Package: %s", pkg.Label()),
	}
	if req.MainBar != "" {
		lines = append(lines, fmt.Sprintf("Main bar: %s", domain.Bar(req.MainBar).Title()))
	}
	if req.SecondBar != "" {
		lines = append(lines, fmt.Sprintf("Second bar: %s", domain.Bar(req.SecondBar).Title()))
	}
	if req.FountainSize != "" {
		fountain := fmt.Sprintf("Chocolate fountain: %s guests", req.FountainSize)
		if req.FountainWhite {
			fountain += " (white/mixed)"
		}
		lines = append(lines, fountain)
	}
	if req.Customer.Phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", req.Customer.Phone))
	}
	if req.Customer.Email != "" {
		lines = append(lines, fmt.Sprintf("Email: %s", req.Customer.Email))
	}
	if req.TotalDollars > 0 {
		lines = append(lines, fmt.Sprintf("Total: $%d, paid: $%d, balance: $%d",
			req.TotalDollars, req.PaidDollars, req.TotalDollars-req.PaidDollars))
	}
	if req.AffiliatePIN != "" {
		lines = append(lines, fmt.Sprintf("Affiliate PIN: %s", req.AffiliatePIN))
	}
	if req.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", req.Notes))
	}

	return domain.CommitmentMetadata{
		Summary:     summary,
		Description: strings.Join(lines, "\n"),
		Location:    req.Customer.Venue,
		Private: map[string]string{
			"idempotencyKey": req.IdempotencyKey,
		},
	}
}
