package get_availability

import (
	"context"
	"fmt"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/scheduling"
)

// UseCase use case получения доступных слотов обслуживания на день
type UseCase struct {
	store        CommitmentStore
	resolver     *scheduling.Resolver
	generator    *scheduling.Generator
	windows      *scheduling.WindowCalculator
	capacity     *scheduling.CapacityEvaluator
	openHour     int
	closeHour    int
	stepMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store CommitmentStore,
	resolver *scheduling.Resolver,
	generator *scheduling.Generator,
	windows *scheduling.WindowCalculator,
	capacity *scheduling.CapacityEvaluator,
	openHour, closeHour, stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		resolver:     resolver,
		generator:    generator,
		windows:      windows,
		capacity:     capacity,
		openHour:     openHour,
		closeHour:    closeHour,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает допустимые моменты начала обслуживания на указанный день,
// по возрастанию. Один снимок календаря используется для всех кандидатов дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, package=%s",
		req.Date.Format(domain.DateFormat), req.Package)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	pkg, err := domain.ParsePackage(req.Package)
	if err != nil {
		uc.logger.Warn("GetAvailability: unknown package=%s", req.Package)
		return nil, fmt.Errorf("%w: %s", ErrInvalidPackage, req.Package)
	}

	now := uc.timeProvider.Now()

	// 2. Генерируем кандидатов по шагу рабочего дня
	candidates := uc.generator.GenerateCandidates(req.Date, uc.stepMinutes, uc.openHour, uc.closeHour)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: no candidates for date=%s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Package: pkg, Slots: []Slot{}}, nil
	}

	// 3. Один запрос к календарю на весь день.
	// Диапазон расширен на максимальный размах окна, чтобы захватить
	// обязательства соседних дней, пересекающие окна кандидатов
	day := uc.resolver.CalendarDay(candidates[0])
	span := uc.windows.MaxSpan()

	commitments, err := uc.store.ListWindow(ctx, day.Start.Add(-span), day.End.Add(span))
	if err != nil {
		uc.logger.Error("GetAvailability: commitment store failure for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 4. Проверяем каждого кандидата против одного и того же снимка
	slots := make([]Slot, 0, len(candidates))
	for _, candidate := range candidates {
		// Прошедшие и текущие моменты не предлагаются
		if !candidate.After(now) {
			continue
		}

		window, err := uc.windows.Window(candidate, pkg)
		if err != nil {
			return nil, fmt.Errorf("%w: compute window: %v", ErrInternal, err)
		}

		if err := uc.capacity.Evaluate(candidate, window, commitments); err != nil {
			continue
		}

		slots = append(slots, Slot{
			Start:     candidate,
			StartTime: candidate.Format(domain.TimeFormat),
		})
	}

	uc.logger.Info("GetAvailability: %d of %d candidates admissible for date=%s, package=%s",
		len(slots), len(candidates), req.Date.Format(domain.DateFormat), pkg)

	return &Response{Date: req.Date, Package: pkg, Slots: slots}, nil
}
