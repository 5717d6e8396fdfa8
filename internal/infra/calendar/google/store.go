package google

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

const (
	externalTarget = "google_calendar"

	// Ключ приватного extended property, в котором хранится ключ идемпотентности
	idempotencyProperty = "idempotencyKey"
)

// Store хранилище обязательств поверх Google Calendar.
// Каждое активное событие календаря - занятое операционное окно
type Store struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	timeout    time.Duration
	log        Logger
	metrics    MetricsCollector
}

// NewStore создает хранилище с авторизацией по файлу сервисного аккаунта
func NewStore(ctx context.Context, credentialsFile, calendarID string, loc *time.Location, timeout time.Duration, log Logger, collector MetricsCollector) (*Store, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrUnavailable, err)
	}

	return &Store{
		svc:        svc,
		calendarID: calendarID,
		loc:        loc,
		timeout:    timeout,
		log:        log,
		metrics:    collector,
	}, nil
}

// callContext ограничивает каждый вызов календаря настроенным таймаутом
func (s *Store) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

// ListWindow возвращает все обязательства, пересекающие интервал [from, to).
// Ошибка апстрима возвращается как есть - вызывающий код не должен
// принимать решения по пустому списку при недоступном календаре
func (s *Store) ListWindow(ctx context.Context, from, to time.Time) ([]*domain.Commitment, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	var commitments []*domain.Commitment
	pageToken := ""

	for {
		call := s.svc.Events.List(s.calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		start := time.Now()
		events, err := call.Do()
		s.metrics.ObserveExternalCall(externalTarget, "events_list", time.Since(start), err)
		if err != nil {
			s.log.Error("Calendar events.list failed: calendar_id=%s, from=%s, to=%s: %v",
				s.calendarID, from.Format(time.RFC3339), to.Format(time.RFC3339), err)
			return nil, fmt.Errorf("%w: list events: %v", ErrUnavailable, err)
		}

		for _, item := range events.Items {
			commitment, err := s.mapEvent(item)
			if err != nil {
				// Нечитаемое событие не блокирует выдачу, но фиксируется в логах
				s.log.Warn("Skipping unreadable calendar event: event_id=%s: %v", item.Id, err)
				continue
			}
			commitments = append(commitments, commitment)
		}

		if events.NextPageToken == "" {
			break
		}
		pageToken = events.NextPageToken
	}

	return commitments, nil
}

// Insert записывает новое обязательство в календарь.
// Уведомления участникам не рассылаются
func (s *Store) Insert(ctx context.Context, window domain.OperationalWindow, meta domain.CommitmentMetadata) (*domain.Commitment, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	event := &calendar.Event{
		Summary:     meta.Summary,
		Description: meta.Description,
		Location:    meta.Location,
		Start: &calendar.EventDateTime{
			DateTime: window.Start.Format(time.RFC3339),
			TimeZone: s.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: window.End.Format(time.RFC3339),
			TimeZone: s.loc.String(),
		},
	}
	if len(meta.Private) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: meta.Private,
		}
	}

	start := time.Now()
	created, err := s.svc.Events.Insert(s.calendarID, event).
		SendUpdates("none").
		Context(ctx).
		Do()
	s.metrics.ObserveExternalCall(externalTarget, "events_insert", time.Since(start), err)
	if err != nil {
		s.log.Error("Calendar events.insert failed: calendar_id=%s, start=%s: %v",
			s.calendarID, window.Start.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: insert event: %v", ErrUnavailable, err)
	}

	s.log.Info("Calendar event created: event_id=%s, start=%s, end=%s",
		created.Id, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	return &domain.Commitment{
		ID:             created.Id,
		Start:          window.Start,
		End:            window.End,
		Status:         domain.StatusActive,
		IdempotencyKey: meta.Private[idempotencyProperty],
	}, nil
}

// mapEvent конвертирует событие календаря в доменное обязательство
func (s *Store) mapEvent(item *calendar.Event) (*domain.Commitment, error) {
	start, err := s.eventTime(item.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidEvent, err)
	}
	end, err := s.eventTime(item.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidEvent, err)
	}

	status := domain.StatusActive
	if item.Status == "cancelled" {
		status = domain.StatusCancelled
	}

	idempotencyKey := ""
	if item.ExtendedProperties != nil && item.ExtendedProperties.Private != nil {
		idempotencyKey = item.ExtendedProperties.Private[idempotencyProperty]
	}

	return &domain.Commitment{
		ID:             item.Id,
		Start:          start.In(s.loc),
		End:            end.In(s.loc),
		Status:         status,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// eventTime разбирает время события.
// События на весь день (только дата) трактуются как полночь локального дня
func (s *Store) eventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, fmt.Errorf("missing event boundary")
	}
	if edt.DateTime != "" {
		return time.Parse(time.RFC3339, edt.DateTime)
	}
	if edt.Date != "" {
		return time.ParseInLocation(domain.DateFormat, edt.Date, s.loc)
	}
	return time.Time{}, fmt.Errorf("event boundary has neither dateTime nor date")
}
