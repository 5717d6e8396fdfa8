package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/scheduling"
)

type fakeStore struct {
	commitments []*domain.Commitment
	err         error
	calls       int
}

func (f *fakeStore) ListWindow(_ context.Context, _, _ time.Time) ([]*domain.Commitment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.commitments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fixture struct {
	uc       *UseCase
	resolver *scheduling.Resolver
	store    *fakeStore
}

// newFixture собирает use case с рабочим днем 9-22, шагом 60 минут,
// буферами по часу и лимитами maxPerDay=3, maxConcurrent=2
func newFixture(t *testing.T, store *fakeStore) *fixture {
	t.Helper()

	resolver, err := scheduling.NewResolver("America/Los_Angeles")
	require.NoError(t, err)

	catalog, err := domain.NewPackageCatalog(map[domain.Package]int{
		domain.PackageSmall:  120,
		domain.PackageMedium: 150,
		domain.PackageLarge:  180,
	})
	require.NoError(t, err)

	windows, err := scheduling.NewWindowCalculator(catalog, time.Hour, time.Hour)
	require.NoError(t, err)

	capacity := scheduling.NewCapacityEvaluator(resolver, domain.CapacityLimits{
		MaxPerDay:     3,
		MaxConcurrent: 2,
	})

	uc := NewUseCase(
		store,
		resolver,
		scheduling.NewGenerator(resolver),
		windows,
		capacity,
		9, 22, 60,
		nopLogger{},
	)
	// Запросы всегда "задолго до" тестового дня
	uc.timeProvider = fixedClock{now: resolver.LocalWallClock(2025, time.October, 1, 12, 0)}

	return &fixture{uc: uc, resolver: resolver, store: store}
}

func (f *fixture) date(day int) time.Time {
	return f.resolver.LocalWallClock(2025, time.November, day, 0, 0)
}

func TestExecute_EmptyCalendarOffersFullDay(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: string(domain.PackageMedium),
	})
	require.NoError(t, err)

	// 9:00 .. 21:00 при шаге в час
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "21:00", resp.Slots[12].StartTime)
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i].Start.After(resp.Slots[i-1].Start), "slots must ascend")
	}
	assert.Equal(t, 1, f.store.calls, "one calendar snapshot per day")
}

func TestExecute_OverlapAgainstSharedSnapshot(t *testing.T) {
	f := newFixture(t, &fakeStore{})
	resolver := f.resolver

	// Занятое окно 08:00-13:30 (обслуживание с 09:00, medium: 1ч подготовка,
	// 2.5ч сервис, 1ч уборка)
	f.store.commitments = []*domain.Commitment{
		{
			ID:     "evt-0900",
			Start:  resolver.LocalWallClock(2025, time.November, 1, 8, 0),
			End:    resolver.LocalWallClock(2025, time.November, 1, 13, 30),
			Status: domain.StatusActive,
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: string(domain.PackageMedium),
	})
	require.NoError(t, err)

	// maxConcurrent=2: одно пересекающееся обязательство не отнимает слот
	starts := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}
	assert.True(t, starts["09:00"], "single overlap is within concurrency cap")
	assert.True(t, starts["10:00"])
	assert.Len(t, resp.Slots, 13)
}

func TestExecute_DayCapRejectsWholeDay(t *testing.T) {
	f := newFixture(t, &fakeStore{})
	resolver := f.resolver

	// Три активных обязательства в дне - дневной лимит (3) исчерпан
	f.store.commitments = []*domain.Commitment{
		{ID: "a", Start: resolver.LocalWallClock(2025, time.November, 1, 8, 0), End: resolver.LocalWallClock(2025, time.November, 1, 9, 0), Status: domain.StatusActive},
		{ID: "b", Start: resolver.LocalWallClock(2025, time.November, 1, 9, 0), End: resolver.LocalWallClock(2025, time.November, 1, 10, 0), Status: domain.StatusActive},
		{ID: "c", Start: resolver.LocalWallClock(2025, time.November, 1, 10, 0), End: resolver.LocalWallClock(2025, time.November, 1, 11, 0), Status: domain.StatusActive},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: string(domain.PackageSmall),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots, "full day must be rejected, not an error")
}

func TestExecute_PastCandidatesFiltered(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	// Сейчас 14:00 того же дня: слоты 9:00-14:00 включительно не предлагаются
	f.uc.timeProvider = fixedClock{now: f.resolver.LocalWallClock(2025, time.November, 1, 14, 0)}

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: string(domain.PackageMedium),
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "15:00", resp.Slots[0].StartTime)
	assert.Len(t, resp.Slots, 7)
}

func TestExecute_StoreFailurePropagates(t *testing.T) {
	f := newFixture(t, &fakeStore{err: errors.New("calendar down")})

	resp, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: string(domain.PackageMedium),
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, resp, "unavailable store must never look like an empty day")
}

func TestExecute_UnknownPackage(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	_, err := f.uc.Execute(context.Background(), &Request{
		Date:    f.date(1),
		Package: "500-1000-24h",
	})
	assert.ErrorIs(t, err, ErrInvalidPackage)
	assert.Zero(t, f.store.calls, "invalid input must not reach the store")
}

func TestExecute_MissingInput(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	_, err := f.uc.Execute(context.Background(), &Request{Package: string(domain.PackageSmall)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{Date: f.date(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
