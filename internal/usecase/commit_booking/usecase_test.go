package commit_booking

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
	listErr     error
	insertErr   error

	inserted     []domain.CommitmentMetadata
	insertCalled int
}

func (f *fakeStore) ListWindow(_ context.Context, _, _ time.Time) ([]*domain.Commitment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.commitments, nil
}

func (f *fakeStore) Insert(_ context.Context, window domain.OperationalWindow, meta domain.CommitmentMetadata) (*domain.Commitment, error) {
	f.insertCalled++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, meta)
	return &domain.Commitment{
		ID:             "evt-created",
		Start:          window.Start,
		End:            window.End,
		Status:         domain.StatusActive,
		IdempotencyKey: meta.Private["idempotencyKey"],
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	resolver *scheduling.Resolver
	store    *fakeStore
}

// newFixture собирает use case с рабочим днем 10-21, шагом 30 минут,
// буферами по часу и лимитами maxPerDay=2, maxConcurrent=1
func newFixture(t *testing.T, store *fakeStore) *fixture {
	t.Helper()

	resolver, err := scheduling.NewResolver("America/Los_Angeles")
	require.NoError(t, err)

	catalog, err := domain.NewPackageCatalog(domain.DefaultPackageLiveMinutes)
	require.NoError(t, err)

	windows, err := scheduling.NewWindowCalculator(catalog, time.Hour, time.Hour)
	require.NoError(t, err)

	capacity := scheduling.NewCapacityEvaluator(resolver, domain.CapacityLimits{
		MaxPerDay:     2,
		MaxConcurrent: 1,
	})

	uc := NewUseCase(store, resolver, windows, capacity, 10, 21, 30, nopLogger{})
	return &fixture{uc: uc, resolver: resolver, store: store}
}

func (f *fixture) request() *Request {
	return &Request{
		Date:           f.resolver.LocalWallClock(2025, time.November, 1, 0, 0),
		Hour:           12,
		Minute:         0,
		Package:        string(domain.PackageMedium),
		IdempotencyKey: "cs_test_123",
		Customer: Customer{
			Name:  "Maria Lopez",
			Phone: "+1 555 0100",
			Venue: "123 Main St, Fresno",
		},
		MainBar:      string(domain.BarPancake),
		PayMode:      string(domain.PayDeposit),
		TotalDollars: 700,
		PaidDollars:  175,
	}
}

func TestExecute_Commit(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.Equal(t, "evt-created", resp.CommitmentID)
	assert.False(t, resp.Replayed)

	// Окно medium: час подготовки + 2.5 часа сервиса + час уборки
	assert.Equal(t, f.resolver.LocalWallClock(2025, time.November, 1, 11, 0), resp.Window.Start)
	assert.Equal(t, f.resolver.LocalWallClock(2025, time.November, 1, 16, 30), resp.Window.End)

	require.Len(t, f.store.inserted, 1)
	meta := f.store.inserted[0]
	assert.Equal(t, "cs_test_123", meta.Private["idempotencyKey"])
	assert.Contains(t, meta.Summary, "Maria Lopez")
	assert.Contains(t, meta.Description, "Mini Pancake")
	assert.Equal(t, "123 Main St, Fresno", meta.Location)
}

func TestExecute_IdempotentReplay(t *testing.T) {
	store := &fakeStore{}
	f := newFixture(t, store)

	store.commitments = []*domain.Commitment{
		{
			ID:             "evt-existing",
			Start:          f.resolver.LocalWallClock(2025, time.November, 1, 11, 0),
			End:            f.resolver.LocalWallClock(2025, time.November, 1, 16, 30),
			Status:         domain.StatusActive,
			IdempotencyKey: "cs_test_123",
		},
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)

	assert.True(t, resp.Replayed)
	assert.Equal(t, "evt-existing", resp.CommitmentID)
	assert.Zero(t, store.insertCalled, "replay must not create a second commitment")
}

func TestExecute_ReplayWinsOverCapacity(t *testing.T) {
	store := &fakeStore{}
	f := newFixture(t, store)

	// Существующее обязательство с тем же ключом само занимает окно кандидата.
	// Повтор обязан вернуть его, а не отказ по лимиту
	store.commitments = []*domain.Commitment{
		{
			ID:             "evt-existing",
			Start:          f.resolver.LocalWallClock(2025, time.November, 1, 11, 0),
			End:            f.resolver.LocalWallClock(2025, time.November, 1, 16, 30),
			Status:         domain.StatusActive,
			IdempotencyKey: "cs_test_123",
		},
	}

	resp, err := f.uc.Execute(context.Background(), f.request())
	require.NoError(t, err)
	assert.True(t, resp.Replayed)
}

func TestExecute_DayCap(t *testing.T) {
	store := &fakeStore{}
	f := newFixture(t, store)

	store.commitments = []*domain.Commitment{
		{ID: "a", Start: f.resolver.LocalWallClock(2025, time.November, 1, 7, 0), End: f.resolver.LocalWallClock(2025, time.November, 1, 8, 0), Status: domain.StatusActive, IdempotencyKey: "other-1"},
		{ID: "b", Start: f.resolver.LocalWallClock(2025, time.November, 1, 19, 0), End: f.resolver.LocalWallClock(2025, time.November, 1, 20, 0), Status: domain.StatusActive, IdempotencyKey: "other-2"},
	}

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrDayCapExceeded)
	assert.Zero(t, store.insertCalled)
}

func TestExecute_ConcurrencyCap(t *testing.T) {
	store := &fakeStore{}
	f := newFixture(t, store)

	// Одно обязательство, пересекающее окно кандидата 11:00-16:30
	store.commitments = []*domain.Commitment{
		{ID: "a", Start: f.resolver.LocalWallClock(2025, time.November, 1, 9, 0), End: f.resolver.LocalWallClock(2025, time.November, 1, 12, 0), Status: domain.StatusActive, IdempotencyKey: "other-1"},
	}

	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrConcurrencyCapExceeded)
	assert.Zero(t, store.insertCalled)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	req := f.request()
	req.Hour = 8
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	req = f.request()
	req.Hour = 21
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// 12:15 не лежит на 30-минутной сетке
	req = f.request()
	req.Minute = 15
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_UnknownPackage(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	req := f.request()
	req.Package = "mega-deluxe"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestExecute_StoreFailures(t *testing.T) {
	f := newFixture(t, &fakeStore{listErr: errors.New("calendar down")})
	_, err := f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	f = newFixture(t, &fakeStore{insertErr: errors.New("calendar down")})
	_, err = f.uc.Execute(context.Background(), f.request())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_MissingKey(t *testing.T) {
	f := newFixture(t, &fakeStore{})

	req := f.request()
	req.IdempotencyKey = "  "
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
