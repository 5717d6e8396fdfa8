package affiliates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	affiliateRepo "github.com/Admin-dev32/Manna-Affiliate/internal/infra/storage/affiliate"
)

type fakeRepo struct {
	affiliate *domain.Affiliate
	err       error
	lastPIN   string
	created   *domain.Affiliate
}

func (f *fakeRepo) GetByPIN(_ context.Context, pin string) (*domain.Affiliate, error) {
	f.lastPIN = pin
	if f.err != nil {
		return nil, f.err
	}
	return f.affiliate, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Affiliate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Affiliate{f.affiliate}, nil
}

func (f *fakeRepo) Create(_ context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = affiliate
	created := *affiliate
	created.ID = 1
	return &created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetByPIN_TrimsInput(t *testing.T) {
	repo := &fakeRepo{affiliate: &domain.Affiliate{ID: 3, PIN: "4242", Name: "Rosa"}}
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByPIN(context.Background(), "  4242  ")
	require.NoError(t, err)

	assert.Equal(t, "4242", repo.lastPIN)
	assert.Equal(t, "Rosa", got.Name)
}

func TestService_GetByPIN_EmptyPIN(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByPIN(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	assert.Empty(t, repo.lastPIN)
}

func TestService_GetByPIN_NotFound(t *testing.T) {
	repo := &fakeRepo{err: affiliateRepo.ErrAffiliateNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByPIN(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}

func TestService_GetByPIN_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByPIN(context.Background(), "4242")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Create_AppliesDefaultBundleRate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &domain.Affiliate{PIN: " 7777 ", Name: "Luis"})
	require.NoError(t, err)

	assert.Equal(t, "7777", repo.created.PIN)
	assert.Equal(t, domain.DefaultBundleRate, repo.created.BundleRate)
	assert.Equal(t, int64(1), created.ID)
}

func TestService_Create_DuplicatePIN(t *testing.T) {
	repo := &fakeRepo{err: affiliateRepo.ErrDuplicatePIN}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &domain.Affiliate{PIN: "4242"})
	assert.ErrorIs(t, err, ErrPINTaken)
}
