package generate_link

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/service/affiliates"
	"github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
)

type fakeAffiliates struct {
	affiliate *domain.Affiliate
	err       error
}

func (f *fakeAffiliates) GetByPIN(_ context.Context, _ string) (*domain.Affiliate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.affiliate, nil
}

type fakeCheckout struct {
	err  error
	last *create_checkout.Request
}

func (f *fakeCheckout) Execute(_ context.Context, req *create_checkout.Request) (*create_checkout.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = req
	return &create_checkout.Response{
		SessionID: "cs_test_link",
		URL:       "https://checkout.stripe.com/c/pay/cs_test_link",
		Quote:     domain.Quote{Total: 700, DueNow: 175},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAffiliate() *domain.Affiliate {
	return &domain.Affiliate{
		ID:         7,
		PIN:        "4242",
		Name:       "Rosa Diaz",
		BundleRate: 0.7,
		CommissionByPkg: map[domain.Package]int64{
			domain.PackageSmall:  50,
			domain.PackageMedium: 75,
			domain.PackageLarge:  100,
		},
		FountainCommission: 50,
	}
}

func bookingRequest() create_checkout.Request {
	return create_checkout.Request{
		Date:    time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		Hour:    12,
		Package: string(domain.PackageMedium),
		MainBar: string(domain.BarPancake),
		Name:    "Maria Lopez",
	}
}

func TestExecute_LinkWithCommissions(t *testing.T) {
	checkout := &fakeCheckout{}
	uc := NewUseCase(&fakeAffiliates{affiliate: testAffiliate()}, checkout, nopLogger{})

	booking := bookingRequest()
	booking.SecondBar = string(domain.BarEsquites)
	booking.SecondSize = string(domain.PackageSmall)
	booking.FountainSize = string(domain.Fountain100)

	resp, err := uc.Execute(context.Background(), &Request{PIN: " 4242 ", Booking: booking})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_link", resp.SessionID)
	assert.Equal(t, "Rosa Diaz", resp.AffiliateName)

	// Medium: $75 основная, второй бар 70% = $53 (округление вверх), фонтан $50
	assert.Equal(t, int64(75), resp.Commissions.Main)
	assert.Equal(t, int64(53), resp.Commissions.Second)
	assert.Equal(t, int64(50), resp.Commissions.Fountain)
	assert.Equal(t, int64(178), resp.Commissions.Total)

	require.NotNil(t, checkout.last)
	assert.Equal(t, "4242", checkout.last.AffiliatePIN, "session must carry the affiliate pin")
}

func TestExecute_UnknownPIN(t *testing.T) {
	uc := NewUseCase(&fakeAffiliates{err: affiliates.ErrAffiliateNotFound}, &fakeCheckout{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PIN: "0000", Booking: bookingRequest()})
	assert.ErrorIs(t, err, ErrAffiliateNotFound)
}

func TestExecute_EmptyPIN(t *testing.T) {
	uc := NewUseCase(&fakeAffiliates{affiliate: testAffiliate()}, &fakeCheckout{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Booking: bookingRequest()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CheckoutErrorsPassThrough(t *testing.T) {
	uc := NewUseCase(
		&fakeAffiliates{affiliate: testAffiliate()},
		&fakeCheckout{err: create_checkout.ErrSlotUnavailable},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{PIN: "4242", Booking: bookingRequest()})
	assert.ErrorIs(t, err, create_checkout.ErrSlotUnavailable)
}
