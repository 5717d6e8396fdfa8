package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeQuote_DepositBaseOnly(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package: PackageMedium,
		MainBar: BarPancake,
		PayMode: PayDeposit,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(700), q.Subtotal)
	assert.Equal(t, int64(0), q.Discount)
	assert.Equal(t, int64(700), q.Total)
	// Депозит 25% от итога
	assert.Equal(t, int64(175), q.DueNow)
	assert.Equal(t, int64(525), q.Balance())
}

func TestComputeQuote_PremiumBarSurcharge(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package: PackageSmall,
		MainBar: BarTostiloco,
		PayMode: PayDeposit,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(600), q.Subtotal)
	assert.Equal(t, int64(150), q.DueNow)
}

func TestComputeQuote_SecondBarDiscountedBySize(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package:       PackageMedium,
		MainBar:       BarEsquites,
		SecondEnabled: true,
		SecondBar:     BarMaruchan,
		SecondSize:    PackageSmall,
		PayMode:       PayDeposit,
	})
	require.NoError(t, err)

	// 700 + (550 - 50) = 1200; скидка зависит от размера второго бара
	assert.Equal(t, int64(1200), q.Subtotal)
	assert.Equal(t, int64(300), q.DueNow)
}

func TestComputeQuote_FountainWithWhiteUpcharge(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package:         PackageSmall,
		MainBar:         BarSnack,
		FountainEnabled: true,
		FountainSize:    Fountain100,
		FountainWhite:   true,
		PayMode:         PayDeposit,
	})
	require.NoError(t, err)

	// 550 + (450 + 50) = 1050
	assert.Equal(t, int64(1050), q.Subtotal)
}

func TestComputeQuote_FullPaymentFlatOff(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package: PackageLarge,
		MainBar: BarPancake,
		PayMode: PayFull,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(900), q.Total)
	assert.Equal(t, int64(880), q.DueNow)
	assert.Equal(t, PayFullFlatOff, q.Savings)
	assert.Equal(t, int64(20), q.Balance())
}

func TestComputeQuote_PercentDiscountRounds(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package:       PackageMedium,
		MainBar:       BarPancake,
		DiscountMode:  DiscountPercent,
		DiscountValue: 15,
		PayMode:       PayDeposit,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(105), q.Discount)
	assert.Equal(t, int64(595), q.Total)
	// 595 * 0.25 = 148.75 -> округление до ближайшего доллара
	assert.Equal(t, int64(149), q.DueNow)
}

func TestComputeQuote_AmountDiscountCannotGoNegative(t *testing.T) {
	q, err := ComputeQuote(QuoteInput{
		Package:       PackageSmall,
		MainBar:       BarPancake,
		DiscountMode:  DiscountAmount,
		DiscountValue: 10000,
		PayMode:       PayFull,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), q.Total)
	assert.Equal(t, int64(0), q.DueNow)
	assert.Equal(t, int64(0), q.Balance())
}

func TestComputeQuote_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   QuoteInput
		wantErr error
	}{
		{
			name:    "unknown package",
			input:   QuoteInput{Package: Package("mega"), MainBar: BarPancake},
			wantErr: ErrUnknownPackage,
		},
		{
			name:    "unknown main bar",
			input:   QuoteInput{Package: PackageSmall, MainBar: Bar("sushi")},
			wantErr: ErrUnknownBar,
		},
		{
			name: "unknown second bar size",
			input: QuoteInput{
				Package:       PackageSmall,
				MainBar:       BarPancake,
				SecondEnabled: true,
				SecondSize:    Package("mega"),
			},
			wantErr: ErrUnknownPackage,
		},
		{
			name: "unknown fountain size",
			input: QuoteInput{
				Package:         PackageSmall,
				MainBar:         BarPancake,
				FountainEnabled: true,
				FountainSize:    FountainSize("500"),
			},
			wantErr: ErrUnknownFountainSize,
		},
		{
			name: "percent out of range",
			input: QuoteInput{
				Package:       PackageSmall,
				MainBar:       BarPancake,
				DiscountMode:  DiscountPercent,
				DiscountValue: 250,
			},
			wantErr: ErrInvalidQuote,
		},
		{
			name: "negative amount discount",
			input: QuoteInput{
				Package:       PackageSmall,
				MainBar:       BarPancake,
				DiscountMode:  DiscountAmount,
				DiscountValue: -5,
			},
			wantErr: ErrInvalidQuote,
		},
		{
			name: "unknown pay mode",
			input: QuoteInput{
				Package: PackageSmall,
				MainBar: BarPancake,
				PayMode: PayMode("crypto"),
			},
			wantErr: ErrInvalidQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeQuote(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBar(t *testing.T) {
	bar, err := ParseBar("tostiloco")
	require.NoError(t, err)
	assert.Equal(t, BarTostiloco, bar)
	assert.Equal(t, "Tostiloco (Premium)", bar.Title())

	_, err = ParseBar("burger")
	assert.ErrorIs(t, err, ErrUnknownBar)
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(17500), Cents(175))
	assert.Equal(t, int64(0), Cents(0))
}
