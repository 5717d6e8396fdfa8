package stripe_webhook

import (
	"context"

	"github.com/stripe/stripe-go/v76"

	commitBooking "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
)

// WebhookVerifier проверяет подпись и разбирает webhook-событие
type WebhookVerifier interface {
	VerifyWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

type CommitBookingUseCase interface {
	Execute(ctx context.Context, req *commitBooking.Request) (*commitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
