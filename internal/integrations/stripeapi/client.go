package stripeapi

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	externalTarget = "stripe"

	currency = "usd"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// MetricsCollector интерфейс для метрик внешних вызовов
type MetricsCollector interface {
	ObserveExternalCall(target, operation string, duration time.Duration, err error)
}

// Client клиент для работы со Stripe
type Client struct {
	api              *stripeclient.API
	publicURL        string
	webhookSecret    string
	webhookTolerance time.Duration
	log              Logger
	metrics          MetricsCollector
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(secretKey, publicURL, webhookSecret string, webhookTolerance time.Duration, log Logger, collector MetricsCollector) *Client {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:              api,
		publicURL:        publicURL,
		webhookSecret:    webhookSecret,
		webhookTolerance: webhookTolerance,
		log:              log,
		metrics:          collector,
	}
}

// CreateCheckoutSession создает одноразовую платежную сессию.
// Весь контекст бронирования уезжает в metadata и возвращается
// webhook-событием checkout.session.completed
func (c *Client) CreateCheckoutSession(req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.publicURL + "/success.html?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(c.publicURL + "/cancel.html"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
				},
			},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	start := time.Now()
	sess, err := c.api.CheckoutSessions.New(params)
	c.metrics.ObserveExternalCall(externalTarget, "checkout_session_create", time.Since(start), err)
	if err != nil {
		c.log.Error("Stripe checkout session create failed: product=%s, amount_cents=%d: %v",
			req.ProductName, req.AmountCents, err)
		return nil, fmt.Errorf("%w: %v", ErrCreateSession, err)
	}

	c.log.Info("Stripe checkout session created: session_id=%s, amount_cents=%d", sess.ID, req.AmountCents)

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// VerifyWebhookEvent проверяет подпись и разбирает webhook-событие
func (c *Client) VerifyWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithTolerance(payload, signatureHeader, c.webhookSecret, c.webhookTolerance)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event, nil
}
