package stripe_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v76"

	"github.com/Admin-dev32/Manna-Affiliate/internal/api/handlers"
	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	commitBooking "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
)

// Ограничение на размер webhook-события, байт
const maxPayloadBytes = 64 * 1024

const eventCheckoutCompleted = "checkout.session.completed"

type Handler struct {
	verifier WebhookVerifier
	useCase  CommitBookingUseCase
	logger   Logger
}

func NewHandler(verifier WebhookVerifier, useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		useCase:  useCase,
		logger:   logger,
	}
}

// Handle POST /api/v1/stripe/webhook
// Единственная точка фиксации оплаченных бронирований.
// Stripe повторяет доставку на не-2xx ответы, поэтому 5xx возвращается
// только когда повтор имеет смысл (недоступный календарь)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /stripe/webhook - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, "unreadable payload")
		return
	}

	event, err := h.verifier.VerifyWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("POST /stripe/webhook - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, "invalid signature")
		return
	}

	if event.Type != eventCheckoutCompleted {
		// Неинтересные события подтверждаем, чтобы Stripe их не повторял
		h.logger.Info("POST /stripe/webhook - Ignoring event type=%s", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		h.logger.Error("POST /stripe/webhook - Malformed session payload: %v", err)
		handlers.RespondBadRequest(w, "malformed event payload")
		return
	}

	req, err := toCommitRequest(&session)
	if err != nil {
		// Оплата уже прошла; событие с битой metadata нельзя обработать
		// повторно, фиксируем в логах и подтверждаем
		h.logger.Error("POST /stripe/webhook - Unusable metadata: session=%s: %v", session.ID, err)
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrStoreUnavailable):
			// Календарь недоступен: 500 заставит Stripe повторить доставку
			h.logger.Error("POST /stripe/webhook - Store unavailable: session=%s: %v", session.ID, err)
			handlers.RespondInternalError(w)

		case errors.Is(err, commitBooking.ErrDayCapExceeded),
			errors.Is(err, commitBooking.ErrConcurrencyCapExceeded):
			// Слот заняли между оплатой и доставкой события.
			// Деньги получены, бронирования нет: подтверждаем доставку
			// и оставляем след для ручного разбора
			h.logger.Error("POST /stripe/webhook - PAID BUT NOT BOOKED: session=%s, date=%s %02d:%02d: %v",
				session.ID, req.Date.Format(domain.DateFormat), req.Hour, req.Minute, err)
			w.WriteHeader(http.StatusOK)

		default:
			h.logger.Error("POST /stripe/webhook - Commit failed: session=%s: %v", session.ID, err)
			w.WriteHeader(http.StatusOK)
		}
		return
	}

	h.logger.Info("POST /stripe/webhook - Booking committed: session=%s, commitment=%s, replayed=%v",
		session.ID, result.CommitmentID, result.Replayed)
	w.WriteHeader(http.StatusOK)
}
