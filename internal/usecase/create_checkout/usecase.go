package create_checkout

import (
	"context"
	"fmt"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/integrations/stripeapi"
	"github.com/Admin-dev32/Manna-Affiliate/internal/scheduling"
)

// UseCase use case создания платежной сессии.
// Слот проверяется на доступность до выставления счета, фиксация
// бронирования происходит позже, по webhook-событию успешной оплаты
type UseCase struct {
	store        CommitmentStore
	payments     PaymentProvider
	resolver     *scheduling.Resolver
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
	payments PaymentProvider,
	resolver *scheduling.Resolver,
	windows *scheduling.WindowCalculator,
	capacity *scheduling.CapacityEvaluator,
	openHour, closeHour, stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		payments:     payments,
		resolver:     resolver,
		windows:      windows,
		capacity:     capacity,
		openHour:     openHour,
		closeHour:    closeHour,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает стоимость, проверяет доступность слота и создает
// checkout-сессию с полным контекстом бронирования в metadata
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: date=%s, time=%02d:%02d, package=%s, pin=%s",
		req.Date.Format(domain.DateFormat), req.Hour, req.Minute, req.Package, req.AffiliatePIN)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.openHour, uc.closeHour, uc.stepMinutes); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, err
	}

	pkg, err := domain.ParsePackage(req.Package)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPackage, req.Package)
	}

	// 2. Расчет стоимости по фиксированному прайсу
	quote, err := uc.computeQuote(req, pkg)
	if err != nil {
		uc.logger.Warn("CreateCheckout: quote failed: %v", err)
		return nil, err
	}

	// 3. Слот должен быть доступен на момент выставления счета.
	// Оплата не резервирует слот, но платить за заведомо занятый нельзя
	if err := uc.checkSlot(ctx, req, pkg); err != nil {
		return nil, err
	}

	// 4. Создаем сессию; весь контекст уезжает в metadata и вернется
	// webhook-событием об успешной оплате
	session, err := uc.payments.CreateCheckoutSession(stripeapi.CheckoutRequest{
		AmountCents:   domain.Cents(quote.DueNow),
		ProductName:   fmt.Sprintf("Manna Snack Bar: %s", pkg.Label()),
		Description:   uc.sessionDescription(req, quote),
		CustomerEmail: req.Email,
		Metadata:      uc.buildMetadata(req, quote),
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: payment provider failure: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	uc.logger.Info("CreateCheckout: session created: session_id=%s, due_now=$%d, total=$%d",
		session.ID, quote.DueNow, quote.Total)

	return &Response{
		SessionID: session.ID,
		URL:       session.URL,
		Quote:     quote,
	}, nil
}

// computeQuote маппит запрос в доменный расчет стоимости
func (uc *UseCase) computeQuote(req *Request, pkg domain.Package) (domain.Quote, error) {
	mainBar, err := domain.ParseBar(req.MainBar)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	input := domain.QuoteInput{
		Package:       pkg,
		MainBar:       mainBar,
		DiscountMode:  domain.DiscountMode(req.DiscountMode),
		DiscountValue: req.DiscountValue,
		PayMode:       domain.PayMode(req.PayMode),
	}

	if req.SecondBar != "" {
		secondBar, err := domain.ParseBar(req.SecondBar)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		secondSize, err := domain.ParsePackage(req.SecondSize)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("%w: second bar size: %v", ErrInvalidOptions, err)
		}
		input.SecondEnabled = true
		input.SecondBar = secondBar
		input.SecondSize = secondSize
	}

	if req.FountainSize != "" {
		input.FountainEnabled = true
		input.FountainSize = domain.FountainSize(req.FountainSize)
		input.FountainWhite = req.FountainWhite
	}

	quote, err := domain.ComputeQuote(input)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return quote, nil
}

// checkSlot проверяет, что запрошенный слот еще доступен
func (uc *UseCase) checkSlot(ctx context.Context, req *Request, pkg domain.Package) error {
	serviceStart := uc.resolver.LocalWallClock(
		req.Date.Year(), req.Date.Month(), req.Date.Day(), req.Hour, req.Minute)

	if !serviceStart.After(uc.timeProvider.Now()) {
		return fmt.Errorf("%w: requested start is in the past", ErrInvalidInput)
	}

	window, err := uc.windows.Window(serviceStart, pkg)
	if err != nil {
		return fmt.Errorf("%w: compute window: %v", ErrInternal, err)
	}

	day := uc.resolver.CalendarDay(serviceStart)
	span := uc.windows.MaxSpan()

	commitments, err := uc.store.ListWindow(ctx, day.Start.Add(-span), day.End.Add(span))
	if err != nil {
		uc.logger.Error("CreateCheckout: commitment store failure: %v", err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := uc.capacity.Evaluate(serviceStart, window, commitments); err != nil {
		uc.logger.Warn("CreateCheckout: slot unavailable: start=%s: %v", serviceStart, err)
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}

	return nil
}

// buildMetadata собирает metadata платежной сессии.
// По этим полям webhook восстанавливает запрос на фиксацию бронирования
func (uc *UseCase) buildMetadata(req *Request, quote domain.Quote) map[string]string {
	meta := map[string]string{
		stripeapi.MetaPackage: req.Package,
		stripeapi.MetaDate:    req.Date.Format(domain.DateFormat),
		stripeapi.MetaTime:    fmt.Sprintf("%02d:%02d", req.Hour, req.Minute),
		stripeapi.MetaMainBar: req.MainBar,
		stripeapi.MetaPayMode: req.PayMode,
		stripeapi.MetaName:    req.Name,
		stripeapi.MetaPhone:   req.Phone,
		stripeapi.MetaEmail:   req.Email,
		stripeapi.MetaVenue:   req.Venue,
		stripeapi.MetaTotal:   fmt.Sprintf("%d", quote.Total),
		stripeapi.MetaDueNow:  fmt.Sprintf("%d", quote.DueNow),
	}
	if req.SecondBar != "" {
		meta[stripeapi.MetaSecondBar] = req.SecondBar
	}
	if req.FountainSize != "" {
		meta[stripeapi.MetaFountainSize] = req.FountainSize
		if req.FountainWhite {
			meta[stripeapi.MetaFountainType] = "white"
		} else {
			meta[stripeapi.MetaFountainType] = "milk"
		}
	}
	if req.AffiliatePIN != "" {
		meta[stripeapi.MetaAffiliatePIN] = req.AffiliatePIN
	}
	if req.Notes != "" {
		meta[stripeapi.MetaNotes] = req.Notes
	}
	return meta
}

// sessionDescription строка, которую клиент видит на странице оплаты
func (uc *UseCase) sessionDescription(req *Request, quote domain.Quote) string {
	when := fmt.Sprintf("%s %02d:%02d", req.Date.Format(domain.DateFormat), req.Hour, req.Minute)
	if domain.PayMode(req.PayMode) == domain.PayFull {
		return fmt.Sprintf("Full payment for %s. Total $%d.", when, quote.Total)
	}
	return fmt.Sprintf("Deposit for %s. Total $%d, balance $%d due on site.", when, quote.Total, quote.Balance())
}
