package generate_link

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/service/affiliates"
)

// UseCase use case генерации платежной ссылки аффилиатом
type UseCase struct {
	affiliates AffiliateProvider
	checkout   CheckoutCreator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(affiliates AffiliateProvider, checkout CheckoutCreator, logger Logger) *UseCase {
	return &UseCase{
		affiliates: affiliates,
		checkout:   checkout,
		logger:     logger,
	}
}

// Execute проверяет PIN, создает платежную сессию от имени аффилиата
// и рассчитывает его комиссию за это бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	pin := strings.TrimSpace(req.PIN)
	if pin == "" {
		return nil, fmt.Errorf("%w: pin is required", ErrInvalidInput)
	}

	affiliate, err := uc.affiliates.GetByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, affiliates.ErrAffiliateNotFound) || errors.Is(err, affiliates.ErrInvalidPIN) {
			uc.logger.Warn("GenerateLink: unknown pin=%s", pin)
			return nil, ErrAffiliateNotFound
		}
		uc.logger.Error("GenerateLink: affiliate lookup failed for pin=%s: %v", pin, err)
		return nil, fmt.Errorf("%w: affiliate lookup: %v", ErrInternal, err)
	}

	// Платежная сессия помечается PIN-ом аффилиата: он вернется
	// в webhook-событии и попадет в событие календаря
	booking := req.Booking
	booking.AffiliatePIN = affiliate.PIN

	checkoutResp, err := uc.checkout.Execute(ctx, &booking)
	if err != nil {
		// Ошибки создания сессии отдаем как есть: их таксономия
		// (занятый слот, неверный пакет) уже различима по errors.Is
		return nil, err
	}

	pkg, err := domain.ParsePackage(booking.Package)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	commissions := affiliate.Commissions(pkg, booking.SecondBar != "", booking.FountainSize != "")

	uc.logger.Info("GenerateLink: pin=%s, session=%s, commission_total=$%d",
		pin, checkoutResp.SessionID, commissions.Total)

	return &Response{
		SessionID:     checkoutResp.SessionID,
		URL:           checkoutResp.URL,
		Quote:         checkoutResp.Quote,
		AffiliateName: affiliate.Name,
		Commissions:   commissions,
	}, nil
}
