package affiliates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	affiliateRepo "github.com/Admin-dev32/Manna-Affiliate/internal/infra/storage/affiliate"
)

// Service сервис для работы с аффилиатами
type Service struct {
	repo   AffiliateRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса аффилиатов
func NewService(repo AffiliateRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByPIN возвращает аффилиата по PIN-коду.
// PIN сравнивается без учета пробелов по краям
func (s *Service) GetByPIN(ctx context.Context, pin string) (*domain.Affiliate, error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return nil, ErrInvalidPIN
	}

	affiliate, err := s.repo.GetByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrAffiliateNotFound) {
			s.logger.Warn("GetByPIN: unknown pin=%s", pin)
			return nil, ErrAffiliateNotFound
		}
		s.logger.Error("GetByPIN: repository failure for pin=%s: %v", pin, err)
		return nil, fmt.Errorf("%w: failed to get affiliate: %v", ErrInternal, err)
	}

	return affiliate, nil
}

// List возвращает всех зарегистрированных аффилиатов
func (s *Service) List(ctx context.Context) ([]*domain.Affiliate, error) {
	affiliates, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository failure: %v", err)
		return nil, fmt.Errorf("%w: failed to list affiliates: %v", ErrInternal, err)
	}
	return affiliates, nil
}

// Create регистрирует нового аффилиата
func (s *Service) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	affiliate.PIN = strings.TrimSpace(affiliate.PIN)
	if affiliate.PIN == "" {
		return nil, ErrInvalidPIN
	}
	if affiliate.BundleRate <= 0 {
		affiliate.BundleRate = domain.DefaultBundleRate
	}

	created, err := s.repo.Create(ctx, affiliate)
	if err != nil {
		if errors.Is(err, affiliateRepo.ErrDuplicatePIN) {
			s.logger.Warn("Create: pin=%s already registered", affiliate.PIN)
			return nil, ErrPINTaken
		}
		s.logger.Error("Create: repository failure for pin=%s: %v", affiliate.PIN, err)
		return nil, fmt.Errorf("%w: failed to create affiliate: %v", ErrInternal, err)
	}

	s.logger.Info("Create: affiliate registered: id=%d, pin=%s", created.ID, created.PIN)
	return created, nil
}
