package affiliate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

var affiliateColumns = []string{
	"id",
	"pin",
	"name",
	"email",
	"bundle_rate",
	"commission_small",
	"commission_medium",
	"commission_large",
	"fountain_commission",
}

// Repository репозиторий для работы с аффилиатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аффилиатов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPIN получает аффилиата по PIN-коду
func (r *Repository) GetByPIN(ctx context.Context, pin string) (*domain.Affiliate, error) {
	query, args, err := psqlbuilder.Select(affiliateColumns...).
		From("affiliates").
		Where("pin = ?", pin).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPIN - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: pin=%s", ErrAffiliateNotFound, pin)
		}
		return nil, fmt.Errorf("%w: GetByPIN: %v", ErrScanRow, err)
	}

	return affiliate, nil
}

// List возвращает всех аффилиатов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Affiliate, error) {
	query, args, err := psqlbuilder.Select(affiliateColumns...).
		From("affiliates").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var affiliates []*domain.Affiliate
	for rows.Next() {
		affiliate, err := scanAffiliate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrScanRow, err)
		}
		affiliates = append(affiliates, affiliate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return affiliates, nil
}

// Create создает нового аффилиата
func (r *Repository) Create(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	query, args, err := psqlbuilder.Insert("affiliates").
		Columns(
			"pin",
			"name",
			"email",
			"bundle_rate",
			"commission_small",
			"commission_medium",
			"commission_large",
			"fountain_commission",
		).
		Values(
			affiliate.PIN,
			affiliate.Name,
			affiliate.Email,
			affiliate.BundleRate,
			affiliate.CommissionByPkg[domain.PackageSmall],
			affiliate.CommissionByPkg[domain.PackageMedium],
			affiliate.CommissionByPkg[domain.PackageLarge],
			affiliate.FountainCommission,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&affiliate.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: pin=%s", ErrDuplicatePIN, affiliate.PIN)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return affiliate, nil
}

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanAffiliate сканирует строку в доменную модель аффилиата
func scanAffiliate(s scanner) (*domain.Affiliate, error) {
	var (
		affiliate        domain.Affiliate
		email            sql.NullString
		commissionSmall  int64
		commissionMedium int64
		commissionLarge  int64
	)

	err := s.Scan(
		&affiliate.ID,
		&affiliate.PIN,
		&affiliate.Name,
		&email,
		&affiliate.BundleRate,
		&commissionSmall,
		&commissionMedium,
		&commissionLarge,
		&affiliate.FountainCommission,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		affiliate.Email = &email.String
	}

	affiliate.CommissionByPkg = map[domain.Package]int64{
		domain.PackageSmall:  commissionSmall,
		domain.PackageMedium: commissionMedium,
		domain.PackageLarge:  commissionLarge,
	}

	return &affiliate, nil
}
