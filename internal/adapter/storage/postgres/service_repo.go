package postgres

import (
	"context"
	"errors"
	"fmt"

	"yield-spend-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ServiceRepo implements ports.ServiceRepository.
type ServiceRepo struct {
	pool Pool
}

// NewServiceRepo creates a new ServiceRepo.
func NewServiceRepo(pool Pool) *ServiceRepo {
	return &ServiceRepo{pool: pool}
}

const serviceColumns = `id, name, description, category, price::text, platform_fee::text,
		pricing_scheme, prepaid_discount_percent::text, endpoint_url, is_active`

func scanService(row pgx.Row) (*domain.ServiceDescriptor, error) {
	s := &domain.ServiceDescriptor{}
	var price, fee, discount string
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &price, &fee,
		&s.PricingScheme, &discount, &s.EndpointURL, &s.IsActive)
	if err != nil {
		return nil, err
	}
	if s.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse service price: %w", err)
	}
	if s.PlatformFee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("parse platform fee: %w", err)
	}
	if s.PrepaidDiscountPercent, err = decimal.NewFromString(discount); err != nil {
		return nil, fmt.Errorf("parse prepaid discount: %w", err)
	}
	return s, nil
}

// ListActive returns every active service descriptor.
func (r *ServiceRepo) ListActive(ctx context.Context) ([]domain.ServiceDescriptor, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	defer rows.Close()

	var services []domain.ServiceDescriptor
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

// GetByID fetches a service descriptor, active or not.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*domain.ServiceDescriptor, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	s, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service by id: %w", err)
	}
	return s, nil
}
