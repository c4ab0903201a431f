package service

import (
	"context"
	"sort"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/shopspring/decimal"
)

// CatalogServiceImpl implements ports.CatalogService over the service
// registry. Filters compose in memory; the active set is small.
type CatalogServiceImpl struct {
	serviceRepo ports.ServiceRepository
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(serviceRepo ports.ServiceRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

// Discover lists active services matching every given filter.
func (s *CatalogServiceImpl) Discover(ctx context.Context, filters ports.DiscoveryFilters) ([]domain.ServiceDescriptor, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	matched := make([]domain.ServiceDescriptor, 0, len(services))
	for _, svc := range services {
		if filters.Category != nil && svc.Category != *filters.Category {
			continue
		}
		if filters.PricingScheme != nil && svc.PricingScheme != *filters.PricingScheme {
			continue
		}
		// MaxPrice bounds the full invocation cost, not the sticker price.
		if filters.MaxPrice != nil && svc.TotalCost().GreaterThan(*filters.MaxPrice) {
			continue
		}
		matched = append(matched, svc)
	}
	return matched, nil
}

// GetByID fetches one active service.
func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (*domain.ServiceDescriptor, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if svc == nil || !svc.IsActive {
		return nil, apperror.ErrUnknownService(id)
	}
	return svc, nil
}

// ListCategories returns the distinct categories of active services, sorted.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, svc := range services {
		if _, ok := seen[svc.Category]; ok {
			continue
		}
		seen[svc.Category] = struct{}{}
		categories = append(categories, svc.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// PricingSummary aggregates total invocation costs across active services.
func (s *CatalogServiceImpl) PricingSummary(ctx context.Context) (*ports.PricingSummary, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	summary := &ports.PricingSummary{Count: len(services)}
	if len(services) == 0 {
		return summary, nil
	}

	sum := decimal.Zero
	for i, svc := range services {
		cost := svc.TotalCost()
		sum = sum.Add(cost)
		if i == 0 {
			summary.Min = cost
			summary.Max = cost
			continue
		}
		if cost.LessThan(summary.Min) {
			summary.Min = cost
		}
		if cost.GreaterThan(summary.Max) {
			summary.Max = cost
		}
	}
	summary.Avg = domain.RoundMoney(sum.Div(decimal.NewFromInt(int64(len(services)))))
	return summary, nil
}
