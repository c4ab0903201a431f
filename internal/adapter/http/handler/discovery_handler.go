package handler

import (
	"yield-spend-gateway/internal/adapter/http/dto"
	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DiscoveryHandler handles service catalog endpoints.
type DiscoveryHandler struct {
	catalogSvc ports.CatalogService
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(catalogSvc ports.CatalogService) *DiscoveryHandler {
	return &DiscoveryHandler{catalogSvc: catalogSvc}
}

// Discover handles GET /api/v1/discover.
// Query params: category, pricingScheme, maxPrice. All optional, all compose.
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	var filters ports.DiscoveryFilters

	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if scheme := c.Query("pricingScheme"); scheme != "" {
		s := domain.PricingScheme(scheme)
		switch s {
		case domain.PricingPayPerUse, domain.PricingSubscription, domain.PricingPrepaid:
			filters.PricingScheme = &s
		default:
			response.Error(c, apperror.Validation("unknown pricing scheme"))
			return
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil || maxPrice.IsNegative() {
			response.Error(c, apperror.Validation("invalid maxPrice"))
			return
		}
		filters.MaxPrice = &maxPrice
	}

	services, err := h.catalogSvc.Discover(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, dto.ToServiceResponse(&services[i]))
	}
	response.OK(c, dto.DiscoveryResponse{Services: items, Count: len(items)})
}

// GetService handles GET /api/v1/services/:id.
func (h *DiscoveryHandler) GetService(c *gin.Context) {
	svc, err := h.catalogSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToServiceResponse(svc))
}

// ListCategories handles GET /api/v1/discover/categories.
func (h *DiscoveryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"categories": categories})
}

// PricingSummary handles GET /api/v1/discover/pricing.
func (h *DiscoveryHandler) PricingSummary(c *gin.Context) {
	summary, err := h.catalogSvc.PricingSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PricingSummaryResponse{
		Min:   domain.MoneyString(summary.Min),
		Max:   domain.MoneyString(summary.Max),
		Avg:   domain.MoneyString(summary.Avg),
		Count: summary.Count,
	})
}
