package domain

import "github.com/shopspring/decimal"

// PricingScheme is how a service is billed.
type PricingScheme string

const (
	PricingPayPerUse    PricingScheme = "pay-per-use"
	PricingSubscription PricingScheme = "subscription"
	PricingPrepaid      PricingScheme = "prepaid"
)

// ServiceDescriptor describes a purchasable metered service.
type ServiceDescriptor struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Description            string          `json:"description,omitempty"`
	Category               string          `json:"category"`
	Price                  decimal.Decimal `json:"price"`
	PlatformFee            decimal.Decimal `json:"platform_fee"`
	PricingScheme          PricingScheme   `json:"pricing_scheme"`
	PrepaidDiscountPercent decimal.Decimal `json:"prepaid_discount_percent"`
	EndpointURL            string          `json:"-"` // upstream invocation target, never exposed
	IsActive               bool            `json:"is_active"`
}

// TotalCost is the pay-per-use cost of one invocation: price plus platform fee.
func (s *ServiceDescriptor) TotalCost() decimal.Decimal {
	return RoundMoney(s.Price.Add(s.PlatformFee))
}
