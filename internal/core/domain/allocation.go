package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationStatus is the lifecycle state of a yield reservation.
type AllocationStatus string

const (
	AllocationStatusPending   AllocationStatus = "pending"
	AllocationStatusAllocated AllocationStatus = "allocated"
	AllocationStatusSpent     AllocationStatus = "spent"
	AllocationStatusReturned  AllocationStatus = "returned"
)

// Allocation is a time-bounded reservation of spendable yield against a
// pending purchase. Allocations in pending or allocated state count against
// the wallet's available yield until they transition or expire.
type Allocation struct {
	ID            uuid.UUID        `json:"id"`
	WalletAddress string           `json:"wallet_address"`
	Amount        decimal.Decimal  `json:"amount"`
	ServiceID     string           `json:"service_id"`
	Status        AllocationStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	ExpiresAt     time.Time        `json:"expires_at"`
}

// IsActive reports whether the allocation still reserves yield.
func (a *Allocation) IsActive() bool {
	return a.Status == AllocationStatusPending || a.Status == AllocationStatusAllocated
}

// IsTerminal reports whether the allocation reached a final state.
func (a *Allocation) IsTerminal() bool {
	return a.Status == AllocationStatusSpent || a.Status == AllocationStatusReturned
}

// IsExpired reports whether the reservation window has passed.
func (a *Allocation) IsExpired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}
