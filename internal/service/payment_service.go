package service

import (
	"context"
	"time"

	"yield-spend-gateway/internal/core/domain"
	"yield-spend-gateway/internal/core/ports"
	"yield-spend-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PaymentConfig carries the settlement parameters stamped into payment
// descriptors and receipts.
type PaymentConfig struct {
	Treasury      string
	Asset         string
	Currency      string
	AllocationTTL time.Duration
}

// PaymentServiceImpl implements ports.PaymentService: the prepare/execute
// facade over yield allocations, prepaid deductions and subscriptions.
type PaymentServiceImpl struct {
	catalogSvc ports.CatalogService
	yieldSvc   ports.YieldService
	allocSvc   ports.AllocationService
	prepaidSvc ports.PrepaidService
	invoker    ports.ServiceInvoker
	cfg        PaymentConfig
	log        zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	catalogSvc ports.CatalogService,
	yieldSvc ports.YieldService,
	allocSvc ports.AllocationService,
	prepaidSvc ports.PrepaidService,
	invoker ports.ServiceInvoker,
	cfg PaymentConfig,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		catalogSvc: catalogSvc,
		yieldSvc:   yieldSvc,
		allocSvc:   allocSvc,
		prepaidSvc: prepaidSvc,
		invoker:    invoker,
		cfg:        cfg,
		log:        log,
	}
}

// Prepare quotes a purchase and, for the yield path, reserves the funds. Only
// a yield reservation produces a payment ID; prepaid and subscription cover
// the cost at execute time.
func (s *PaymentServiceImpl) Prepare(ctx context.Context, req ports.PrepareRequest) (*ports.PaymentDescriptor, error) {
	svc, err := s.catalogSvc.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	totalCost := svc.TotalCost()

	if req.SubscriptionActive {
		return &ports.PaymentDescriptor{
			PaymentMethod: ports.PaymentMethodSubscription,
			Funds: ports.FundsInfo{
				Required:  decimal.Zero,
				Available: decimal.Zero,
			},
		}, nil
	}

	if req.UsePrepaid {
		discounted := s.prepaidSvc.CalculatePrepaidPrice(svc, totalCost)
		balance, err := s.prepaidSvc.GetBalance(ctx, req.WalletAddress)
		if err != nil {
			return nil, err
		}
		if balance.Balance.LessThan(discounted) {
			return nil, apperror.ErrInsufficientPrepaidBalance(
				domain.MoneyString(discounted), domain.MoneyString(balance.Balance))
		}
		return &ports.PaymentDescriptor{
			PaymentMethod: ports.PaymentMethodPrepaid,
			Funds: ports.FundsInfo{
				Required:  discounted,
				Available: balance.Balance,
			},
		}, nil
	}

	// Yield path: check spendable before allocating so the shortfall error
	// carries the real numbers.
	spendable, err := s.yieldSvc.GetSpendableYield(ctx, req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if spendable.LessThan(totalCost) {
		return nil, apperror.ErrInsufficientYield(
			domain.MoneyString(totalCost), domain.MoneyString(spendable))
	}

	alloc, err := s.allocSvc.Allocate(ctx, req.WalletAddress, totalCost, svc.ID)
	if err != nil {
		return nil, err
	}

	return &ports.PaymentDescriptor{
		PaymentID:     alloc.ID.String(),
		PaymentMethod: ports.PaymentMethodYield,
		Requirements: &ports.PaymentRequirements{
			Scheme:            "exact",
			Asset:             s.cfg.Asset,
			PayTo:             s.cfg.Treasury,
			Amount:            totalCost,
			MaxTimeoutSeconds: int(s.cfg.AllocationTTL.Seconds()),
		},
		Funds: ports.FundsInfo{
			Required:  totalCost,
			Available: spendable,
		},
		ExpiresAt: &alloc.ExpiresAt,
	}, nil
}

// Execute settles the purchase and invokes the upstream service. Funds are
// committed first, then reversed if the invocation fails.
func (s *PaymentServiceImpl) Execute(ctx context.Context, req ports.ExecuteRequest) (*ports.Receipt, error) {
	svc, err := s.catalogSvc.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.SubscriptionActive:
		return s.executeSubscription(ctx, svc, req)
	case req.UsePrepaid:
		return s.executePrepaid(ctx, svc, req)
	default:
		return s.executeYield(ctx, svc, req)
	}
}

func (s *PaymentServiceImpl) executeSubscription(ctx context.Context, svc *domain.ServiceDescriptor, req ports.ExecuteRequest) (*ports.Receipt, error) {
	result, err := s.invoker.Invoke(ctx, svc, req.Input)
	if err != nil {
		return nil, apperror.ErrUpstreamServiceFailed(err, false)
	}
	return s.receipt(svc, "", ports.PaymentMethodSubscription, decimal.Zero, decimal.Zero, result), nil
}

func (s *PaymentServiceImpl) executePrepaid(ctx context.Context, svc *domain.ServiceDescriptor, req ports.ExecuteRequest) (*ports.Receipt, error) {
	discounted := s.prepaidSvc.CalculatePrepaidPrice(svc, svc.TotalCost())

	deduction, err := s.prepaidSvc.Deduct(ctx, req.WalletAddress, discounted, svc.ID)
	if err != nil {
		return nil, err
	}

	result, err := s.invoker.Invoke(ctx, svc, req.Input)
	if err != nil {
		refunded := true
		if _, refundErr := s.prepaidSvc.Refund(ctx, req.WalletAddress, discounted, svc.ID); refundErr != nil {
			s.log.Error().Err(refundErr).
				Str("wallet", req.WalletAddress).
				Str("service_id", svc.ID).
				Msg("prepaid refund after upstream failure failed")
			refunded = false
		}
		return nil, apperror.ErrUpstreamServiceFailed(err, refunded)
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("service_id", svc.ID).
		Str("transaction_id", deduction.Transaction.ID.String()).
		Msg("prepaid payment executed")

	// Discount applies to the platform's take, not the provider's price.
	fee := discounted.Sub(svc.Price)
	if fee.IsNegative() {
		fee = decimal.Zero
	}
	return s.receipt(svc, "", ports.PaymentMethodPrepaid, svc.Price, fee, result), nil
}

func (s *PaymentServiceImpl) executeYield(ctx context.Context, svc *domain.ServiceDescriptor, req ports.ExecuteRequest) (*ports.Receipt, error) {
	if req.PaymentID == "" {
		return nil, apperror.ErrPaymentNotPrepared()
	}
	allocID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return nil, apperror.ErrPaymentNotPrepared()
	}

	alloc, err := s.allocSvc.Consume(ctx, allocID)
	if err != nil {
		return nil, err
	}
	if alloc.WalletAddress != req.WalletAddress || alloc.ServiceID != svc.ID {
		// Consumed someone else's reservation; put it back.
		if _, releaseErr := s.allocSvc.Release(ctx, allocID); releaseErr != nil {
			s.log.Error().Err(releaseErr).Str("allocation_id", allocID.String()).Msg("mismatched allocation release failed")
		}
		return nil, apperror.ErrPaymentNotPrepared()
	}

	result, err := s.invoker.Invoke(ctx, svc, req.Input)
	if err != nil {
		refunded := true
		if _, releaseErr := s.allocSvc.Release(ctx, allocID); releaseErr != nil {
			s.log.Error().Err(releaseErr).
				Str("allocation_id", allocID.String()).
				Msg("allocation release after upstream failure failed")
			refunded = false
		}
		return nil, apperror.ErrUpstreamServiceFailed(err, refunded)
	}

	s.log.Info().
		Str("wallet", req.WalletAddress).
		Str("service_id", svc.ID).
		Str("payment_id", req.PaymentID).
		Msg("yield payment executed")

	return s.receipt(svc, req.PaymentID, ports.PaymentMethodYield, svc.Price, svc.PlatformFee, result), nil
}

func (s *PaymentServiceImpl) receipt(svc *domain.ServiceDescriptor, paymentID, method string, baseCost, fee decimal.Decimal, result []byte) *ports.Receipt {
	return &ports.Receipt{
		PaymentID:     paymentID,
		ServiceID:     svc.ID,
		BaseCost:      baseCost,
		PlatformFee:   fee,
		TotalCost:     domain.RoundMoney(baseCost.Add(fee)),
		Currency:      s.cfg.Currency,
		PaymentMethod: method,
		Timestamp:     time.Now().UTC(),
		Result:        result,
	}
}
