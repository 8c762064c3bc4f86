package service

import (
	"context"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/config"
)

type vendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uint64) (*entity.Vendor, error)
}

type subscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Subscription, error)
}

type branchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	CountByVendorID(ctx context.Context, vendorID uint64) (int64, error)
}

// BillingService turns a vendor's subscriptions and branch counts into
// a single payable amount.
type BillingService struct {
	vendorRepo       vendorRepository
	subscriptionRepo subscriptionRepository
	branchRepo       branchRepository
	cfg              config.BillingConfig
}

func NewBillingService(
	vendorRepo vendorRepository,
	subscriptionRepo subscriptionRepository,
	branchRepo branchRepository,
	cfg config.BillingConfig,
) *BillingService {
	return &BillingService{
		vendorRepo:       vendorRepo,
		subscriptionRepo: subscriptionRepo,
		branchRepo:       branchRepo,
		cfg:              cfg,
	}
}

// ComputeTotal sums every subscription price the vendor holds and adds
// the per-branch fee for each branch across all businesses. Every
// subscription counts; there is no one-active-plan constraint and no
// expiry check against start_date.
func (s *BillingService) ComputeTotal(ctx context.Context, vendorID uint64) (int64, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return 0, err
	}
	if vendor == nil {
		return 0, ErrVendorNotFound
	}

	subscriptions, err := s.subscriptionRepo.ListByVendorID(ctx, vendorID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, subscription := range subscriptions {
		total += subscription.Price
	}

	branchCount, err := s.branchRepo.CountByVendorID(ctx, vendorID)
	if err != nil {
		return 0, err
	}
	total += branchCount * s.cfg.BranchFee

	return total, nil
}
