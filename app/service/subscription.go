package service

import (
	"context"
	"time"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type SubscriptionService struct {
	vendorRepo       vendorRepository
	subscriptionRepo subscriptionRepository
}

func NewSubscriptionService(vendorRepo vendorRepository, subscriptionRepo subscriptionRepository) *SubscriptionService {
	return &SubscriptionService{
		vendorRepo:       vendorRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CreateSubscription signs a vendor up for one of the fixed plans.
// Price and product limit come from the plan table; an unknown plan
// name fails before anything is stored.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, req *types.CreateSubscriptionRequest) (*entity.Subscription, error) {
	plan, ok := entity.PlanByName(req.Plan)
	if !ok {
		return nil, ErrInvalidPlan
	}

	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	now := time.Now().UTC()
	subscription := &entity.Subscription{
		VendorID:    req.VendorID,
		Plan:        plan.Name,
		Price:       plan.Price,
		MaxProducts: plan.MaxProducts,
		StartDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}

	return subscription, nil
}

func (s *SubscriptionService) ListPlans() []entity.Plan {
	return entity.Plans()
}
