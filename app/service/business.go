package service

import (
	"context"
	"time"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type businessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uint64) (*entity.Business, error)
	ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Business, error)
}

type productRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CountByVendorID(ctx context.Context, vendorID uint64) (int64, error)
}

type BusinessService struct {
	vendorRepo       vendorRepository
	businessRepo     businessRepository
	branchRepo       branchRepository
	productRepo      productRepository
	subscriptionRepo subscriptionRepository
}

func NewBusinessService(
	vendorRepo vendorRepository,
	businessRepo businessRepository,
	branchRepo branchRepository,
	productRepo productRepository,
	subscriptionRepo subscriptionRepository,
) *BusinessService {
	return &BusinessService{
		vendorRepo:       vendorRepo,
		businessRepo:     businessRepo,
		branchRepo:       branchRepo,
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *BusinessService) CreateBusiness(ctx context.Context, req *types.CreateBusinessRequest) (*entity.Business, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	now := time.Now().UTC()
	business := &entity.Business{
		Name:      req.Name,
		Address:   req.Address,
		VendorID:  req.VendorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

func (s *BusinessService) CreateBranch(ctx context.Context, req *types.CreateBranchRequest) (*entity.Branch, error) {
	business, err := s.businessRepo.FindByID(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	now := time.Now().UTC()
	branch := &entity.Branch{
		Name:       req.Name,
		Address:    req.Address,
		BusinessID: req.BusinessID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// CreateProduct enforces the owning vendor's product limit: the most
// permissive limit across the vendor's subscriptions wins, and a
// vendor with no subscription cannot add products at all.
func (s *BusinessService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*entity.Product, error) {
	business, err := s.businessRepo.FindByID(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	subscriptions, err := s.subscriptionRepo.ListByVendorID(ctx, business.VendorID)
	if err != nil {
		return nil, err
	}
	if len(subscriptions) == 0 {
		return nil, ErrSubscriptionRequired
	}

	limit := mostPermissiveLimit(subscriptions)
	count, err := s.productRepo.CountByVendorID(ctx, business.VendorID)
	if err != nil {
		return nil, err
	}
	if !limit.Allows(count) {
		return nil, ErrProductLimitReached
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:       req.Name,
		Price:      req.Price,
		BusinessID: req.BusinessID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func mostPermissiveLimit(subscriptions []*entity.Subscription) entity.ProductLimit {
	best := subscriptions[0].MaxProducts
	for _, subscription := range subscriptions[1:] {
		if subscription.MaxProducts.Unlimited {
			return entity.UnlimitedProducts()
		}
		if !best.Unlimited && subscription.MaxProducts.Max > best.Max {
			best = subscription.MaxProducts
		}
	}
	return best
}
