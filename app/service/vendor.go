package service

import (
	"context"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/repository"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type VendorOverview struct {
	Vendor        *entity.Vendor
	Businesses    []*entity.Business
	Subscriptions []*entity.Subscription
}

type VendorService struct {
	vendorRepo       vendorRepository
	businessRepo     businessRepository
	subscriptionRepo subscriptionRepository
}

func NewVendorService(
	vendorRepo vendorRepository,
	businessRepo businessRepository,
	subscriptionRepo subscriptionRepository,
) *VendorService {
	return &VendorService{
		vendorRepo:       vendorRepo,
		businessRepo:     businessRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *VendorService) CreateVendor(ctx context.Context, req *types.CreateVendorRequest) (*entity.Vendor, error) {
	now := time.Now().UTC()
	vendor := &entity.Vendor{
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrVendorAlreadyExists) {
			return nil, ErrVendorAlreadyExists
		}
		return nil, err
	}

	return vendor, nil
}

func (s *VendorService) GetVendorOverview(ctx context.Context, id uint64) (*VendorOverview, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	businesses, err := s.businessRepo.ListByVendorID(ctx, id)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptionRepo.ListByVendorID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &VendorOverview{
		Vendor:        vendor,
		Businesses:    businesses,
		Subscriptions: subscriptions,
	}, nil
}
