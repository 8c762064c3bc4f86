package mapper

import (
	"time"

	"github.com/vibast-solutions/ms-go-billing/app/dto"
	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

func VendorToResponse(item *entity.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:        item.ID,
		Email:     item.Email,
		Name:      item.Name,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func BusinessToResponse(item *entity.Business) dto.BusinessResponse {
	return dto.BusinessResponse{
		ID:       item.ID,
		Name:     item.Name,
		Address:  item.Address,
		VendorID: item.VendorID,
	}
}

func BusinessesToResponse(items []*entity.Business) []dto.BusinessResponse {
	result := make([]dto.BusinessResponse, 0, len(items))
	for _, item := range items {
		result = append(result, BusinessToResponse(item))
	}
	return result
}

func BranchToResponse(item *entity.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:         item.ID,
		Name:       item.Name,
		Address:    item.Address,
		BusinessID: item.BusinessID,
	}
}

func ProductToResponse(item *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		BusinessID: item.BusinessID,
	}
}

func SubscriptionToResponse(item *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:          item.ID,
		VendorID:    item.VendorID,
		Plan:        item.Plan,
		Price:       item.Price,
		MaxProducts: productLimitValue(item.MaxProducts),
		StartDate:   item.StartDate.UTC().Format(time.RFC3339),
	}
}

func SubscriptionsToResponse(items []*entity.Subscription) []dto.SubscriptionResponse {
	result := make([]dto.SubscriptionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionToResponse(item))
	}
	return result
}

func PlanToResponse(item entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		Name:        item.Name,
		Price:       item.Price,
		MaxProducts: productLimitValue(item.MaxProducts),
	}
}

func PlansToResponse(items []entity.Plan) []dto.PlanResponse {
	result := make([]dto.PlanResponse, 0, len(items))
	for _, item := range items {
		result = append(result, PlanToResponse(item))
	}
	return result
}

func PaymentToResponse(item *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            item.ID,
		VendorID:      item.VendorID,
		Amount:        item.Amount,
		PaymentMethod: item.PaymentMethod,
		PaymentDate:   item.PaymentDate.UTC().Format(time.RFC3339),
	}
}

func PaymentsToResponse(items []*entity.Payment) []dto.PaymentResponse {
	result := make([]dto.PaymentResponse, 0, len(items))
	for _, item := range items {
		result = append(result, PaymentToResponse(item))
	}
	return result
}

func productLimitValue(limit entity.ProductLimit) *int64 {
	if limit.Unlimited {
		return nil
	}
	max := limit.Max
	return &max
}
