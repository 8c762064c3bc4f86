package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billing/app/dto"
	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/factory"
	"github.com/vibast-solutions/ms-go-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-billing/app/service"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type vendorService interface {
	CreateVendor(ctx context.Context, req *types.CreateVendorRequest) (*entity.Vendor, error)
	GetVendorOverview(ctx context.Context, id uint64) (*service.VendorOverview, error)
}

type businessService interface {
	CreateBusiness(ctx context.Context, req *types.CreateBusinessRequest) (*entity.Business, error)
	CreateBranch(ctx context.Context, req *types.CreateBranchRequest) (*entity.Branch, error)
	CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*entity.Product, error)
}

type subscriptionService interface {
	CreateSubscription(ctx context.Context, req *types.CreateSubscriptionRequest) (*entity.Subscription, error)
	ListPlans() []entity.Plan
}

type VendorController struct {
	vendorService       vendorService
	businessService     businessService
	subscriptionService subscriptionService
	logger              logrus.FieldLogger
}

func NewVendorController(
	vendorService vendorService,
	businessService businessService,
	subscriptionService subscriptionService,
) *VendorController {
	return &VendorController{
		vendorService:       vendorService,
		businessService:     businessService,
		subscriptionService: subscriptionService,
		logger:              factory.NewModuleLogger("vendor-controller"),
	}
}

func (c *VendorController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *VendorController) CreateVendor(ctx echo.Context) error {
	req, err := types.NewCreateVendorRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	vendor, err := c.vendorService.CreateVendor(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrVendorAlreadyExists) {
			return writeError(ctx, http.StatusConflict, "vendor already exists")
		}
		c.logger.WithError(err).Error("Create vendor failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.VendorToResponse(vendor))
}

func (c *VendorController) GetVendor(ctx echo.Context) error {
	req, err := types.NewVendorIDRequestFromContext(ctx, "id")
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vendor id")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	overview, err := c.vendorService.GetVendorOverview(ctx.Request().Context(), req.VendorID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		}
		c.logger.WithError(err).Error("Get vendor failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.VendorOverviewResponse{
		Vendor:        mapper.VendorToResponse(overview.Vendor),
		Businesses:    mapper.BusinessesToResponse(overview.Businesses),
		Subscriptions: mapper.SubscriptionsToResponse(overview.Subscriptions),
	})
}

func (c *VendorController) CreateBusiness(ctx echo.Context) error {
	req, err := types.NewCreateBusinessRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	business, err := c.businessService.CreateBusiness(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		}
		c.logger.WithError(err).Error("Create business failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.BusinessToResponse(business))
}

func (c *VendorController) CreateBranch(ctx echo.Context) error {
	req, err := types.NewCreateBranchRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	branch, err := c.businessService.CreateBranch(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			return writeError(ctx, http.StatusNotFound, "business not found")
		}
		c.logger.WithError(err).Error("Create branch failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.BranchToResponse(branch))
}

func (c *VendorController) CreateProduct(ctx echo.Context) error {
	req, err := types.NewCreateProductRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	product, err := c.businessService.CreateProduct(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			return writeError(ctx, http.StatusNotFound, "business not found")
		case errors.Is(err, service.ErrSubscriptionRequired), errors.Is(err, service.ErrProductLimitReached):
			return writeError(ctx, http.StatusForbidden, err.Error())
		default:
			c.logger.WithError(err).Error("Create product failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, mapper.ProductToResponse(product))
}

func (c *VendorController) CreateSubscription(ctx echo.Context) error {
	req, err := types.NewCreateSubscriptionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	subscription, err := c.subscriptionService.CreateSubscription(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVendorNotFound):
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		default:
			c.logger.WithError(err).Error("Create subscription failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusCreated, mapper.SubscriptionToResponse(subscription))
}

func (c *VendorController) ListPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.ListPlansResponse{
		Plans: mapper.PlansToResponse(c.subscriptionService.ListPlans()),
	})
}

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
