package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billing/app/dto"
	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/factory"
	"github.com/vibast-solutions/ms-go-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-billing/app/payment"
	"github.com/vibast-solutions/ms-go-billing/app/service"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type billingService interface {
	ComputeTotal(ctx context.Context, vendorID uint64) (int64, error)
}

type paymentService interface {
	ProcessVendorPayment(ctx context.Context, vendorID uint64, phoneNumber string) (json.RawMessage, error)
	ListPayments(ctx context.Context, vendorID uint64) ([]*entity.Payment, error)
}

type PaymentController struct {
	billingService billingService
	paymentService paymentService
	logger         logrus.FieldLogger
}

func NewPaymentController(billingService billingService, paymentService paymentService) *PaymentController {
	return &PaymentController{
		billingService: billingService,
		paymentService: paymentService,
		logger:         factory.NewModuleLogger("payment-controller"),
	}
}

func (c *PaymentController) GetBillingTotal(ctx echo.Context) error {
	req, err := types.NewVendorIDRequestFromContext(ctx, "vendor_id")
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vendor id")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	amount, err := c.billingService.ComputeTotal(ctx.Request().Context(), req.VendorID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		}
		c.logger.WithError(err).Error("Compute billing total failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.BillingTotalResponse{VendorID: req.VendorID, Amount: amount})
}

func (c *PaymentController) ProcessPayment(ctx echo.Context) error {
	req, err := types.NewProcessPaymentRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	raw, err := c.paymentService.ProcessVendorPayment(ctx.Request().Context(), req.VendorID, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVendorNotFound):
			return writeError(ctx, http.StatusNotFound, "vendor not found")
		case errors.Is(err, payment.ErrMissingPhoneNumber):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, payment.ErrAuthenticationFailed):
			c.logger.WithError(err).Error("Gateway authentication failed")
			return writeError(ctx, http.StatusBadGateway, err.Error())
		case errors.Is(err, payment.ErrGatewayUnavailable):
			c.logger.WithError(err).Error("Gateway unavailable")
			return writeError(ctx, http.StatusBadGateway, "payment gateway unavailable")
		default:
			c.logger.WithError(err).Error("Process payment failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	// The provider body goes back as-is; its embedded result code is
	// the caller's to interpret.
	return ctx.JSONBlob(http.StatusOK, raw)
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	req, err := types.NewVendorIDRequestFromContext(ctx, "vendor_id")
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid vendor id")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.paymentService.ListPayments(ctx.Request().Context(), req.VendorID)
	if err != nil {
		c.logger.WithError(err).Error("List payments failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.ListPaymentsResponse{Payments: mapper.PaymentsToResponse(items)})
}
