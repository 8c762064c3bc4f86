package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/factory"
	"github.com/vibast-solutions/ms-go-billing/app/metrics"
	"github.com/vibast-solutions/ms-go-billing/app/payment"
)

const paymentMethodSTKPush = "mpesa_stk_push"

type billingCalculator interface {
	ComputeTotal(ctx context.Context, vendorID uint64) (int64, error)
}

type paymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Payment, error)
}

// PaymentService computes what a vendor owes and drives the push
// payment for it. The provider response is handed back verbatim; the
// Payment row records the attempt, not provider confirmation.
type PaymentService struct {
	billing     billingCalculator
	gateway     payment.Service
	paymentRepo paymentRepository
	logger      logrus.FieldLogger
}

func NewPaymentService(billing billingCalculator, gateway payment.Service, paymentRepo paymentRepository) *PaymentService {
	return &PaymentService{
		billing:     billing,
		gateway:     gateway,
		paymentRepo: paymentRepo,
		logger:      factory.NewModuleLogger("payment-service"),
	}
}

func (s *PaymentService) ProcessVendorPayment(ctx context.Context, vendorID uint64, phoneNumber string) (json.RawMessage, error) {
	amount, err := s.billing.ComputeTotal(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	metrics.ObserveBillingAmount(float64(amount))

	raw, err := s.gateway.InitiateSTKPush(ctx, payment.STKPushRequest{
		VendorID:    vendorID,
		Amount:      amount,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		metrics.IncSTKPush("error")
		return nil, err
	}
	metrics.IncSTKPush("submitted")

	// Recording is best effort: the push already went out, so the
	// caller gets the provider body even if the insert fails.
	record := &entity.Payment{
		VendorID:      vendorID,
		Amount:        amount,
		PaymentMethod: paymentMethodSTKPush,
		PaymentDate:   time.Now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		s.logger.WithError(err).WithField("vendor_id", vendorID).Error("Failed to record payment")
	}

	return raw, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, vendorID uint64) ([]*entity.Payment, error) {
	return s.paymentRepo.ListByVendorID(ctx, vendorID)
}
