package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/payment"
)

type mockPaymentRepo struct {
	createFn         func(ctx context.Context, payment *entity.Payment) error
	listByVendorIDFn func(ctx context.Context, vendorID uint64) ([]*entity.Payment, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if m.createFn != nil {
		return m.createFn(ctx, payment)
	}
	return nil
}

func (m *mockPaymentRepo) ListByVendorID(ctx context.Context, vendorID uint64) ([]*entity.Payment, error) {
	if m.listByVendorIDFn != nil {
		return m.listByVendorIDFn(ctx, vendorID)
	}
	return nil, nil
}

func proVendorBilling() *BillingService {
	// one pro subscription (400) and two branches at fee 300 each
	return NewBillingService(existingVendor(1), subscriptionsOf(400), branchesOf(2), billingConfig())
}

func TestProcessVendorPaymentForwardsComputedAmount(t *testing.T) {
	gateway := &fakeGateway{response: json.RawMessage(`{"ResponseCode":"0"}`)}
	var recorded *entity.Payment
	repo := &mockPaymentRepo{createFn: func(_ context.Context, p *entity.Payment) error {
		recorded = p
		return nil
	}}
	svc := NewPaymentService(proVendorBilling(), gateway, repo)

	raw, err := svc.ProcessVendorPayment(context.Background(), 1, "254712345678")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(raw) != `{"ResponseCode":"0"}` {
		t.Fatalf("provider body altered: %s", raw)
	}

	if len(gateway.requests) != 1 {
		t.Fatalf("expected one push, got %d", len(gateway.requests))
	}
	req := gateway.requests[0]
	if req.Amount != 1000 {
		t.Fatalf("expected amount 1000 forwarded unchanged, got %d", req.Amount)
	}
	if req.VendorID != 1 || req.PhoneNumber != "254712345678" {
		t.Fatalf("unexpected push request %+v", req)
	}

	if recorded == nil {
		t.Fatal("expected payment to be recorded")
	}
	if recorded.Amount != 1000 || recorded.PaymentMethod != "mpesa_stk_push" {
		t.Fatalf("unexpected payment record %+v", recorded)
	}
}

func TestProcessVendorPaymentVendorNotFound(t *testing.T) {
	gateway := &fakeGateway{response: json.RawMessage(`{}`)}
	svc := NewPaymentService(
		NewBillingService(&mockVendorRepo{}, subscriptionsOf(), branchesOf(0), billingConfig()),
		gateway,
		&mockPaymentRepo{},
	)

	_, err := svc.ProcessVendorPayment(context.Background(), 42, "254700000000")
	if !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
	if len(gateway.requests) != 0 {
		t.Fatalf("expected no push for unknown vendor, got %d", len(gateway.requests))
	}
}

func TestProcessVendorPaymentGatewayErrorNotRecorded(t *testing.T) {
	gateway := &fakeGateway{err: payment.ErrAuthenticationFailed}
	created := 0
	repo := &mockPaymentRepo{createFn: func(context.Context, *entity.Payment) error {
		created++
		return nil
	}}
	svc := NewPaymentService(proVendorBilling(), gateway, repo)

	_, err := svc.ProcessVendorPayment(context.Background(), 1, "254700000000")
	if !errors.Is(err, payment.ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if created != 0 {
		t.Fatalf("expected no payment record on gateway failure, got %d", created)
	}
}

func TestProcessVendorPaymentRecordFailureStillReturnsBody(t *testing.T) {
	gateway := &fakeGateway{response: json.RawMessage(`{"ResponseCode":"0"}`)}
	repo := &mockPaymentRepo{createFn: func(context.Context, *entity.Payment) error {
		return errors.New("insert failed")
	}}
	svc := NewPaymentService(proVendorBilling(), gateway, repo)

	raw, err := svc.ProcessVendorPayment(context.Background(), 1, "254700000000")
	if err != nil {
		t.Fatalf("expected no error despite record failure, got %v", err)
	}
	if string(raw) != `{"ResponseCode":"0"}` {
		t.Fatalf("expected provider body, got %s", raw)
	}
}
