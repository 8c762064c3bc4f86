package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-billing/app/entity"
)

func TestSubscriptionCreateSetsID(t *testing.T) {
	var gotArgs []interface{}
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
		gotArgs = args
		return fakeResult{lastInsertID: 22}, nil
	}})

	now := time.Now().UTC()
	s := &entity.Subscription{
		VendorID:    1,
		Plan:        entity.PlanPro,
		Price:       400,
		MaxProducts: entity.LimitedProducts(100),
		StartDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.ID != 22 {
		t.Fatalf("expected id=22, got %d", s.ID)
	}
	if gotArgs[3] != int64(100) {
		t.Fatalf("expected max_products 100, got %v", gotArgs[3])
	}
}

func TestSubscriptionCreateUnlimitedStoresNull(t *testing.T) {
	var gotArgs []interface{}
	repo := NewSubscriptionRepository(&fakeDB{execFn: func(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
		gotArgs = args
		return fakeResult{lastInsertID: 1}, nil
	}})

	s := &entity.Subscription{
		VendorID:    1,
		Plan:        entity.PlanEnterprise,
		Price:       600,
		MaxProducts: entity.UnlimitedProducts(),
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotArgs[3] != nil {
		t.Fatalf("expected NULL max_products for unlimited plan, got %v", gotArgs[3])
	}
}
