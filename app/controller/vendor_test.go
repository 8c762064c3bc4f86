package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-billing/app/entity"
	"github.com/vibast-solutions/ms-go-billing/app/service"
	"github.com/vibast-solutions/ms-go-billing/app/types"
)

type fakeVendorService struct {
	vendor   *entity.Vendor
	overview *service.VendorOverview
	err      error
}

func (f *fakeVendorService) CreateVendor(context.Context, *types.CreateVendorRequest) (*entity.Vendor, error) {
	return f.vendor, f.err
}

func (f *fakeVendorService) GetVendorOverview(context.Context, uint64) (*service.VendorOverview, error) {
	return f.overview, f.err
}

type fakeBusinessService struct {
	business *entity.Business
	branch   *entity.Branch
	product  *entity.Product
	err      error
}

func (f *fakeBusinessService) CreateBusiness(context.Context, *types.CreateBusinessRequest) (*entity.Business, error) {
	return f.business, f.err
}

func (f *fakeBusinessService) CreateBranch(context.Context, *types.CreateBranchRequest) (*entity.Branch, error) {
	return f.branch, f.err
}

func (f *fakeBusinessService) CreateProduct(context.Context, *types.CreateProductRequest) (*entity.Product, error) {
	return f.product, f.err
}

type fakeSubscriptionService struct {
	subscription *entity.Subscription
	err          error
}

func (f *fakeSubscriptionService) CreateSubscription(context.Context, *types.CreateSubscriptionRequest) (*entity.Subscription, error) {
	return f.subscription, f.err
}

func (f *fakeSubscriptionService) ListPlans() []entity.Plan {
	return entity.Plans()
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateVendorBadBody(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{}, &fakeBusinessService{}, &fakeSubscriptionService{})

	ctx, rec := newJSONContext(t, http.MethodPost, "/vendors", "{bad")
	if err := ctrl.CreateVendor(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateVendorMissingFields(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{}, &fakeBusinessService{}, &fakeSubscriptionService{})

	ctx, rec := newJSONContext(t, http.MethodPost, "/vendors", `{"email":"v@example.com"}`)
	if err := ctrl.CreateVendor(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateVendorDuplicate(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{err: service.ErrVendorAlreadyExists}, &fakeBusinessService{}, &fakeSubscriptionService{})

	ctx, rec := newJSONContext(t, http.MethodPost, "/vendors", `{"email":"v@example.com","name":"Vendor"}`)
	if err := ctrl.CreateVendor(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCreateSubscriptionInvalidPlan(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{}, &fakeBusinessService{}, &fakeSubscriptionService{err: service.ErrInvalidPlan})

	ctx, rec := newJSONContext(t, http.MethodPost, "/subscriptions", `{"vendor_id":1,"plan":"gold"}`)
	if err := ctrl.CreateSubscription(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListPlansIncludesUnlimitedAsNull(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{}, &fakeBusinessService{}, &fakeSubscriptionService{})

	ctx, rec := newJSONContext(t, http.MethodGet, "/plans", "")
	if err := ctrl.ListPlans(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Plans []struct {
			Name        string `json:"name"`
			Price       int64  `json:"price"`
			MaxProducts *int64 `json:"max_products"`
		} `json:"plans"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if len(body.Plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(body.Plans))
	}
	for _, plan := range body.Plans {
		if plan.Name == "enterprise" && plan.MaxProducts != nil {
			t.Fatalf("expected enterprise max_products to be null, got %d", *plan.MaxProducts)
		}
		if plan.Name == "starter" && (plan.MaxProducts == nil || *plan.MaxProducts != 10) {
			t.Fatalf("unexpected starter limit %v", plan.MaxProducts)
		}
	}
}

func TestCreateProductLimitReached(t *testing.T) {
	ctrl := NewVendorController(&fakeVendorService{}, &fakeBusinessService{err: service.ErrProductLimitReached}, &fakeSubscriptionService{})

	ctx, rec := newJSONContext(t, http.MethodPost, "/products", `{"name":"Soda","price":50,"business_id":2}`)
	if err := ctrl.CreateProduct(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
