package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type CreateVendorRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewCreateVendorRequestFromContext(ctx echo.Context) (*CreateVendorRequest, error) {
	var body CreateVendorRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Email = strings.TrimSpace(body.Email)
	body.Name = strings.TrimSpace(body.Name)
	return &body, nil
}

func (r *CreateVendorRequest) Validate() error {
	if r.Email == "" || r.Name == "" {
		return errors.New("email and name are required")
	}
	return nil
}

type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	VendorID uint64 `json:"vendor_id"`
}

func NewCreateBusinessRequestFromContext(ctx echo.Context) (*CreateBusinessRequest, error) {
	var body CreateBusinessRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Address = strings.TrimSpace(body.Address)
	return &body, nil
}

func (r *CreateBusinessRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.VendorID == 0 {
		return errors.New("vendor_id is required")
	}
	return nil
}

type CreateBranchRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	BusinessID uint64 `json:"business_id"`
}

func NewCreateBranchRequestFromContext(ctx echo.Context) (*CreateBranchRequest, error) {
	var body CreateBranchRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Address = strings.TrimSpace(body.Address)
	return &body, nil
}

func (r *CreateBranchRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.BusinessID == 0 {
		return errors.New("business_id is required")
	}
	return nil
}

type CreateProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	BusinessID uint64  `json:"business_id"`
}

func NewCreateProductRequestFromContext(ctx echo.Context) (*CreateProductRequest, error) {
	var body CreateProductRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	return &body, nil
}

func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.BusinessID == 0 {
		return errors.New("business_id is required")
	}
	return nil
}

type CreateSubscriptionRequest struct {
	VendorID uint64 `json:"vendor_id"`
	Plan     string `json:"plan"`
}

func NewCreateSubscriptionRequestFromContext(ctx echo.Context) (*CreateSubscriptionRequest, error) {
	var body CreateSubscriptionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Plan = strings.TrimSpace(strings.ToLower(body.Plan))
	return &body, nil
}

func (r *CreateSubscriptionRequest) Validate() error {
	if r.VendorID == 0 {
		return errors.New("vendor_id is required")
	}
	if r.Plan == "" {
		return errors.New("plan is required")
	}
	return nil
}

type ProcessPaymentRequest struct {
	VendorID    uint64 `json:"-"`
	PhoneNumber string `json:"phone_number"`
}

func NewProcessPaymentRequestFromContext(ctx echo.Context) (*ProcessPaymentRequest, error) {
	vendorID, err := strconv.ParseUint(ctx.Param("vendor_id"), 10, 64)
	if err != nil {
		return nil, err
	}

	var body ProcessPaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorID = vendorID
	body.PhoneNumber = strings.TrimSpace(body.PhoneNumber)
	return &body, nil
}

func (r *ProcessPaymentRequest) Validate() error {
	if r.VendorID == 0 {
		return errors.New("invalid vendor id")
	}
	// An empty phone number is rejected by the gateway client before
	// any network call; it is not a binding error here.
	return nil
}

type VendorIDRequest struct {
	VendorID uint64
}

func NewVendorIDRequestFromContext(ctx echo.Context, param string) (*VendorIDRequest, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil {
		return nil, err
	}
	return &VendorIDRequest{VendorID: id}, nil
}

func (r *VendorIDRequest) Validate() error {
	if r.VendorID == 0 {
		return errors.New("invalid vendor id")
	}
	return nil
}
