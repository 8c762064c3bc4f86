package service

import "errors"

var (
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrVendorAlreadyExists  = errors.New("vendor already exists")
	ErrInvalidPlan          = errors.New("invalid subscription plan selected")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrSubscriptionRequired = errors.New("an active subscription is required")
	ErrProductLimitReached  = errors.New("product limit for subscription reached")
)
