package payment

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrMissingPhoneNumber is returned before any network call when no
	// phone number was supplied for the push.
	ErrMissingPhoneNumber = errors.New("phone number is required for payment")
	// ErrAuthenticationFailed is returned when the token endpoint does
	// not yield an access token.
	ErrAuthenticationFailed = errors.New("failed to get access token")
	// ErrGatewayUnavailable wraps transport-level failures (connection
	// errors, non-JSON bodies) at either provider endpoint.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

type STKPushRequest struct {
	VendorID    uint64
	Amount      int64
	PhoneNumber string
}

// Service pushes a request-to-pay prompt to the vendor's phone. The
// provider's JSON response is returned verbatim; interpreting the
// provider's own success or failure indication is the caller's
// business.
type Service interface {
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (json.RawMessage, error)
}
