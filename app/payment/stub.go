package payment

import (
	"context"
	"encoding/json"
	"fmt"
)

// StubService stands in for Daraja when no consumer credentials are
// configured. It accepts every push and returns a canned provider
// response so local and e2e runs work without the sandbox.
type StubService struct{}

func NewStubService() *StubService {
	return &StubService{}
}

func (s *StubService) InitiateSTKPush(_ context.Context, req STKPushRequest) (json.RawMessage, error) {
	if req.PhoneNumber == "" {
		return nil, ErrMissingPhoneNumber
	}

	body := fmt.Sprintf(
		`{"MerchantRequestID":"stub-%d","CheckoutRequestID":"ws_CO_stub","ResponseCode":"0","ResponseDescription":"Success. Request accepted for processing","CustomerMessage":"Success. Request accepted for processing"}`,
		req.VendorID,
	)
	return json.RawMessage(body), nil
}
