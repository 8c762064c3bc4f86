package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billing/app/factory"
	"github.com/vibast-solutions/ms-go-billing/config"
)

const (
	transactionType = "CustomerPayBillOnline"
	transactionDesc = "Payment for subscription"
	timestampLayout = "20060102150405"
)

// DarajaClient drives the M-Pesa Daraja STK push protocol: a
// client-credentials token fetch followed by a signed process-request
// POST. Each call is synchronous and self-contained; nothing is
// retried.
type DarajaClient struct {
	cfg        config.MpesaConfig
	httpClient *http.Client
	now        func() time.Time
	logger     logrus.FieldLogger
}

func NewDarajaClient(cfg config.MpesaConfig) *DarajaClient {
	return &DarajaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
		logger:     factory.NewModuleLogger("mpesa-daraja"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

func (c *DarajaClient) InitiateSTKPush(ctx context.Context, req STKPushRequest) (json.RawMessage, error) {
	if req.PhoneNumber == "" {
		return nil, ErrMissingPhoneNumber
	}

	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString([]byte(c.cfg.Shortcode + c.cfg.Passkey + timestamp))

	payload := &stkPushPayload{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            req.Amount,
		PartyA:            req.PhoneNumber,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       req.PhoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  fmt.Sprintf("Vendor-%d", req.VendorID),
		TransactionDesc:   transactionDesc,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.STKPushURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: stk push request failed: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading stk push response: %v", ErrGatewayUnavailable, err)
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: stk push response is not valid JSON", ErrGatewayUnavailable)
	}

	c.logger.WithFields(logrus.Fields{
		"vendor_id": req.VendorID,
		"amount":    req.Amount,
		"status":    resp.StatusCode,
	}).Info("stk_push_submitted")

	// The provider body is forwarded untouched, whatever its embedded
	// result code says.
	return json.RawMessage(respBody), nil
}

func (c *DarajaClient) fetchAccessToken(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.TokenURL, nil)
	if err != nil {
		return "", err
	}
	httpReq.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: token request failed: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", ErrGatewayUnavailable, err)
	}
	if token.AccessToken == "" {
		return "", ErrAuthenticationFailed
	}

	return token.AccessToken, nil
}
