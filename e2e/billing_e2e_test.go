//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

const defaultHTTPBase = "http://localhost:38080"

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string) *httpClient {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func billingAPIKey() string {
	return os.Getenv("E2E_API_KEY")
}

func httpBase() string {
	if v := os.Getenv("E2E_HTTP_BASE"); v != "" {
		return v
	}
	return defaultHTTPBase
}

func (c *httpClient) doJSON(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal failed: %v", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key := billingAPIKey(); key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}

	return resp, bodyBytes
}

func waitForHTTP(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("http service not ready at %s", baseURL)
}

// TestVendorBillingFlow walks the full path: vendor, business with two
// branches, a pro subscription, billing preview of 1000, then an STK
// push through the stub gateway.
func TestVendorBillingFlow(t *testing.T) {
	base := httpBase()
	if err := waitForHTTP(base, 30*time.Second); err != nil {
		t.Fatal(err)
	}
	client := newHTTPClient(base)

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	resp, body := client.doJSON(t, http.MethodPost, "/vendors", map[string]any{
		"email": email,
		"name":  "E2E Vendor",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create vendor: %d %s", resp.StatusCode, body)
	}
	var vendor struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(body, &vendor); err != nil {
		t.Fatalf("decode vendor: %v", err)
	}

	resp, body = client.doJSON(t, http.MethodPost, "/businesses", map[string]any{
		"name":      "E2E Shop",
		"address":   "Moi Avenue",
		"vendor_id": vendor.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create business: %d %s", resp.StatusCode, body)
	}
	var business struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(body, &business); err != nil {
		t.Fatalf("decode business: %v", err)
	}

	for _, name := range []string{"Branch A", "Branch B"} {
		resp, body = client.doJSON(t, http.MethodPost, "/branches", map[string]any{
			"name":        name,
			"address":     "Nairobi",
			"business_id": business.ID,
		})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create branch: %d %s", resp.StatusCode, body)
		}
	}

	resp, body = client.doJSON(t, http.MethodPost, "/subscriptions", map[string]any{
		"vendor_id": vendor.ID,
		"plan":      "pro",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create subscription: %d %s", resp.StatusCode, body)
	}

	resp, body = client.doJSON(t, http.MethodGet, fmt.Sprintf("/billing/%d", vendor.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("billing preview: %d %s", resp.StatusCode, body)
	}
	var billing struct {
		Amount int64 `json:"amount"`
	}
	if err := json.Unmarshal(body, &billing); err != nil {
		t.Fatalf("decode billing: %v", err)
	}
	if billing.Amount != 1000 {
		t.Fatalf("expected amount 1000 (400 pro + 2x300 branches), got %d", billing.Amount)
	}

	resp, body = client.doJSON(t, http.MethodPost, fmt.Sprintf("/payments/%d", vendor.ID), map[string]any{
		"phone_number": "254712345678",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("process payment: %d %s", resp.StatusCode, body)
	}
	var provider struct {
		ResponseCode string `json:"ResponseCode"`
	}
	if err := json.Unmarshal(body, &provider); err != nil {
		t.Fatalf("decode provider response: %v", err)
	}
	if provider.ResponseCode != "0" {
		t.Fatalf("expected stub acceptance, got %s", body)
	}

	resp, body = client.doJSON(t, http.MethodGet, fmt.Sprintf("/payments/%d", vendor.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list payments: %d %s", resp.StatusCode, body)
	}
	var payments struct {
		Payments []struct {
			Amount int64 `json:"amount"`
		} `json:"payments"`
	}
	if err := json.Unmarshal(body, &payments); err != nil {
		t.Fatalf("decode payments: %v", err)
	}
	if len(payments.Payments) == 0 || payments.Payments[0].Amount != 1000 {
		t.Fatalf("expected recorded payment of 1000, got %s", body)
	}
}

func TestProcessPaymentValidation(t *testing.T) {
	base := httpBase()
	if err := waitForHTTP(base, 30*time.Second); err != nil {
		t.Fatal(err)
	}
	client := newHTTPClient(base)

	resp, _ := client.doJSON(t, http.MethodPost, "/payments/999999999", map[string]any{
		"phone_number": "254712345678",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown vendor, got %d", resp.StatusCode)
	}

	email := fmt.Sprintf("e2e-phone-%d@example.com", time.Now().UnixNano())
	resp, body := client.doJSON(t, http.MethodPost, "/vendors", map[string]any{
		"email": email,
		"name":  "No Phone Vendor",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create vendor: %d %s", resp.StatusCode, body)
	}
	var vendor struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal(body, &vendor); err != nil {
		t.Fatalf("decode vendor: %v", err)
	}

	resp, _ = client.doJSON(t, http.MethodPost, fmt.Sprintf("/payments/%d", vendor.ID), map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone, got %d", resp.StatusCode)
	}
}
