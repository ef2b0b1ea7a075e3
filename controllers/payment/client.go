package paymentControllers

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// ProviderOrder mirrors the payment provider's order record. Amount is in
// minor currency units (paise for INR).
type ProviderOrder struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	Receipt   string `json:"receipt,omitempty"`
}

// Client talks to the provider's order API. Requests carry a hard timeout so
// a stalled provider can never wedge a checkout.
type Client struct {
	apiURL    string
	keyID     string
	keySecret string
	http      *http.Client
}

func NewClient(apiURL, keyID, keySecret string) *Client {
	return &Client{
		apiURL:    apiURL,
		keyID:     keyID,
		keySecret: keySecret,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// CreateOrder registers an order with the provider. Amount is in major
// currency units and converted to minor units on the wire.
func (cl *Client) CreateOrder(amount decimal.Decimal, currency, receipt string) (ProviderOrder, error) {
	payload := map[string]interface{}{
		"amount":   toMinorUnits(amount),
		"currency": currency,
		"receipt":  receipt,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return ProviderOrder{}, fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cl.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return ProviderOrder{}, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cl.keyID, cl.keySecret)

	resp, err := cl.http.Do(req)
	if err != nil {
		return ProviderOrder{}, fmt.Errorf("failed to reach payment provider: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return ProviderOrder{}, fmt.Errorf("payment provider error (%d): %s", resp.StatusCode, string(body))
	}

	var order ProviderOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return ProviderOrder{}, fmt.Errorf("failed to parse provider response: %w", err)
	}
	if order.ID == "" {
		return ProviderOrder{}, fmt.Errorf("payment provider returned empty order id")
	}
	return order, nil
}

// SynthesizeOrder fabricates a provider-shaped order locally so the caller's
// contract stays uniform when the provider is unreachable (demo fallback).
func SynthesizeOrder(amount decimal.Decimal, currency, receipt string) ProviderOrder {
	return ProviderOrder{
		ID:        fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), randBase36(9)),
		Amount:    toMinorUnits(amount),
		Currency:  currency,
		Status:    "created",
		CreatedAt: time.Now().Unix(),
		Receipt:   receipt,
	}
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func randBase36(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = '0'
		}
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
