package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"inkwell/models"
)

var ErrGateway = errors.New("payment gateway call failed")

// Config carries the gateway credentials and base settings. It is passed
// to NewService explicitly; nothing in this package holds process-wide
// gateway state.
type Config struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	UPIVPA     string
	HTTPClient *http.Client
}

// ConfigFromEnv builds a Config from the environment.
func ConfigFromEnv() Config {
	baseURL := os.Getenv("RZP_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	vpa := os.Getenv("UPI_VPA")
	if vpa == "" {
		vpa = "merchant@upi"
	}
	return Config{
		KeyID:     os.Getenv("RZP_KEY_ID"),
		KeySecret: os.Getenv("RZP_KEY_SECRET"),
		BaseURL:   baseURL,
		UPIVPA:    vpa,
	}
}

// Gateway is a thin client for the payment provider's order API.
type Gateway struct {
	cfg    Config
	client *http.Client
}

func NewGateway(cfg Config) *Gateway {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Gateway{cfg: cfg, client: client}
}

// CreateOrder asks the gateway for a payment intent. Amount is in minor
// units (paise for INR).
func (g *Gateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*models.GatewayOrder, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.cfg.KeyID, g.cfg.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrGateway, resp.StatusCode)
	}

	var gwOrder models.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&gwOrder); err != nil {
		return nil, fmt.Errorf("%w: bad response: %v", ErrGateway, err)
	}
	return &gwOrder, nil
}

// MinorUnits converts a display amount to the gateway's minor-unit
// representation (50.00 -> 5000).
func MinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
