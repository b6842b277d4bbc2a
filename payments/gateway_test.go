package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{50.00, 5000},
		{9.99, 999},
		{29.97, 2997},
		{0.01, 1},
		{1000, 100000},
	}

	for _, tt := range tests {
		if got := MinorUnits(tt.amount); got != tt.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestGatewayCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key_id" || pass != "key_secret" {
			t.Error("missing or wrong basic auth")
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if amt, _ := body["amount"].(float64); int64(amt) != 5000 {
			t.Errorf("amount = %v, want 5000", body["amount"])
		}
		if body["currency"] != "INR" {
			t.Errorf("currency = %v, want INR", body["currency"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_gw1",
			"amount":   5000,
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer srv.Close()

	gw := NewGateway(Config{
		KeyID:      "key_id",
		KeySecret:  "key_secret",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})

	gwOrder, err := gw.CreateOrder(context.Background(), MinorUnits(50.00), "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if gwOrder.ID != "order_gw1" {
		t.Errorf("id = %q, want order_gw1", gwOrder.ID)
	}
	if gwOrder.Amount != 5000 {
		t.Errorf("amount = %d, want 5000", gwOrder.Amount)
	}
	if gwOrder.Currency != "INR" {
		t.Errorf("currency = %q, want INR", gwOrder.Currency)
	}
}

func TestGatewayCreateOrderNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewGateway(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := gw.CreateOrder(context.Background(), 100, "INR", "rcpt_2")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
}

func TestGatewayCreateOrderNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	gw := NewGateway(Config{BaseURL: srv.URL})

	_, err := gw.CreateOrder(context.Background(), 100, "INR", "rcpt_3")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
}
