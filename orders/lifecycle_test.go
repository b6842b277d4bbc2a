package orders

import (
	"strings"
	"testing"

	"inkwell/models"
)

func TestCanCancel(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.StatusPlaced, true},
		{models.StatusConfirmed, true},
		{models.StatusShipped, true},
		{models.StatusDelivered, false},
		{models.StatusCancelled, false},
		{models.StatusReturned, true},
	}

	for _, tt := range tests {
		if got := CanCancel(tt.status); got != tt.want {
			t.Errorf("CanCancel(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanReturn(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.StatusPlaced, false},
		{models.StatusConfirmed, false},
		{models.StatusShipped, false},
		{models.StatusDelivered, true},
		{models.StatusCancelled, false},
		{models.StatusReturned, false},
	}

	for _, tt := range tests {
		if got := CanReturn(tt.status); got != tt.want {
			t.Errorf("CanReturn(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestNewOrderEntersLifecycleConfirmed(t *testing.T) {
	items := []models.OrderItem{
		{BookID: "b1", Title: "Dune", Author: "Frank Herbert", Price: 9.99, Quantity: 3},
	}

	order := NewOrder("u123", items, 29.97, models.MethodCOD)

	if order.OrderStatus != models.StatusConfirmed {
		t.Errorf("orderStatus = %q, want %q", order.OrderStatus, models.StatusConfirmed)
	}
	if order.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %q, want %q", order.PaymentStatus, models.PaymentPending)
	}
	if order.PaymentMethod != models.MethodCOD {
		t.Errorf("paymentMethod = %q, want %q", order.PaymentMethod, models.MethodCOD)
	}
	if order.TotalAmount != 29.97 {
		t.Errorf("totalAmount = %v, want 29.97", order.TotalAmount)
	}
	if order.UserID != "u123" {
		t.Errorf("userID = %q, want u123", order.UserID)
	}
	if !strings.HasPrefix(order.OrderID, "o") || len(order.OrderID) != 13 {
		t.Errorf("unexpected order id %q", order.OrderID)
	}
	if order.PaymentID != "" {
		t.Errorf("paymentId should be empty for COD, got %q", order.PaymentID)
	}
	if order.CancelReason != "" || order.ReturnReason != "" {
		t.Error("reason fields must be empty at creation")
	}
	if len(order.Items) != 1 || order.Items[0] != items[0] {
		t.Errorf("items snapshot altered: %+v", order.Items)
	}
	if order.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestNewOrderGatewayMethod(t *testing.T) {
	order := NewOrder("u1", []models.OrderItem{{BookID: "b1", Quantity: 1, Price: 50}}, 50, models.MethodRazorpay)
	if order.PaymentMethod != models.MethodRazorpay {
		t.Errorf("paymentMethod = %q, want %q", order.PaymentMethod, models.MethodRazorpay)
	}
	if order.OrderStatus != models.StatusConfirmed {
		t.Errorf("orderStatus = %q, want %q", order.OrderStatus, models.StatusConfirmed)
	}
}
