package models

// GatewayOrder is the payment intent echoed back by the gateway.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
	Status   string `json:"status,omitempty"`
}

// OrderEvent is published on the order-events channel whenever an
// order's status changes.
type OrderEvent struct {
	OrderID       string `json:"orderId"`
	UserID        string `json:"userId"`
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}
