package models

import "time"

// Order statuses. StatusPlaced exists in the schema but no commit path
// creates an order in it; orders enter the lifecycle at StatusConfirmed.
const (
	StatusPlaced    = "placed"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
	StatusReturned  = "returned"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment methods.
const (
	MethodRazorpay = "razorpay"
	MethodCOD      = "cod"
	MethodUPI      = "upi"
)

// OrderItem is a snapshot taken at order-creation time. It is decoupled
// from the live Book record so later catalog edits never rewrite history.
type OrderItem struct {
	BookID   string  `json:"bookid" bson:"bookid"`
	Title    string  `json:"title" bson:"title"`
	Author   string  `json:"author" bson:"author"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	OrderID       string      `json:"orderid" bson:"orderid"`
	UserID        string      `json:"userid" bson:"userid"`
	Items         []OrderItem `json:"items" bson:"items"`
	TotalAmount   float64     `json:"totalAmount" bson:"totalamount"`
	PaymentMethod string      `json:"paymentMethod" bson:"paymentmethod"`
	PaymentID     string      `json:"paymentId,omitempty" bson:"paymentid,omitempty"`
	PaymentStatus string      `json:"paymentStatus" bson:"paymentstatus"`
	OrderStatus   string      `json:"orderStatus" bson:"orderstatus"`
	CancelReason  string      `json:"cancelReason,omitempty" bson:"cancelreason,omitempty"`
	ReturnReason  string      `json:"returnReason,omitempty" bson:"returnreason,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}
