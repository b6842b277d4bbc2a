package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"inkwell/db"
	"inkwell/live"
	"inkwell/models"
	"inkwell/mq"
	"inkwell/orders"
	"inkwell/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service maps gateway payment outcomes onto local order state.
type Service struct {
	gw     *Gateway
	secret []byte
	upiVPA string
}

func NewService(cfg Config) *Service {
	return &Service{
		gw:     NewGateway(cfg),
		secret: []byte(cfg.KeySecret),
		upiVPA: cfg.UPIVPA,
	}
}

type createPaymentRequest struct {
	Amount   float64            `json:"amount"`
	Currency string             `json:"currency"`
	Items    []models.OrderItem `json:"items"`
}

// POST /api/payments/create-order
// The gateway call happens first; the local order is persisted only once
// the intent exists, so a gateway failure leaves nothing behind.
func (s *Service) CreateGatewayOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.Amount <= 0 || len(input.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount and items are required")
		return
	}
	if input.Currency == "" {
		input.Currency = "INR"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	receipt := "rcpt_" + uuid.NewString()
	gwOrder, err := s.gw.CreateOrder(ctx, MinorUnits(input.Amount), input.Currency, receipt)
	if err != nil {
		log.Println("CreateGatewayOrder gateway error:", err)
		if errors.Is(err, ErrGateway) {
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment order")
		}
		return
	}

	order := orders.NewOrder(userID, input.Items, input.Amount, models.MethodRazorpay)
	order.PaymentID = gwOrder.ID

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateGatewayOrder insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	s.announce(order)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"id":           gwOrder.ID,
		"amount":       gwOrder.Amount,
		"currency":     gwOrder.Currency,
		"receipt":      receipt,
		"localOrderId": order.OrderID,
	})
}

type verifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	Signature        string `json:"razorpay_signature"`
	OrderID          string `json:"orderId"`
}

// POST /api/payments/verify
// A payment is marked completed only when the supplied signature matches
// the recomputed HMAC. Anything else marks it failed and returns 400.
func (s *Service) VerifyPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.GatewayOrderID == "" || input.GatewayPaymentID == "" || input.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing payment fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if !VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature, s.secret) {
		s.markPayment(ctx, input.OrderID, userID, models.PaymentFailed)
		utils.RespondWithError(w, http.StatusBadRequest, "Payment verification failed")
		return
	}

	order, err := s.markPayment(ctx, input.OrderID, userID, models.PaymentCompleted)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		log.Println("VerifyPayment update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update payment status")
		return
	}

	s.announce(*order)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Payment verified successfully",
		"order":   order,
	})
}

// markPayment flips paymentstatus on the owner's order while it is still
// pending. The pending precondition makes racing verifies single-shot.
func (s *Service) markPayment(ctx context.Context, orderID, userID, status string) (*models.Order, error) {
	filter := bson.M{
		"orderid":       orderID,
		"userid":        userID,
		"paymentstatus": models.PaymentPending,
	}
	update := bson.M{"$set": bson.M{
		"paymentstatus": status,
		"updated_at":    time.Now(),
	}}

	var order models.Order
	err := db.OrdersCollection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) announce(order models.Order) {
	event := models.OrderEvent{
		OrderID:       order.OrderID,
		UserID:        order.UserID,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
	}
	mq.Emit(context.Background(), event)
	live.BroadcastOrderEvent(event)
}
