package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"inkwell/db"
	"inkwell/live"
	"inkwell/models"
	"inkwell/mq"
	"inkwell/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/orders
func GetUserOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orderList, err := ListByUser(r.Context(), userID)
	if err != nil {
		log.Println("GetUserOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, orderList)
}

type createOrderRequest struct {
	Amount        float64            `json:"amount"`
	Items         []models.OrderItem `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
}

// POST /api/orders/create-cod
// Also covers manual UPI: both paths persist the order immediately with
// payment pending and no gateway involvement.
func CreateCODOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.Amount <= 0 || len(input.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount and items are required")
		return
	}

	method := input.PaymentMethod
	switch method {
	case "":
		method = models.MethodCOD
	case models.MethodCOD, models.MethodUPI:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported payment method")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order := NewOrder(userID, input.Items, input.Amount, method)
	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateCODOrder insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	announce(order)

	message := "Order placed successfully with Cash on Delivery"
	if method == models.MethodUPI {
		message = "Order placed successfully, awaiting UPI payment"
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": message,
		"order":   order,
	})
}

// PUT /api/orders/:orderid/cancel
func CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	mutateOrder(w, r, ps, Cancel)
}

// PUT /api/orders/:orderid/return
func ReturnOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	mutateOrder(w, r, ps, Return)
}

func mutateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params,
	apply func(context.Context, string, string, string) (*models.Order, error)) {

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID := ps.ByName("orderid")

	var body struct {
		Reason string `json:"reason"`
	}
	// An empty body means no reason; that's fine.
	_ = json.NewDecoder(r.Body).Decode(&body)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := apply(ctx, orderID, userID, body.Reason)
	switch {
	case err == ErrNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	case err == ErrForbidden:
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized for this order")
		return
	case err == ErrInvalidState:
		utils.RespondWithError(w, http.StatusBadRequest, "Order cannot be updated in its current state")
		return
	case err != nil:
		log.Println("Order mutation error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	announce(*order)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// announce fans out a status change to the event channel and the live feed.
func announce(order models.Order) {
	event := models.OrderEvent{
		OrderID:       order.OrderID,
		UserID:        order.UserID,
		OrderStatus:   order.OrderStatus,
		PaymentStatus: order.PaymentStatus,
	}
	mq.Emit(context.Background(), event)
	live.BroadcastOrderEvent(event)
}
