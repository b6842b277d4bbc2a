package orders

import (
	"context"
	"errors"
	"time"

	"inkwell/db"
	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrForbidden    = errors.New("not authorized for this order")
	ErrInvalidState = errors.New("order is not in a state that allows this")
)

// CanCancel reports whether an order in the given status may be cancelled.
// Delivered orders go through the return path instead; cancelled orders
// stay cancelled.
func CanCancel(status string) bool {
	return status != models.StatusDelivered && status != models.StatusCancelled
}

// CanReturn reports whether an order in the given status may be returned.
// Only delivered orders qualify.
func CanReturn(status string) bool {
	return status == models.StatusDelivered
}

// NewOrder builds an order record entering the lifecycle at confirmed with
// payment pending. Items are stored as-is: they are the immutable snapshot.
func NewOrder(userID string, items []models.OrderItem, amount float64, method string) models.Order {
	now := time.Now()
	return models.Order{
		OrderID:       "o" + utils.GenerateRandomString(12),
		UserID:        userID,
		Items:         items,
		TotalAmount:   amount,
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.StatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Cancel applies the confirmed/shipped -> cancelled transition. The status
// guard is part of the update filter, so two racing cancels cannot both
// succeed: the loser's filter no longer matches and it reports ErrInvalidState.
func Cancel(ctx context.Context, orderID, userID, reason string) (*models.Order, error) {
	var existing models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	set := bson.M{
		"orderstatus": models.StatusCancelled,
		"updated_at":  time.Now(),
	}
	if reason != "" {
		set["cancelreason"] = reason
	}

	filter := bson.M{
		"orderid":     orderID,
		"userid":      userID,
		"orderstatus": bson.M{"$nin": bson.A{models.StatusDelivered, models.StatusCancelled}},
	}

	var updated models.Order
	err = db.OrdersCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidState
	} else if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Return applies the delivered -> returned transition, same conditional
// update shape as Cancel with an exact-status guard.
func Return(ctx context.Context, orderID, userID, reason string) (*models.Order, error) {
	var existing models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	set := bson.M{
		"orderstatus": models.StatusReturned,
		"updated_at":  time.Now(),
	}
	if reason != "" {
		set["returnreason"] = reason
	}

	filter := bson.M{
		"orderid":     orderID,
		"userid":      userID,
		"orderstatus": models.StatusDelivered,
	}

	var updated models.Order
	err = db.OrdersCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidState
	} else if err != nil {
		return nil, err
	}

	return &updated, nil
}

// ListByUser returns the user's orders, newest first.
func ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{"userid": userID},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
