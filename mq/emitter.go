package mq

import (
	"context"
	"encoding/json"
	"log"

	"inkwell/models"
	"inkwell/rdx"
)

const orderEventsChannel = "order-events"

// Emit publishes an order event to Redis for any interested subscriber.
// Publish failures are logged, never surfaced to the request path.
func Emit(ctx context.Context, event models.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, orderEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish order event: %v", err)
	}
}

// StartOrderEventWorker subscribes to the order-events channel and hands
// each event to sink. Runs until the process exits.
func StartOrderEventWorker(sink func(models.OrderEvent)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, orderEventsChannel)
	ch := sub.Channel()

	log.Println("[OrderEventWorker] Listening for order events...")

	for msg := range ch {
		var event models.OrderEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[OrderEventWorker] Failed to parse event: %v", err)
			continue
		}
		sink(event)
	}
}
