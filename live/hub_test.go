package live

import (
	"encoding/json"
	"testing"
	"time"

	"inkwell/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "u123",
	}

	hub.register <- client

	event := models.OrderEvent{OrderID: "o1", UserID: "u123", OrderStatus: "cancelled", PaymentStatus: "pending"}
	data, _ := json.Marshal(event)
	hub.broadcast <- broadcastMsg{Room: "u123", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubDoesNotCrossRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), Room: "u1"}
	other := &Client{Send: make(chan []byte, 10), Room: "u2"}
	hub.register <- mine
	hub.register <- other

	hub.broadcast <- broadcastMsg{Room: "u1", Data: []byte(`{"orderId":"o1"}`)}

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message in own room")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("message leaked to another user's room: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
