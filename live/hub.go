package live

import (
	"encoding/json"
	"log"

	"inkwell/models"
)

// Client is one websocket subscriber. Room is the owning user's id, so a
// user watching from two tabs gets the same feed on both.
type Client struct {
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.rooms[client.Room] == nil {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true

		case client := <-h.unregister:
			if clients, ok := h.rooms[client.Room]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.rooms, client.Room)
					}
				}
			}

		case msg := <-h.broadcast:
			for client := range h.rooms[msg.Room] {
				select {
				case client.Send <- msg.Data:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.rooms[msg.Room], client)
					close(client.Send)
				}
			}

		case <-h.done:
			for room, clients := range h.rooms {
				for client := range clients {
					close(client.Send)
				}
				delete(h.rooms, room)
			}
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// defaultHub serves the order feed; order mutations publish into it.
var defaultHub = NewHub()

func StartHub() {
	go defaultHub.Run()
}

// BroadcastOrderEvent pushes a status change to the owning user's feed.
func BroadcastOrderEvent(event models.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("BroadcastOrderEvent marshal error: %v", err)
		return
	}
	select {
	case defaultHub.broadcast <- broadcastMsg{Room: event.UserID, Data: data}:
	default:
		log.Printf("Warning: order feed is full. Dropping update for user %s.", event.UserID)
	}
}
