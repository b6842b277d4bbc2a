package live

import (
	"log"
	"net/http"
	"time"

	"inkwell/middleware"
	"inkwell/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced at the HTTP layer
	},
}

const writeWait = 10 * time.Second

// GET /ws/orders — streams order status changes for the authenticated user.
func OrderFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		// Browsers cannot set Authorization on websocket upgrades,
		// so also accept the JWT as a query parameter.
		if token := r.URL.Query().Get("token"); token != "" {
			if claims, err := middleware.ValidateJWT("Bearer " + token); err == nil {
				userID = claims.UserID
			}
		}
	}
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("OrderFeed upgrade error:", err)
		return
	}

	client := &Client{
		Send: make(chan []byte, 16),
		Room: userID,
	}
	defaultHub.register <- client

	// Reader: we only care about the close frame.
	go func() {
		defer func() {
			defaultHub.unregister <- client
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer
	go func() {
		defer conn.Close()
		for msg := range client.Send {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
		conn.WriteMessage(websocket.CloseMessage, []byte{})
	}()
}
