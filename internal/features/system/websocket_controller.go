package system

import (
	"log"

	"github.com/gofiber/contrib/websocket"
)

type WebSocketController struct {
	broadcaster *RunBroadcaster
}

func NewWebSocketController(broadcaster *RunBroadcaster) *WebSocketController {
	return &WebSocketController{
		broadcaster: broadcaster,
	}
}

// HandleRunStream pushes every automation run outcome to the connected
// client until the connection drops.
func (h *WebSocketController) HandleRunStream(c *websocket.Conn) {
	ch := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(ch)

	for entry := range ch {
		if err := c.WriteJSON(entry); err != nil {
			log.Println("write:", err)
			break
		}
	}
}
