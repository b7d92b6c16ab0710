package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewers are unauthenticated displays on the local network.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeViewer upgrades the connection and attaches it to the hub.
func ServeViewer(hub *ViewerHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("viewer ws upgrade: %v", err)
			return
		}
		client := newViewerClient(hub, conn)
		hub.register <- client
		go client.writePump()
		client.readPump()
	}
}
