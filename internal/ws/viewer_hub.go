package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// ViewerHub fans a short "screens_updated" ping out to every connected
// viewer after a screen-affecting mutation, so viewers re-poll immediately
// instead of waiting out their interval. The pull-based change feed stays
// authoritative; a viewer that never connects here just polls.
type ViewerHub struct {
	register   chan *viewerClient
	unregister chan *viewerClient
	broadcast  chan []byte
	clients    map[*viewerClient]struct{}
}

type ViewerMessage struct {
	Type string `json:"type"`
}

func NewViewerHub() *ViewerHub {
	return &ViewerHub{
		register:   make(chan *viewerClient),
		unregister: make(chan *viewerClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*viewerClient]struct{}),
	}
}

func (h *ViewerHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					client.conn.Close()
					delete(h.clients, client)
				}
			}
		}
	}
}

// NotifyScreensUpdated queues a ping for every connected viewer. Dropping
// the message when the hub is saturated is fine; viewers poll anyway.
func (h *ViewerHub) NotifyScreensUpdated() {
	if h == nil {
		return
	}
	data, err := json.Marshal(ViewerMessage{Type: "screens_updated"})
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	default:
	}
}

type viewerClient struct {
	hub  *ViewerHub
	conn *websocket.Conn
	send chan []byte
}

func newViewerClient(hub *ViewerHub, conn *websocket.Conn) *viewerClient {
	return &viewerClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 64),
	}
}

func (c *viewerClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *viewerClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
