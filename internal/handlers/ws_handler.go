package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/uprisingink/studio-api/internal/middleware"
	"github.com/uprisingink/studio-api/internal/realtime"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Portals are served from other origins; auth happens via JWT.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve upgrades the request and parks it in the hub. The auth middleware
// has already validated the token (header or ?token= query param).
func (h *WSHandler) Serve(c *gin.Context) {
	profileID := c.GetString(middleware.ContextProfileID)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.ServeWS(conn, profileID)
}
