package handler

import (
	"net/http"
	"strings"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/httputils"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/ws"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type WSHandler struct {
	hub      *ws.Hub
	relay    ws.Relay
	upgrader *websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, relay ws.Relay, upgrader *websocket.Upgrader) *WSHandler {
	return &WSHandler{hub: hub, relay: relay, upgrader: upgrader}
}

func (h *WSHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/ws", h.serveWS).Methods("GET")
}

// serveWS upgrades the connection and binds it to the username from the
// query. The connection lives for the session, logout is just a disconnect.
func (h *WSHandler) serveWS(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		httputils.ResponseError(w, http.StatusBadRequest, "username query parameter is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws: upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn, username, h.relay)
	client.Start()
}
