package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// NewUpgrader builds the connection upgrader for the given environment.
// Development accepts any origin, everything else is same-origin only.
func NewUpgrader(env string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if env == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			return origin == "http://"+r.Host || origin == "https://"+r.Host
		},
	}
}
