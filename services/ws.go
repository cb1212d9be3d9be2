package services

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Game snapshots are public to anyone holding the link, so any origin may
// subscribe.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Upgrade switches an HTTP request to a websocket connection. On failure the
// upgrader has already written an HTTP error.
func Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return upgrader.Upgrade(w, r, nil)
}
