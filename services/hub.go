package services

import (
	"encoding/json"
	"sync"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/utils/logger"
	"github.com/gorilla/websocket"
)

// Hub fans full game snapshots out to every subscriber of that game.
type Hub struct {
	mu    sync.RWMutex
	games map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{games: make(map[string]map[*Client]struct{})}
}

// Serve registers conn as a subscriber of g, queues the current snapshot and
// starts the client pumps.
func (h *Hub) Serve(conn *websocket.Conn, g game.State) {
	c := &Client{
		gameID: g.ID,
		conn:   conn,
		hub:    h,
		send:   make(chan []byte, sendBuffer),
	}

	msg, err := encodeGame(g)
	if err != nil {
		logger.Errorf("[Game %s] failed to encode snapshot: %v", g.ID, err)
		conn.Close()
		return
	}
	c.send <- msg

	h.mu.Lock()
	if h.games[g.ID] == nil {
		h.games[g.ID] = make(map[*Client]struct{})
	}
	h.games[g.ID][c] = struct{}{}
	total := len(h.games[g.ID])
	h.mu.Unlock()

	logger.Infof("[Game %s] subscriber joined (total=%d)", g.ID, total)
	go c.writePump()
	go c.readPump()
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	if subs, ok := h.games[c.gameID]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.games, c.gameID)
		}
	}
	h.mu.Unlock()
	c.Close()
}

// Subscribers returns how many clients watch a game.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Publish pushes the latest state of g to its subscribers.
func (h *Hub) Publish(g game.State) {
	msg, err := encodeGame(g)
	if err != nil {
		logger.Errorf("[Game %s] failed to encode snapshot: %v", g.ID, err)
		return
	}
	h.broadcast(g.ID, msg)
}

func (h *Hub) broadcast(gameID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.games[gameID] {
		select {
		case c.send <- msg:
		default:
			logger.Warnf("[Game %s] dropping snapshot for slow subscriber", gameID)
		}
	}
}

func encodeGame(g game.State) ([]byte, error) {
	return json.Marshal(Event{Type: "game", Data: NewGameView(g)})
}
