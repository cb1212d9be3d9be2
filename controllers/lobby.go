package controllers

import (
	"github.com/bellapacxx/squares-backend/services"
	"github.com/bellapacxx/squares-backend/utils/logger"
	"github.com/gin-gonic/gin"
)

// GameWebSocket subscribes the caller to every change of one game. The
// current snapshot is sent first.
func (h *Handler) GameWebSocket(c *gin.Context) {
	g, err := h.games.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := services.Upgrade(c.Writer, c.Request)
	if err != nil {
		logger.Warnf("[Game %s] websocket upgrade failed: %v", g.ID, err)
		return
	}
	if sess := c.Query("session"); sess != "" {
		logger.Debugf("[Game %s] session %s subscribed", g.ID, sess)
	}
	h.hub.Serve(conn, g)
}
