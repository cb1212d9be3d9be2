package controllers

import (
	"net/http"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/services"
	"github.com/gin-gonic/gin"
)

// AddParticipant either joins the caller (no session yet) or, for the host,
// adds a named participant who has no device of their own.
func (h *Handler) AddParticipant(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	actor := session(c)
	if actor == "" {
		g, sess, err := h.games.Join(c.Request.Context(), c.Param("id"), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"game": services.NewGameView(g), "session": sess})
		return
	}
	h.dispatch(c, game.AddParticipant{Actor: actor, Name: req.Name})
}
