package controllers

import (
	"net/http"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateGame opens a new game and hands the creator the host session.
func (h *Handler) CreateGame(c *gin.Context) {
	var req services.CreateGameParams
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Mode == "" {
		req.Mode = game.ModeQuarter
	}

	g, sess, err := h.games.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"game": services.NewGameView(g), "session": sess})
}

func (h *Handler) GetGame(c *gin.Context) {
	g, err := h.games.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewGameView(g))
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req struct {
		Status game.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}
	h.dispatch(c, game.SetStatus{Actor: session(c), Status: req.Status})
}

func (h *Handler) SetInstructions(c *gin.Context) {
	var req struct {
		Instructions string `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	h.dispatch(c, game.SetInstructions{Actor: session(c), Instructions: req.Instructions})
}

// RevealNumbers draws the axis digits once the grid is full.
func (h *Handler) RevealNumbers(c *gin.Context) {
	h.dispatch(c, game.RevealNumbers{Actor: session(c)})
}
