package controllers

import (
	"net/http"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/gin-gonic/gin"
)

func (h *Handler) RecordScore(c *gin.Context) {
	var snap game.ScoreSnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		badRequest(c, "invalid score")
		return
	}
	h.dispatch(c, game.RecordScore{Actor: session(c), Snapshot: snap})
}

// ListScores returns the ledger with each entry's resolved winner.
func (h *Handler) ListScores(c *gin.Context) {
	results, err := h.games.Scores(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) Payouts(c *gin.Context) {
	payouts, err := h.games.Payouts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payouts)
}

// Odds is the host's advisory win probability table.
func (h *Handler) Odds(c *gin.Context) {
	estimates, err := h.games.Estimate(c.Request.Context(), c.Param("id"), session(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimates)
}

// LiveScore answers from the poller's cache; it never blocks on the feed.
func (h *Handler) LiveScore(c *gin.Context) {
	g, err := h.games.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.live == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live scores are disabled"})
		return
	}
	c.JSON(http.StatusOK, h.live.Lookup(g.HomeTeam, g.AwayTeam))
}
