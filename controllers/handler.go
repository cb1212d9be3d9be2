package controllers

import (
	"errors"
	"net/http"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/services"
	"github.com/bellapacxx/squares-backend/utils/logger"
	"github.com/gin-gonic/gin"
)

// SessionHeader carries the session token on REST calls.
const SessionHeader = "X-Session-Token"

type Handler struct {
	games *services.GameService
	hub   *services.Hub
	live  *services.LiveScores
}

func NewHandler(games *services.GameService, hub *services.Hub, live *services.LiveScores) *Handler {
	return &Handler{games: games, hub: hub, live: live}
}

func session(c *gin.Context) string {
	return c.GetHeader(SessionHeader)
}

// respondError maps domain and storage errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case services.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotHost), errors.Is(err, game.ErrNotParticipant):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrNotReady), errors.Is(err, game.ErrNumbersNotRevealed):
		status = http.StatusConflict
	case errors.Is(err, game.ErrClaimNotFound), errors.Is(err, game.ErrUnknownParticipant):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrInvalidDistribution),
		errors.Is(err, game.ErrInvalidScore),
		errors.Is(err, game.ErrInvalidMode),
		errors.Is(err, game.ErrInvalidStatus),
		errors.Is(err, game.ErrInvalidPrice),
		errors.Is(err, game.ErrMissingName),
		errors.Is(err, game.ErrEstimateQuarterOnly):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logger.Errorf("[API] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// dispatch runs one command against the game in the path and answers with
// the updated view.
func (h *Handler) dispatch(c *gin.Context, cmd game.Command) {
	g, err := h.games.Dispatch(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.NewGameView(g))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
