package controllers

import (
	"strconv"

	"github.com/bellapacxx/squares-backend/game"
	"github.com/gin-gonic/gin"
)

type cellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

func (h *Handler) SubmitClaim(c *gin.Context) {
	var req cellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "row and col are required")
		return
	}
	h.dispatch(c, game.SubmitClaim{Actor: session(c), Row: *req.Row, Col: *req.Col})
}

func (h *Handler) ApproveClaim(c *gin.Context) {
	h.dispatch(c, game.ApproveClaim{Actor: session(c), ClaimID: c.Param("claimId")})
}

func (h *Handler) ApproveAllClaims(c *gin.Context) {
	h.dispatch(c, game.ApproveAllClaims{Actor: session(c)})
}

func (h *Handler) RejectClaim(c *gin.Context) {
	h.dispatch(c, game.RejectClaim{Actor: session(c), ClaimID: c.Param("claimId")})
}

// AssignBox sets or clears a cell owner directly. An empty participantId
// clears the cell.
func (h *Handler) AssignBox(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		badRequest(c, "invalid row")
		return
	}
	col, err := strconv.Atoi(c.Param("col"))
	if err != nil {
		badRequest(c, "invalid col")
		return
	}
	var req struct {
		ParticipantID string `json:"participantId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	h.dispatch(c, game.AssignOwner{Actor: session(c), Row: row, Col: col, ParticipantID: req.ParticipantID})
}
