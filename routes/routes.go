package routes

import (
	"github.com/bellapacxx/squares-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *controllers.Handler) {
	api := r.Group("/api")

	// ----------------------
	// Game routes
	// ----------------------
	api.POST("/games", h.CreateGame)
	api.GET("/games/:id", h.GetGame)
	api.PUT("/games/:id/status", h.SetStatus)
	api.PUT("/games/:id/instructions", h.SetInstructions)
	api.POST("/games/:id/reveal", h.RevealNumbers)
	api.POST("/games/:id/participants", h.AddParticipant)

	// ----------------------
	// Box routes
	// ----------------------
	api.POST("/games/:id/claims", h.SubmitClaim)
	api.POST("/games/:id/claims/approve-all", h.ApproveAllClaims)
	api.POST("/games/:id/claims/:claimId/approve", h.ApproveClaim)
	api.POST("/games/:id/claims/:claimId/reject", h.RejectClaim)
	api.PUT("/games/:id/boxes/:row/:col", h.AssignBox)

	// ----------------------
	// Score & payout routes
	// ----------------------
	api.POST("/games/:id/scores", h.RecordScore)
	api.GET("/games/:id/scores", h.ListScores)
	api.GET("/games/:id/payouts", h.Payouts)
	api.GET("/games/:id/odds", h.Odds)
	api.GET("/games/:id/live-score", h.LiveScore)

	// WebSocket subscription
	r.GET("/ws/games/:id", h.GameWebSocket)
}
