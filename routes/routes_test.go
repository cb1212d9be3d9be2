package routes

import (
	"testing"

	"github.com/bellapacxx/squares-backend/controllers"
	"github.com/bellapacxx/squares-backend/game"
	"github.com/bellapacxx/squares-backend/repository"
	"github.com/bellapacxx/squares-backend/services"
	"github.com/gin-gonic/gin"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := services.NewHub()
	svc := services.NewGameService(repository.NewInMemoryRepository(), services.NewLocalNotifier(hub), game.DefaultOddsTable())

	r := gin.New()
	SetupRoutes(r, controllers.NewHandler(svc, hub, nil))

	registered := make(map[string]bool)
	for _, rt := range r.Routes() {
		registered[rt.Method+" "+rt.Path] = true
	}
	for _, want := range []string{
		"POST /api/games",
		"GET /api/games/:id",
		"POST /api/games/:id/participants",
		"POST /api/games/:id/claims",
		"POST /api/games/:id/claims/approve-all",
		"POST /api/games/:id/claims/:claimId/approve",
		"POST /api/games/:id/claims/:claimId/reject",
		"PUT /api/games/:id/boxes/:row/:col",
		"POST /api/games/:id/scores",
		"GET /api/games/:id/scores",
		"PUT /api/games/:id/status",
		"PUT /api/games/:id/instructions",
		"POST /api/games/:id/reveal",
		"GET /api/games/:id/payouts",
		"GET /api/games/:id/odds",
		"GET /api/games/:id/live-score",
		"GET /ws/games/:id",
	} {
		if !registered[want] {
			t.Errorf("route %s not registered", want)
		}
	}
}
