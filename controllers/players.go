package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/models"
)

type createPlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListPlayers returns all players, name ascending.
func (a *API) ListPlayers() gin.HandlerFunc {
	return listHandler(a.Store.ListPlayers)
}

// CreatePlayer registers a new player.
func (a *API) CreatePlayer() gin.HandlerFunc {
	return createHandler(a, "player.create", func(ctx context.Context, req createPlayerRequest) (*models.Player, error) {
		return a.Store.AddPlayer(ctx, req.Name)
	})
}
