package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/models"
)

type createReasonRequest struct {
	Description string `json:"description" binding:"required"`
}

// ListReasons returns all reasons, description ascending.
func (a *API) ListReasons() gin.HandlerFunc {
	return listHandler(a.Store.ListReasons)
}

// CreateReason registers a new fine reason.
func (a *API) CreateReason() gin.HandlerFunc {
	return createHandler(a, "reason.create", func(ctx context.Context, req createReasonRequest) (*models.Reason, error) {
		return a.Store.AddReason(ctx, req.Description)
	})
}
