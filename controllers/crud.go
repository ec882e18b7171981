package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Players and reasons expose the same list/create shape, so both are served
// by these two generic handler factories instead of near-identical
// per-entity handlers.

func listHandler[T any](list func(ctx context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := list(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func createHandler[Req, T any](a *API, action string, create func(ctx context.Context, req Req) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		a.audit(c, action, item)
		c.JSON(http.StatusCreated, item)
	}
}
