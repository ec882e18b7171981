package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAudit returns the most recent admin actions, newest first.
func (a *API) ListAudit(c *gin.Context) {
	entries, err := a.Store.RecentAudit(c.Request.Context(), limitQuery(c, 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
