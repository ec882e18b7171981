package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/auth"
	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/services"
	"github.com/boetepot/boetepot-backend/store"
	"github.com/boetepot/boetepot-backend/utils/logger"
)

// API bundles the handlers' dependencies. Handlers are methods (or handler
// factories) on it so nothing reaches for globals.
type API struct {
	Store *store.Store
	Auth  *auth.Service
	Feed  *services.Feed
}

func New(st *store.Store, authService *auth.Service, feed *services.Feed) *API {
	return &API{Store: st, Auth: authService, Feed: feed}
}

// Health reports API and database status.
func (a *API) Health(c *gin.Context) {
	if err := a.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "timestamp": time.Now()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
}

// respondError maps a domain error onto an HTTP status and a user-facing
// message. Unknown errors are logged and masked as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidName),
		errors.Is(err, models.ErrInvalidReason),
		errors.Is(err, models.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPlayerNotFound),
		errors.Is(err, models.ErrReasonNotFound),
		errors.Is(err, models.ErrFineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateName),
		errors.Is(err, models.ErrDuplicateReason):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unavailable"})
	default:
		logger.Errorf("unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// audit records an admin mutation. Failures are logged, never surfaced: the
// mutation itself already succeeded.
func (a *API) audit(c *gin.Context, action string, payload any) {
	if err := a.Store.RecordAudit(c.Request.Context(), action, payload); err != nil {
		logger.Warnf("audit %s failed: %v", action, err)
	}
}
