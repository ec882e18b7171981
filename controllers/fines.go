package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/services"
)

const defaultRecentLimit = 5

type createFineRequest struct {
	PlayerID uint         `json:"player_id" binding:"required"`
	ReasonID uint         `json:"reason_id" binding:"required"`
	Amount   models.Cents `json:"amount"`
}

// ListFines returns all fines enriched with player name and reason
// description, newest first. An optional ?limit= caps the result.
func (a *API) ListFines(c *gin.Context) {
	fines, err := a.Store.ListFines(c.Request.Context(), limitQuery(c, 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fines)
}

// RecentFines returns the newest fines, default 5.
func (a *API) RecentFines(c *gin.Context) {
	fines, err := a.Store.ListFines(c.Request.Context(), limitQuery(c, defaultRecentLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fines)
}

// CreateFine records a fine for a player.
func (a *API) CreateFine(c *gin.Context) {
	var req createFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fine, err := a.Store.AddFine(c.Request.Context(), req.PlayerID, req.ReasonID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	a.audit(c, "fine.create", fine)
	a.Feed.Broadcast(services.Event{Type: services.EventFineCreated, Fine: fine})
	c.JSON(http.StatusCreated, fine)
}

// DeleteFine removes a single fine by id.
func (a *API) DeleteFine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fine id"})
		return
	}

	fine, err := a.Store.DeleteFine(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	a.audit(c, "fine.delete", fine)
	a.Feed.Broadcast(services.Event{Type: services.EventFineDeleted, Fine: fine})
	c.JSON(http.StatusOK, gin.H{"message": "Fine deleted"})
}

// TotalAmount returns the sum of all fines, 0.00 when there are none.
func (a *API) TotalAmount(c *gin.Context) {
	total, err := a.Store.TotalFines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// Leaderboard returns players ranked by total fined amount descending,
// name ascending on ties. Optional ?limit= returns only the top N.
func (a *API) Leaderboard(c *gin.Context) {
	totals, err := a.Store.PlayerTotals(c.Request.Context(), limitQuery(c, 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// PlayerHistory returns one player's fines (?id=), newest first.
func (a *API) PlayerHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing player id"})
		return
	}

	fines, err := a.Store.PlayerHistory(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fines)
}

// Reset wipes all fines and reasons and every player but the reserved
// sentinel.
func (a *API) Reset(c *gin.Context) {
	if err := a.Store.ResetAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	a.audit(c, "pot.reset", gin.H{})
	a.Feed.Broadcast(services.Event{Type: services.EventReset})
	c.JSON(http.StatusOK, gin.H{"message": "Pot reset"})
}

// limitQuery reads ?limit=, falling back when absent or invalid. Results
// are capped at 100.
func limitQuery(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > 100 {
		return 100
	}
	return limit
}
