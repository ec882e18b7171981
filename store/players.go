package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/boetepot/boetepot-backend/models"
)

// ListPlayers returns all players ordered by name.
func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	err := s.db.WithContext(ctx).Order("name ASC").Find(&players).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return players, nil
}

// AddPlayer creates a player. Duplicate names fail with ErrDuplicateName.
func (s *Store) AddPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrInvalidName
	}
	player := models.Player{Name: name}
	if err := s.db.WithContext(ctx).Create(&player).Error; err != nil {
		return nil, translate(err, models.ErrDuplicateName)
	}
	return &player, nil
}

// PlayerTotals is the leaderboard source: every player with the sum and
// count of their fines, ordered by total descending with a deterministic
// name-ascending tie-break. Players without fines appear with a zero total.
func (s *Store) PlayerTotals(ctx context.Context, limit int) ([]models.PlayerTotal, error) {
	q := s.db.WithContext(ctx).
		Table("players").
		Select("players.id AS player_id, players.name AS name, " +
			"COALESCE(SUM(fines.amount_cents), 0) AS total_cents, " +
			"COUNT(fines.id) AS fine_count").
		Joins("LEFT JOIN fines ON fines.player_id = players.id").
		Group("players.id, players.name").
		Order("total_cents DESC, players.name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var totals []models.PlayerTotal
	if err := q.Scan(&totals).Error; err != nil {
		return nil, translate(err, nil)
	}
	return totals, nil
}

// PlayerHistory returns one player's fines, newest first. A player without
// fines yields an empty slice; an absent player is ErrPlayerNotFound.
func (s *Store) PlayerHistory(ctx context.Context, playerID uint) ([]models.EnrichedFine, error) {
	var player models.Player
	err := s.db.WithContext(ctx).First(&player, playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPlayerNotFound
		}
		return nil, translate(err, nil)
	}

	fines := make([]models.EnrichedFine, 0)
	err = s.enrichedFines(ctx).
		Where("fines.player_id = ?", playerID).
		Scan(&fines).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return fines, nil
}
