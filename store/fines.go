package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/boetepot/boetepot-backend/models"
)

// enrichedFines is the shared join for every fine read: fine columns plus
// the player's name and the reason's description, newest first.
func (s *Store) enrichedFines(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("fines").
		Select("fines.id, fines.player_id, players.name AS player_name, " +
			"fines.reason_id, reasons.description AS reason_description, " +
			"fines.amount_cents, fines.created_at").
		Joins("JOIN players ON players.id = fines.player_id").
		Joins("JOIN reasons ON reasons.id = fines.reason_id").
		Order("fines.created_at DESC, fines.id DESC")
}

// ListFines returns enriched fines, newest first. limit <= 0 means no limit.
func (s *Store) ListFines(ctx context.Context, limit int) ([]models.EnrichedFine, error) {
	q := s.enrichedFines(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}
	fines := make([]models.EnrichedFine, 0)
	if err := q.Scan(&fines).Error; err != nil {
		return nil, translate(err, nil)
	}
	return fines, nil
}

// AddFine inserts a fine after verifying both references inside a single
// transaction, so a client disconnect can never leave the checks and the
// insert half-applied. Returns the fine enriched with the player name and
// reason description.
func (s *Store) AddFine(ctx context.Context, playerID, reasonID uint, amount models.Cents) (*models.EnrichedFine, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	var enriched models.EnrichedFine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPlayerNotFound
			}
			return err
		}
		var reason models.Reason
		if err := tx.First(&reason, reasonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrReasonNotFound
			}
			return err
		}

		fine := models.Fine{PlayerID: playerID, ReasonID: reasonID, AmountCents: amount}
		if err := tx.Create(&fine).Error; err != nil {
			return err
		}

		enriched = models.EnrichedFine{
			ID:                fine.ID,
			PlayerID:          player.ID,
			PlayerName:        player.Name,
			ReasonID:          reason.ID,
			ReasonDescription: reason.Description,
			AmountCents:       fine.AmountCents,
			CreatedAt:         fine.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrPlayerNotFound) || errors.Is(err, models.ErrReasonNotFound) {
			return nil, err
		}
		return nil, translate(err, nil)
	}
	return &enriched, nil
}

// DeleteFine removes one fine and returns it (enriched) for auditing and
// the live feed. A missing fine is ErrFineNotFound.
func (s *Store) DeleteFine(ctx context.Context, fineID uint) (*models.EnrichedFine, error) {
	var deleted models.EnrichedFine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fine models.Fine
		if err := tx.First(&fine, fineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrFineNotFound
			}
			return err
		}
		var player models.Player
		if err := tx.First(&player, fine.PlayerID).Error; err != nil {
			return err
		}
		var reason models.Reason
		if err := tx.First(&reason, fine.ReasonID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Fine{}, fineID).Error; err != nil {
			return err
		}

		deleted = models.EnrichedFine{
			ID:                fine.ID,
			PlayerID:          player.ID,
			PlayerName:        player.Name,
			ReasonID:          reason.ID,
			ReasonDescription: reason.Description,
			AmountCents:       fine.AmountCents,
			CreatedAt:         fine.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrFineNotFound) {
			return nil, err
		}
		return nil, translate(err, nil)
	}
	return &deleted, nil
}

// TotalFines returns the exact sum of all fine amounts, zero when there are
// none.
func (s *Store) TotalFines(ctx context.Context) (models.Cents, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Table("fines").
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, translate(err, nil)
	}
	return models.Cents(total), nil
}
