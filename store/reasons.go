package store

import (
	"context"
	"strings"

	"github.com/boetepot/boetepot-backend/models"
)

// ListReasons returns all reasons ordered by description.
func (s *Store) ListReasons(ctx context.Context) ([]models.Reason, error) {
	var reasons []models.Reason
	err := s.db.WithContext(ctx).Order("description ASC").Find(&reasons).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return reasons, nil
}

// AddReason creates a reason. Duplicate descriptions fail with
// ErrDuplicateReason.
func (s *Store) AddReason(ctx context.Context, description string) (*models.Reason, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, models.ErrInvalidReason
	}
	reason := models.Reason{Description: description}
	if err := s.db.WithContext(ctx).Create(&reason).Error; err != nil {
		return nil, translate(err, models.ErrDuplicateReason)
	}
	return &reason, nil
}
