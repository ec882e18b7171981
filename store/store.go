package store

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/boetepot/boetepot-backend/models"
)

// Store is the data access layer. It is stateless: every call goes straight
// to the pooled database handle and translates driver errors into the domain
// error set in models.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.ErrStoreUnavailable
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return models.ErrStoreUnavailable
	}
	return nil
}

// RecordAudit appends an audit log row for an admin mutation. Payload is
// marshalled to JSON as-is.
func (s *Store) RecordAudit(ctx context.Context, action string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}
	entry := models.AuditLog{Action: action, Payload: datatypes.JSON(raw)}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return translate(err, nil)
	}
	return nil
}

// RecentAudit returns the latest audit entries, newest first.
func (s *Store) RecentAudit(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.AuditLog
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return entries, nil
}

// AdminCredential returns the single stored admin credential row, or
// ErrCredentialNotFound when it was never seeded.
func (s *Store) AdminCredential(ctx context.Context) (*models.AdminCredential, error) {
	var cred models.AdminCredential
	err := s.db.WithContext(ctx).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCredentialNotFound
		}
		return nil, translate(err, nil)
	}
	return &cred, nil
}

// ResetAll wipes the pot: all fines, then all reasons, then all players
// except the reserved sentinel. The order respects the foreign keys and the
// whole thing runs in one transaction.
func (s *Store) ResetAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Fine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Reason{}).Error; err != nil {
			return err
		}
		return tx.Where("name <> ?", models.AdminSentinelName).
			Delete(&models.Player{}).Error
	})
	if err != nil {
		return translate(err, nil)
	}
	return nil
}

// translate maps driver errors onto the domain error set. Unique violations
// become dup (when given); timeouts, cancellation and connectivity failures
// surface as ErrStoreUnavailable; anything else is wrapped so the caller can
// log it without exposing it.
func translate(err error, dup error) error {
	switch {
	case err == nil:
		return nil
	case dup != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return dup
	case isUnavailable(err):
		return models.ErrStoreUnavailable
	default:
		return fmt.Errorf("store: %w", err)
	}
}

// isUnavailable reports whether err means the database cannot be reached at
// all, as opposed to a statement-level failure.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// database/sql reports a closed pool with a plain error value it does
	// not export
	return strings.Contains(err.Error(), "database is closed")
}
