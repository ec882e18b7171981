package models

import "time"

// AdminCredential is the single shared secret gating admin routes. Exactly
// one row is expected; it is seeded once at initialization and never
// recreated if present. The hash is bcrypt, never plaintext.
type AdminCredential struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
