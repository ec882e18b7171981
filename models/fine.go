package models

import "time"

// Fine links a player to a reason with a fixed amount. Fines are immutable
// after insert; they can only be deleted.
type Fine struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PlayerID    uint      `gorm:"not null;index" json:"player_id"`
	ReasonID    uint      `gorm:"not null;index" json:"reason_id"`
	AmountCents Cents     `gorm:"not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`

	Player Player `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Reason Reason `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

// EnrichedFine is a fine joined with the player's name and the reason's
// description. It is a read-side view for display, never persisted.
type EnrichedFine struct {
	ID                uint      `json:"id"`
	PlayerID          uint      `json:"player_id"`
	PlayerName        string    `json:"player_name"`
	ReasonID          uint      `json:"reason_id"`
	ReasonDescription string    `json:"reason_description"`
	AmountCents       Cents     `gorm:"column:amount_cents" json:"amount"`
	CreatedAt         time.Time `json:"created_at"`
}

// PlayerTotal is one leaderboard row: a player with the sum and count of
// their fines.
type PlayerTotal struct {
	PlayerID   uint   `json:"player_id"`
	Name       string `json:"name"`
	TotalCents Cents  `gorm:"column:total_cents" json:"total"`
	FineCount  int64  `json:"fine_count"`
}
