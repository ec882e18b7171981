package models

import "time"

// AdminSentinelName is the reserved player name that survives a full reset.
const AdminSentinelName = "Admin"

type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
