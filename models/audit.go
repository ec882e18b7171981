package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one admin mutation with its JSON payload.
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Action    string         `gorm:"not null;index" json:"action"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
