package models

import "time"

type Reason struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"uniqueIndex;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
