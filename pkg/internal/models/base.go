package models

import "time"

// BaseModel is the embedded identity of every persisted record.
// There is no soft-delete column on purpose: deletion in this system is hard deletion.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
