package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text     string `json:"text"`
	Language string `json:"language"`

	// Image is a reference into the external media store, never the bytes themselves.
	Image       *string                     `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	EditedAt *time.Time `json:"edited_at"`

	// Group is optional; deleting a group detaches its posts instead of removing them.
	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`

	TotalViews int64 `json:"total_views"`
}

type PostView struct {
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
