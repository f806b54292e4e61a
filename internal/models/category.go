package models

import (
	"time"
)

// Category is a shared taxonomy entry. Categories have no owner; any
// authenticated user may manage them.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `json:"description"`
	Color       string         `json:"color"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Posts       []PostCategory `gorm:"foreignKey:CategoryID" json:"-"`
}
