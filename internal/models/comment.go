package models

import (
	"time"
)

// Comment represents a comment on a post. Only approved comments are listed
// publicly; comments are approved by default.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsApproved bool      `gorm:"not null;default:true" json:"is_approved"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author"`
	Post       *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
