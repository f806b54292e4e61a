package models

import (
	"time"
)

// Post represents a blog post. The slug is derived from the title on every
// write that changes the title and is never editable on its own.
type Post struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	IsPublished   bool       `gorm:"not null;default:false" json:"is_published"`
	// PublishedAt is set once, on the first unpublished->published transition.
	PublishedAt *time.Time `json:"published_at"`
	// Views is only ever incremented with an atomic SQL update.
	Views      int64          `gorm:"not null;default:0" json:"views"`
	AuthorID   uint           `gorm:"not null;index" json:"author_id"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"author"`
	Categories []PostCategory `gorm:"foreignKey:PostID" json:"-"`
	Comments   []Comment      `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// PostCategory is an explicit row of the post<->category association table.
// Keeping the join rows first-class makes association cleanup on delete a
// tested contract instead of ORM magic.
type PostCategory struct {
	PostID     uint     `gorm:"primaryKey" json:"post_id"`
	CategoryID uint     `gorm:"primaryKey" json:"category_id"`
	Post       *Post    `gorm:"foreignKey:PostID" json:"-"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// TableName pins the join table name shared with the Category side.
func (PostCategory) TableName() string {
	return "post_categories"
}
