package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrBlogNotFound = errors.New("blog post not found")

// Blog is an article on the public site. Unpublished posts are only
// visible through the admin endpoints.
type Blog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Slug        string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt     string         `gorm:"size:512" json:"excerpt"`
	Content     string         `gorm:"type:text" json:"content"`
	CoverURL    string         `gorm:"size:512" json:"cover_url"`
	Author      string         `gorm:"size:120" json:"author"`
	Published   bool           `gorm:"not null;default:false" json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedBy   uint           `json:"created_by"`
	UpdatedBy   uint           `json:"updated_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Blog) TableName() string {
	return "blogs"
}
