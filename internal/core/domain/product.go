package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable item presented on the public site.
type Product struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CategoryID       uint           `gorm:"not null;index" json:"category_id"`
	Category         *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Slug             string         `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription string         `gorm:"size:512" json:"short_description"`
	Description      string         `gorm:"type:text" json:"description"`
	Features         string         `gorm:"type:text" json:"features"`
	Price            float64        `gorm:"not null;default:0" json:"price"`
	ImageURL         string         `gorm:"size:512" json:"image_url"`
	SortOrder        int            `gorm:"not null;default:0" json:"sort_order"`
	Active           bool           `gorm:"not null;default:true" json:"active"`
	CreatedBy        uint           `json:"created_by"`
	UpdatedBy        uint           `json:"updated_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
