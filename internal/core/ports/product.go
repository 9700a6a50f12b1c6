package ports

import (
	"context"

	"github.com/poscentral/website-api/internal/core/domain"
)

// ProductListOptions narrows and pages product listings.
type ProductListOptions struct {
	Page         int
	Limit        int
	ActiveOnly   bool
	CategoryID   uint
	CategorySlug string
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error)
	List(ctx context.Context, opts ProductListOptions) ([]domain.Product, int64, error)
	Delete(ctx context.Context, id uint) error
}

// ProductInput carries the writable product fields. Slug semantics match
// CategoryInput.
type ProductInput struct {
	CategoryID       uint
	Name             string
	Slug             string
	ShortDescription string
	Description      string
	Features         string
	Price            float64
	ImageURL         string
	SortOrder        int
	Active           bool
	ActorID          uint
}

// ProductService implements product CRUD with the slug policy applied.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uint, in ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uint) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error)
	List(ctx context.Context, opts ProductListOptions) ([]domain.Product, int64, error)
	Delete(ctx context.Context, id uint) error
}
