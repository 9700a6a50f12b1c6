package ports

import (
	"context"

	"github.com/poscentral/website-api/internal/core/domain"
)

// CategoryListOptions narrows and pages category listings.
type CategoryListOptions struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error)
	List(ctx context.Context, opts CategoryListOptions) ([]domain.Category, int64, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryInput carries the writable category fields. Slug is optional: when
// empty a unique slug is derived from Name; when set it must already be valid
// and free.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
	SortOrder   int
	Active      bool
	ActorID     uint
}

// CategoryService implements category CRUD with the slug policy applied.
type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id uint, in CategoryInput) (*domain.Category, error)
	GetByID(ctx context.Context, id uint) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error)
	List(ctx context.Context, opts CategoryListOptions) ([]domain.Category, int64, error)
	Delete(ctx context.Context, id uint) error
}
