package ports

import (
	"context"

	"github.com/poscentral/website-api/internal/core/domain"
)

// BlogListOptions narrows and pages blog listings.
type BlogListOptions struct {
	Page          int
	Limit         int
	PublishedOnly bool
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	Create(ctx context.Context, b *domain.Blog) error
	Update(ctx context.Context, b *domain.Blog) error
	FindByID(ctx context.Context, id uint) (*domain.Blog, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error)
	List(ctx context.Context, opts BlogListOptions) ([]domain.Blog, int64, error)
	Delete(ctx context.Context, id uint) error
}

// BlogInput carries the writable blog fields. Slug is derived from Title
// when empty.
type BlogInput struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	CoverURL  string
	Author    string
	Published bool
	ActorID   uint
}

// BlogService implements blog CRUD with the slug policy applied.
type BlogService interface {
	Create(ctx context.Context, in BlogInput) (*domain.Blog, error)
	Update(ctx context.Context, id uint, in BlogInput) (*domain.Blog, error)
	GetByID(ctx context.Context, id uint) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error)
	List(ctx context.Context, opts BlogListOptions) ([]domain.Blog, int64, error)
	Delete(ctx context.Context, id uint) error
}
