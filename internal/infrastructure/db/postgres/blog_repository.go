package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// BlogRepository persists blog posts.
type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, b *domain.Blog) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("update blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &b, nil
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var b domain.Blog
	if err := q.First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return &b, nil
}

func (r *BlogRepository) List(ctx context.Context, opts ports.BlogListOptions) ([]domain.Blog, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Blog{})
	if opts.PublishedOnly {
		q = q.Where("published = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count blogs: %w", err)
	}

	var blogs []domain.Blog
	if err := paginate(q, opts.Page, opts.Limit).
		Order("published_at DESC NULLS LAST, created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, total, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Blog{}, id).Error; err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}
