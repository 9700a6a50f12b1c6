package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/poscentral/website-api/internal/core/domain"
)

// SlugRepository answers slug-uniqueness probes for the three slug-bearing
// tables.
type SlugRepository struct {
	db *gorm.DB
}

func NewSlugRepository(db *gorm.DB) *SlugRepository {
	return &SlugRepository{db: db}
}

func (r *SlugRepository) CountBySlug(ctx context.Context, table domain.SlugTable, slug string, excludeID uint) (int64, error) {
	var model any
	switch table {
	case domain.SlugTableCategory:
		model = &domain.Category{}
	case domain.SlugTableProduct:
		model = &domain.Product{}
	case domain.SlugTableBlog:
		model = &domain.Blog{}
	default:
		return 0, domain.ErrUnknownSlugTable
	}

	q := r.db.WithContext(ctx).Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count slug %q in %s: %w", slug, table, err)
	}
	return n, nil
}
