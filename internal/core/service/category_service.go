package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// CategoryService implements category CRUD with the slug policy applied.
type CategoryService struct {
	repo   ports.CategoryRepository
	slugs  ports.SlugService
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, slugs ports.SlugService, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, slugs: slugs, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	slug, derived, err := resolveSlug(ctx, s.slugs, domain.SlugTableCategory, in.Slug, in.Name, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		SortOrder:   in.SortOrder,
		Active:      in.Active,
		CreatedBy:   in.ActorID,
		UpdatedBy:   in.ActorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableCategory, in.Name, 0, derived, func(slug string) error {
		category.Slug = slug
		return s.repo.Create(ctx, category)
	}, slug)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("category_id", category.ID).Str("slug", category.Slug).Msg("category created")
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in ports.CategoryInput) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Keep the current slug when no explicit one is supplied and the name
	// is unchanged; re-derive only when the name moved.
	slug, derived := category.Slug, false
	if in.Slug != "" || in.Name != category.Name {
		slug, derived, err = resolveSlug(ctx, s.slugs, domain.SlugTableCategory, in.Slug, in.Name, id)
		if err != nil {
			return nil, err
		}
	}

	category.Name = in.Name
	category.Description = in.Description
	category.ImageURL = in.ImageURL
	category.SortOrder = in.SortOrder
	category.Active = in.Active
	category.UpdatedBy = in.ActorID
	category.UpdatedAt = time.Now().UTC()

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableCategory, in.Name, id, derived, func(slug string) error {
		category.Slug = slug
		return s.repo.Update(ctx, category)
	}, slug)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error) {
	return s.repo.FindBySlug(ctx, slug, activeOnly)
}

func (s *CategoryService) List(ctx context.Context, opts ports.CategoryListOptions) ([]domain.Category, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
