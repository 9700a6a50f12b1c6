package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// ProductService implements product CRUD with the slug policy applied.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	slugs      ports.SlugService
	logger     zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, slugs ports.SlugService, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, slugs: slugs, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	slug, derived, err := resolveSlug(ctx, s.slugs, domain.SlugTableProduct, in.Slug, in.Name, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Features:         in.Features,
		Price:            in.Price,
		ImageURL:         in.ImageURL,
		SortOrder:        in.SortOrder,
		Active:           in.Active,
		CreatedBy:        in.ActorID,
		UpdatedBy:        in.ActorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableProduct, in.Name, 0, derived, func(slug string) error {
		product.Slug = slug
		return s.repo.Create(ctx, product)
	}, slug)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("product_id", product.ID).Str("slug", product.Slug).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != product.CategoryID {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}

	slug, derived := product.Slug, false
	if in.Slug != "" || in.Name != product.Name {
		slug, derived, err = resolveSlug(ctx, s.slugs, domain.SlugTableProduct, in.Slug, in.Name, id)
		if err != nil {
			return nil, err
		}
	}

	product.CategoryID = in.CategoryID
	product.Name = in.Name
	product.ShortDescription = in.ShortDescription
	product.Description = in.Description
	product.Features = in.Features
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.SortOrder = in.SortOrder
	product.Active = in.Active
	product.UpdatedBy = in.ActorID
	product.UpdatedAt = time.Now().UTC()

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableProduct, in.Name, id, derived, func(slug string) error {
		product.Slug = slug
		return s.repo.Update(ctx, product)
	}, slug)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error) {
	return s.repo.FindBySlug(ctx, slug, activeOnly)
}

func (s *ProductService) List(ctx context.Context, opts ports.ProductListOptions) ([]domain.Product, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
