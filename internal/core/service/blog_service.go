package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// BlogService implements blog CRUD with the slug policy applied. PublishedAt
// is stamped on the first transition to published.
type BlogService struct {
	repo   ports.BlogRepository
	slugs  ports.SlugService
	logger zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, slugs ports.SlugService, logger zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, slugs: slugs, logger: logger}
}

func (s *BlogService) Create(ctx context.Context, in ports.BlogInput) (*domain.Blog, error) {
	slug, derived, err := resolveSlug(ctx, s.slugs, domain.SlugTableBlog, in.Slug, in.Title, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		CoverURL:  in.CoverURL,
		Author:    in.Author,
		Published: in.Published,
		CreatedBy: in.ActorID,
		UpdatedBy: in.ActorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Published {
		blog.PublishedAt = &now
	}

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableBlog, in.Title, 0, derived, func(slug string) error {
		blog.Slug = slug
		return s.repo.Create(ctx, blog)
	}, slug)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("blog_id", blog.ID).Str("slug", blog.Slug).Msg("blog post created")
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, id uint, in ports.BlogInput) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug, derived := blog.Slug, false
	if in.Slug != "" || in.Title != blog.Title {
		slug, derived, err = resolveSlug(ctx, s.slugs, domain.SlugTableBlog, in.Slug, in.Title, id)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if in.Published && !blog.Published {
		blog.PublishedAt = &now
	}

	blog.Title = in.Title
	blog.Excerpt = in.Excerpt
	blog.Content = in.Content
	blog.CoverURL = in.CoverURL
	blog.Author = in.Author
	blog.Published = in.Published
	blog.UpdatedBy = in.ActorID
	blog.UpdatedAt = now

	err = retrySlugWrite(ctx, s.slugs, domain.SlugTableBlog, in.Title, id, derived, func(slug string) error {
		blog.Slug = slug
		return s.repo.Update(ctx, blog)
	}, slug)
	if err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) GetByID(ctx context.Context, id uint) (*domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Blog, error) {
	return s.repo.FindBySlug(ctx, slug, publishedOnly)
}

func (s *BlogService) List(ctx context.Context, opts ports.BlogListOptions) ([]domain.Blog, int64, error) {
	return s.repo.List(ctx, opts)
}

func (s *BlogService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
