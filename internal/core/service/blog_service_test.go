package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

type stubBlogRepo struct {
	byID   map[uint]*domain.Blog
	nextID uint
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{byID: make(map[uint]*domain.Blog), nextID: 1}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	clone := *b
	return &clone
}

func (r *stubBlogRepo) slugHeld(slug string, excludeID uint) bool {
	for _, b := range r.byID {
		if b.Slug == slug && b.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *stubBlogRepo) Create(_ context.Context, b *domain.Blog) error {
	if r.slugHeld(b.Slug, 0) {
		return domain.ErrSlugTaken
	}
	b.ID = r.nextID
	r.nextID++
	r.byID[b.ID] = cloneBlog(b)
	return nil
}

func (r *stubBlogRepo) Update(_ context.Context, b *domain.Blog) error {
	if _, ok := r.byID[b.ID]; !ok {
		return domain.ErrBlogNotFound
	}
	if r.slugHeld(b.Slug, b.ID) {
		return domain.ErrSlugTaken
	}
	r.byID[b.ID] = cloneBlog(b)
	return nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id uint) (*domain.Blog, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBlogNotFound
	}
	return cloneBlog(b), nil
}

func (r *stubBlogRepo) FindBySlug(_ context.Context, slug string, publishedOnly bool) (*domain.Blog, error) {
	for _, b := range r.byID {
		if b.Slug == slug && (!publishedOnly || b.Published) {
			return cloneBlog(b), nil
		}
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) List(_ context.Context, opts ports.BlogListOptions) ([]domain.Blog, int64, error) {
	var out []domain.Blog
	for _, b := range r.byID {
		if opts.PublishedOnly && !b.Published {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id uint) error {
	delete(r.byID, id)
	return nil
}

func (r *stubBlogRepo) CountBySlug(_ context.Context, _ domain.SlugTable, slug string, excludeID uint) (int64, error) {
	if r.slugHeld(slug, excludeID) {
		return 1, nil
	}
	return 0, nil
}

func newBlogFixture() (*BlogService, *stubBlogRepo) {
	repo := newStubBlogRepo()
	return NewBlogService(repo, NewSlugService(repo), zerolog.Nop()), repo
}

func TestBlogService_Create_DerivesSlugFromTitle(t *testing.T) {
	svc, _ := newBlogFixture()

	blog, err := svc.Create(context.Background(), ports.BlogInput{Title: "Choosing a POS System", Author: "Dana"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if blog.Slug != "choosing-a-pos-system" {
		t.Fatalf("expected derived slug, got %q", blog.Slug)
	}
	if blog.Published || blog.PublishedAt != nil {
		t.Fatalf("expected draft by default: %+v", blog)
	}
}

func TestBlogService_Create_PublishedStampsTimestamp(t *testing.T) {
	svc, _ := newBlogFixture()

	before := time.Now().UTC()
	blog, err := svc.Create(context.Background(), ports.BlogInput{Title: "Launch Notes", Published: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if blog.PublishedAt == nil {
		t.Fatalf("expected PublishedAt stamped on published create")
	}
	if blog.PublishedAt.Before(before) {
		t.Fatalf("PublishedAt %v earlier than test start %v", blog.PublishedAt, before)
	}
}

func TestBlogService_Update_FirstPublishStampsOnce(t *testing.T) {
	svc, _ := newBlogFixture()

	blog, err := svc.Create(context.Background(), ports.BlogInput{Title: "Draft Post"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	published, err := svc.Update(context.Background(), blog.ID, ports.BlogInput{Title: "Draft Post", Published: true})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected PublishedAt stamped on first publish")
	}
	first := *published.PublishedAt

	again, err := svc.Update(context.Background(), blog.ID, ports.BlogInput{Title: "Draft Post", Published: true})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if again.PublishedAt == nil || !again.PublishedAt.Equal(first) {
		t.Fatalf("expected PublishedAt to survive later updates: first %v, got %v", first, again.PublishedAt)
	}
}

func TestBlogService_Update_RederivesSlugOnRetitle(t *testing.T) {
	svc, _ := newBlogFixture()

	blog, err := svc.Create(context.Background(), ports.BlogInput{Title: "Old Title"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), blog.ID, ports.BlogInput{Title: "New Title"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "new-title" {
		t.Fatalf("expected new-title, got %q", updated.Slug)
	}
}

func TestBlogService_GetBySlug_PublishedOnly(t *testing.T) {
	svc, _ := newBlogFixture()

	if _, err := svc.Create(context.Background(), ports.BlogInput{Title: "Hidden Draft"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), "hidden-draft", true); err != domain.ErrBlogNotFound {
		t.Fatalf("expected draft invisible on public read, got %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), "hidden-draft", false); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestBlogService_List_PublishedOnly(t *testing.T) {
	svc, _ := newBlogFixture()

	if _, err := svc.Create(context.Background(), ports.BlogInput{Title: "Draft"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.BlogInput{Title: "Live", Published: true}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	posts, total, err := svc.List(context.Background(), ports.BlogListOptions{PublishedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Slug != "live" {
		t.Fatalf("expected only the published post, got total=%d posts=%+v", total, posts)
	}
}
