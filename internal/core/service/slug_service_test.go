package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/poscentral/website-api/internal/core/domain"
)

// stubSlugRepo answers uniqueness queries against an in-memory slug set
// keyed by table/slug, with an owning row ID per slug.
type stubSlugRepo struct {
	taken map[domain.SlugTable]map[string]uint
	calls int
	err   error
}

func newStubSlugRepo() *stubSlugRepo {
	return &stubSlugRepo{taken: make(map[domain.SlugTable]map[string]uint)}
}

func (r *stubSlugRepo) add(table domain.SlugTable, slug string, id uint) {
	if r.taken[table] == nil {
		r.taken[table] = make(map[string]uint)
	}
	r.taken[table][slug] = id
}

func (r *stubSlugRepo) CountBySlug(_ context.Context, table domain.SlugTable, slug string, excludeID uint) (int64, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	id, ok := r.taken[table][slug]
	if !ok || (excludeID != 0 && id == excludeID) {
		return 0, nil
	}
	return 1, nil
}

func TestSlugService_Normalize(t *testing.T) {
	svc := NewSlugService(newStubSlugRepo())

	cases := []struct {
		in   string
		want string
	}{
		{"Point of Sale", "point-of-sale"},
		{"  Trimmed  Name  ", "trimmed-name"},
		{"Caps & Symbols!!", "caps-symbols"},
		{"already-a-slug", "already-a-slug"},
		{"Héllo Wörld", "hllo-wrld"},
		{"--edges--", "edges"},
		{"a---b", "a-b"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := svc.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugService_IsValidFormat(t *testing.T) {
	svc := NewSlugService(newStubSlugRepo())

	valid := []string{"a", "pos-terminal", "blog-post-2", "42"}
	for _, s := range valid {
		if !svc.IsValidFormat(s) {
			t.Errorf("IsValidFormat(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "My Slug", "UPPER", "double--hyphen", "-lead", "trail-", "spaced out", "uniçode"}
	for _, s := range invalid {
		if svc.IsValidFormat(s) {
			t.Errorf("IsValidFormat(%q) = true, want false", s)
		}
	}
}

func TestSlugService_IsUnique(t *testing.T) {
	repo := newStubSlugRepo()
	repo.add(domain.SlugTableProduct, "pos-terminal", 7)
	svc := NewSlugService(repo)

	unique, err := svc.IsUnique(context.Background(), domain.SlugTableProduct, "pos-terminal", 0)
	if err != nil {
		t.Fatalf("IsUnique returned error: %v", err)
	}
	if unique {
		t.Fatalf("expected taken slug to report not unique")
	}

	// A row excluding itself still owns its slug.
	unique, err = svc.IsUnique(context.Background(), domain.SlugTableProduct, "pos-terminal", 7)
	if err != nil {
		t.Fatalf("IsUnique returned error: %v", err)
	}
	if !unique {
		t.Fatalf("expected slug to be unique when its owner is excluded")
	}

	if _, err := svc.IsUnique(context.Background(), domain.SlugTable("orders"), "x", 0); err != domain.ErrUnknownSlugTable {
		t.Fatalf("expected ErrUnknownSlugTable, got %v", err)
	}
}

func TestSlugService_EnsureUnique_FreeBase(t *testing.T) {
	repo := newStubSlugRepo()
	svc := NewSlugService(repo)

	got, err := svc.EnsureUnique(context.Background(), domain.SlugTableCategory, "hardware", 0)
	if err != nil {
		t.Fatalf("EnsureUnique returned error: %v", err)
	}
	if got != "hardware" {
		t.Fatalf("expected base slug back, got %q", got)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single probe, got %d", repo.calls)
	}
}

func TestSlugService_EnsureUnique_Suffixes(t *testing.T) {
	repo := newStubSlugRepo()
	repo.add(domain.SlugTableBlog, "launch", 1)
	repo.add(domain.SlugTableBlog, "launch-2", 2)
	repo.add(domain.SlugTableBlog, "launch-3", 3)
	svc := NewSlugService(repo)

	got, err := svc.EnsureUnique(context.Background(), domain.SlugTableBlog, "launch", 0)
	if err != nil {
		t.Fatalf("EnsureUnique returned error: %v", err)
	}
	if got != "launch-4" {
		t.Fatalf("expected launch-4, got %q", got)
	}
}

func TestSlugService_EnsureUnique_InvalidBase(t *testing.T) {
	svc := NewSlugService(newStubSlugRepo())

	if _, err := svc.EnsureUnique(context.Background(), domain.SlugTableBlog, "Not A Slug", 0); err != domain.ErrSlugInvalid {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestSlugService_EnsureUnique_ProbeBudget(t *testing.T) {
	repo := newStubSlugRepo()
	repo.add(domain.SlugTableCategory, "busy", 1)
	for i := 2; i <= maxSlugProbes+1; i++ {
		repo.add(domain.SlugTableCategory, "busy-"+strconv.Itoa(i), uint(i))
	}
	svc := NewSlugService(repo)

	if _, err := svc.EnsureUnique(context.Background(), domain.SlugTableCategory, "busy", 0); err != domain.ErrSlugUnavailable {
		t.Fatalf("expected ErrSlugUnavailable, got %v", err)
	}
	if repo.calls != maxSlugProbes {
		t.Fatalf("expected %d probes, got %d", maxSlugProbes, repo.calls)
	}
}

func TestNextSuffix(t *testing.T) {
	cases := []struct {
		base, current, want string
	}{
		{"launch", "launch", "launch-2"},
		{"launch", "launch-2", "launch-3"},
		{"launch", "launch-9", "launch-10"},
		{"launch", "garbage", "launch-2"},
	}
	for _, tc := range cases {
		if got := NextSuffix(tc.base, tc.current); got != tc.want {
			t.Errorf("NextSuffix(%q, %q) = %q, want %q", tc.base, tc.current, got, tc.want)
		}
	}
}
