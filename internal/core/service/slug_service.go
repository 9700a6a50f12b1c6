package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// maxSlugProbes bounds the suffix search so a pathological table cannot
// turn EnsureUnique into an unbounded loop of round trips.
const maxSlugProbes = 100

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	slugDisallowed  = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace  = regexp.MustCompile(`\s+`)
	slugMultiHyphen = regexp.MustCompile(`-{2,}`)
)

// SlugService generates and uniquifies URL identifiers for categories,
// products, and blog posts. Uniqueness is pre-checked here as the fast path;
// the storage-level unique index remains the authority.
type SlugService struct {
	repo ports.SlugRepository
}

func NewSlugService(repo ports.SlugRepository) *SlugService {
	return &SlugService{repo: repo}
}

// Normalize derives a slug candidate from free text: lowercase, strip
// everything outside [a-z0-9\s-], collapse whitespace runs to single
// hyphens, collapse repeated hyphens, trim hyphens at the edges.
func (s *SlugService) Normalize(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugMultiHyphen.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidFormat reports whether slug is lowercase alphanumeric groups
// separated by single hyphens. The empty string is invalid.
func (s *SlugService) IsValidFormat(slug string) bool {
	return slugPattern.MatchString(slug)
}

// IsUnique reports whether no row in table other than excludeID holds slug.
func (s *SlugService) IsUnique(ctx context.Context, table domain.SlugTable, slug string, excludeID uint) (bool, error) {
	if !table.Valid() {
		return false, domain.ErrUnknownSlugTable
	}
	n, err := s.repo.CountBySlug(ctx, table, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("slug uniqueness check: %w", err)
	}
	return n == 0, nil
}

// EnsureUnique returns base when it is free, otherwise the lowest-numbered
// free candidate among base-2, base-3, ... Each probe is one round trip to
// the persistence gateway.
func (s *SlugService) EnsureUnique(ctx context.Context, table domain.SlugTable, base string, excludeID uint) (string, error) {
	if !s.IsValidFormat(base) {
		return "", domain.ErrSlugInvalid
	}

	candidate := base
	for i := 1; i <= maxSlugProbes; i++ {
		free, err := s.IsUnique(ctx, table, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+1)
	}

	return "", domain.ErrSlugUnavailable
}

// NextSuffix returns the candidate after current in the probe sequence for
// base. Used by the write retry path to resume probing after the storage
// constraint rejects a candidate.
func NextSuffix(base, current string) string {
	if current == base {
		return base + "-2"
	}
	var n int
	if _, err := fmt.Sscanf(current, base+"-%d", &n); err != nil || n < 2 {
		return base + "-2"
	}
	return fmt.Sprintf("%s-%d", base, n+1)
}
