package ports

import (
	"context"

	"github.com/poscentral/website-api/internal/core/domain"
)

// SlugRepository answers slug-uniqueness queries against the persistence
// gateway. excludeID lets an update validate against its own current slug;
// zero means no exclusion.
type SlugRepository interface {
	CountBySlug(ctx context.Context, table domain.SlugTable, slug string, excludeID uint) (int64, error)
}

// SlugService produces syntactically valid, table-unique slugs.
type SlugService interface {
	// Normalize derives a slug candidate from free text. Pure, no I/O.
	Normalize(text string) string
	// IsValidFormat reports whether slug matches ^[a-z0-9]+(-[a-z0-9]+)*$.
	IsValidFormat(slug string) bool
	// IsUnique reports whether no non-excluded row in table holds slug.
	IsUnique(ctx context.Context, table domain.SlugTable, slug string, excludeID uint) (bool, error)
	// EnsureUnique probes base, base-2, base-3, ... and returns the first
	// free candidate. Fails with domain.ErrSlugUnavailable once the probe
	// budget is exhausted.
	EnsureUnique(ctx context.Context, table domain.SlugTable, base string, excludeID uint) (string, error)
}
