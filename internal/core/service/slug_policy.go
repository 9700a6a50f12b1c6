package service

import (
	"context"
	"errors"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// slugWriteAttempts caps how often a write is retried after the storage
// unique index rejects a derived slug that lost a race to a concurrent
// request. Explicit slugs are never retried.
const slugWriteAttempts = 3

// resolveSlug applies the caller policy: an explicit slug must already be
// valid and free (no auto-correction), an empty one is derived from name and
// uniquified. derived reports which path was taken.
func resolveSlug(ctx context.Context, slugs ports.SlugService, table domain.SlugTable, explicit, name string, excludeID uint) (slug string, derived bool, err error) {
	if explicit != "" {
		if !slugs.IsValidFormat(explicit) {
			return "", false, domain.ErrSlugInvalid
		}
		free, err := slugs.IsUnique(ctx, table, explicit, excludeID)
		if err != nil {
			return "", false, err
		}
		if !free {
			return "", false, domain.ErrSlugTaken
		}
		return explicit, false, nil
	}

	base := slugs.Normalize(name)
	if base == "" {
		return "", false, domain.ErrSlugInvalid
	}
	slug, err = slugs.EnsureUnique(ctx, table, base, excludeID)
	if err != nil {
		return "", false, err
	}
	return slug, true, nil
}

// retrySlugWrite runs write, retrying with the next numeric suffix when the
// storage constraint rejects a derived slug. The constraint is the authority
// and can disagree with the pre-check (the unique index still holds
// soft-deleted rows), so each retry resumes past the rejected candidate
// instead of re-resolving from the base.
func retrySlugWrite(ctx context.Context, slugs ports.SlugService, table domain.SlugTable, name string, excludeID uint, derived bool, write func(slug string) error, slug string) error {
	base := slugs.Normalize(name)
	for attempt := 0; ; attempt++ {
		err := write(slug)
		if err == nil {
			return nil
		}
		if !derived || !errors.Is(err, domain.ErrSlugTaken) || attempt+1 >= slugWriteAttempts {
			return err
		}
		slug, err = nextFreeSlug(ctx, slugs, table, base, slug, excludeID)
		if err != nil {
			return err
		}
	}
}

// nextFreeSlug resumes the probe sequence for base past rejected and returns
// the first candidate the pre-check reports free.
func nextFreeSlug(ctx context.Context, slugs ports.SlugService, table domain.SlugTable, base, rejected string, excludeID uint) (string, error) {
	candidate := NextSuffix(base, rejected)
	for i := 0; i < maxSlugProbes; i++ {
		free, err := slugs.IsUnique(ctx, table, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
		candidate = NextSuffix(base, candidate)
	}
	return "", domain.ErrSlugUnavailable
}
