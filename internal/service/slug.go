package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// slugOwnerFn reports the id of the entity currently holding a slug.
// The second return is false when the slug is free.
type slugOwnerFn func(s string) (uuid.UUID, bool)

// resolveSlug normalizes name into a URL-safe slug and disambiguates
// collisions by appending a short form of the entity's own id. The
// returned warning is non-fatal and meant for the operator.
//
// The check-then-write is not serialized against concurrent saves; the
// unique index on the slug column is the backstop for the admin-driven,
// low-concurrency writes this is designed for.
func resolveSlug(name string, selfID uuid.UUID, owner slugOwnerFn) (string, *string) {
	s := slug.Make(name)
	ownerID, taken := owner(s)
	if !taken || ownerID == selfID {
		return s, nil
	}
	s = fmt.Sprintf("%s-%s", s, shortID(selfID))
	warning := fmt.Sprintf("O slug foi alterado para %q pois o original já existia.", s)
	return s, &warning
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
