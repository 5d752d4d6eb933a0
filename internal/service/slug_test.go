package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOwner(string) (uuid.UUID, bool) { return uuid.Nil, false }

func TestResolveSlug_Normalizes(t *testing.T) {
	s, warning := resolveSlug("Vestido Dashiki Âncora", uuid.New(), noOwner)
	assert.Equal(t, "vestido-dashiki-ancora", s)
	assert.Nil(t, warning)
}

func TestResolveSlug_CollisionAppendsOwnID(t *testing.T) {
	other := uuid.New()
	self := uuid.New()
	owner := func(s string) (uuid.UUID, bool) {
		if s == "roupas" {
			return other, true
		}
		return uuid.Nil, false
	}

	s, warning := resolveSlug("Roupas", self, owner)
	assert.Equal(t, "roupas-"+self.String()[:8], s)
	require.NotNil(t, warning)
	assert.Contains(t, *warning, s)
}

func TestResolveSlug_OwnSlugIsNotACollision(t *testing.T) {
	self := uuid.New()
	owner := func(s string) (uuid.UUID, bool) { return self, true }

	s, warning := resolveSlug("Roupas", self, owner)
	assert.Equal(t, "roupas", s)
	assert.Nil(t, warning)
}
