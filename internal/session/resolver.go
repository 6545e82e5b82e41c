package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Strategy resolves a bearer token to an admin username. ok=false means this
// strategy cannot vouch for the token; the resolver moves on to the next one.
type Strategy interface {
	Resolve(ctx context.Context, token string) (username string, ok bool)
}

// Resolver tries its strategies in a fixed priority order: signed token first
// (no store access), then the in-process legacy cache, then the persistent
// store. The ordering lets the service survive a cold restart: signed tokens
// need no persisted state, and legacy sessions fall back to the store.
type Resolver struct {
	strategies []Strategy
}

// NewResolver creates a resolver trying the given strategies in order.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Resolve returns the authenticated admin username for the token, or ok=false.
func (r *Resolver) Resolve(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, s := range r.strategies {
		if username, ok := s.Resolve(ctx, token); ok {
			return username, true
		}
	}
	return "", false
}

// NewLegacyToken mints an opaque token for a store-backed session. New logins
// get signed tokens; this exists for the pre-signed-token compatibility path.
// The token must never contain the signed-token delimiter.
func NewLegacyToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
