package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Sari-Dot/Myquiz/internal/models"
	"github.com/Sari-Dot/Myquiz/internal/token"
)

// SessionStore is the persistent tier consulted on cache misses.
type SessionStore interface {
	GetSession(ctx context.Context, token string) (*models.LegacySession, error)
	DeleteSession(ctx context.Context, token string) error
}

// SignedStrategy verifies self-contained signed tokens. It only applies to
// tokens containing the delimiter; opaque legacy tokens fall through to the
// session tiers.
type SignedStrategy struct {
	Codec *token.Codec
}

func (s *SignedStrategy) Resolve(_ context.Context, tok string) (string, bool) {
	if !strings.Contains(tok, token.Delimiter) {
		return "", false
	}
	claims, ok := s.Codec.Verify(tok)
	if !ok {
		return "", false
	}
	return claims.Username, true
}

// CacheStrategy looks the token up in the in-process legacy session cache.
type CacheStrategy struct {
	Cache *Cache
	Now   func() time.Time // defaults to time.Now
}

func (s *CacheStrategy) Resolve(_ context.Context, tok string) (string, bool) {
	return s.Cache.Get(tok, s.nowMs())
}

func (s *CacheStrategy) nowMs() int64 {
	if s.Now != nil {
		return s.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

// StoreStrategy falls back to the persistent admin:session:<token> entry.
// Hits are rehydrated into the cache so a restarted process warms back up;
// expired entries are deleted from the store. Store failures resolve to
// unauthenticated rather than erroring, matching the other strategies.
type StoreStrategy struct {
	Sessions SessionStore
	Cache    *Cache
	Now      func() time.Time
}

func (s *StoreStrategy) Resolve(ctx context.Context, tok string) (string, bool) {
	sess, err := s.Sessions.GetSession(ctx, tok)
	if err != nil {
		slog.Warn("Legacy session lookup failed", "err", err)
		return "", false
	}
	if sess == nil {
		return "", false
	}
	if sess.ExpiresAt < s.nowMs() {
		if err := s.Sessions.DeleteSession(ctx, tok); err != nil {
			slog.Warn("Failed to delete expired legacy session", "err", err)
		}
		return "", false
	}
	if s.Cache != nil {
		s.Cache.Put(tok, sess.Username, sess.ExpiresAt)
	}
	return sess.Username, true
}

func (s *StoreStrategy) nowMs() int64 {
	if s.Now != nil {
		return s.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}
