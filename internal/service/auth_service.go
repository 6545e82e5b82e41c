package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/Sari-Dot/Myquiz/internal/models"
	"github.com/Sari-Dot/Myquiz/internal/repository"
	"github.com/Sari-Dot/Myquiz/internal/session"
	"github.com/Sari-Dot/Myquiz/internal/token"
)

// AuthService handles admin account bootstrap, login, verification and logout.
type AuthService struct {
	adminRepo       *repository.AdminRepository
	codec           *token.Codec
	resolver        *session.Resolver
	defaultUsername string
	defaultPassword string
	now             func() time.Time
}

// NewAuthService creates a new auth service. The default credentials are used
// only by EnsureDefaultAdmin.
func NewAuthService(
	adminRepo *repository.AdminRepository,
	codec *token.Codec,
	resolver *session.Resolver,
	defaultUsername, defaultPassword string,
) *AuthService {
	return &AuthService{
		adminRepo:       adminRepo,
		codec:           codec,
		resolver:        resolver,
		defaultUsername: defaultUsername,
		defaultPassword: defaultPassword,
		now:             time.Now,
	}
}

// EnsureDefaultAdmin creates the default admin account if absent. Safe to
// call on every boot; it never creates a second account for the same
// username. Usernames containing the token delimiter are rejected here so
// they can never corrupt a signed token.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) (created bool, err error) {
	if strings.Contains(s.defaultUsername, token.Delimiter) {
		return false, validationErr("username must not contain '" + token.Delimiter + "'")
	}

	existing, err := s.adminRepo.GetAccount(ctx, s.defaultUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	account := &models.AdminAccount{
		Username:     s.defaultUsername,
		PasswordHash: HashPassword(s.defaultPassword),
		CreatedAt:    s.now().UnixMilli(),
	}
	if err := s.adminRepo.CreateAccount(ctx, account); err != nil {
		return false, err
	}
	return true, nil
}

// Login checks credentials and issues a signed token. No session record is
// written: the token verifies on its own.
func (s *AuthService) Login(ctx context.Context, username, password string) (tok, adminName string, err error) {
	account, err := s.adminRepo.GetAccount(ctx, username)
	if err != nil {
		return "", "", err
	}
	if account == nil || account.PasswordHash != HashPassword(password) {
		return "", "", ErrInvalidCredentials
	}
	return s.codec.Issue(account.Username), account.Username, nil
}

// Verify resolves the token to an admin username, or ErrUnauthorized.
func (s *AuthService) Verify(ctx context.Context, tok string) (string, error) {
	username, ok := s.resolver.Resolve(ctx, tok)
	if !ok {
		return "", ErrUnauthorized
	}
	return username, nil
}

// Logout deletes the legacy persistent session for the token, best effort.
// Signed tokens cannot be revoked this way; they die at expiry.
func (s *AuthService) Logout(ctx context.Context, tok string) {
	if tok == "" {
		return
	}
	if err := s.adminRepo.DeleteSession(ctx, tok); err != nil {
		slog.Warn("Failed to delete legacy session on logout", "err", err)
	}
}

// HashPassword returns the hex sha256 digest used for stored admin passwords.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
