package repository

import (
	"context"
	"encoding/json"

	"github.com/Sari-Dot/Myquiz/internal/kv"
	"github.com/Sari-Dot/Myquiz/internal/models"
)

const (
	adminUserKeyPrefix    = "admin:user:"
	adminSessionKeyPrefix = "admin:session:"
)

// AdminRepository persists admin accounts and legacy sessions in the KV store.
type AdminRepository struct {
	store kv.Store
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(store kv.Store) *AdminRepository {
	return &AdminRepository{store: store}
}

// GetAccount returns the account stored at admin:user:<username>, or nil if absent.
func (r *AdminRepository) GetAccount(ctx context.Context, username string) (*models.AdminAccount, error) {
	raw, found, err := r.store.Get(ctx, adminUserKeyPrefix+username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var account models.AdminAccount
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount writes the account record at admin:user:<username>.
func (r *AdminRepository) CreateAccount(ctx context.Context, account *models.AdminAccount) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, adminUserKeyPrefix+account.Username, string(data))
}

// GetSession returns the legacy session stored at admin:session:<token>, or
// nil if absent.
func (r *AdminRepository) GetSession(ctx context.Context, token string) (*models.LegacySession, error) {
	raw, found, err := r.store.Get(ctx, adminSessionKeyPrefix+token)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var session models.LegacySession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SaveSession writes the legacy session record at admin:session:<token>.
func (r *AdminRepository) SaveSession(ctx context.Context, session *models.LegacySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, adminSessionKeyPrefix+session.Token, string(data))
}

// DeleteSession removes the legacy session for the token. Deleting an absent
// session is not an error.
func (r *AdminRepository) DeleteSession(ctx context.Context, token string) error {
	return r.store.Del(ctx, adminSessionKeyPrefix+token)
}
