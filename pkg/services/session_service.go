package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/usersession"
)

// DefaultSessionTTL is used when a caller does not specify one.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionService manages browser sessions backing cookie admission.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	if client == nil {
		panic("NewSessionService: client must not be nil")
	}
	return &SessionService{client: client}
}

// Create mints a session for the owner with a random token.
func (s *SessionService) Create(ctx context.Context, ownerID string, ttl time.Duration) (*ent.UserSession, error) {
	if ownerID == "" {
		return nil, NewValidationError("owner_id", "owner_id is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session, err := s.client.UserSession.Create().
		SetID(uuid.New().String()).
		SetToken(hex.EncodeToString(raw)).
		SetOwnerID(ownerID).
		SetExpiresAt(time.Now().UTC().Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Validate resolves a token to its session. Expired or unknown tokens map to
// ErrNotFound so handlers return the same 401 for both.
func (s *SessionService) Validate(ctx context.Context, token string) (*ent.UserSession, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	session, err := s.client.UserSession.Query().
		Where(usersession.Token(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if !session.ExpiresAt.After(time.Now().UTC()) {
		return nil, ErrNotFound
	}
	return session, nil
}

// Revoke deletes one session by token. Revoking an unknown token is a no-op.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	_, err := s.client.UserSession.Delete().
		Where(usersession.Token(token)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// SweepExpired deletes sessions past their expiry. Called by the cleanup
// loop.
func (s *SessionService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.UserSession.Delete().
		Where(usersession.ExpiresAtLT(now)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	return n, nil
}
