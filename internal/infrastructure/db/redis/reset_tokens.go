package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/profinder/marketplace-api/internal/core/service"
)

// ResetTokenStore keeps one-shot password-reset tokens in Redis.
// Key format: pwreset:<token> -> user id, expiring after the TTL the auth
// service chooses.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given Redis client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Store records the token for userID, expiring after ttl.
func (s *ResetTokenStore) Store(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// Consume retrieves and deletes the token in one round trip (GETDEL), so a
// token can never be redeemed twice.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, service.ErrInvalidResetToken
		}
		return uuid.Nil, fmt.Errorf("consume reset token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, service.ErrInvalidResetToken
	}
	return userID, nil
}

func (s *ResetTokenStore) key(token string) string {
	return "pwreset:" + token
}
