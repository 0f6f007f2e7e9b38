package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tipulim/directory-web/internal/core/ports"
)

// SessionStore keeps session records in a Redis hash per session.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Load returns the zero record when the session has no stored keys.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (ports.SessionRecord, error) {
	vals, err := s.client.HMGet(ctx, sessionKey(sessionID), fieldToken, fieldUserID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ports.SessionRecord{}, fmt.Errorf("load session: %w", err)
	}

	var rec ports.SessionRecord
	if len(vals) == 2 {
		rec.Token, _ = vals[0].(string)
		rec.UserID, _ = vals[1].(string)
	}
	return rec, nil
}

// Save writes both keys and the expiry in one transaction.
func (s *SessionStore) Save(ctx context.Context, sessionID string, rec ports.SessionRecord, ttl time.Duration) error {
	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fieldToken, rec.Token, fieldUserID, rec.UserID)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
