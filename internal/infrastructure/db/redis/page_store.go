package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tipulim/directory-web/internal/core/domain"
)

const maxUpdateAttempts = 5

// PageStore keeps mounted profile pages as JSON strings. Update runs fn under
// WATCH so that concurrent requests on the same page never interleave.
type PageStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageStore creates a PageStore whose entries expire after ttl.
func NewPageStore(client *redis.Client, ttl time.Duration) *PageStore {
	return &PageStore{client: client, ttl: ttl}
}

func (s *PageStore) Load(ctx context.Context, sessionID string, profileID domain.UserID) (*domain.ProfilePage, error) {
	raw, err := s.client.Get(ctx, pageKey(sessionID, profileID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	return decodePage(raw)
}

func (s *PageStore) Save(ctx context.Context, sessionID string, page *domain.ProfilePage) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	if err := s.client.Set(ctx, pageKey(sessionID, page.ProfileID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save page: %w", err)
	}
	return nil
}

// Update loads the page, applies fn and writes the result back. When fn fails
// nothing is written and the stored page is returned with fn's error.
func (s *PageStore) Update(ctx context.Context, sessionID string, profileID domain.UserID, fn func(*domain.ProfilePage) error) (*domain.ProfilePage, error) {
	key := pageKey(sessionID, profileID)

	var (
		result *domain.ProfilePage
		fnErr  error
	)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		page, err := decodePage(raw)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			fnErr = err
			result, _ = decodePage(raw)
			return nil
		}

		encoded, err := json.Marshal(page)
		if err != nil {
			return fmt.Errorf("encode page: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result, fnErr = page, nil
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("update page: %w", err)
		}
		return result, fnErr
	}
	return nil, fmt.Errorf("update page: %w", redis.TxFailedErr)
}

func (s *PageStore) Delete(ctx context.Context, sessionID string, profileID domain.UserID) error {
	if err := s.client.Del(ctx, pageKey(sessionID, profileID)).Err(); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// DeleteAll drops every page mounted by the session.
func (s *PageStore) DeleteAll(ctx context.Context, sessionID string) error {
	iter := s.client.Scan(ctx, 0, pagePrefix(sessionID)+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan pages: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete pages: %w", err)
	}
	return nil
}

func decodePage(raw []byte) (*domain.ProfilePage, error) {
	var page domain.ProfilePage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &page, nil
}
