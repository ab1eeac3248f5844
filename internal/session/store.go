// Package session implements the server-side session store. A session is an
// opaque uuid token mapped in Redis to the logged-in user's id and role,
// expiring after a configurable TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token is unknown or expired.
var ErrNotFound = errors.New("session not found")

type sessionData struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create issues a new opaque session token for the user
func (s *Store) Create(ctx context.Context, userID uint, role string) (string, error) {
	token := uuid.New().String()

	payload, err := json.Marshal(sessionData{UserID: userID, Role: role})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Get resolves a session token into the user's id and role
func (s *Store) Get(ctx context.Context, token string) (uint, string, error) {
	payload, err := s.client.Get(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, "", ErrNotFound
		}
		return 0, "", fmt.Errorf("load session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return 0, "", fmt.Errorf("unmarshal session: %w", err)
	}

	return data.UserID, data.Role, nil
}

// Delete invalidates a session token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, key(token)).Err()
}

func key(token string) string {
	return "session:" + token
}
