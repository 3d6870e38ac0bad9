// Package session stores login sessions in Redis. Each session is a
// JSON payload under "session:<token>" with a sliding TTL; the token
// itself is an opaque UUID handed to the client at login.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"bakery_shop/internal/apperrors"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

type Data struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStore(redisURL string, ttl time.Duration) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{rdb: rdb, ttl: ttl}, nil
}

// Create opens a session for the user and returns its token.
func (s *Store) Create(ctx context.Context, data *Data) (string, error) {
	token := uuid.NewString()
	data.CreatedAt = time.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := s.rdb.Set(ctx, "session:"+token, jsonData, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its session, refreshing the TTL. An unknown
// or expired token yields apperrors.ErrUnauthorized.
func (s *Store) Get(ctx context.Context, token string) (*Data, error) {
	val, err := s.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	s.rdb.Expire(ctx, "session:"+token, s.ttl)
	return &data, nil
}

// Delete removes a session. Deleting an absent token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "session:"+token).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
