package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
)

// ErrNotFound is returned when a session id has no live entry, either because
// it was logged out or because its TTL lapsed.
var ErrNotFound = errors.New("session not found")

// Store keeps one redis entry per live session, keyed by the token's session
// id and expiring with the token. Deleting the entry is what makes logout
// effective before the token itself expires.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a session store with the given TTL, which should match the
// token expiration.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Create registers a new live session bound to the given user.
func (s *Store) Create(ctx context.Context, sessionID string, userID int64) error {
	err := s.client.Set(ctx, sessionKey(sessionID), strconv.FormatInt(userID, 10), s.ttl).Err()

	logger.Log.Infow("session create",
		"session_id", sessionID,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Get returns the user bound to a live session, or ErrNotFound.
func (s *Store) Get(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	return userID, nil
}

// Delete ends a session. Deleting an already-ended session is a no-op.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, sessionKey(sessionID)).Err()

	logger.Log.Infow("session delete",
		"session_id", sessionID,
		"error", err,
	)

	return err
}
