package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// SessionManager keeps the token blacklist in Redis. Tokens are never
// actively invalidated, only shadow-listed until their natural expiry.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blog:token:blacklist:%s", token)
}

// AddBlackList shadow-lists a raw token for the remainder of its lifetime.
func (s *SessionManager) AddBlackList(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return s.rdb.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

// InBlackList reports whether a token has been revoked.
func (s *SessionManager) InBlackList(token string) (bool, error) {
	res, err := s.rdb.Exists(ctx, blacklistKey(token)).Result()
	return res == 1, err
}
