package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/herbalife-clubes/admin-bot/internal/domain/entity"
)

// Storage keeps the two session keys per admin: the opaque bearer token and
// the last-known profile. Both are written on login and cleared together on
// logout or an intercepted 401.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func tokenKey(adminID int64) string {
	return fmt.Sprintf("session:token:%d", adminID)
}

func profileKey(adminID int64) string {
	return fmt.Sprintf("session:profile:%d", adminID)
}

// Token returns the stored bearer token, or "" when no session exists.
func (s *Storage) Token(ctx context.Context, adminID int64) (string, error) {
	token, err := s.redis.Get(ctx, tokenKey(adminID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

// Profile returns the cached profile, or nil when no session exists.
func (s *Storage) Profile(ctx context.Context, adminID int64) (*entity.User, error) {
	raw, err := s.redis.Get(ctx, profileKey(adminID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var user entity.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Save writes token and profile in one transaction.
func (s *Storage) Save(ctx context.Context, adminID int64, session *entity.Session) error {
	raw, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, tokenKey(adminID), session.Token, 0)
	pipe.Set(ctx, profileKey(adminID), raw, 0)
	_, err = pipe.Exec(ctx)
	return err
}

// Clear drops both keys atomically.
func (s *Storage) Clear(ctx context.Context, adminID int64) error {
	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, tokenKey(adminID))
	pipe.Del(ctx, profileKey(adminID))
	_, err := pipe.Exec(ctx)
	return err
}
