package states

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nlypage/intele/storage"
	"github.com/redis/go-redis/v9"
)

// Storage backs the intele input manager with Redis, so half-finished form
// input survives a bot restart.
type Storage struct {
	redis *redis.Client
}

var _ storage.StateStorage = (*Storage)(nil)

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Set(userID int64, state string, expiration time.Duration) error {
	return s.redis.Set(context.Background(), fmt.Sprintf("state:%d", userID), state, expiration).Err()
}

func (s *Storage) Get(userID int64) (string, error) {
	state, err := s.redis.Get(context.Background(), fmt.Sprintf("state:%d", userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return state, nil
}

func (s *Storage) Delete(userID int64) {
	s.redis.Del(context.Background(), fmt.Sprintf("state:%d", userID))
}
