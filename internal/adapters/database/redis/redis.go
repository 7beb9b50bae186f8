package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/herbalife-clubes/admin-bot/internal/adapters/database/redis/sessions"
	"github.com/herbalife-clubes/admin-bot/internal/adapters/database/redis/states"
)

type Client struct {
	Sessions *sessions.Storage
	States   *states.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	stateStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := stateStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping state storage: %w", err)
	}

	sessionStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       1,
	})
	if err := sessionStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping session storage: %w", err)
	}

	return &Client{
		Sessions: sessions.NewStorage(sessionStorage),
		States:   states.NewStorage(stateStorage),
	}, nil
}
