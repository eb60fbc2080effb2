package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal/internal/app/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const sessionPrefix = "portal:session:"

// ErrMissing is returned when a key does not exist or has expired.
var ErrMissing = errors.New("redis key missing")

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cant ping redis: %w", err)
	}
	logrus.Infof("connected to redis at %s:%d", cfg.Host, cfg.Port)

	client.client = redisClient
	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func sessionKey(id string) string {
	return sessionPrefix + id
}

// SaveSession stores payload under the session id and restarts its ttl.
func (c *Client) SaveSession(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, sessionKey(id), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (c *Client) LoadSession(ctx context.Context, id string) ([]byte, error) {
	payload, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	return payload, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
