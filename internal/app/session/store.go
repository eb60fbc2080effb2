package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portal/internal/app/redis"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
)

var ErrNotFound = errors.New("session not found")

// Store keeps session state between requests. Load returns ErrNotFound for
// unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, st State) error
	Delete(ctx context.Context, id string) error
}

type memoryStore struct {
	cache *cache.Cache[string, State]
	ttl   time.Duration
}

// NewMemoryStore keeps at most capacity sessions, evicting the least
// recently used, each for ttl after its last save.
func NewMemoryStore(capacity int, ttl time.Duration) Store {
	return &memoryStore{
		cache: cache.New(cache.AsLRU[string, State](lru.WithCapacity(capacity))),
		ttl:   ttl,
	}
}

func (m *memoryStore) Load(_ context.Context, id string) (State, error) {
	st, ok := m.cache.Get(id)
	if !ok {
		return State{}, ErrNotFound
	}
	return st, nil
}

func (m *memoryStore) Save(_ context.Context, st State) error {
	m.cache.Set(st.ID, st, cache.WithExpiration(m.ttl))
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps sessions as JSON values that expire ttl after their last save.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (r *redisStore) Load(ctx context.Context, id string) (State, error) {
	payload, err := r.client.LoadSession(ctx, id)
	if errors.Is(err, redis.ErrMissing) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}

	var st State
	if err := json.Unmarshal(payload, &st); err != nil {
		return State{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return st, nil
}

func (r *redisStore) Save(ctx context.Context, st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.SaveSession(ctx, st.ID, payload, r.ttl)
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	return r.client.DeleteSession(ctx, id)
}
