package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// StorageKey is the single fixed key the session record lives under.
const StorageKey = "crm_user"

// Store persists the current session's User record. Load returns
// (nil, nil) when no session exists.
type Store interface {
	Save(ctx context.Context, user *domain.User) error
	Load(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}

// RedisStore keeps the serialized User in Redis so the session survives
// process restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, StorageKey, payload, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context) (*domain.User, error) {
	payload, err := s.client.Get(ctx, StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, StorageKey).Err()
}

// MemoryStore holds the session in process memory. Used in tests and when
// Redis is unavailable.
type MemoryStore struct {
	mu   sync.RWMutex
	user *domain.User
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.user = &copied
	return nil
}

func (s *MemoryStore) Load(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, nil
	}
	copied := *s.user
	return &copied, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
