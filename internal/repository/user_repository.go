package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// UserRepository holds the static user roster. No mutations beyond the
// initial seed exist in this scope.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.User
}

// NewUserRepository instantiates an empty in-memory user store.
func NewUserRepository() UserRepository {
	return &userRepository{byID: make(map[string]domain.User)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[user.ID]; exists {
		return ErrAlreadyExists
	}
	r.byID[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		user := r.byID[id]
		if strings.EqualFold(user.Email, email) {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}
