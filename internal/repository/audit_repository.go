package repository

import (
	"context"
	"sync"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// AuditRepository is the append-only audit trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context) ([]domain.AuditLog, error)
}

type auditRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditLog
}

// NewAuditRepository instantiates an empty in-memory audit trail.
func NewAuditRepository() AuditRepository {
	return &auditRepository{}
}

func (r *auditRepository) Append(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *auditRepository) List(ctx context.Context) ([]domain.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.AuditLog, len(r.entries))
	copy(result, r.entries)
	return result, nil
}
