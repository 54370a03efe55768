package repository

import (
	"context"
	"sync"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// CommentRepository manages the append-only comment log per ticket.
// Comments are immutable once created; ListByTicket returns insertion
// order.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Comment, error)
}

type commentRepository struct {
	mu       sync.RWMutex
	byTicket map[string][]domain.Comment
}

// NewCommentRepository instantiates an empty in-memory comment log.
func NewCommentRepository() CommentRepository {
	return &commentRepository{byTicket: make(map[string][]domain.Comment)}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTicket[comment.TicketID] = append(r.byTicket[comment.TicketID], *comment)
	return nil
}

func (r *commentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	comments := r.byTicket[ticketID]
	result := make([]domain.Comment, len(comments))
	copy(result, comments)
	return result, nil
}
