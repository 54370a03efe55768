package repository

import (
	"context"
	"sync"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// FeedbackRepository stores post-resolution feedback, at most one entry
// per ticket.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	GetByTicket(ctx context.Context, ticketID string) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

type feedbackRepository struct {
	mu       sync.RWMutex
	order    []string
	byTicket map[string]domain.Feedback
}

// NewFeedbackRepository instantiates an empty in-memory feedback store.
func NewFeedbackRepository() FeedbackRepository {
	return &feedbackRepository{byTicket: make(map[string]domain.Feedback)}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTicket[feedback.TicketID]; exists {
		return ErrAlreadyExists
	}
	r.byTicket[feedback.TicketID] = *feedback
	r.order = append(r.order, feedback.TicketID)
	return nil
}

func (r *feedbackRepository) GetByTicket(ctx context.Context, ticketID string) (*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feedback, exists := r.byTicket[ticketID]
	if !exists {
		return nil, ErrNotFound
	}
	return &feedback, nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Feedback, 0, len(r.order))
	for _, ticketID := range r.order {
		result = append(result, r.byTicket[ticketID])
	}
	return result, nil
}
