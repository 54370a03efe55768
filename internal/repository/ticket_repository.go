package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// TicketRepository is the authoritative in-process ticket store. All
// mutation flows through it; views never hold diverging copies.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	mu      sync.RWMutex
	order   []string
	byID    map[string]domain.Ticket
	nextNum int64
}

// NewTicketRepository instantiates an empty in-memory store. Ticket ids
// are issued as TKT-<number> from a monotonic counter.
func NewTicketRepository() TicketRepository {
	return &ticketRepository{
		byID:    make(map[string]domain.Ticket),
		nextNum: 1001,
	}
}

// Create stores a new ticket at the front of the listing order, matching
// the dashboard convention of surfacing the newest ticket first. A blank
// ID is replaced with the next TKT-<number>; pre-set ids (seed data)
// advance the counter past their numeric suffix.
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("TKT-%d", r.nextNum)
		r.nextNum++
	} else if num, ok := ticketNumber(ticket.ID); ok && num >= r.nextNum {
		r.nextNum = num + 1
	}
	if _, exists := r.byID[ticket.ID]; exists {
		return ErrAlreadyExists
	}

	r.byID[ticket.ID] = *ticket
	r.order = append([]string{ticket.ID}, r.order...)
	return nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[ticket.ID]; !exists {
		return ErrNotFound
	}
	r.byID[ticket.ID] = *ticket
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, exists := r.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FilterTickets(r.snapshot(), filter), nil
}

func (r *ticketRepository) snapshot() []domain.Ticket {
	result := make([]domain.Ticket, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

func ticketNumber(id string) (int64, bool) {
	suffix, ok := strings.CutPrefix(id, "TKT-")
	if !ok {
		return 0, false
	}
	num, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
