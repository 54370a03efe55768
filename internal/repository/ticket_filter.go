package repository

import (
	"strings"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// FilterAll is the sentinel that disables the status or priority predicate.
// An empty value behaves the same, so an absent query parameter and the
// explicit "all" selection are equivalent.
const FilterAll = "all"

// TicketFilter captures the dashboard search parameters.
type TicketFilter struct {
	Search   string
	Status   domain.TicketStatus
	Priority domain.TicketPriority
}

// MatchesFilter reports whether the ticket satisfies every predicate of
// the filter. The free-text search is a case-insensitive substring match
// against title, customer name, and ticket id; an empty search matches
// everything.
func MatchesFilter(t domain.Ticket, f TicketFilter) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		if !strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.CustomerName), search) &&
			!strings.Contains(strings.ToLower(t.ID), search) {
			return false
		}
	}
	if f.Status != "" && f.Status != FilterAll && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && f.Priority != FilterAll && t.Priority != f.Priority {
		return false
	}
	return true
}

// FilterTickets returns the subset of tickets matching the filter,
// preserving input order. Applying the same filter twice yields the same
// sequence.
func FilterTickets(tickets []domain.Ticket, f TicketFilter) []domain.Ticket {
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if MatchesFilter(t, f) {
			matched = append(matched, t)
		}
	}
	return matched
}
