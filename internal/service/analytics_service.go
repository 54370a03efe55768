package service

import (
	"context"
	"math"

	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/repository"
)

// AggregateByStatus counts tickets per status, zero-filling every declared
// status so the breakdown always carries the full enum.
func AggregateByStatus(tickets []domain.Ticket) map[domain.TicketStatus]int {
	counts := make(map[domain.TicketStatus]int, len(domain.AllStatuses()))
	for _, status := range domain.AllStatuses() {
		counts[status] = 0
	}
	for _, t := range tickets {
		counts[t.Status]++
	}
	return counts
}

// AggregateByCategory counts tickets per category. Unlike the status
// breakdown, only observed categories appear; absent ones carry no key.
// The asymmetry is intentional and load-bearing for consumers that
// iterate the map.
func AggregateByCategory(tickets []domain.Ticket) map[domain.TicketCategory]int {
	counts := make(map[domain.TicketCategory]int)
	for _, t := range tickets {
		counts[t.Category]++
	}
	return counts
}

// AverageRating returns the arithmetic mean of feedback ratings, 0 when
// the list is empty.
func AverageRating(feedback []domain.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	total := 0
	for _, fb := range feedback {
		total += fb.Rating
	}
	return float64(total) / float64(len(feedback))
}

// ResolutionRate returns the share of tickets in resolved or closed
// status as a whole percentage, rounded to nearest. An empty set yields 0.
func ResolutionRate(tickets []domain.Ticket) int {
	if len(tickets) == 0 {
		return 0
	}
	resolved := 0
	for _, t := range tickets {
		if t.Status == domain.TicketStatusResolved || t.Status == domain.TicketStatusClosed {
			resolved++
		}
	}
	return int(math.Round(float64(resolved) / float64(len(tickets)) * 100))
}

// MemberLoad pairs a team member with their assigned-ticket count.
type MemberLoad struct {
	User          domain.User
	AssignedCount int
}

// AssignedCounts computes per-member assigned-ticket counts for staff
// users, in roster order.
func AssignedCounts(tickets []domain.Ticket, users []domain.User) []MemberLoad {
	loads := make([]MemberLoad, 0, len(users))
	for _, u := range users {
		if !u.Role.IsStaff() {
			continue
		}
		count := 0
		for _, t := range tickets {
			if t.AssigneeID != nil && *t.AssigneeID == u.ID {
				count++
			}
		}
		loads = append(loads, MemberLoad{User: u, AssignedCount: count})
	}
	return loads
}

// AnalyticsSummary is the admin dashboard snapshot.
type AnalyticsSummary struct {
	TotalTickets   int
	TeamMembers    int
	AverageRating  float64
	ResolutionRate int
	ByStatus       map[domain.TicketStatus]int
	ByCategory     map[domain.TicketCategory]int
	TeamLoad       []MemberLoad
}

// AnalyticsService computes the admin dashboard aggregates over the
// in-memory collections.
type AnalyticsService struct {
	tickets  repository.TicketRepository
	feedback repository.FeedbackRepository
	users    repository.UserRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(tickets repository.TicketRepository, feedback repository.FeedbackRepository, users repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{tickets: tickets, feedback: feedback, users: users}
}

// Summary assembles the full analytics snapshot.
func (s *AnalyticsService) Summary(ctx context.Context) (*AnalyticsSummary, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := s.feedback.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsSummary{
		TotalTickets:   len(tickets),
		TeamMembers:    len(users),
		AverageRating:  AverageRating(feedback),
		ResolutionRate: ResolutionRate(tickets),
		ByStatus:       AggregateByStatus(tickets),
		ByCategory:     AggregateByCategory(tickets),
		TeamLoad:       AssignedCounts(tickets, users),
	}, nil
}
