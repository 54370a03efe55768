package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// Stores bundles every in-memory repository for wiring and seeding.
type Stores struct {
	Tickets  TicketRepository
	Comments CommentRepository
	Feedback FeedbackRepository
	Users    UserRepository
	Audit    AuditRepository
}

// NewStores builds a full set of empty repositories.
func NewStores() *Stores {
	return &Stores{
		Tickets:  NewTicketRepository(),
		Comments: NewCommentRepository(),
		Feedback: NewFeedbackRepository(),
		Users:    NewUserRepository(),
		Audit:    NewAuditRepository(),
	}
}

// SeedDemoData loads the demo dataset: a user roster, tickets spread over
// every status and category, comment threads with internal notes, and
// feedback for tickets that went through resolution. Tickets are created
// oldest first so the newest ends up at the head of the listing.
func SeedDemoData(ctx context.Context, s *Stores) error {
	now := time.Now()

	users := []domain.User{
		{ID: "user-1", Name: "Admin User", Email: "admin@gmail.com", Role: domain.UserRoleAdmin},
		{ID: "user-2", Name: "Sarah Chen", Email: "sarah.chen@company.com", Role: domain.UserRoleSupport},
		{ID: "user-3", Name: "Mike Torres", Email: "mike.torres@company.com", Role: domain.UserRoleSupport},
		{ID: "user-4", Name: "Priya Patel", Email: "priya.patel@company.com", Role: domain.UserRoleQA},
		{ID: "user-5", Name: "James Wilson", Email: "james.wilson@acme.io", Role: domain.UserRoleCustomer},
		{ID: "user-6", Name: "Elena Rodriguez", Email: "elena@northwind.com", Role: domain.UserRoleCustomer},
	}
	for i := range users {
		if err := s.Users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	assignee := func(id string) *string { return &id }
	tickets := []domain.Ticket{
		{
			ID: "TKT-1001", Title: "Login page returns 500 after password reset",
			Description:  "Customer cannot log in after resetting their password; the login endpoint responds with an internal error.",
			Category:     domain.TicketCategoryBug, Priority: domain.TicketPriorityCritical,
			Status:       domain.TicketStatusClosed, CreatedBy: "user-1", AssigneeID: assignee("user-2"),
			CustomerName: "James Wilson", CustomerEmail: "james.wilson@acme.io",
			CreatedAt:    now.Add(-21 * 24 * time.Hour), UpdatedAt: now.Add(-19 * 24 * time.Hour),
		},
		{
			ID: "TKT-1002", Title: "Invoice shows wrong billing period",
			Description:  "The March invoice lists February dates in the line items.",
			Category:     domain.TicketCategoryBilling, Priority: domain.TicketPriorityHigh,
			Status:       domain.TicketStatusClosed, CreatedBy: "user-1", AssigneeID: assignee("user-3"),
			CustomerName: "Elena Rodriguez", CustomerEmail: "elena@northwind.com",
			CreatedAt:    now.Add(-14 * 24 * time.Hour), UpdatedAt: now.Add(-12 * 24 * time.Hour),
		},
		{
			ID: "TKT-1003", Title: "Add CSV export to the reports screen",
			Description:  "Customers want to pull monthly usage reports into their own tooling.",
			Category:     domain.TicketCategoryFeature, Priority: domain.TicketPriorityMedium,
			Status:       domain.TicketStatusUnderQA, CreatedBy: "user-1", AssigneeID: assignee("user-4"),
			CustomerName: "James Wilson", CustomerEmail: "james.wilson@acme.io",
			CreatedAt:    now.Add(-10 * 24 * time.Hour), UpdatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: "TKT-1004", Title: "Dashboard widgets load slowly on Safari",
			Description:  "Initial render takes over ten seconds on Safari 17; fine on Chrome.",
			Category:     domain.TicketCategoryBug, Priority: domain.TicketPriorityHigh,
			Status:       domain.TicketStatusInProgress, CreatedBy: "user-1", AssigneeID: assignee("user-2"),
			CustomerName: "Elena Rodriguez", CustomerEmail: "elena@northwind.com",
			CreatedAt:    now.Add(-7 * 24 * time.Hour), UpdatedAt: now.Add(-1 * 24 * time.Hour),
		},
		{
			ID: "TKT-1005", Title: "How do I add a teammate to my workspace?",
			Description:  "Customer is asking for the steps to invite another member with viewer permissions.",
			Category:     domain.TicketCategorySupport, Priority: domain.TicketPriorityLow,
			Status:       domain.TicketStatusOpen, CreatedBy: "user-1",
			CustomerName: "James Wilson", CustomerEmail: "james.wilson@acme.io",
			CreatedAt:    now.Add(-3 * 24 * time.Hour), UpdatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID: "TKT-1006", Title: "Charged twice for the annual plan",
			Description:  "Two identical charges on the same card within five minutes.",
			Category:     domain.TicketCategoryBilling, Priority: domain.TicketPriorityCritical,
			Status:       domain.TicketStatusResolved, CreatedBy: "user-1", AssigneeID: assignee("user-3"),
			CustomerName: "Elena Rodriguez", CustomerEmail: "elena@northwind.com",
			CreatedAt:    now.Add(-2 * 24 * time.Hour), UpdatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID: "TKT-1007", Title: "Dark mode for the customer portal",
			Description:  "Several customers have asked for a dark theme option.",
			Category:     domain.TicketCategoryFeature, Priority: domain.TicketPriorityLow,
			Status:       domain.TicketStatusOpen, CreatedBy: "user-1",
			CustomerName: "James Wilson", CustomerEmail: "james.wilson@acme.io",
			CreatedAt:    now.Add(-24 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "TKT-1008", Title: "General question about data retention",
			Description:  "Customer wants to know how long deleted records are kept before purge.",
			Category:     domain.TicketCategoryGeneral, Priority: domain.TicketPriorityMedium,
			Status:       domain.TicketStatusOpen, CreatedBy: "user-1",
			CustomerName: "Elena Rodriguez", CustomerEmail: "elena@northwind.com",
			CreatedAt:    now.Add(-4 * time.Hour), UpdatedAt: now.Add(-4 * time.Hour),
		},
	}
	for i := range tickets {
		if err := s.Tickets.Create(ctx, &tickets[i]); err != nil {
			return err
		}
	}

	comments := []domain.Comment{
		{
			ID: uuid.NewString(), TicketID: "TKT-1001",
			AuthorID: "user-2", AuthorName: "Sarah Chen", AuthorRole: domain.UserRoleSupport,
			Body:      "Reproduced on staging, the reset token table had a stale index. Fix deployed.",
			Internal:  false, CreatedAt: now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), TicketID: "TKT-1001",
			AuthorID: "user-2", AuthorName: "Sarah Chen", AuthorRole: domain.UserRoleSupport,
			Body:      "Root cause was the migration from sprint 42, flagging for the retro.",
			Internal:  true, CreatedAt: now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), TicketID: "TKT-1002",
			AuthorID: "user-3", AuthorName: "Mike Torres", AuthorRole: domain.UserRoleSupport,
			Body:      "Corrected the invoice and re-sent it. Please confirm it looks right now.",
			Internal:  false, CreatedAt: now.Add(-12 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), TicketID: "TKT-1003",
			AuthorID: "user-4", AuthorName: "Priya Patel", AuthorRole: domain.UserRoleQA,
			Body:      "Export works for reports under 10k rows, still verifying the streaming path.",
			Internal:  true, CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), TicketID: "TKT-1004",
			AuthorID: "user-2", AuthorName: "Sarah Chen", AuthorRole: domain.UserRoleSupport,
			Body:      "We can reproduce the slowdown, profiling the chart library now.",
			Internal:  false, CreatedAt: now.Add(-1 * 24 * time.Hour),
		},
	}
	for i := range comments {
		if err := s.Comments.Create(ctx, &comments[i]); err != nil {
			return err
		}
	}

	feedback := []domain.Feedback{
		{
			ID: uuid.NewString(), TicketID: "TKT-1001", Rating: 5,
			Comment:   "Fast turnaround, thank you!", CreatedAt: now.Add(-19 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), TicketID: "TKT-1002", Rating: 4,
			Comment:   "Resolved quickly, though it took two follow-ups.", CreatedAt: now.Add(-11 * 24 * time.Hour),
		},
	}
	for i := range feedback {
		if err := s.Feedback.Create(ctx, &feedback[i]); err != nil {
			return err
		}
	}

	return nil
}
