package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/events"
	"github.com/supportcrm/dashboard-service/internal/repository"
	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

func newTestTicketService(t *testing.T) (*TicketService, *repository.Stores, events.Dispatcher) {
	t.Helper()
	stores := repository.NewStores()
	require.NoError(t, repository.SeedDemoData(context.Background(), stores))
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewTicketService(TicketDependencies{
		TicketRepo:   stores.Tickets,
		CommentRepo:  stores.Comments,
		FeedbackRepo: stores.Feedback,
		UserRepo:     stores.Users,
		Dispatcher:   dispatcher,
	})
	return svc, stores, dispatcher
}

func adminActor() domain.User {
	return domain.User{ID: "user-1", Name: "Admin User", Role: domain.UserRoleAdmin}
}

func requireDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestCreateTicket_ValidInput(t *testing.T) {
	svc, stores, _ := newTestTicketService(t)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, adminActor(), TicketCreateInput{
		Title:         "  Printer keeps jamming  ",
		Description:   "Tray 2 jams on every duplex job",
		Category:      domain.TicketCategorySupport,
		Priority:      domain.TicketPriorityMedium,
		CustomerName:  "James Wilson",
		CustomerEmail: "james.wilson@acme.io",
	})
	require.NoError(t, err)

	assert.Equal(t, "TKT-1009", ticket.ID)
	assert.Equal(t, "Printer keeps jamming", ticket.Title, "title is trimmed")
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "user-1", ticket.CreatedBy)
	assert.True(t, ticket.UpdatedAt.Equal(ticket.CreatedAt))

	all, err := stores.Tickets.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, all[0].ID, "new ticket lands at the head of the list")
}

func TestCreateTicket_ValidationWritesNothing(t *testing.T) {
	svc, stores, _ := newTestTicketService(t)
	ctx := context.Background()

	before, err := stores.Tickets.List(ctx)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input TicketCreateInput
	}{
		{
			name: "blank title",
			input: TicketCreateInput{
				Title: "   ", Description: "d", Category: domain.TicketCategoryBug,
				Priority: domain.TicketPriorityLow, CustomerName: "c", CustomerEmail: "c@x.io",
			},
		},
		{
			name:  "everything missing",
			input: TicketCreateInput{Category: domain.TicketCategoryBug, Priority: domain.TicketPriorityLow},
		},
		{
			name: "unknown category",
			input: TicketCreateInput{
				Title: "t", Description: "d", Category: "outage",
				Priority: domain.TicketPriorityLow, CustomerName: "c", CustomerEmail: "c@x.io",
			},
		},
		{
			name: "unknown priority",
			input: TicketCreateInput{
				Title: "t", Description: "d", Category: domain.TicketCategoryBug,
				Priority: "urgent", CustomerName: "c", CustomerEmail: "c@x.io",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ticket, err := svc.CreateTicket(ctx, adminActor(), tc.input)
			assert.Nil(t, ticket)
			requireDomainErrorCode(t, err, "VALIDATION_FAILED")
		})
	}

	after, err := stores.Tickets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "rejected input must not create records")
}

func TestUpdateStatus_AllowsArbitraryJumps(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	// TKT-1005 is open; jumping straight to closed skips three steps of
	// the canonical flow and is still accepted.
	ticket, feedbackRequested, err := svc.UpdateStatus(ctx, adminActor(), "TKT-1005", domain.TicketStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, ticket.Status)
	assert.False(t, feedbackRequested)

	// And moving backwards works too.
	ticket, feedbackRequested, err = svc.UpdateStatus(ctx, adminActor(), "TKT-1005", domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.False(t, feedbackRequested)
}

func TestUpdateStatus_ResolvedRequestsFeedback(t *testing.T) {
	svc, stores, _ := newTestTicketService(t)
	ctx := context.Background()

	before, err := stores.Tickets.GetByID(ctx, "TKT-1004")
	require.NoError(t, err)

	ticket, feedbackRequested, err := svc.UpdateStatus(ctx, adminActor(), "TKT-1004", domain.TicketStatusResolved)
	require.NoError(t, err)
	assert.True(t, feedbackRequested)
	assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
	assert.True(t, ticket.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestTicketService(t)

	_, _, err := svc.UpdateStatus(context.Background(), adminActor(), "TKT-1005", "archived")
	requireDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUpdateStatus_UnknownTicket(t *testing.T) {
	svc, _, _ := newTestTicketService(t)

	_, _, err := svc.UpdateStatus(context.Background(), adminActor(), "TKT-9999", domain.TicketStatusOpen)
	requireDomainErrorCode(t, err, "NOT_FOUND")
}

func TestAssignTicket(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	ticket, err := svc.AssignTicket(ctx, adminActor(), "TKT-1005", "user-2")
	require.NoError(t, err)
	require.NotNil(t, ticket.AssigneeID)
	assert.Equal(t, "user-2", *ticket.AssigneeID)

	// QA members are assignable staff too.
	ticket, err = svc.AssignTicket(ctx, adminActor(), "TKT-1005", "user-4")
	require.NoError(t, err)
	require.NotNil(t, ticket.AssigneeID)
	assert.Equal(t, "user-4", *ticket.AssigneeID)

	// The sentinel clears the assignment.
	ticket, err = svc.AssignTicket(ctx, adminActor(), "TKT-1005", UnassignedSentinel)
	require.NoError(t, err)
	assert.Nil(t, ticket.AssigneeID)
}

func TestAssignTicket_RejectsCustomersAndUnknownUsers(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	_, err := svc.AssignTicket(ctx, adminActor(), "TKT-1005", "user-5")
	requireDomainErrorCode(t, err, "VALIDATION_FAILED")

	_, err = svc.AssignTicket(ctx, adminActor(), "TKT-1005", "user-404")
	requireDomainErrorCode(t, err, "NOT_FOUND")
}

func TestSubmitFeedback_ForcesClosed(t *testing.T) {
	svc, stores, _ := newTestTicketService(t)
	ctx := context.Background()

	// TKT-1006 is resolved and has no feedback yet.
	fb, err := svc.SubmitFeedback(ctx, adminActor(), "TKT-1006", 5, "Refund arrived same day.")
	require.NoError(t, err)
	assert.Equal(t, 5, fb.Rating)

	ticket, err := stores.Tickets.GetByID(ctx, "TKT-1006")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, ticket.Status)

	stored, err := stores.Feedback.GetByTicket(ctx, "TKT-1006")
	require.NoError(t, err)
	assert.Equal(t, fb.ID, stored.ID)
}

func TestSubmitFeedback_SecondSubmissionConflicts(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	// TKT-1001 already carries seeded feedback.
	_, err := svc.SubmitFeedback(ctx, adminActor(), "TKT-1001", 3, "")
	requireDomainErrorCode(t, err, "CONFLICT")
}

func TestSubmitFeedback_RatingBounds(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 42} {
		_, err := svc.SubmitFeedback(ctx, adminActor(), "TKT-1006", rating, "")
		requireDomainErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestAddComment_DenormalizesAuthor(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	author := domain.User{ID: "user-4", Name: "Priya Patel", Role: domain.UserRoleQA}
	comment, err := svc.AddComment(ctx, author, "TKT-1003", "  Streaming export verified.  ", true)
	require.NoError(t, err)

	assert.Equal(t, "Streaming export verified.", comment.Body)
	assert.Equal(t, "user-4", comment.AuthorID)
	assert.Equal(t, "Priya Patel", comment.AuthorName)
	assert.Equal(t, domain.UserRoleQA, comment.AuthorRole)
	assert.True(t, comment.Internal)
	assert.NotEmpty(t, comment.ID)
}

func TestGetTicketDetail_FiltersByViewerRole(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	// TKT-1001 seeds one public and one internal comment.
	support := domain.User{ID: "user-2", Role: domain.UserRoleSupport}
	detail, err := svc.GetTicketDetail(ctx, support, "TKT-1001")
	require.NoError(t, err)
	assert.Len(t, detail.Comments, 2)
	require.NotNil(t, detail.Feedback)
	assert.Equal(t, 5, detail.Feedback.Rating)
	assert.Nil(t, detail.NextStatus, "closed is terminal")

	customer := domain.User{ID: "user-5", Role: domain.UserRoleCustomer}
	detail, err = svc.GetTicketDetail(ctx, customer, "TKT-1001")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.False(t, detail.Comments[0].Internal)
}

func TestGetTicketDetail_NextStatusFollowsFlow(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	detail, err := svc.GetTicketDetail(ctx, adminActor(), "TKT-1004")
	require.NoError(t, err)
	require.NotNil(t, detail.NextStatus)
	assert.Equal(t, domain.TicketStatusUnderQA, *detail.NextStatus)
	assert.Nil(t, detail.Feedback)
}

func TestListTickets_AppliesFilter(t *testing.T) {
	svc, _, _ := newTestTicketService(t)
	ctx := context.Background()

	open, err := svc.ListTickets(ctx, repository.TicketFilter{Status: domain.TicketStatusOpen})
	require.NoError(t, err)
	assert.Len(t, open, 3)

	total, err := svc.CountTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, total)
}

func TestAuditRecorder_OneEntryPerEvent(t *testing.T) {
	svc, stores, dispatcher := newTestTicketService(t)
	ctx := context.Background()

	recorder := NewAuditRecorder(dispatcher, stores.Audit, zap.NewNop())
	recorder.RegisterHandlers()

	actor := adminActor()
	_, err := svc.CreateTicket(ctx, actor, TicketCreateInput{
		Title: "t", Description: "d", Category: domain.TicketCategoryBug,
		Priority: domain.TicketPriorityLow, CustomerName: "c", CustomerEmail: "c@x.io",
	})
	require.NoError(t, err)
	_, _, err = svc.UpdateStatus(ctx, actor, "TKT-1005", domain.TicketStatusInProgress)
	require.NoError(t, err)
	_, err = svc.AssignTicket(ctx, actor, "TKT-1005", "user-2")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, actor, "TKT-1005", "on it", false)
	require.NoError(t, err)
	_, err = svc.SubmitFeedback(ctx, actor, "TKT-1006", 4, "")
	require.NoError(t, err)

	trail, err := recorder.ListAuditTrail(ctx)
	require.NoError(t, err)
	require.Len(t, trail, 5)

	actions := make([]domain.AuditAction, 0, len(trail))
	for _, entry := range trail {
		actions = append(actions, entry.Action)
		assert.Equal(t, actor.ID, entry.UserID)
		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Details)
		assert.WithinDuration(t, time.Now(), entry.CreatedAt, time.Minute)
	}
	assert.Equal(t, []domain.AuditAction{
		domain.AuditTicketCreated,
		domain.AuditStatusChanged,
		domain.AuditTicketAssigned,
		domain.AuditCommentAdded,
		domain.AuditFeedbackSubmitted,
	}, actions)
}

func TestAuditRecorder_NoEntryWithoutEvent(t *testing.T) {
	// Validation failures publish no event, so the trail stays empty.
	svc, stores, dispatcher := newTestTicketService(t)
	ctx := context.Background()

	recorder := NewAuditRecorder(dispatcher, stores.Audit, zap.NewNop())
	recorder.RegisterHandlers()

	_, err := svc.CreateTicket(ctx, adminActor(), TicketCreateInput{})
	require.Error(t, err)

	trail, err := recorder.ListAuditTrail(ctx)
	require.NoError(t, err)
	assert.Empty(t, trail)
}
