package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

func TestTicketRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	first := &domain.Ticket{Title: "first", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "TKT-1001", first.ID)

	second := &domain.Ticket{Title: "second", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "TKT-1002", second.ID)
}

func TestTicketRepository_CounterAdvancesPastSeededIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	seeded := &domain.Ticket{ID: "TKT-2040", Title: "seeded", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, seeded))

	next := &domain.Ticket{Title: "fresh", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, "TKT-2041", next.ID)
}

func TestTicketRepository_NewestFirstOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	for _, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: title, Status: domain.TicketStatusOpen}))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "oldest", all[2].Title)
}

func TestTicketRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	ticket := &domain.Ticket{Title: "lookup", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, ticket))

	found, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.Title, found.Title)

	_, err = repo.GetByID(ctx, "TKT-9999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketRepository_UpdateUnknownTicket(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	err := repo.Update(ctx, &domain.Ticket{ID: "TKT-404", Title: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTicketRepository_DuplicateSeedID(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	require.NoError(t, repo.Create(ctx, &domain.Ticket{ID: "TKT-1100", Title: "a"}))
	err := repo.Create(ctx, &domain.Ticket{ID: "TKT-1100", Title: "b"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestTicketRepository_ListWithFilterUsesStoreOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository()

	require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: "alpha report", Status: domain.TicketStatusOpen}))
	require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: "beta report", Status: domain.TicketStatusClosed}))
	require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: "gamma report", Status: domain.TicketStatusOpen}))

	open, err := repo.ListWithFilter(ctx, TicketFilter{Status: domain.TicketStatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "gamma report", open[0].Title)
	assert.Equal(t, "alpha report", open[1].Title)
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()
	require.NoError(t, SeedDemoData(ctx, stores))

	tickets, err := stores.Tickets.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 8)

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 6)

	admin, err := stores.Users.GetByEmail(ctx, "admin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, admin.Role)

	for _, ticket := range tickets {
		assert.True(t, ticket.Status.IsValid(), "ticket %s has invalid status", ticket.ID)
		assert.False(t, ticket.UpdatedAt.Before(ticket.CreatedAt), "ticket %s updated before created", ticket.ID)
	}

	// Feedback only exists for tickets that completed the resolution flow.
	feedback, err := stores.Feedback.List(ctx)
	require.NoError(t, err)
	for _, fb := range feedback {
		ticket, err := stores.Tickets.GetByID(ctx, fb.TicketID)
		require.NoError(t, err)
		assert.Equal(t, domain.TicketStatusClosed, ticket.Status)
		assert.GreaterOrEqual(t, fb.Rating, 1)
		assert.LessOrEqual(t, fb.Rating, 5)
	}
}
