package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/events"
	"github.com/supportcrm/dashboard-service/internal/repository"
	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

// UnassignedSentinel clears a ticket's assignee when passed to AssignTicket.
const UnassignedSentinel = "unassigned"

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	feedback   repository.FeedbackRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	CommentRepo  repository.CommentRepository
	FeedbackRepo repository.FeedbackRepository
	UserRepo     repository.UserRepository
	Dispatcher   events.Dispatcher
}

// TicketCreateInput describes the ticket creation payload. All fields are
// required and must be non-empty after trimming.
type TicketCreateInput struct {
	Title         string
	Description   string
	Category      domain.TicketCategory
	Priority      domain.TicketPriority
	CustomerName  string
	CustomerEmail string
}

// TicketDetail is the full view of one ticket: the record, its comment
// log already filtered for the viewer's role, the feedback entry if one
// exists, and the suggested next step in the status flow.
type TicketDetail struct {
	Ticket     domain.Ticket
	Comments   []domain.Comment
	Feedback   *domain.Feedback
	NextStatus *domain.TicketStatus
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		feedback:   deps.FeedbackRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket validates the input and stores a new open ticket. Nothing
// is written when validation fails.
func (s *TicketService) CreateTicket(ctx context.Context, actor domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)

	missing := map[string]any{}
	if input.Title == "" {
		missing["title"] = "required"
	}
	if input.Description == "" {
		missing["description"] = "required"
	}
	if input.CustomerName == "" {
		missing["customer_name"] = "required"
	}
	if input.CustomerEmail == "" {
		missing["customer_email"] = "required"
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", missing)
	}
	if !input.Category.IsValid() {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}
	if !input.Priority.IsValid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": input.Priority})
	}

	now := time.Now()
	ticket := &domain.Ticket{
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      input.Priority,
		Status:        domain.TicketStatusOpen,
		CreatedBy:     actor.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Category: ticket.Category,
			Priority: ticket.Priority,
			Customer: ticket.CustomerName,
		},
	})
	return ticket, nil
}

// ListTickets returns the tickets matching the dashboard filter, in store
// order (newest first).
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, filter)
}

// CountTickets returns the total number of tickets in the store.
func (s *TicketService) CountTickets(ctx context.Context) (int, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// GetTicketDetail loads a ticket with its comment log filtered for the
// viewer's role.
func (s *TicketService) GetTicketDetail(ctx context.Context, viewer domain.User, ticketID string) (*TicketDetail, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}

	detail := &TicketDetail{
		Ticket:   *ticket,
		Comments: domain.VisibleComments(comments, viewer.Role),
	}
	if next, ok := domain.NextStatus(ticket.Status); ok {
		detail.NextStatus = &next
	}
	fb, err := s.feedback.GetByTicket(ctx, ticket.ID)
	switch {
	case err == nil:
		detail.Feedback = fb
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, err
	}
	return detail, nil
}

// UpdateStatus writes the requested status directly. Only enum membership
// is checked; the canonical progression is advisory and any jump is
// allowed. The returned flag signals that a feedback prompt should be
// shown (ticket just entered resolved).
func (s *TicketService) UpdateStatus(ctx context.Context, actor domain.User, ticketID string, status domain.TicketStatus) (*domain.Ticket, bool, error) {
	if !status.IsValid() {
		return nil, false, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, false, err
	}

	oldStatus := ticket.Status
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, false, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventStatusChanged,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.StatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, status == domain.TicketStatusResolved, nil
}

// AssignTicket sets or clears the assignee. The sentinel "unassigned" (or
// an empty id) clears it; otherwise the assignee must be a staff user.
func (s *TicketService) AssignTicket(ctx context.Context, actor domain.User, ticketID, assigneeID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	var assigneeName string
	if assigneeID == "" || assigneeID == UnassignedSentinel {
		ticket.AssigneeID = nil
	} else {
		assignee, err := s.users.GetByID(ctx, assigneeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NewNotFound("user", map[string]any{"id": assigneeID})
			}
			return nil, apperrors.MapError(err)
		}
		if !assignee.Role.IsStaff() {
			return nil, apperrors.NewValidationError("assignee must be a staff member", map[string]any{"id": assigneeID})
		}
		ticket.AssigneeID = &assignee.ID
		assigneeName = assignee.Name
	}

	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.TicketAssignedPayload{
			AssigneeID:   ticket.AssigneeID,
			AssigneeName: assigneeName,
		},
	})
	return ticket, nil
}

// AddComment appends an immutable comment to the ticket's log. The author
// identity is denormalized into the record at creation time. Body
// emptiness is the caller's concern; the log itself accepts any input.
func (s *TicketService) AddComment(ctx context.Context, author domain.User, ticketID, body string, internal bool) (*domain.Comment, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:         uuid.NewString(),
		TicketID:   ticket.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		AuthorRole: author.Role,
		Body:       strings.TrimSpace(body),
		Internal:   internal,
		CreatedAt:  time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventCommentAdded,
		TicketID: ticket.ID,
		ActorID:  author.ID,
		Payload: events.CommentAddedPayload{
			CommentID:   comment.ID,
			Internal:    comment.Internal,
			BodyPreview: stringPreview(comment.Body, 120),
		},
	})
	return comment, nil
}

// SubmitFeedback records the post-resolution rating and forces the final
// status to closed, overriding whatever the ticket currently holds. A
// second submission for the same ticket is a conflict.
func (s *TicketService) SubmitFeedback(ctx context.Context, actor domain.User, ticketID string, rating int, comment string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		ID:        uuid.NewString(),
		TicketID:  ticket.ID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, apperrors.NewConflict("feedback already submitted for this ticket", map[string]any{"ticket_id": ticket.ID})
		}
		return nil, apperrors.MapError(err)
	}

	ticket.Status = domain.TicketStatusClosed
	ticket.UpdatedAt = time.Now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventFeedbackSubmitted,
		TicketID: ticket.ID,
		ActorID:  actor.ID,
		Payload: events.FeedbackSubmittedPayload{
			FeedbackID: feedback.ID,
			Rating:     feedback.Rating,
		},
	})
	return feedback, nil
}

func (s *TicketService) getTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
