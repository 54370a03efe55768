package dto

import (
	"time"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// CreateTicketRequest carries the ticket creation form. Every field is
// required; whitespace-only values are rejected by the service after
// trimming.
type CreateTicketRequest struct {
	Title         string                `json:"title" validate:"required"`
	Description   string                `json:"description" validate:"required"`
	Category      domain.TicketCategory `json:"category" validate:"required,oneof=bug feature support billing general"`
	Priority      domain.TicketPriority `json:"priority" validate:"required,oneof=critical high medium low"`
	CustomerName  string                `json:"customer_name" validate:"required"`
	CustomerEmail string                `json:"customer_email" validate:"required,email"`
}

// UpdateStatusRequest carries a direct status write.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status" validate:"required"`
}

// AssignTicketRequest carries an assignee change. "unassigned" clears the
// assignee.
type AssignTicketRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required"`
}

// CreateCommentRequest carries a new comment.
type CreateCommentRequest struct {
	Body     string `json:"body"`
	Internal bool   `json:"internal"`
}

// SubmitFeedbackRequest carries the post-resolution rating.
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// TicketResponse is the listing/summary projection of a ticket.
type TicketResponse struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      domain.TicketCategory `json:"category"`
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	CreatedBy     string                `json:"created_by"`
	AssigneeID    *string               `json:"assignee_id,omitempty"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CommentResponse is the wire shape of a comment log entry.
type CommentResponse struct {
	ID         string          `json:"id"`
	TicketID   string          `json:"ticket_id"`
	AuthorID   string          `json:"author_id"`
	AuthorName string          `json:"author_name"`
	AuthorRole domain.UserRole `json:"author_role"`
	Body       string          `json:"body"`
	Internal   bool            `json:"internal"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FeedbackResponse is the wire shape of a feedback entry.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketDetailResponse combines a ticket with its comment log, optional
// feedback, and the suggested next status.
type TicketDetailResponse struct {
	Ticket     TicketResponse       `json:"ticket"`
	Comments   []CommentResponse    `json:"comments"`
	Feedback   *FeedbackResponse    `json:"feedback,omitempty"`
	NextStatus *domain.TicketStatus `json:"next_status,omitempty"`
}

// ListMeta reports listing totals.
type ListMeta struct {
	Total   int `json:"total"`
	Matched int `json:"matched"`
}

// StatusUpdateResponse reports the new ticket state and whether the
// client should open the feedback prompt.
type StatusUpdateResponse struct {
	Ticket            TicketResponse `json:"ticket"`
	FeedbackRequested bool           `json:"feedback_requested"`
}
