package events

import (
	"time"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated     EventType = "ticket_created"
	EventStatusChanged     EventType = "ticket_status_changed"
	EventTicketAssigned    EventType = "ticket_assigned"
	EventCommentAdded      EventType = "ticket_comment_added"
	EventFeedbackSubmitted EventType = "ticket_feedback_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title    string                `json:"title"`
	Category domain.TicketCategory `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
	Customer string                `json:"customer"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID   *string `json:"assignee_id,omitempty"`
	AssigneeName string  `json:"assignee_name,omitempty"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   string `json:"comment_id"`
	Internal    bool   `json:"internal"`
	BodyPreview string `json:"body_preview"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	FeedbackID string `json:"feedback_id"`
	Rating     int    `json:"rating"`
}
