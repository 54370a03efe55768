package domain

import "time"

// AuditAction names a recorded ticket mutation.
type AuditAction string

const (
	AuditTicketCreated     AuditAction = "ticket_created"
	AuditStatusChanged     AuditAction = "status_changed"
	AuditTicketAssigned    AuditAction = "ticket_assigned"
	AuditCommentAdded      AuditAction = "comment_added"
	AuditFeedbackSubmitted AuditAction = "feedback_submitted"
)

// AuditLog records who did what to which ticket.
type AuditLog struct {
	ID        string
	Action    AuditAction
	UserID    string
	TicketID  string
	Details   string
	CreatedAt time.Time
}
