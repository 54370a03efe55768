package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/events"
	"github.com/supportcrm/dashboard-service/internal/repository"
)

// AuditRecorder turns domain events into audit trail entries.
type AuditRecorder struct {
	dispatcher events.Dispatcher
	audit      repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditRecorder creates the recorder.
func NewAuditRecorder(dispatcher events.Dispatcher, audit repository.AuditRepository, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{dispatcher: dispatcher, audit: audit, logger: logger}
}

// RegisterHandlers subscribes to every audited event type.
func (a *AuditRecorder) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventTicketCreated, a.record(domain.AuditTicketCreated))
	a.dispatcher.Subscribe(events.EventStatusChanged, a.record(domain.AuditStatusChanged))
	a.dispatcher.Subscribe(events.EventTicketAssigned, a.record(domain.AuditTicketAssigned))
	a.dispatcher.Subscribe(events.EventCommentAdded, a.record(domain.AuditCommentAdded))
	a.dispatcher.Subscribe(events.EventFeedbackSubmitted, a.record(domain.AuditFeedbackSubmitted))
}

func (a *AuditRecorder) record(action domain.AuditAction) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		entry := &domain.AuditLog{
			ID:        uuid.NewString(),
			Action:    action,
			UserID:    event.ActorID,
			TicketID:  event.TicketID,
			Details:   detailsFor(event),
			CreatedAt: event.Timestamp,
		}
		if err := a.audit.Append(ctx, entry); err != nil {
			a.logger.Warn("audit append failed", zap.String("ticket_id", event.TicketID), zap.Error(err))
			return err
		}
		return nil
	}
}

func detailsFor(event events.Event) string {
	switch payload := event.Payload.(type) {
	case events.TicketCreatedPayload:
		return fmt.Sprintf("created %q for %s", payload.Title, payload.Customer)
	case events.StatusChangedPayload:
		return fmt.Sprintf("status %s -> %s", payload.OldStatus, payload.NewStatus)
	case events.TicketAssignedPayload:
		if payload.AssigneeID == nil {
			return "unassigned"
		}
		return fmt.Sprintf("assigned to %s", payload.AssigneeName)
	case events.CommentAddedPayload:
		if payload.Internal {
			return "internal comment added"
		}
		return "comment added"
	case events.FeedbackSubmittedPayload:
		return fmt.Sprintf("feedback rating %d, ticket closed", payload.Rating)
	}
	return ""
}

// ListAuditTrail returns the recorded entries in append order.
func (a *AuditRecorder) ListAuditTrail(ctx context.Context) ([]domain.AuditLog, error) {
	return a.audit.List(ctx)
}
