package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/api/dto"
	"github.com/supportcrm/dashboard-service/internal/domain"
	"github.com/supportcrm/dashboard-service/internal/repository"
	"github.com/supportcrm/dashboard-service/internal/service"
	"github.com/supportcrm/dashboard-service/internal/session"
	apperrors "github.com/supportcrm/dashboard-service/pkg/util"
)

// TicketsHandler manages the ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /api/tickets?search=&status=&priority=.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter := repository.TicketFilter{
		Search:   c.Query("search"),
		Status:   domain.TicketStatus(c.Query("status")),
		Priority: domain.TicketPriority(c.Query("priority")),
	}
	tickets, err := h.service.ListTickets(c.UserContext(), filter)
	if err != nil {
		return err
	}
	total, err := h.service.CountTickets(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{
		"data": items,
		"meta": dto.ListMeta{Total: total, Matched: len(items)},
	})
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, err := h.service.CreateTicket(c.UserContext(), *actor, service.TicketCreateInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// TicketStats GET /api/tickets/stats.
func (h *TicketsHandler) TicketStats(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.UserContext(), repository.TicketFilter{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": service.AggregateByStatus(tickets)})
}

// GetTicket GET /api/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	viewer, err := requireUser(c)
	if err != nil {
		return err
	}
	detail, err := h.service.GetTicketDetail(c.UserContext(), *viewer, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetailResponse(detail)})
}

// UpdateStatus PUT /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, feedbackRequested, err := h.service.UpdateStatus(c.UserContext(), *actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatusUpdateResponse{
		Ticket:            ticketResponse(ticket),
		FeedbackRequested: feedbackRequested,
	}})
}

// AssignTicket PUT /api/tickets/:id/assignee.
func (h *TicketsHandler) AssignTicket(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, err := h.service.AssignTicket(c.UserContext(), *actor, c.Params("id"), req.AssigneeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// AddComment POST /api/tickets/:id/comments. The comment log accepts any
// record; rejecting blank bodies is this caller's job.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	author, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Body) == "" {
		return apperrors.NewValidationError("body required", nil)
	}

	comment, err := h.service.AddComment(c.UserContext(), *author, c.Params("id"), req.Body, req.Internal)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": commentResponse(comment)})
}

// SubmitFeedback POST /api/tickets/:id/feedback.
func (h *TicketsHandler) SubmitFeedback(c *fiber.Ctx) error {
	actor, err := requireUser(c)
	if err != nil {
		return err
	}
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	feedback, err := h.service.SubmitFeedback(c.UserContext(), *actor, c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feedbackResponse(feedback)})
}

func requireUser(c *fiber.Ctx) (*domain.User, error) {
	user, ok := session.UserFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("login required")
	}
	return user, nil
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category,
		Priority:      t.Priority,
		Status:        t.Status,
		CreatedBy:     t.CreatedBy,
		AssigneeID:    t.AssigneeID,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func ticketDetailResponse(detail *service.TicketDetail) dto.TicketDetailResponse {
	comments := make([]dto.CommentResponse, 0, len(detail.Comments))
	for i := range detail.Comments {
		comments = append(comments, commentResponse(&detail.Comments[i]))
	}
	resp := dto.TicketDetailResponse{
		Ticket:     ticketResponse(&detail.Ticket),
		Comments:   comments,
		NextStatus: detail.NextStatus,
	}
	if detail.Feedback != nil {
		fb := feedbackResponse(detail.Feedback)
		resp.Feedback = &fb
	}
	return resp
}

func commentResponse(comment *domain.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:         comment.ID,
		TicketID:   comment.TicketID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		AuthorRole: comment.AuthorRole,
		Body:       comment.Body,
		Internal:   comment.Internal,
		CreatedAt:  comment.CreatedAt,
	}
}

func feedbackResponse(feedback *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:        feedback.ID,
		TicketID:  feedback.TicketID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}
