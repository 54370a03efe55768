package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supportcrm/dashboard-service/internal/api/dto"
	"github.com/supportcrm/dashboard-service/internal/service"
)

// AdminHandler exposes the admin-only analytics and audit views.
type AdminHandler struct {
	analytics *service.AnalyticsService
	audit     *service.AuditRecorder
}

// NewAdminHandler constructs handler.
func NewAdminHandler(analytics *service.AnalyticsService, audit *service.AuditRecorder) *AdminHandler {
	return &AdminHandler{analytics: analytics, audit: audit}
}

// Summary GET /api/admin/summary.
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.UserContext())
	if err != nil {
		return err
	}

	teamLoad := make([]dto.MemberLoadResponse, 0, len(summary.TeamLoad))
	for _, load := range summary.TeamLoad {
		teamLoad = append(teamLoad, dto.MemberLoadResponse{
			User:          userResponse(&load.User),
			AssignedCount: load.AssignedCount,
		})
	}
	return c.JSON(fiber.Map{"data": dto.SummaryResponse{
		TotalTickets:   summary.TotalTickets,
		TeamMembers:    summary.TeamMembers,
		AverageRating:  summary.AverageRating,
		ResolutionRate: summary.ResolutionRate,
		ByStatus:       summary.ByStatus,
		ByCategory:     summary.ByCategory,
		TeamLoad:       teamLoad,
	}})
}

// AuditTrail GET /api/admin/audit.
func (h *AdminHandler) AuditTrail(c *fiber.Ctx) error {
	entries, err := h.audit.ListAuditTrail(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.AuditEntryResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			UserID:    entry.UserID,
			TicketID:  entry.TicketID,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
