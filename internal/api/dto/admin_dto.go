package dto

import (
	"time"

	"github.com/supportcrm/dashboard-service/internal/domain"
)

// MemberLoadResponse pairs a team member with their assigned count.
type MemberLoadResponse struct {
	User          UserResponse `json:"user"`
	AssignedCount int          `json:"assigned_count"`
}

// SummaryResponse is the admin analytics snapshot. ByStatus carries every
// declared status; ByCategory only observed categories.
type SummaryResponse struct {
	TotalTickets   int                           `json:"total_tickets"`
	TeamMembers    int                           `json:"team_members"`
	AverageRating  float64                       `json:"average_rating"`
	ResolutionRate int                           `json:"resolution_rate"`
	ByStatus       map[domain.TicketStatus]int   `json:"by_status"`
	ByCategory     map[domain.TicketCategory]int `json:"by_category"`
	TeamLoad       []MemberLoadResponse          `json:"team_load"`
}

// AuditEntryResponse is one row of the audit trail.
type AuditEntryResponse struct {
	ID        string             `json:"id"`
	Action    domain.AuditAction `json:"action"`
	UserID    string             `json:"user_id"`
	TicketID  string             `json:"ticket_id"`
	Details   string             `json:"details,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
