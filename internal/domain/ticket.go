package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusUnderQA    TicketStatus = "under-qa"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// AllStatuses returns every status in canonical lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusUnderQA,
		TicketStatusResolved,
		TicketStatusClosed,
	}
}

// IsValid reports whether the status is a declared enum value.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusUnderQA,
		TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency, orthogonal to status.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "critical"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityLow      TicketPriority = "low"
)

// AllPriorities returns every priority from most to least urgent.
func AllPriorities() []TicketPriority {
	return []TicketPriority{
		TicketPriorityCritical,
		TicketPriorityHigh,
		TicketPriorityMedium,
		TicketPriorityLow,
	}
}

// IsValid reports whether the priority is a declared enum value.
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityCritical, TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return true
	}
	return false
}

// TicketCategory classifies the nature of the request.
type TicketCategory string

const (
	TicketCategoryBug     TicketCategory = "bug"
	TicketCategoryFeature TicketCategory = "feature"
	TicketCategorySupport TicketCategory = "support"
	TicketCategoryBilling TicketCategory = "billing"
	TicketCategoryGeneral TicketCategory = "general"
)

// AllCategories returns every category in declaration order.
func AllCategories() []TicketCategory {
	return []TicketCategory{
		TicketCategoryBug,
		TicketCategoryFeature,
		TicketCategorySupport,
		TicketCategoryBilling,
		TicketCategoryGeneral,
	}
}

// IsValid reports whether the category is a declared enum value.
func (c TicketCategory) IsValid() bool {
	switch c {
	case TicketCategoryBug, TicketCategoryFeature, TicketCategorySupport,
		TicketCategoryBilling, TicketCategoryGeneral:
		return true
	}
	return false
}

// Ticket is the aggregate for customer support requests.
// IDs use the TKT-<number> format. UpdatedAt never precedes CreatedAt.
// Tickets are never physically deleted.
type Ticket struct {
	ID            string
	Title         string
	Description   string
	Category      TicketCategory
	Priority      TicketPriority
	Status        TicketStatus
	CreatedBy     string
	AssigneeID    *string
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
