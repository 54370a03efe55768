package domain

import "time"

// Comment is a single entry in a ticket's append-only comment log.
// Author identity is denormalized at creation time and the record is
// immutable afterwards; ordering is insertion order.
type Comment struct {
	ID         string
	TicketID   string
	AuthorID   string
	AuthorName string
	AuthorRole UserRole
	Body       string
	Internal   bool
	CreatedAt  time.Time
}

// VisibleComments filters a comment sequence for a viewer role. Customers
// never see internal comments; every other role sees the full log.
func VisibleComments(comments []Comment, viewer UserRole) []Comment {
	if viewer != UserRoleCustomer {
		return comments
	}
	visible := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if c.Internal {
			continue
		}
		visible = append(visible, c)
	}
	return visible
}
