package domain

import "time"

// Feedback is a post-resolution rating tied to exactly one ticket.
// Rating is an integer in 1..5; at most one Feedback exists per ticket.
type Feedback struct {
	ID        string
	TicketID  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
