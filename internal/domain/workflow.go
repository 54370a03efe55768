package domain

// StatusFlow is the canonical linear progression of ticket status.
// The progression is advisory: status changes are direct field writes and
// the flow only feeds the "suggest next step" affordance. Enforcing it as
// a guarded state machine would change behavior.
var StatusFlow = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusUnderQA,
	TicketStatusResolved,
	TicketStatusClosed,
}

// NextStatus returns the status immediately following current in the
// canonical order. The second return is false when current is closed or
// not part of the flow.
func NextStatus(current TicketStatus) (TicketStatus, bool) {
	for i, status := range StatusFlow {
		if status == current {
			if i+1 < len(StatusFlow) {
				return StatusFlow[i+1], true
			}
			return "", false
		}
	}
	return "", false
}
