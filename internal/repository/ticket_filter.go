package repository

// Recognized Status values. Anything else means "no status filter".
const (
	StatusDone       = "done"
	StatusUnclaimed  = "unclaimed"
	StatusInProgress = "inprogress"
	StatusAll        = "all"
)

type TicketFilter struct {
	CustomerID string // restrict to one customer's tickets; empty = all
	Status     string // done | unclaimed | inprogress | all
	Search     string // substring match on description
}

// Matches reports whether a ticket satisfies the filter's status predicate.
// Shared by the in-memory fake and by tests; the postgres repo expresses the
// same predicate in SQL.
func StatusMatches(status string, hasEmployee, completed bool) bool {
	switch status {
	case StatusDone:
		return completed
	case StatusUnclaimed:
		return !hasEmployee
	case StatusInProgress:
		return hasEmployee && !completed
	default:
		// "all", empty, and unrecognized values pass through
		return true
	}
}
