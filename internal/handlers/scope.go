package handlers

import (
	"context"
	"net/url"
	"strings"

	"github.com/mvdutta/honey-rae-server/internal/middleware"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

// Caller is the authenticated identity, resolved once per request.
type Caller struct {
	UserID string
	Staff  bool
}

func callerFrom(ctx context.Context) Caller {
	uid, _ := utils.GetString(ctx, middleware.CtxUserID)
	return Caller{
		UserID: uid,
		Staff:  utils.GetBool(ctx, middleware.CtxStaff),
	}
}

// ticketScope builds the list filter a caller is allowed to see. Staff see
// every ticket and may narrow with the status/search query options; everyone
// else is pinned to their own customer record and the options are ignored.
func ticketScope(c Caller, customerID string, q url.Values) repository.TicketFilter {
	if !c.Staff {
		return repository.TicketFilter{CustomerID: customerID}
	}
	return repository.TicketFilter{
		Status: strings.TrimSpace(q.Get("status")),
		Search: strings.TrimSpace(q.Get("search")),
	}
}
