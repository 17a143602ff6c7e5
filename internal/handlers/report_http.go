package handlers

import (
	"context"
	"net/http"

	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

type ReportsHTTP struct {
	repo repository.TicketRepository
}

func NewReportsHTTP(r repository.TicketRepository) *ReportsHTTP { return &ReportsHTTP{repo: r} }

// GET /reports/summary
// Returns: { open, unclaimed, emergencyOpen }
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	type counters interface {
		CountOpen(ctx context.Context) (int, error)
		CountUnclaimed(ctx context.Context) (int, error)
		CountEmergencyOpen(ctx context.Context) (int, error)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// Fast path if the concrete repo supports counters
		if rr, ok := h.repo.(counters); ok {
			open, err := rr.CountOpen(r.Context())
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			unclaimed, err := rr.CountUnclaimed(r.Context())
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			emergency, err := rr.CountEmergencyOpen(r.Context())
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			utils.JSON(w, http.StatusOK, map[string]int{
				"open":          open,
				"unclaimed":     unclaimed,
				"emergencyOpen": emergency,
			})
			return
		}

		// Fallback (works with any repo): list & compute
		items, err := h.repo.List(r.Context(), repository.TicketFilter{})
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		open, unclaimed, emergency := 0, 0, 0
		for _, t := range items {
			completed := t.DateCompleted != nil
			if !completed {
				open++
			}
			if t.EmployeeID == "" {
				unclaimed++
			}
			if t.Emergency && !completed {
				emergency++
			}
		}
		utils.JSON(w, http.StatusOK, map[string]int{
			"open":          open,
			"unclaimed":     unclaimed,
			"emergencyOpen": emergency,
		})
	}
}
