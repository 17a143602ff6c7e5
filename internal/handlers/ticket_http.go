package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

// TicketHTTP wires the service-ticket endpoints to repositories.
type TicketHTTP struct {
	tickets   repository.TicketRepository
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
}

func NewTicketHTTP(tickets repository.TicketRepository, customers repository.CustomerRepository, employees repository.EmployeeRepository) *TicketHTTP {
	return &TicketHTTP{tickets: tickets, customers: customers, employees: employees}
}

// -----------------------------------------------------------------------------
// GET /serviceTickets?status=&search=
// -----------------------------------------------------------------------------
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := callerFrom(r.Context())

		var customerID string
		if !caller.Staff {
			c, err := h.customers.GetByUserID(r.Context(), caller.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					// authenticated account with no customer profile owns no tickets
					utils.JSON(w, http.StatusOK, []models.TicketView{})
					return
				}
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			customerID = c.ID
		}

		items, err := h.tickets.List(r.Context(), ticketScope(caller, customerID, r.URL.Query()))
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		views := make([]models.TicketView, 0, len(items))
		for i := range items {
			views = append(views, items[i].View())
		}
		utils.JSON(w, http.StatusOK, views)
	}
}

// -----------------------------------------------------------------------------
// GET /serviceTickets/{id}
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		t, err := h.tickets.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, t.View())
	}
}

// -----------------------------------------------------------------------------
// POST /serviceTickets
// Customer is always derived from the caller; employee and completion date
// start null and cannot be set here.
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Description string `json:"description" validate:"required"`
		Emergency   *bool  `json:"emergency" validate:"required"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Description = strings.TrimSpace(in.Description)
		if err := utils.Validate(in); err != nil {
			utils.Error(w, http.StatusBadRequest, "description and emergency are required")
			return
		}

		caller := callerFrom(r.Context())
		customer, err := h.customers.GetByUserID(r.Context(), caller.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusUnprocessableEntity, "no customer profile for caller")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		t := &models.Ticket{
			CustomerID:  customer.ID,
			Description: in.Description,
			Emergency:   *in.Emergency,
		}
		if err := h.tickets.Create(r.Context(), t); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		// Re-fetch so the view carries the joined customer name.
		created, err := h.tickets.Get(r.Context(), t.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, created.View())
	}
}

// -----------------------------------------------------------------------------
// PUT /serviceTickets/{id}
// Assigns an employee and optionally sets/clears the completion date. Only
// those two fields are mutable; an absent date_completed key leaves the
// current completion date untouched, an explicit null reopens the ticket.
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Employee      string          `json:"employee" validate:"required"`
		DateCompleted json.RawMessage `json:"date_completed"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}

		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := utils.Validate(in); err != nil {
			utils.Error(w, http.StatusBadRequest, "employee is required")
			return
		}

		t, err := h.tickets.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		emp, err := h.employees.Get(r.Context(), in.Employee)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "employee not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		t.EmployeeID = emp.ID

		if in.DateCompleted != nil {
			var d *models.Date
			if err := json.Unmarshal(in.DateCompleted, &d); err != nil {
				utils.Error(w, http.StatusBadRequest, "invalid date_completed")
				return
			}
			t.DateCompleted = d
		}

		if err := h.tickets.Update(r.Context(), t); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// -----------------------------------------------------------------------------
// DELETE /serviceTickets/{id}
// -----------------------------------------------------------------------------
func (h *TicketHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		if err := h.tickets.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "ticket not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
