package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

type EmployeeHTTP struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
}

func NewEmployeeHTTP(employees repository.EmployeeRepository, users repository.UserRepository) *EmployeeHTTP {
	return &EmployeeHTTP{employees: employees, users: users}
}

// GET /employees
func (h *EmployeeHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.employees.List(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		views := make([]models.EmployeeView, 0, len(items))
		for i := range items {
			views = append(views, items[i].View())
		}
		utils.JSON(w, http.StatusOK, views)
	}
}

// GET /employees/{id}
func (h *EmployeeHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e, err := h.employees.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "employee not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, e.View())
	}
}

// POST /employees (staff-only via router guard) — promotes an existing
// account to an employee with the given specialty.
func (h *EmployeeHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		UserID    string `json:"user" validate:"required"`
		Specialty string `json:"specialty" validate:"required"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := utils.Validate(in); err != nil {
			utils.Error(w, http.StatusBadRequest, "user and specialty are required")
			return
		}

		u, err := h.users.GetByID(r.Context(), in.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "user not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		e := &models.Employee{
			UserID:    u.ID,
			Specialty: in.Specialty,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
		if err := h.employees.Create(r.Context(), e); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, e.View())
	}
}
