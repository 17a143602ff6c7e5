package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
	"github.com/mvdutta/honey-rae-server/internal/utils"
)

type CustomerHTTP struct {
	customers repository.CustomerRepository
}

func NewCustomerHTTP(customers repository.CustomerRepository) *CustomerHTTP {
	return &CustomerHTTP{customers: customers}
}

// GET /customers (staff-only via router guard)
func (h *CustomerHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.customers.List(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		views := make([]models.CustomerView, 0, len(items))
		for i := range items {
			views = append(views, items[i].View())
		}
		utils.JSON(w, http.StatusOK, views)
	}
}

// GET /customers/{id}
func (h *CustomerHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		c, err := h.customers.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.Error(w, http.StatusNotFound, "customer not found")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, c.View())
	}
}
