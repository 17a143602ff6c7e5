package repository

import (
	"context"
	"errors"

	"github.com/mvdutta/honey-rae-server/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist. Repos map
// driver-level "no rows" onto it so handlers never see a raw driver error.
var ErrNotFound = errors.New("record not found")

type TicketRepository interface {
	List(ctx context.Context, f TicketFilter) ([]models.Ticket, error)
	Get(ctx context.Context, id string) (*models.Ticket, error)
	Create(ctx context.Context, t *models.Ticket) error
	Update(ctx context.Context, t *models.Ticket) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	GetByUserID(ctx context.Context, userID string) (*models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
}

type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, e *models.Employee) error
}

type UserRepository interface {
	Create(ctx context.Context, email, firstName, lastName, passwordHash string, staff bool) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
