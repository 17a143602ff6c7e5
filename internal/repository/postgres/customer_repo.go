package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
)

type CustomerRepo struct{ db *pgxpool.Pool }

func NewCustomerRepo(db *pgxpool.Pool) repository.CustomerRepository { return &CustomerRepo{db: db} }

const customerSelect = `
	SELECT c.id, c.user_id, c.address, c.created_at, u.first_name, u.last_name
	FROM customers c
	JOIN users u ON u.id = c.user_id`

func (r *CustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, customerSelect+` ORDER BY c.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Address, &c.CreatedAt, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepo) Get(ctx context.Context, id string) (*models.Customer, error) {
	return r.getWhere(ctx, `c.id=$1`, id)
}

func (r *CustomerRepo) GetByUserID(ctx context.Context, userID string) (*models.Customer, error) {
	return r.getWhere(ctx, `c.user_id=$1`, userID)
}

func (r *CustomerRepo) getWhere(ctx context.Context, cond, arg string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRow(ctx, customerSelect+` WHERE `+cond, arg).
		Scan(&c.ID, &c.UserID, &c.Address, &c.CreatedAt, &c.FirstName, &c.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, user_id, address, created_at)
		VALUES ($1,$2,$3,$4)`,
		c.ID, c.UserID, c.Address, c.CreatedAt)
	return err
}
