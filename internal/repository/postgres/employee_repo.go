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

type EmployeeRepo struct{ db *pgxpool.Pool }

func NewEmployeeRepo(db *pgxpool.Pool) repository.EmployeeRepository { return &EmployeeRepo{db: db} }

const employeeSelect = `
	SELECT e.id, e.user_id, e.specialty, e.created_at, u.first_name, u.last_name
	FROM employees e
	JOIN users u ON u.id = e.user_id`

func (r *EmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.Query(ctx, employeeSelect+` ORDER BY e.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.UserID, &e.Specialty, &e.CreatedAt, &e.FirstName, &e.LastName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.QueryRow(ctx, employeeSelect+` WHERE e.id=$1`, id).
		Scan(&e.ID, &e.UserID, &e.Specialty, &e.CreatedAt, &e.FirstName, &e.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *models.Employee) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO employees (id, user_id, specialty, created_at)
		VALUES ($1,$2,$3,$4)`,
		e.ID, e.UserID, e.Specialty, e.CreatedAt)
	return err
}
