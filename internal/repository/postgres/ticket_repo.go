package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvdutta/honey-rae-server/internal/models"
	"github.com/mvdutta/honey-rae-server/internal/repository"
)

type TicketRepo struct{ db *pgxpool.Pool }

func NewTicketRepo(db *pgxpool.Pool) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = `
	t.id, t.customer_id, COALESCE(t.employee_id, ''), t.description, t.emergency,
	t.date_completed, t.created_at, t.updated_at,
	cu.first_name, cu.last_name, c.address,
	COALESCE(eu.first_name, ''), COALESCE(eu.last_name, ''), COALESCE(e.specialty, '')`

const ticketJoins = `
	FROM tickets t
	JOIN customers c ON c.id = t.customer_id
	JOIN users cu ON cu.id = c.user_id
	LEFT JOIN employees e ON e.id = t.employee_id
	LEFT JOIN users eu ON eu.id = e.user_id`

func (r *TicketRepo) List(ctx context.Context, f repository.TicketFilter) ([]models.Ticket, error) {
	whereSQL, args := buildTicketWhere(f)

	sql := `SELECT` + ticketColumns + ticketJoins + `
		` + whereSQL + `
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) Get(ctx context.Context, id string) (*models.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT`+ticketColumns+ticketJoins+` WHERE t.id = $1`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	now := time.Now()
	t.ID = uuid.NewString()
	t.CreatedAt, t.UpdatedAt = now, now
	_, err := r.db.Exec(ctx, `
		INSERT INTO tickets (id, customer_id, employee_id, description, emergency, date_completed, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		t.ID, t.CustomerID, nullIfEmpty(t.EmployeeID), t.Description, t.Emergency,
		nullableDate(t.DateCompleted), t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *TicketRepo) Update(ctx context.Context, t *models.Ticket) error {
	t.UpdatedAt = time.Now()
	ct, err := r.db.Exec(ctx, `
		UPDATE tickets SET employee_id=$1, date_completed=$2, updated_at=$3
		WHERE id=$4
	`, nullIfEmpty(t.EmployeeID), nullableDate(t.DateCompleted), t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------------------------
// Reporting counters (used by /reports/summary)
// -----------------------------------------------------------------------------

func (r *TicketRepo) CountOpen(ctx context.Context) (int, error) {
	return r.count(ctx, `date_completed IS NULL`)
}

func (r *TicketRepo) CountUnclaimed(ctx context.Context) (int, error) {
	return r.count(ctx, `employee_id IS NULL`)
}

func (r *TicketRepo) CountEmergencyOpen(ctx context.Context) (int, error) {
	return r.count(ctx, `emergency AND date_completed IS NULL`)
}

func (r *TicketRepo) count(ctx context.Context, cond string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE `+cond).Scan(&n)
	return n, err
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// buildTicketWhere composes the WHERE clause and args for the list filter.
// Status values map onto the employee/date_completed null-state; unrecognized
// values fall through with no clause. Search is a case-sensitive LIKE on the
// description, matching the persistence layer's default containment semantics.
func buildTicketWhere(f repository.TicketFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if c := strings.TrimSpace(f.CustomerID); c != "" {
		args = append(args, c)
		clauses = append(clauses, "t.customer_id = $"+itoa(len(args)))
	}

	switch f.Status {
	case repository.StatusDone:
		clauses = append(clauses, "t.date_completed IS NOT NULL")
	case repository.StatusUnclaimed:
		clauses = append(clauses, "t.employee_id IS NULL")
	case repository.StatusInProgress:
		clauses = append(clauses, "t.employee_id IS NOT NULL AND t.date_completed IS NULL")
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		clauses = append(clauses, "t.description LIKE $"+itoa(len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func scanTicket(row pgx.Row) (*models.Ticket, error) {
	var t models.Ticket
	var completed *time.Time
	if err := row.Scan(
		&t.ID, &t.CustomerID, &t.EmployeeID, &t.Description, &t.Emergency,
		&completed, &t.CreatedAt, &t.UpdatedAt,
		&t.CustomerFirst, &t.CustomerLast, &t.CustomerAddress,
		&t.EmployeeFirst, &t.EmployeeLast, &t.EmployeeSpecialty,
	); err != nil {
		return nil, err
	}
	if completed != nil {
		t.DateCompleted = &models.Date{Time: *completed}
	}
	return &t, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func nullableDate(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

// small helper to avoid fmt for the query-building path.
func itoa(i int) string { return strconv.Itoa(i) }
