package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// EmployeeRepository handles employee data access.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, admin_id, name, email, phone, position, department, photo_url, photo_key, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	e := &model.Employee{}
	err := row.Scan(&e.ID, &e.AdminID, &e.Name, &e.Email, &e.Phone, &e.Position, &e.Department, &e.PhotoURL, &e.PhotoKey, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListByAdmin retrieves employees for an admin with an optional
// case-insensitive name/email search, paginated.
func (r *EmployeeRepository) ListByAdmin(ctx context.Context, adminID int, search string, limit, offset int) ([]model.Employee, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees
		 WHERE admin_id = $1 AND ($2 = '%%' OR name ILIKE $2 OR email ILIKE $2)`,
		adminID, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		 WHERE admin_id = $1 AND ($2 = '%%' OR name ILIKE $2 OR email ILIKE $2)
		 ORDER BY name
		 LIMIT $3 OFFSET $4`,
		adminID, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, *e)
	}
	return employees, total, rows.Err()
}

// ListActiveByAdmin retrieves the admin's active employees, for use as
// the teaching staff pool in the timetable composer.
func (r *EmployeeRepository) ListActiveByAdmin(ctx context.Context, adminID int) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		 WHERE admin_id = $1 AND status = 'active' ORDER BY name`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

// GetByID retrieves an employee scoped to an admin.
func (r *EmployeeRepository) GetByID(ctx context.Context, adminID, id int) (*model.Employee, error) {
	return scanEmployee(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// GetByIDUnscoped retrieves an employee by id regardless of tenant.
// Only the timetable composer's document-level teacher check uses this.
func (r *EmployeeRepository) GetByIDUnscoped(ctx context.Context, id int) (*model.Employee, error) {
	return scanEmployee(r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
}

// Create inserts a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO employees (admin_id, name, email, phone, position, department, photo_url, photo_key, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		e.AdminID, e.Name, e.Email, e.Phone, e.Position, e.Department, e.PhotoURL, e.PhotoKey, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update modifies an existing employee scoped to an admin.
func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE employees
		 SET name = $1, email = $2, phone = $3, position = $4, department = $5, status = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $7 AND id = $8`,
		e.Name, e.Email, e.Phone, e.Position, e.Department, e.Status, e.AdminID, e.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetPhoto updates an employee's photo URL and storage key.
func (r *EmployeeRepository) SetPhoto(ctx context.Context, adminID, id int, url, key string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE employees SET photo_url = $1, photo_key = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $3 AND id = $4`,
		url, key, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes an employee scoped to an admin.
func (r *EmployeeRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
