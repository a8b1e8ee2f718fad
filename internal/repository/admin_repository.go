package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// AdminRepository handles dashboard account data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = `id, tenant_id, name, email, password_hash, role, created_at, updated_at`

func scanAdmin(row pgx.Row) (*model.Admin, error) {
	a := &model.Admin{}
	err := row.Scan(&a.ID, &a.TenantID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByEmail retrieves an account by email.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email))
}

// GetByID retrieves an account by id.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// Create inserts a new account. For admin-role accounts the tenant id
// is fixed up to the new row's own id in the same statement chain.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (tenant_id, name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.TenantID, a.Name, a.Email, a.PasswordHash, a.Role,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return err
	}

	if a.Role == model.RoleAdmin && a.TenantID == 0 {
		a.TenantID = a.ID
		_, err = r.pool.Exec(ctx, `UPDATE admins SET tenant_id = $1 WHERE id = $1`, a.ID)
	}
	return err
}
