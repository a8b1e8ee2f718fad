package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// SubjectRepository handles subject data access.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

const subjectColumns = `id, admin_id, name, code, created_at, updated_at`

func scanSubject(row pgx.Row) (*model.Subject, error) {
	s := &model.Subject{}
	err := row.Scan(&s.ID, &s.AdminID, &s.Name, &s.Code, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByAdmin retrieves all subjects for an admin, sorted by name.
func (r *SubjectRepository) ListByAdmin(ctx context.Context, adminID int) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE admin_id = $1 ORDER BY name`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, *s)
	}
	return subjects, rows.Err()
}

// GetByID retrieves a subject scoped to an admin.
func (r *SubjectRepository) GetByID(ctx context.Context, adminID, id int) (*model.Subject, error) {
	return scanSubject(r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// FindByCode returns an existing subject of the same admin with the
// given code, excluding excludeID. Returns pgx.ErrNoRows when none.
func (r *SubjectRepository) FindByCode(ctx context.Context, adminID int, code string, excludeID int) (*model.Subject, error) {
	return scanSubject(r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects
		 WHERE admin_id = $1 AND id <> $2 AND code = $3 LIMIT 1`,
		adminID, excludeID, code))
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subjects (admin_id, name, code)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.AdminID, s.Name, s.Code,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing subject scoped to an admin.
func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE subjects SET name = $1, code = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $3 AND id = $4`,
		s.Name, s.Code, s.AdminID, s.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a subject scoped to an admin.
func (r *SubjectRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
