package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, admin_id, admission_no, name, email, phone, guardian_name, class_id, status, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.AdminID, &s.AdmissionNo, &s.Name, &s.Email, &s.Phone, &s.GuardianName, &s.ClassID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByAdmin retrieves students for an admin with optional
// case-insensitive name/admission search and class filter, paginated.
func (r *StudentRepository) ListByAdmin(ctx context.Context, adminID int, search string, classID *int, limit, offset int) ([]model.Student, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students
		 WHERE admin_id = $1
		   AND ($2 = '%%' OR name ILIKE $2 OR admission_no ILIKE $2)
		   AND ($3::int IS NULL OR class_id = $3)`,
		adminID, pattern, classID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students
		 WHERE admin_id = $1
		   AND ($2 = '%%' OR name ILIKE $2 OR admission_no ILIKE $2)
		   AND ($3::int IS NULL OR class_id = $3)
		 ORDER BY name
		 LIMIT $4 OFFSET $5`,
		adminID, pattern, classID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// GetByID retrieves a student scoped to an admin.
func (r *StudentRepository) GetByID(ctx context.Context, adminID, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// FindByAdmissionNo returns an existing student of the same admin with
// the given admission number, excluding excludeID. Returns
// pgx.ErrNoRows when none.
func (r *StudentRepository) FindByAdmissionNo(ctx context.Context, adminID int, admissionNo string, excludeID int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students
		 WHERE admin_id = $1 AND id <> $2 AND admission_no = $3 LIMIT 1`,
		adminID, excludeID, admissionNo))
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (admin_id, admission_no, name, email, phone, guardian_name, class_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		s.AdminID, s.AdmissionNo, s.Name, s.Email, s.Phone, s.GuardianName, s.ClassID, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing student scoped to an admin.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET admission_no = $1, name = $2, email = $3, phone = $4, guardian_name = $5, class_id = $6, status = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $8 AND id = $9`,
		s.AdmissionNo, s.Name, s.Email, s.Phone, s.GuardianName, s.ClassID, s.Status, s.AdminID, s.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a student scoped to an admin.
func (r *StudentRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM students WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
