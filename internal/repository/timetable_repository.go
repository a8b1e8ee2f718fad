package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// TimetableRepository handles timetable data access. Periods live in a
// jsonb column: the timetable is a document keyed by (admin, class,
// year, term), mirroring how the composer replaces periods wholesale.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

const timetableColumns = `id, admin_id, class_id, academic_year, term, teacher_id, is_active, periods, created_at, updated_at`

func scanTimetable(row pgx.Row) (*model.Timetable, error) {
	t := &model.Timetable{}
	var periodsJSON []byte
	err := row.Scan(&t.ID, &t.AdminID, &t.ClassID, &t.AcademicYear, &t.Term, &t.TeacherID, &t.IsActive, &periodsJSON, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(periodsJSON, &t.Periods); err != nil {
		return nil, fmt.Errorf("decode periods: %w", err)
	}
	return t, nil
}

// Find retrieves the timetable for a class, optionally filtered by
// academic year and term (empty string means unfiltered). Returns
// pgx.ErrNoRows when no document matches.
func (r *TimetableRepository) Find(ctx context.Context, adminID, classID int, academicYear, term string) (*model.Timetable, error) {
	return scanTimetable(r.pool.QueryRow(ctx,
		`SELECT `+timetableColumns+` FROM timetables
		 WHERE admin_id = $1 AND class_id = $2
		   AND ($3 = '' OR academic_year = $3)
		   AND ($4 = '' OR term = $4)
		 ORDER BY updated_at DESC
		 LIMIT 1`,
		adminID, classID, academicYear, term))
}

// GetByID retrieves a timetable scoped to an admin.
func (r *TimetableRepository) GetByID(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	return scanTimetable(r.pool.QueryRow(ctx,
		`SELECT `+timetableColumns+` FROM timetables WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// List retrieves an admin's timetables, newest first, paginated.
func (r *TimetableRepository) List(ctx context.Context, adminID, limit, offset int) ([]model.Timetable, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM timetables WHERE admin_id = $1`, adminID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+timetableColumns+` FROM timetables
		 WHERE admin_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`,
		adminID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	timetables, err := collectTimetables(rows)
	if err != nil {
		return nil, 0, err
	}
	return timetables, total, nil
}

// ListAll retrieves every timetable of an admin, optionally filtered by
// academic year and term. The by-teacher projection scans this set.
func (r *TimetableRepository) ListAll(ctx context.Context, adminID int, academicYear, term string) ([]model.Timetable, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+timetableColumns+` FROM timetables
		 WHERE admin_id = $1
		   AND ($2 = '' OR academic_year = $2)
		   AND ($3 = '' OR term = $3)
		 ORDER BY id`,
		adminID, academicYear, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimetables(rows)
}

func collectTimetables(rows pgx.Rows) ([]model.Timetable, error) {
	var timetables []model.Timetable
	for rows.Next() {
		t, err := scanTimetable(rows)
		if err != nil {
			return nil, err
		}
		timetables = append(timetables, *t)
	}
	return timetables, rows.Err()
}

// Create inserts a new timetable document.
func (r *TimetableRepository) Create(ctx context.Context, t *model.Timetable) error {
	periodsJSON, err := json.Marshal(t.Periods)
	if err != nil {
		return fmt.Errorf("encode periods: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO timetables (admin_id, class_id, academic_year, term, teacher_id, is_active, periods)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.AdminID, t.ClassID, t.AcademicYear, t.Term, t.TeacherID, t.IsActive, periodsJSON,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update replaces a timetable's periods and mutable fields.
func (r *TimetableRepository) Update(ctx context.Context, t *model.Timetable) error {
	periodsJSON, err := json.Marshal(t.Periods)
	if err != nil {
		return fmt.Errorf("encode periods: %w", err)
	}
	ct, err := r.pool.Exec(ctx,
		`UPDATE timetables
		 SET academic_year = $1, term = $2, teacher_id = $3, periods = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $5 AND id = $6`,
		t.AcademicYear, t.Term, t.TeacherID, periodsJSON, t.AdminID, t.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a timetable scoped to an admin.
func (r *TimetableRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM timetables WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ToggleActive flips is_active and returns the updated document.
func (r *TimetableRepository) ToggleActive(ctx context.Context, adminID, id int) (*model.Timetable, error) {
	return scanTimetable(r.pool.QueryRow(ctx,
		`UPDATE timetables SET is_active = NOT is_active, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $1 AND id = $2
		 RETURNING `+timetableColumns, adminID, id))
}
