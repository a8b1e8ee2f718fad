package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// TimePeriodRepository handles time period data access.
type TimePeriodRepository struct {
	pool *pgxpool.Pool
}

// NewTimePeriodRepository creates a new TimePeriodRepository.
func NewTimePeriodRepository(pool *pgxpool.Pool) *TimePeriodRepository {
	return &TimePeriodRepository{pool: pool}
}

const timePeriodColumns = `id, admin_id, name, start_time, end_time, duration_minutes, kind, sort_order, created_at, updated_at`

func scanTimePeriod(row pgx.Row) (*model.TimePeriod, error) {
	p := &model.TimePeriod{}
	err := row.Scan(&p.ID, &p.AdminID, &p.Name, &p.StartTime, &p.EndTime, &p.DurationMinutes, &p.Kind, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByAdmin retrieves all time periods for an admin, sorted by order.
func (r *TimePeriodRepository) ListByAdmin(ctx context.Context, adminID int) ([]model.TimePeriod, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+timePeriodColumns+` FROM time_periods WHERE admin_id = $1 ORDER BY sort_order`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []model.TimePeriod
	for rows.Next() {
		p, err := scanTimePeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *p)
	}
	return periods, rows.Err()
}

// GetByID retrieves a time period scoped to an admin.
func (r *TimePeriodRepository) GetByID(ctx context.Context, adminID, id int) (*model.TimePeriod, error) {
	return scanTimePeriod(r.pool.QueryRow(ctx,
		`SELECT `+timePeriodColumns+` FROM time_periods WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// FindCollision returns an existing time period of the same admin whose
// name or sort order collides, excluding excludeID. Returns
// pgx.ErrNoRows when nothing collides.
func (r *TimePeriodRepository) FindCollision(ctx context.Context, adminID int, name string, sortOrder, excludeID int) (*model.TimePeriod, error) {
	return scanTimePeriod(r.pool.QueryRow(ctx,
		`SELECT `+timePeriodColumns+` FROM time_periods
		 WHERE admin_id = $1 AND id <> $2 AND (name = $3 OR sort_order = $4)
		 LIMIT 1`,
		adminID, excludeID, name, sortOrder))
}

// Create inserts a new time period.
func (r *TimePeriodRepository) Create(ctx context.Context, p *model.TimePeriod) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO time_periods (admin_id, name, start_time, end_time, duration_minutes, kind, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.AdminID, p.Name, p.StartTime, p.EndTime, p.DurationMinutes, p.Kind, p.SortOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update modifies an existing time period scoped to an admin.
func (r *TimePeriodRepository) Update(ctx context.Context, p *model.TimePeriod) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE time_periods
		 SET name = $1, start_time = $2, end_time = $3, duration_minutes = $4, kind = $5, sort_order = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $7 AND id = $8`,
		p.Name, p.StartTime, p.EndTime, p.DurationMinutes, p.Kind, p.SortOrder, p.AdminID, p.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a time period scoped to an admin.
func (r *TimePeriodRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM time_periods WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Stats aggregates the admin's time period registry.
func (r *TimePeriodRepository) Stats(ctx context.Context, adminID int) (*model.TimePeriodStats, error) {
	s := &model.TimePeriodStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE kind = 'class'),
		        COUNT(*) FILTER (WHERE kind = 'break'),
		        COALESCE(SUM(duration_minutes), 0)
		 FROM time_periods WHERE admin_id = $1`, adminID,
	).Scan(&s.Total, &s.ClassPeriods, &s.BreakPeriods, &s.TotalMinutes)
	if err != nil {
		return nil, err
	}
	return s, nil
}
