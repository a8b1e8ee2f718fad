package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// WeekDayRepository handles week day data access.
type WeekDayRepository struct {
	pool *pgxpool.Pool
}

// NewWeekDayRepository creates a new WeekDayRepository.
func NewWeekDayRepository(pool *pgxpool.Pool) *WeekDayRepository {
	return &WeekDayRepository{pool: pool}
}

const weekDayColumns = `id, admin_id, name, short_name, is_active, sort_order, created_at, updated_at`

func scanWeekDay(row pgx.Row) (*model.WeekDay, error) {
	d := &model.WeekDay{}
	err := row.Scan(&d.ID, &d.AdminID, &d.Name, &d.ShortName, &d.IsActive, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListByAdmin retrieves all week days for an admin, sorted by order.
func (r *WeekDayRepository) ListByAdmin(ctx context.Context, adminID int) ([]model.WeekDay, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+weekDayColumns+` FROM week_days WHERE admin_id = $1 ORDER BY sort_order`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []model.WeekDay
	for rows.Next() {
		d, err := scanWeekDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, *d)
	}
	return days, rows.Err()
}

// GetByID retrieves a week day scoped to an admin.
func (r *WeekDayRepository) GetByID(ctx context.Context, adminID, id int) (*model.WeekDay, error) {
	return scanWeekDay(r.pool.QueryRow(ctx,
		`SELECT `+weekDayColumns+` FROM week_days WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// FindCollision returns an existing week day of the same admin that
// collides with the given name, short name or sort order, excluding
// excludeID. Returns pgx.ErrNoRows when nothing collides.
func (r *WeekDayRepository) FindCollision(ctx context.Context, adminID int, name, shortName string, sortOrder, excludeID int) (*model.WeekDay, error) {
	return scanWeekDay(r.pool.QueryRow(ctx,
		`SELECT `+weekDayColumns+` FROM week_days
		 WHERE admin_id = $1 AND id <> $2
		   AND (name = $3 OR short_name = $4 OR sort_order = $5)
		 LIMIT 1`,
		adminID, excludeID, name, shortName, sortOrder))
}

// Create inserts a new week day.
func (r *WeekDayRepository) Create(ctx context.Context, d *model.WeekDay) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO week_days (admin_id, name, short_name, is_active, sort_order)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		d.AdminID, d.Name, d.ShortName, d.IsActive, d.SortOrder,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update modifies an existing week day scoped to an admin.
func (r *WeekDayRepository) Update(ctx context.Context, d *model.WeekDay) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE week_days SET name = $1, short_name = $2, sort_order = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $4 AND id = $5`,
		d.Name, d.ShortName, d.SortOrder, d.AdminID, d.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a week day scoped to an admin. No cascade runs against
// timetable periods referencing the day.
func (r *WeekDayRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM week_days WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ToggleActive flips is_active and returns the updated row.
func (r *WeekDayRepository) ToggleActive(ctx context.Context, adminID, id int) (*model.WeekDay, error) {
	return scanWeekDay(r.pool.QueryRow(ctx,
		`UPDATE week_days SET is_active = NOT is_active, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $1 AND id = $2
		 RETURNING `+weekDayColumns, adminID, id))
}

// Stats aggregates the admin's week day registry.
func (r *WeekDayRepository) Stats(ctx context.Context, adminID int) (*model.WeekDayStats, error) {
	s := &model.WeekDayStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE is_active),
		        COUNT(*) FILTER (WHERE NOT is_active)
		 FROM week_days WHERE admin_id = $1`, adminID,
	).Scan(&s.Total, &s.Active, &s.Inactive)
	if err != nil {
		return nil, err
	}
	return s, nil
}
