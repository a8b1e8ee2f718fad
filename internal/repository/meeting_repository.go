package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// MeetingRepository handles meeting data access.
type MeetingRepository struct {
	pool *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{pool: pool}
}

const meetingColumns = `id, admin_id, title, description, meeting_date, start_time, end_time, meeting_link, status, created_at, updated_at`

func scanMeeting(row pgx.Row) (*model.Meeting, error) {
	m := &model.Meeting{}
	err := row.Scan(&m.ID, &m.AdminID, &m.Title, &m.Description, &m.MeetingDate, &m.StartTime, &m.EndTime, &m.MeetingLink, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByAdmin retrieves an admin's meetings with an optional status
// filter, soonest first.
func (r *MeetingRepository) ListByAdmin(ctx context.Context, adminID int, status string) ([]model.Meeting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings
		 WHERE admin_id = $1 AND ($2 = '' OR status = $2)
		 ORDER BY meeting_date, start_time`,
		adminID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []model.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, *m)
	}
	return meetings, rows.Err()
}

// GetByID retrieves a meeting scoped to an admin.
func (r *MeetingRepository) GetByID(ctx context.Context, adminID, id int) (*model.Meeting, error) {
	return scanMeeting(r.pool.QueryRow(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// Create inserts a new meeting.
func (r *MeetingRepository) Create(ctx context.Context, m *model.Meeting) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO meetings (admin_id, title, description, meeting_date, start_time, end_time, meeting_link, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		m.AdminID, m.Title, m.Description, m.MeetingDate, m.StartTime, m.EndTime, m.MeetingLink, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// Update modifies an existing meeting scoped to an admin.
func (r *MeetingRepository) Update(ctx context.Context, m *model.Meeting) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE meetings
		 SET title = $1, description = $2, meeting_date = $3, start_time = $4, end_time = $5, meeting_link = $6, status = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $8 AND id = $9`,
		m.Title, m.Description, m.MeetingDate, m.StartTime, m.EndTime, m.MeetingLink, m.Status, m.AdminID, m.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a meeting scoped to an admin.
func (r *MeetingRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
