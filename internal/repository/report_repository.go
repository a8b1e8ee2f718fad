package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// ReportRepository runs read-only aggregation queries for tabular
// reports and the dashboard. It never writes.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// StudentRows retrieves the flattened student report for an admin,
// joined with class name/section, optionally filtered by class and
// status.
func (r *ReportRepository) StudentRows(ctx context.Context, adminID int, classID *int, status string) ([]model.StudentReportRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.admission_no, s.name, s.email, s.phone, s.guardian_name,
		        COALESCE(c.class_name, ''), COALESCE(c.section, ''), s.status
		 FROM students s
		 LEFT JOIN classes c ON c.id = s.class_id
		 WHERE s.admin_id = $1
		   AND ($2::int IS NULL OR s.class_id = $2)
		   AND ($3 = '' OR s.status = $3)
		 ORDER BY s.name`,
		adminID, classID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []model.StudentReportRow
	for rows.Next() {
		var row model.StudentReportRow
		if err := rows.Scan(&row.AdmissionNo, &row.Name, &row.Email, &row.Phone, &row.GuardianName, &row.ClassName, &row.Section, &row.Status); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// EmployeeRows retrieves the flattened employee report for an admin,
// optionally filtered by department and status.
func (r *ReportRepository) EmployeeRows(ctx context.Context, adminID int, department, status string) ([]model.EmployeeReportRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, email, phone, position, department, status
		 FROM employees
		 WHERE admin_id = $1
		   AND ($2 = '' OR department = $2)
		   AND ($3 = '' OR status = $3)
		 ORDER BY name`,
		adminID, department, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []model.EmployeeReportRow
	for rows.Next() {
		var row model.EmployeeReportRow
		if err := rows.Scan(&row.Name, &row.Email, &row.Phone, &row.Position, &row.Department, &row.Status); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// DashboardStats aggregates the per-tenant overview counts.
func (r *ReportRepository) DashboardStats(ctx context.Context, adminID int) (*model.DashboardStats, error) {
	s := &model.DashboardStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM students WHERE admin_id = $1),
		   (SELECT COUNT(*) FROM employees WHERE admin_id = $1),
		   (SELECT COUNT(*) FROM classes WHERE admin_id = $1 AND status <> 'cancelled'),
		   (SELECT COUNT(*) FROM timetables WHERE admin_id = $1 AND is_active),
		   (SELECT COUNT(*) FROM meetings WHERE admin_id = $1
		      AND date_trunc('month', meeting_date::date) = date_trunc('month', CURRENT_DATE))`,
		adminID,
	).Scan(&s.Students, &s.Employees, &s.Classes, &s.ActiveTimetables, &s.MeetingsThisMonth)
	if err != nil {
		return nil, err
	}
	return s, nil
}
