package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// ClassroomRepository handles classroom data access.
type ClassroomRepository struct {
	pool *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository.
func NewClassroomRepository(pool *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{pool: pool}
}

const classroomColumns = `id, admin_id, name, capacity, floor, building, room_type, is_available, created_at, updated_at`

func scanClassroom(row pgx.Row) (*model.Classroom, error) {
	c := &model.Classroom{}
	err := row.Scan(&c.ID, &c.AdminID, &c.Name, &c.Capacity, &c.Floor, &c.Building, &c.RoomType, &c.IsAvailable, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByAdmin retrieves all classrooms for an admin, sorted by building,
// floor and name.
func (r *ClassroomRepository) ListByAdmin(ctx context.Context, adminID int) ([]model.Classroom, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classroomColumns+` FROM classrooms
		 WHERE admin_id = $1 ORDER BY building, floor, name`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []model.Classroom
	for rows.Next() {
		c, err := scanClassroom(rows)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, *c)
	}
	return classrooms, rows.Err()
}

// GetByID retrieves a classroom scoped to an admin.
func (r *ClassroomRepository) GetByID(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	return scanClassroom(r.pool.QueryRow(ctx,
		`SELECT `+classroomColumns+` FROM classrooms WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// FindByName returns an existing classroom of the same admin with the
// given name, excluding excludeID. Returns pgx.ErrNoRows when none.
func (r *ClassroomRepository) FindByName(ctx context.Context, adminID int, name string, excludeID int) (*model.Classroom, error) {
	return scanClassroom(r.pool.QueryRow(ctx,
		`SELECT `+classroomColumns+` FROM classrooms
		 WHERE admin_id = $1 AND id <> $2 AND name = $3 LIMIT 1`,
		adminID, excludeID, name))
}

// Create inserts a new classroom.
func (r *ClassroomRepository) Create(ctx context.Context, c *model.Classroom) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classrooms (admin_id, name, capacity, floor, building, room_type, is_available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		c.AdminID, c.Name, c.Capacity, c.Floor, c.Building, c.RoomType, c.IsAvailable,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update modifies an existing classroom scoped to an admin.
func (r *ClassroomRepository) Update(ctx context.Context, c *model.Classroom) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE classrooms
		 SET name = $1, capacity = $2, floor = $3, building = $4, room_type = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $6 AND id = $7`,
		c.Name, c.Capacity, c.Floor, c.Building, c.RoomType, c.AdminID, c.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a classroom scoped to an admin.
func (r *ClassroomRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM classrooms WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ToggleAvailable flips is_available and returns the updated row.
func (r *ClassroomRepository) ToggleAvailable(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	return scanClassroom(r.pool.QueryRow(ctx,
		`UPDATE classrooms SET is_available = NOT is_available, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $1 AND id = $2
		 RETURNING `+classroomColumns, adminID, id))
}

// Stats aggregates the admin's classroom registry, including per
// building and per type distributions.
func (r *ClassroomRepository) Stats(ctx context.Context, adminID int) (*model.ClassroomStats, error) {
	s := &model.ClassroomStats{
		ByBuilding: map[string]int{},
		ByType:     map[string]int{},
	}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE is_available),
		        COUNT(*) FILTER (WHERE NOT is_available)
		 FROM classrooms WHERE admin_id = $1`, adminID,
	).Scan(&s.Total, &s.Available, &s.Unavailable)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT building, room_type, COUNT(*) FROM classrooms
		 WHERE admin_id = $1 GROUP BY building, room_type`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var building, roomType string
		var count int
		if err := rows.Scan(&building, &roomType, &count); err != nil {
			return nil, err
		}
		s.ByBuilding[building] += count
		if roomType != "" {
			s.ByType[roomType] += count
		}
	}
	return s, rows.Err()
}
