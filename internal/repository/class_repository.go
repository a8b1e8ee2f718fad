package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// ClassRepository handles class and class material data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

const classColumns = `id, admin_id, class_name, section, subject, teacher_name, teacher_id, room, schedule, max_students, fees, status, created_at, updated_at`

func scanClass(row pgx.Row) (*model.Class, error) {
	c := &model.Class{}
	err := row.Scan(&c.ID, &c.AdminID, &c.ClassName, &c.Section, &c.Subject, &c.TeacherName, &c.TeacherID, &c.Room, &c.Schedule, &c.MaxStudents, &c.Fees, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByAdmin retrieves classes for an admin with an optional status
// filter, paginated.
func (r *ClassRepository) ListByAdmin(ctx context.Context, adminID int, status string, limit, offset int) ([]model.Class, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM classes
		 WHERE admin_id = $1 AND ($2 = '' OR status = $2)`,
		adminID, status,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes
		 WHERE admin_id = $1 AND ($2 = '' OR status = $2)
		 ORDER BY class_name, section
		 LIMIT $3 OFFSET $4`,
		adminID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, 0, err
		}
		classes = append(classes, *c)
	}
	return classes, total, rows.Err()
}

// GetByID retrieves a class scoped to an admin, with its materials.
func (r *ClassRepository) GetByID(ctx context.Context, adminID, id int) (*model.Class, error) {
	c, err := scanClass(r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE admin_id = $1 AND id = $2`, adminID, id))
	if err != nil {
		return nil, err
	}

	materials, err := r.ListMaterials(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Materials = materials
	return c, nil
}

// FindActivePair returns an existing non-cancelled class of the same
// admin with the given (class_name, section) pair, excluding excludeID.
// Returns pgx.ErrNoRows when none.
func (r *ClassRepository) FindActivePair(ctx context.Context, adminID int, className, section string, excludeID int) (*model.Class, error) {
	return scanClass(r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes
		 WHERE admin_id = $1 AND id <> $2 AND class_name = $3 AND section = $4 AND status <> 'cancelled'
		 LIMIT 1`,
		adminID, excludeID, className, section))
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (admin_id, class_name, section, subject, teacher_name, teacher_id, room, schedule, max_students, fees, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		c.AdminID, c.ClassName, c.Section, c.Subject, c.TeacherName, c.TeacherID, c.Room, c.Schedule, c.MaxStudents, c.Fees, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update modifies an existing class scoped to an admin.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE classes
		 SET class_name = $1, section = $2, subject = $3, teacher_name = $4, teacher_id = $5, room = $6,
		     schedule = $7, max_students = $8, fees = $9, status = $10, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $11 AND id = $12`,
		c.ClassName, c.Section, c.Subject, c.TeacherName, c.TeacherID, c.Room,
		c.Schedule, c.MaxStudents, c.Fees, c.Status, c.AdminID, c.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a class scoped to an admin. Materials rows cascade at
// the database level; their blobs are the caller's concern.
func (r *ClassRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const materialColumns = `id, class_id, title, file_url, storage_key, file_type, uploaded_at`

func scanMaterial(row pgx.Row) (*model.ClassMaterial, error) {
	m := &model.ClassMaterial{}
	err := row.Scan(&m.ID, &m.ClassID, &m.Title, &m.FileURL, &m.StorageKey, &m.FileType, &m.UploadedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMaterials retrieves a class's materials in upload order.
func (r *ClassRepository) ListMaterials(ctx context.Context, classID int) ([]model.ClassMaterial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+materialColumns+` FROM class_materials WHERE class_id = $1 ORDER BY uploaded_at, id`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.ClassMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

// AddMaterial inserts a material row for a class.
func (r *ClassRepository) AddMaterial(ctx context.Context, m *model.ClassMaterial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO class_materials (class_id, title, file_url, storage_key, file_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, uploaded_at`,
		m.ClassID, m.Title, m.FileURL, m.StorageKey, m.FileType,
	).Scan(&m.ID, &m.UploadedAt)
}

// GetMaterial retrieves a single material owned by a class.
func (r *ClassRepository) GetMaterial(ctx context.Context, classID, materialID int) (*model.ClassMaterial, error) {
	return scanMaterial(r.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM class_materials WHERE class_id = $1 AND id = $2`, classID, materialID))
}

// DeleteMaterial removes a material row.
func (r *ClassRepository) DeleteMaterial(ctx context.Context, classID, materialID int) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM class_materials WHERE class_id = $1 AND id = $2`, classID, materialID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
