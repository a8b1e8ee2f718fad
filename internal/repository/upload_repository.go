package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// UploadRepository handles generic upload metadata data access.
type UploadRepository struct {
	pool *pgxpool.Pool
}

// NewUploadRepository creates a new UploadRepository.
func NewUploadRepository(pool *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{pool: pool}
}

const uploadColumns = `id, admin_id, file_name, file_url, storage_key, folder, size_bytes, mime_type, created_at`

func scanUpload(row pgx.Row) (*model.Upload, error) {
	u := &model.Upload{}
	err := row.Scan(&u.ID, &u.AdminID, &u.FileName, &u.FileURL, &u.StorageKey, &u.Folder, &u.SizeBytes, &u.MimeType, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListByAdmin retrieves an admin's uploads, newest first, paginated.
func (r *UploadRepository) ListByAdmin(ctx context.Context, adminID, limit, offset int) ([]model.Upload, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM uploads WHERE admin_id = $1`, adminID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+uploadColumns+` FROM uploads
		 WHERE admin_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		adminID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var uploads []model.Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, 0, err
		}
		uploads = append(uploads, *u)
	}
	return uploads, total, rows.Err()
}

// GetByID retrieves an upload scoped to an admin.
func (r *UploadRepository) GetByID(ctx context.Context, adminID, id int) (*model.Upload, error) {
	return scanUpload(r.pool.QueryRow(ctx,
		`SELECT `+uploadColumns+` FROM uploads WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// Create inserts a new upload record.
func (r *UploadRepository) Create(ctx context.Context, u *model.Upload) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO uploads (admin_id, file_name, file_url, storage_key, folder, size_bytes, mime_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		u.AdminID, u.FileName, u.FileURL, u.StorageKey, u.Folder, u.SizeBytes, u.MimeType,
	).Scan(&u.ID, &u.CreatedAt)
}

// Delete removes an upload record scoped to an admin.
func (r *UploadRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM uploads WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
