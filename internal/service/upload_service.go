package service

import (
	"context"
	"errors"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/model"
)

// UploadStore is the data-access contract for generic upload records.
type UploadStore interface {
	ListByAdmin(ctx context.Context, adminID, limit, offset int) ([]model.Upload, int, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Upload, error)
	Create(ctx context.Context, u *model.Upload) error
	Delete(ctx context.Context, adminID, id int) error
}

// UploadService is the generic media gateway: store a blob, record its
// metadata, hand back a URL.
type UploadService struct {
	store UploadStore
	blobs media.Store
	log   zerolog.Logger
}

// NewUploadService creates a new UploadService.
func NewUploadService(store UploadStore, blobs media.Store, log zerolog.Logger) *UploadService {
	return &UploadService{
		store: store,
		blobs: blobs,
		log:   log.With().Str("component", "upload_service").Logger(),
	}
}

// List returns the admin's uploads, newest first.
func (s *UploadService) List(ctx context.Context, adminID, limit, offset int) ([]model.Upload, int, error) {
	return s.store.ListByAdmin(ctx, adminID, limit, offset)
}

// Upload stores a file and records its metadata.
func (s *UploadService) Upload(ctx context.Context, adminID int, fileName, folder string, file io.Reader, contentType string, size int64) (*model.Upload, error) {
	obj, err := s.blobs.Upload(ctx, file, folder, contentType, size)
	if err != nil {
		return nil, err
	}

	upload := &model.Upload{
		AdminID:    adminID,
		FileName:   fileName,
		FileURL:    obj.URL,
		StorageKey: obj.Key,
		Folder:     folder,
		SizeBytes:  size,
		MimeType:   contentType,
	}
	if err := s.store.Create(ctx, upload); err != nil {
		if derr := s.blobs.Delete(ctx, obj.Key); derr != nil {
			s.log.Warn().Err(derr).Str("key", obj.Key).Msg("failed to delete orphaned upload blob")
		}
		return nil, err
	}
	return upload, nil
}

// Delete removes an upload record and best-effort deletes its blob.
func (s *UploadService) Delete(ctx context.Context, adminID, id int) error {
	upload, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.blobs.Delete(ctx, upload.StorageKey); err != nil {
		s.log.Warn().Err(err).Str("key", upload.StorageKey).Int("upload_id", id).Msg("failed to delete upload blob")
	}
	return nil
}
