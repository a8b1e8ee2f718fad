package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/model"
)

// ClassStore is the data-access contract for classes and their study
// materials.
type ClassStore interface {
	ListByAdmin(ctx context.Context, adminID int, status string, limit, offset int) ([]model.Class, int, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Class, error)
	FindActivePair(ctx context.Context, adminID int, className, section string, excludeID int) (*model.Class, error)
	Create(ctx context.Context, c *model.Class) error
	Update(ctx context.Context, c *model.Class) error
	Delete(ctx context.Context, adminID, id int) error
	ListMaterials(ctx context.Context, classID int) ([]model.ClassMaterial, error)
	AddMaterial(ctx context.Context, m *model.ClassMaterial) error
	GetMaterial(ctx context.Context, classID, materialID int) (*model.ClassMaterial, error)
	DeleteMaterial(ctx context.Context, classID, materialID int) error
}

// ClassService handles class and study material business logic.
type ClassService struct {
	store ClassStore
	blobs media.Store
	log   zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(store ClassStore, blobs media.Store, log zerolog.Logger) *ClassService {
	return &ClassService{
		store: store,
		blobs: blobs,
		log:   log.With().Str("component", "class_service").Logger(),
	}
}

// List returns the admin's classes, optionally filtered by status.
func (s *ClassService) List(ctx context.Context, adminID int, status string, limit, offset int) ([]model.Class, int, error) {
	return s.store.ListByAdmin(ctx, adminID, status, limit, offset)
}

// Get retrieves one class including its materials.
func (s *ClassService) Get(ctx context.Context, adminID, id int) (*model.Class, error) {
	class, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return class, nil
}

// Create inserts a class. The (class_name, section) pair is unique
// among the admin's non-cancelled classes; cancelled classes free up
// their pair for reuse.
func (s *ClassService) Create(ctx context.Context, adminID int, req *model.CreateClassRequest) (*model.Class, error) {
	if err := s.checkPair(ctx, adminID, req.ClassName, req.Section, 0); err != nil {
		return nil, err
	}

	class := &model.Class{
		AdminID:     adminID,
		ClassName:   req.ClassName,
		Section:     req.Section,
		Subject:     req.Subject,
		TeacherName: req.TeacherName,
		TeacherID:   req.TeacherID,
		Room:        req.Room,
		Schedule:    req.Schedule,
		MaxStudents: req.MaxStudents,
		Fees:        req.Fees,
		Status:      model.ClassStatusActive,
	}
	if err := s.store.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// Update modifies a class. The pair check excludes the class itself, so
// a no-op rename never conflicts with its own row.
func (s *ClassService) Update(ctx context.Context, adminID, id int, req *model.UpdateClassRequest) (*model.Class, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPair(ctx, adminID, req.ClassName, req.Section, id); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	class := &model.Class{
		ID:          id,
		AdminID:     adminID,
		ClassName:   req.ClassName,
		Section:     req.Section,
		Subject:     req.Subject,
		TeacherName: req.TeacherName,
		TeacherID:   req.TeacherID,
		Room:        req.Room,
		Schedule:    req.Schedule,
		MaxStudents: req.MaxStudents,
		Fees:        req.Fees,
		Status:      status,
	}
	if err := s.store.Update(ctx, class); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// Delete removes a class and best-effort deletes every material blob it
// owned. Blob failures are logged, never surfaced: the rows are already
// gone and the janitor sweeps orphans later.
func (s *ClassService) Delete(ctx context.Context, adminID, id int) error {
	class, err := s.Get(ctx, adminID, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	for _, m := range class.Materials {
		if err := s.blobs.Delete(ctx, m.StorageKey); err != nil {
			s.log.Warn().Err(err).Str("key", m.StorageKey).Int("class_id", id).Msg("failed to delete material blob")
		}
	}
	return nil
}

// AddMaterial uploads a study material blob and records it against the
// class.
func (s *ClassService) AddMaterial(ctx context.Context, adminID, classID int, title string, file io.Reader, contentType string, size int64) (*model.ClassMaterial, error) {
	if _, err := s.Get(ctx, adminID, classID); err != nil {
		return nil, err
	}

	obj, err := s.blobs.Upload(ctx, file, "materials", contentType, size)
	if err != nil {
		return nil, err
	}

	material := &model.ClassMaterial{
		ClassID:    classID,
		Title:      title,
		FileURL:    obj.URL,
		StorageKey: obj.Key,
		FileType:   contentType,
	}
	if err := s.store.AddMaterial(ctx, material); err != nil {
		if derr := s.blobs.Delete(ctx, obj.Key); derr != nil {
			s.log.Warn().Err(derr).Str("key", obj.Key).Msg("failed to delete orphaned material blob")
		}
		return nil, err
	}
	return material, nil
}

// DeleteMaterial removes a material row and best-effort deletes its
// blob.
func (s *ClassService) DeleteMaterial(ctx context.Context, adminID, classID, materialID int) error {
	if _, err := s.Get(ctx, adminID, classID); err != nil {
		return err
	}

	material, err := s.store.GetMaterial(ctx, classID, materialID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.store.DeleteMaterial(ctx, classID, materialID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.blobs.Delete(ctx, material.StorageKey); err != nil {
		s.log.Warn().Err(err).Str("key", material.StorageKey).Int("material_id", materialID).Msg("failed to delete material blob")
	}
	return nil
}

func (s *ClassService) checkPair(ctx context.Context, adminID int, className, section string, excludeID int) error {
	_, err := s.store.FindActivePair(ctx, adminID, className, section, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check class pair: %w", err)
	}
	return &ConflictError{Field: "class", Value: className + " " + section}
}
