package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

// SubjectStore is the data-access contract for the subject registry.
type SubjectStore interface {
	ListByAdmin(ctx context.Context, adminID int) ([]model.Subject, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Subject, error)
	FindByCode(ctx context.Context, adminID int, code string, excludeID int) (*model.Subject, error)
	Create(ctx context.Context, sub *model.Subject) error
	Update(ctx context.Context, sub *model.Subject) error
	Delete(ctx context.Context, adminID, id int) error
}

// SubjectService handles subject registry business logic.
type SubjectService struct {
	store SubjectStore
	log   zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(store SubjectStore, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		store: store,
		log:   log.With().Str("component", "subject_service").Logger(),
	}
}

// List returns the admin's subjects sorted by name.
func (s *SubjectService) List(ctx context.Context, adminID int) ([]model.Subject, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

// Create inserts a subject. Codes are unique per admin.
func (s *SubjectService) Create(ctx context.Context, adminID int, req *model.CreateSubjectRequest) (*model.Subject, error) {
	if err := s.checkCode(ctx, adminID, req.Code, 0); err != nil {
		return nil, err
	}

	subject := &model.Subject{
		AdminID: adminID,
		Name:    req.Name,
		Code:    req.Code,
	}
	if err := s.store.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// Update modifies a subject.
func (s *SubjectService) Update(ctx context.Context, adminID, id int, req *model.UpdateSubjectRequest) (*model.Subject, error) {
	if err := s.checkCode(ctx, adminID, req.Code, id); err != nil {
		return nil, err
	}

	subject := &model.Subject{
		ID:      id,
		AdminID: adminID,
		Name:    req.Name,
		Code:    req.Code,
	}
	if err := s.store.Update(ctx, subject); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.store.GetByID(ctx, adminID, id)
}

// Delete hard-deletes a subject.
func (s *SubjectService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *SubjectService) checkCode(ctx context.Context, adminID int, code string, excludeID int) error {
	_, err := s.store.FindByCode(ctx, adminID, code, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check code: %w", err)
	}
	return &ConflictError{Field: "code", Value: code}
}
