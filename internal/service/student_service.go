package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

// StudentStore is the data-access contract for students.
type StudentStore interface {
	ListByAdmin(ctx context.Context, adminID int, search string, classID *int, limit, offset int) ([]model.Student, int, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Student, error)
	FindByAdmissionNo(ctx context.Context, adminID int, admissionNo string, excludeID int) (*model.Student, error)
	Create(ctx context.Context, st *model.Student) error
	Update(ctx context.Context, st *model.Student) error
	Delete(ctx context.Context, adminID, id int) error
}

// StudentService handles student roster business logic.
type StudentService struct {
	store StudentStore
	log   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{
		store: store,
		log:   log.With().Str("component", "student_service").Logger(),
	}
}

// List returns the admin's students with optional search and class
// filters.
func (s *StudentService) List(ctx context.Context, adminID int, search string, classID *int, limit, offset int) ([]model.Student, int, error) {
	return s.store.ListByAdmin(ctx, adminID, search, classID, limit, offset)
}

// Get retrieves one student.
func (s *StudentService) Get(ctx context.Context, adminID, id int) (*model.Student, error) {
	student, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

// Create enrolls a student. Admission numbers are unique per admin.
func (s *StudentService) Create(ctx context.Context, adminID int, req *model.CreateStudentRequest) (*model.Student, error) {
	if err := s.checkAdmissionNo(ctx, adminID, req.AdmissionNo, 0); err != nil {
		return nil, err
	}

	student := &model.Student{
		AdminID:      adminID,
		AdmissionNo:  req.AdmissionNo,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		GuardianName: req.GuardianName,
		ClassID:      req.ClassID,
		Status:       model.StudentStatusActive,
	}
	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update modifies a student.
func (s *StudentService) Update(ctx context.Context, adminID, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAdmissionNo(ctx, adminID, req.AdmissionNo, id); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	student := &model.Student{
		ID:           id,
		AdminID:      adminID,
		AdmissionNo:  req.AdmissionNo,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		GuardianName: req.GuardianName,
		ClassID:      req.ClassID,
		Status:       status,
	}
	if err := s.store.Update(ctx, student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// Delete hard-deletes a student.
func (s *StudentService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *StudentService) checkAdmissionNo(ctx context.Context, adminID int, admissionNo string, excludeID int) error {
	_, err := s.store.FindByAdmissionNo(ctx, adminID, admissionNo, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check admission no: %w", err)
	}
	return &ConflictError{Field: "admission_no", Value: admissionNo}
}
