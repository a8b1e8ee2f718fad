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

// EmployeeStore is the data-access contract for employees.
type EmployeeStore interface {
	ListByAdmin(ctx context.Context, adminID int, search string, limit, offset int) ([]model.Employee, int, error)
	ListActiveByAdmin(ctx context.Context, adminID int) ([]model.Employee, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Employee, error)
	GetByIDUnscoped(ctx context.Context, id int) (*model.Employee, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, e *model.Employee) error
	SetPhoto(ctx context.Context, adminID, id int, url, key string) error
	Delete(ctx context.Context, adminID, id int) error
}

// EmployeeService handles employee roster business logic.
type EmployeeService struct {
	store EmployeeStore
	blobs media.Store
	log   zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(store EmployeeStore, blobs media.Store, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		store: store,
		blobs: blobs,
		log:   log.With().Str("component", "employee_service").Logger(),
	}
}

// List returns the admin's employees with optional name/email search.
func (s *EmployeeService) List(ctx context.Context, adminID int, search string, limit, offset int) ([]model.Employee, int, error) {
	return s.store.ListByAdmin(ctx, adminID, search, limit, offset)
}

// Get retrieves one employee.
func (s *EmployeeService) Get(ctx context.Context, adminID, id int) (*model.Employee, error) {
	employee, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

// Create inserts an employee.
func (s *EmployeeService) Create(ctx context.Context, adminID int, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	employee := &model.Employee{
		AdminID:    adminID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Status:     model.EmployeeStatusActive,
	}
	if err := s.store.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update modifies an employee.
func (s *EmployeeService) Update(ctx context.Context, adminID, id int, req *model.UpdateEmployeeRequest) (*model.Employee, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	employee := &model.Employee{
		ID:         id,
		AdminID:    adminID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Status:     status,
	}
	if err := s.store.Update(ctx, employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// SetPhoto uploads a new profile photo and best-effort deletes the
// previous one.
func (s *EmployeeService) SetPhoto(ctx context.Context, adminID, id int, file io.Reader, contentType string, size int64) (*model.Employee, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	obj, err := s.blobs.Upload(ctx, file, "employees", contentType, size)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetPhoto(ctx, adminID, id, obj.URL, obj.Key); err != nil {
		if derr := s.blobs.Delete(ctx, obj.Key); derr != nil {
			s.log.Warn().Err(derr).Str("key", obj.Key).Msg("failed to delete orphaned photo blob")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if current.PhotoKey != "" {
		if err := s.blobs.Delete(ctx, current.PhotoKey); err != nil {
			s.log.Warn().Err(err).Str("key", current.PhotoKey).Int("employee_id", id).Msg("failed to delete replaced photo blob")
		}
	}
	return s.Get(ctx, adminID, id)
}

// Delete removes an employee and best-effort deletes their photo blob.
func (s *EmployeeService) Delete(ctx context.Context, adminID, id int) error {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if current.PhotoKey != "" {
		if err := s.blobs.Delete(ctx, current.PhotoKey); err != nil {
			s.log.Warn().Err(err).Str("key", current.PhotoKey).Int("employee_id", id).Msg("failed to delete photo blob")
		}
	}
	return nil
}
