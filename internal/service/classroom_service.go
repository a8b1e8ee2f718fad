package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

// ClassroomStore is the data-access contract for the classroom
// registry.
type ClassroomStore interface {
	ListByAdmin(ctx context.Context, adminID int) ([]model.Classroom, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Classroom, error)
	FindByName(ctx context.Context, adminID int, name string, excludeID int) (*model.Classroom, error)
	Create(ctx context.Context, c *model.Classroom) error
	Update(ctx context.Context, c *model.Classroom) error
	Delete(ctx context.Context, adminID, id int) error
	ToggleAvailable(ctx context.Context, adminID, id int) (*model.Classroom, error)
	Stats(ctx context.Context, adminID int) (*model.ClassroomStats, error)
}

// ClassroomService handles classroom registry business logic.
type ClassroomService struct {
	store ClassroomStore
	log   zerolog.Logger
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(store ClassroomStore, log zerolog.Logger) *ClassroomService {
	return &ClassroomService{
		store: store,
		log:   log.With().Str("component", "classroom_service").Logger(),
	}
}

// List returns the admin's classrooms.
func (s *ClassroomService) List(ctx context.Context, adminID int) ([]model.Classroom, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

// Get retrieves one classroom.
func (s *ClassroomService) Get(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	room, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// Create inserts a classroom. Names are unique per admin.
func (s *ClassroomService) Create(ctx context.Context, adminID int, req *model.CreateClassroomRequest) (*model.Classroom, error) {
	if err := s.checkName(ctx, adminID, req.Name, 0); err != nil {
		return nil, err
	}

	room := &model.Classroom{
		AdminID:     adminID,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Floor:       req.Floor,
		Building:    req.Building,
		RoomType:    req.RoomType,
		IsAvailable: true,
	}
	if err := s.store.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Update modifies a classroom.
func (s *ClassroomService) Update(ctx context.Context, adminID, id int, req *model.UpdateClassroomRequest) (*model.Classroom, error) {
	if err := s.checkName(ctx, adminID, req.Name, id); err != nil {
		return nil, err
	}

	room := &model.Classroom{
		ID:       id,
		AdminID:  adminID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Floor:    req.Floor,
		Building: req.Building,
		RoomType: req.RoomType,
	}
	if err := s.store.Update(ctx, room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// Delete hard-deletes a classroom.
func (s *ClassroomService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ToggleAvailable flips a classroom's availability flag.
func (s *ClassroomService) ToggleAvailable(ctx context.Context, adminID, id int) (*model.Classroom, error) {
	room, err := s.store.ToggleAvailable(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// Stats aggregates the admin's classroom registry.
func (s *ClassroomService) Stats(ctx context.Context, adminID int) (*model.ClassroomStats, error) {
	return s.store.Stats(ctx, adminID)
}

func (s *ClassroomService) checkName(ctx context.Context, adminID int, name string, excludeID int) error {
	_, err := s.store.FindByName(ctx, adminID, name, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check name: %w", err)
	}
	return &ConflictError{Field: "name", Value: name}
}
