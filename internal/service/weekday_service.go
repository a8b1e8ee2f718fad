package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

// WeekDayStore is the data-access contract for the week day registry.
type WeekDayStore interface {
	ListByAdmin(ctx context.Context, adminID int) ([]model.WeekDay, error)
	GetByID(ctx context.Context, adminID, id int) (*model.WeekDay, error)
	FindCollision(ctx context.Context, adminID int, name, shortName string, sortOrder, excludeID int) (*model.WeekDay, error)
	Create(ctx context.Context, d *model.WeekDay) error
	Update(ctx context.Context, d *model.WeekDay) error
	Delete(ctx context.Context, adminID, id int) error
	ToggleActive(ctx context.Context, adminID, id int) (*model.WeekDay, error)
	Stats(ctx context.Context, adminID int) (*model.WeekDayStats, error)
}

// WeekDayService handles week day registry business logic. All
// operations are scoped to the requesting admin.
type WeekDayService struct {
	store WeekDayStore
	log   zerolog.Logger
}

// NewWeekDayService creates a new WeekDayService.
func NewWeekDayService(store WeekDayStore, log zerolog.Logger) *WeekDayService {
	return &WeekDayService{
		store: store,
		log:   log.With().Str("component", "weekday_service").Logger(),
	}
}

// List returns the admin's week days sorted by order.
func (s *WeekDayService) List(ctx context.Context, adminID int) ([]model.WeekDay, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

// Create inserts a week day after checking name, short name and order
// against the admin's existing registry. The storage-level unique
// indexes back this check under concurrent writers.
func (s *WeekDayService) Create(ctx context.Context, adminID int, req *model.CreateWeekDayRequest) (*model.WeekDay, error) {
	if err := s.checkCollision(ctx, adminID, req.Name, req.ShortName, req.SortOrder, 0); err != nil {
		return nil, err
	}

	day := &model.WeekDay{
		AdminID:   adminID,
		Name:      req.Name,
		ShortName: req.ShortName,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if err := s.store.Create(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// Update modifies a week day with the same collision rules, excluding
// the row being updated.
func (s *WeekDayService) Update(ctx context.Context, adminID, id int, req *model.UpdateWeekDayRequest) (*model.WeekDay, error) {
	if err := s.checkCollision(ctx, adminID, req.Name, req.ShortName, req.SortOrder, id); err != nil {
		return nil, err
	}

	day := &model.WeekDay{
		ID:        id,
		AdminID:   adminID,
		Name:      req.Name,
		ShortName: req.ShortName,
		SortOrder: req.SortOrder,
	}
	if err := s.store.Update(ctx, day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.store.GetByID(ctx, adminID, id)
}

// Delete hard-deletes a week day. Timetable periods referencing the day
// are left untouched.
func (s *WeekDayService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ToggleActive flips a week day's active flag.
func (s *WeekDayService) ToggleActive(ctx context.Context, adminID, id int) (*model.WeekDay, error) {
	day, err := s.store.ToggleActive(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return day, nil
}

// Stats aggregates the admin's week day registry.
func (s *WeekDayService) Stats(ctx context.Context, adminID int) (*model.WeekDayStats, error) {
	return s.store.Stats(ctx, adminID)
}

func (s *WeekDayService) checkCollision(ctx context.Context, adminID int, name, shortName string, sortOrder, excludeID int) error {
	existing, err := s.store.FindCollision(ctx, adminID, name, shortName, sortOrder, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check collision: %w", err)
	}

	switch {
	case existing.Name == name:
		return &ConflictError{Field: "name", Value: name}
	case existing.ShortName == shortName:
		return &ConflictError{Field: "short_name", Value: shortName}
	default:
		return &ConflictError{Field: "sort_order", Value: strconv.Itoa(sortOrder)}
	}
}
