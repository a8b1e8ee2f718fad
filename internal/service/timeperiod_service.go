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

// ErrNonPositiveDuration rejects periods whose end does not come after
// their start.
var ErrNonPositiveDuration = errors.New("end_time must be after start_time")

// TimePeriodStore is the data-access contract for the time period
// registry.
type TimePeriodStore interface {
	ListByAdmin(ctx context.Context, adminID int) ([]model.TimePeriod, error)
	GetByID(ctx context.Context, adminID, id int) (*model.TimePeriod, error)
	FindCollision(ctx context.Context, adminID int, name string, sortOrder, excludeID int) (*model.TimePeriod, error)
	Create(ctx context.Context, p *model.TimePeriod) error
	Update(ctx context.Context, p *model.TimePeriod) error
	Delete(ctx context.Context, adminID, id int) error
	Stats(ctx context.Context, adminID int) (*model.TimePeriodStats, error)
}

// TimePeriodService handles time period registry business logic.
type TimePeriodService struct {
	store TimePeriodStore
	log   zerolog.Logger
}

// NewTimePeriodService creates a new TimePeriodService.
func NewTimePeriodService(store TimePeriodStore, log zerolog.Logger) *TimePeriodService {
	return &TimePeriodService{
		store: store,
		log:   log.With().Str("component", "timeperiod_service").Logger(),
	}
}

// ParseMinutes converts an "HH:MM" clock string to minutes since
// midnight.
func ParseMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	h, err := strconv.Atoi(clock[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	m, err := strconv.Atoi(clock[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return h*60 + m, nil
}

// Duration derives the period length in minutes. A zero or negative
// result is an error: periods never wrap past midnight.
func Duration(startTime, endTime string) (int, error) {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return 0, err
	}
	d := end - start
	if d <= 0 {
		return 0, ErrNonPositiveDuration
	}
	return d, nil
}

// List returns the admin's time periods sorted by order.
func (s *TimePeriodService) List(ctx context.Context, adminID int) ([]model.TimePeriod, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

// Create inserts a time period, deriving its duration from the
// start/end times.
func (s *TimePeriodService) Create(ctx context.Context, adminID int, req *model.CreateTimePeriodRequest) (*model.TimePeriod, error) {
	duration, err := Duration(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollision(ctx, adminID, req.Name, req.SortOrder, 0); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = model.PeriodKindClass
	}

	period := &model.TimePeriod{
		AdminID:         adminID,
		Name:            req.Name,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: duration,
		Kind:            kind,
		SortOrder:       req.SortOrder,
	}
	if err := s.store.Create(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// Update modifies a time period, re-deriving the duration.
func (s *TimePeriodService) Update(ctx context.Context, adminID, id int, req *model.UpdateTimePeriodRequest) (*model.TimePeriod, error) {
	duration, err := Duration(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollision(ctx, adminID, req.Name, req.SortOrder, id); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = model.PeriodKindClass
	}

	period := &model.TimePeriod{
		ID:              id,
		AdminID:         adminID,
		Name:            req.Name,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: duration,
		Kind:            kind,
		SortOrder:       req.SortOrder,
	}
	if err := s.store.Update(ctx, period); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.store.GetByID(ctx, adminID, id)
}

// Delete hard-deletes a time period.
func (s *TimePeriodService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Stats aggregates the admin's time period registry.
func (s *TimePeriodService) Stats(ctx context.Context, adminID int) (*model.TimePeriodStats, error) {
	return s.store.Stats(ctx, adminID)
}

func (s *TimePeriodService) checkCollision(ctx context.Context, adminID int, name string, sortOrder, excludeID int) error {
	existing, err := s.store.FindCollision(ctx, adminID, name, sortOrder, excludeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("check collision: %w", err)
	}

	if existing.Name == name {
		return &ConflictError{Field: "name", Value: name}
	}
	return &ConflictError{Field: "sort_order", Value: strconv.Itoa(sortOrder)}
}
