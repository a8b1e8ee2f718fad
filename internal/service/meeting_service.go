package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

// MeetingStore is the data-access contract for meetings.
type MeetingStore interface {
	ListByAdmin(ctx context.Context, adminID int, status string) ([]model.Meeting, error)
	GetByID(ctx context.Context, adminID, id int) (*model.Meeting, error)
	Create(ctx context.Context, m *model.Meeting) error
	Update(ctx context.Context, m *model.Meeting) error
	Delete(ctx context.Context, adminID, id int) error
}

// MeetingService handles meeting scheduling business logic.
type MeetingService struct {
	store MeetingStore
	log   zerolog.Logger
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(store MeetingStore, log zerolog.Logger) *MeetingService {
	return &MeetingService{
		store: store,
		log:   log.With().Str("component", "meeting_service").Logger(),
	}
}

// List returns the admin's meetings, optionally filtered by status.
func (s *MeetingService) List(ctx context.Context, adminID int, status string) ([]model.Meeting, error) {
	return s.store.ListByAdmin(ctx, adminID, status)
}

// Get retrieves one meeting.
func (s *MeetingService) Get(ctx context.Context, adminID, id int) (*model.Meeting, error) {
	meeting, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meeting, nil
}

// Create schedules a meeting.
func (s *MeetingService) Create(ctx context.Context, adminID int, req *model.CreateMeetingRequest) (*model.Meeting, error) {
	meeting := &model.Meeting{
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		MeetingDate: req.MeetingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingLink: req.MeetingLink,
		Status:      model.MeetingStatusScheduled,
	}
	if err := s.store.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Update modifies a meeting.
func (s *MeetingService) Update(ctx context.Context, adminID, id int, req *model.UpdateMeetingRequest) (*model.Meeting, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	meeting := &model.Meeting{
		ID:          id,
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		MeetingDate: req.MeetingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		MeetingLink: req.MeetingLink,
		Status:      status,
	}
	if err := s.store.Update(ctx, meeting); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// Delete removes a meeting.
func (s *MeetingService) Delete(ctx context.Context, adminID, id int) error {
	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
