package model

import "time"

// Meeting statuses.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// Meeting is a scheduled staff/parent meeting, scoped to one admin.
type Meeting struct {
	ID          int       `json:"id"`
	AdminID     int       `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MeetingDate string    `json:"meeting_date"` // "YYYY-MM-DD"
	StartTime   string    `json:"start_time"`   // "HH:MM"
	EndTime     string    `json:"end_time"`
	MeetingLink string    `json:"meeting_link"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMeetingRequest is the payload for creating a meeting.
type CreateMeetingRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	MeetingDate string `json:"meeting_date" binding:"required,len=10"`
	StartTime   string `json:"start_time" binding:"required,len=5"`
	EndTime     string `json:"end_time" binding:"omitempty,len=5"`
	MeetingLink string `json:"meeting_link" binding:"omitempty,url"`
}

// UpdateMeetingRequest is the payload for updating a meeting.
type UpdateMeetingRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	MeetingDate string `json:"meeting_date" binding:"required,len=10"`
	StartTime   string `json:"start_time" binding:"required,len=5"`
	EndTime     string `json:"end_time" binding:"omitempty,len=5"`
	MeetingLink string `json:"meeting_link" binding:"omitempty,url"`
	Status      string `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}
