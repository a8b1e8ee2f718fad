package model

import "time"

// Time period kinds.
const (
	PeriodKindClass = "class"
	PeriodKindBreak = "break"
)

// TimePeriod is a daily time slot, scoped to one admin. Duration is
// derived from the start/end times at save time, never accepted from
// the client.
type TimePeriod struct {
	ID              int       `json:"id"`
	AdminID         int       `json:"-"`
	Name            string    `json:"name"`
	StartTime       string    `json:"start_time"` // "HH:MM", 24h
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Kind            string    `json:"kind"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateTimePeriodRequest is the payload for creating a time period.
type CreateTimePeriodRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=30"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
	Kind      string `json:"kind" binding:"omitempty,oneof=class break"`
	SortOrder int    `json:"sort_order" binding:"required,min=1"`
}

// UpdateTimePeriodRequest is the payload for updating a time period.
type UpdateTimePeriodRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=30"`
	StartTime string `json:"start_time" binding:"required,len=5"`
	EndTime   string `json:"end_time" binding:"required,len=5"`
	Kind      string `json:"kind" binding:"omitempty,oneof=class break"`
	SortOrder int    `json:"sort_order" binding:"required,min=1"`
}

// TimePeriodStats summarizes an admin's time period registry.
type TimePeriodStats struct {
	Total        int `json:"total"`
	ClassPeriods int `json:"class_periods"`
	BreakPeriods int `json:"break_periods"`
	TotalMinutes int `json:"total_minutes"`
}
