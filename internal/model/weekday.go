package model

import "time"

// WeekDay is a schedulable day of the week, scoped to one admin.
// Name, short name and sort order are each unique within that scope.
type WeekDay struct {
	ID        int       `json:"id"`
	AdminID   int       `json:"-"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateWeekDayRequest is the payload for creating a week day.
type CreateWeekDayRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=20"`
	ShortName string `json:"short_name" binding:"required,min=1,max=5"`
	SortOrder int    `json:"sort_order" binding:"required,min=1,max=7"`
}

// UpdateWeekDayRequest is the payload for updating a week day.
type UpdateWeekDayRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=20"`
	ShortName string `json:"short_name" binding:"required,min=1,max=5"`
	SortOrder int    `json:"sort_order" binding:"required,min=1,max=7"`
}

// WeekDayStats summarizes an admin's week day registry.
type WeekDayStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
