package model

import "time"

// Classroom is a physical room, scoped to one admin. Name is unique
// within that scope.
type Classroom struct {
	ID          int       `json:"id"`
	AdminID     int       `json:"-"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Floor       int       `json:"floor"`
	Building    string    `json:"building"`
	RoomType    string    `json:"room_type"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateClassroomRequest is the payload for creating a classroom.
type CreateClassroomRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Floor    int    `json:"floor" binding:"min=0"`
	Building string `json:"building" binding:"required,min=1,max=50"`
	RoomType string `json:"room_type" binding:"omitempty,max=30"`
}

// UpdateClassroomRequest is the payload for updating a classroom.
type UpdateClassroomRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Floor    int    `json:"floor" binding:"min=0"`
	Building string `json:"building" binding:"required,min=1,max=50"`
	RoomType string `json:"room_type" binding:"omitempty,max=30"`
}

// ClassroomStats summarizes an admin's classroom registry.
type ClassroomStats struct {
	Total       int            `json:"total"`
	Available   int            `json:"available"`
	Unavailable int            `json:"unavailable"`
	ByBuilding  map[string]int `json:"by_building"`
	ByType      map[string]int `json:"by_type"`
}
