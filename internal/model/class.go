package model

import "time"

// Class statuses.
const (
	ClassStatusActive    = "active"
	ClassStatusCompleted = "completed"
	ClassStatusCancelled = "cancelled"
)

// Class represents a class+section group, scoped to one admin. The
// (class_name, section) pair is unique among non-cancelled classes for
// that admin.
type Class struct {
	ID          int             `json:"id"`
	AdminID     int             `json:"-"`
	ClassName   string          `json:"class_name"`
	Section     string          `json:"section"`
	Subject     string          `json:"subject"`
	TeacherName string          `json:"teacher_name"`
	TeacherID   *int            `json:"teacher_id,omitempty"`
	Room        string          `json:"room"`
	Schedule    string          `json:"schedule"`
	MaxStudents int             `json:"max_students"`
	Fees        float64         `json:"fees"`
	Status      string          `json:"status"`
	Materials   []ClassMaterial `json:"materials,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ClassMaterial is an uploaded study material owned by a class. The
// storage key is the deletion handle for the blob store; blob cleanup
// is best-effort and never blocks row deletion.
type ClassMaterial struct {
	ID         int       `json:"id"`
	ClassID    int       `json:"class_id"`
	Title      string    `json:"title"`
	FileURL    string    `json:"file_url"`
	StorageKey string    `json:"-"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	ClassName   string  `json:"class_name" binding:"required,min=1,max=50"`
	Section     string  `json:"section" binding:"required,min=1,max=10"`
	Subject     string  `json:"subject" binding:"omitempty,max=100"`
	TeacherName string  `json:"teacher_name" binding:"omitempty,max=100"`
	TeacherID   *int    `json:"teacher_id" binding:"omitempty,min=1"`
	Room        string  `json:"room" binding:"omitempty,max=50"`
	Schedule    string  `json:"schedule" binding:"omitempty,max=100"`
	MaxStudents int     `json:"max_students" binding:"omitempty,min=1"`
	Fees        float64 `json:"fees" binding:"omitempty,min=0"`
}

// UpdateClassRequest is the payload for updating a class.
type UpdateClassRequest struct {
	ClassName   string  `json:"class_name" binding:"required,min=1,max=50"`
	Section     string  `json:"section" binding:"required,min=1,max=10"`
	Subject     string  `json:"subject" binding:"omitempty,max=100"`
	TeacherName string  `json:"teacher_name" binding:"omitempty,max=100"`
	TeacherID   *int    `json:"teacher_id" binding:"omitempty,min=1"`
	Room        string  `json:"room" binding:"omitempty,max=50"`
	Schedule    string  `json:"schedule" binding:"omitempty,max=100"`
	MaxStudents int     `json:"max_students" binding:"omitempty,min=1"`
	Fees        float64 `json:"fees" binding:"omitempty,min=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}
