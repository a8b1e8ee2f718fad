package model

import "time"

// Student statuses.
const (
	StudentStatusActive    = "active"
	StudentStatusGraduated = "graduated"
	StudentStatusInactive  = "inactive"
)

// Student is an enrolled student, scoped to one admin. The admission
// number is unique within that scope.
type Student struct {
	ID           int       `json:"id"`
	AdminID      int       `json:"-"`
	AdmissionNo  string    `json:"admission_no"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	GuardianName string    `json:"guardian_name"`
	ClassID      *int      `json:"class_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	AdmissionNo  string `json:"admission_no" binding:"required,min=1,max=30"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	GuardianName string `json:"guardian_name" binding:"omitempty,max=100"`
	ClassID      *int   `json:"class_id" binding:"omitempty,min=1"`
}

// UpdateStudentRequest is the payload for updating a student.
type UpdateStudentRequest struct {
	AdmissionNo  string `json:"admission_no" binding:"required,min=1,max=30"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"omitempty,max=20"`
	GuardianName string `json:"guardian_name" binding:"omitempty,max=100"`
	ClassID      *int   `json:"class_id" binding:"omitempty,min=1"`
	Status       string `json:"status" binding:"omitempty,oneof=active graduated inactive"`
}
