package model

import "time"

// Employee statuses.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee is a staff/teacher profile, scoped to one admin. Employees
// may be referenced from timetable periods as the assigned teacher.
type Employee struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"-"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	PhotoKey   string    `json:"-"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateEmployeeRequest is the payload for creating an employee.
type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Position   string `json:"position" binding:"required,min=2,max=50"`
	Department string `json:"department" binding:"omitempty,max=50"`
}

// UpdateEmployeeRequest is the payload for updating an employee.
type UpdateEmployeeRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Position   string `json:"position" binding:"required,min=2,max=50"`
	Department string `json:"department" binding:"omitempty,max=50"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive"`
}
