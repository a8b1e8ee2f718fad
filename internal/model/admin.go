package model

import "time"

// User roles. Admins own a tenant; teachers belong to one.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// Admin represents a dashboard account. Every registry record in the
// system carries the owning admin's id as a tenant discriminator.
type Admin struct {
	ID           int       `json:"id"`
	TenantID     int       `json:"tenant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
