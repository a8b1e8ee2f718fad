package model

import "time"

// BankAccount stores fee-collection account details, scoped to one
// admin. The logo is a blob-store object keyed by LogoKey.
type BankAccount struct {
	ID            int       `json:"id"`
	AdminID       int       `json:"-"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	Branch        string    `json:"branch"`
	IFSCCode      string    `json:"ifsc_code"`
	LogoURL       string    `json:"logo_url,omitempty"`
	LogoKey       string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateBankAccountRequest is the payload for creating a bank account.
type CreateBankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,min=2,max=100"`
	AccountName   string `json:"account_name" binding:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" binding:"required,min=4,max=34"`
	Branch        string `json:"branch" binding:"omitempty,max=100"`
	IFSCCode      string `json:"ifsc_code" binding:"omitempty,max=20"`
}

// UpdateBankAccountRequest is the payload for updating a bank account.
type UpdateBankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,min=2,max=100"`
	AccountName   string `json:"account_name" binding:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" binding:"required,min=4,max=34"`
	Branch        string `json:"branch" binding:"omitempty,max=100"`
	IFSCCode      string `json:"ifsc_code" binding:"omitempty,max=20"`
	IsActive      *bool  `json:"is_active" binding:"omitempty"`
}
