package service

import (
	"context"
	"errors"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/model"
)

// BankAccountStore is the data-access contract for bank accounts.
type BankAccountStore interface {
	ListByAdmin(ctx context.Context, adminID int) ([]model.BankAccount, error)
	GetByID(ctx context.Context, adminID, id int) (*model.BankAccount, error)
	Create(ctx context.Context, b *model.BankAccount) error
	Update(ctx context.Context, b *model.BankAccount) error
	SetLogo(ctx context.Context, adminID, id int, url, key string) error
	Delete(ctx context.Context, adminID, id int) error
}

// BankAccountService handles fee-collection account business logic.
type BankAccountService struct {
	store BankAccountStore
	blobs media.Store
	log   zerolog.Logger
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(store BankAccountStore, blobs media.Store, log zerolog.Logger) *BankAccountService {
	return &BankAccountService{
		store: store,
		blobs: blobs,
		log:   log.With().Str("component", "bank_account_service").Logger(),
	}
}

// List returns the admin's bank accounts.
func (s *BankAccountService) List(ctx context.Context, adminID int) ([]model.BankAccount, error) {
	return s.store.ListByAdmin(ctx, adminID)
}

// Get retrieves one bank account.
func (s *BankAccountService) Get(ctx context.Context, adminID, id int) (*model.BankAccount, error) {
	account, err := s.store.GetByID(ctx, adminID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

// Create inserts a bank account.
func (s *BankAccountService) Create(ctx context.Context, adminID int, req *model.CreateBankAccountRequest) (*model.BankAccount, error) {
	account := &model.BankAccount{
		AdminID:       adminID,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Branch:        req.Branch,
		IFSCCode:      req.IFSCCode,
		IsActive:      true,
	}
	if err := s.store.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update modifies a bank account.
func (s *BankAccountService) Update(ctx context.Context, adminID, id int, req *model.UpdateBankAccountRequest) (*model.BankAccount, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	account := &model.BankAccount{
		ID:            id,
		AdminID:       adminID,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Branch:        req.Branch,
		IFSCCode:      req.IFSCCode,
		IsActive:      isActive,
	}
	if err := s.store.Update(ctx, account); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, adminID, id)
}

// SetLogo uploads a new logo and best-effort deletes the previous one.
func (s *BankAccountService) SetLogo(ctx context.Context, adminID, id int, file io.Reader, contentType string, size int64) (*model.BankAccount, error) {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	obj, err := s.blobs.Upload(ctx, file, "bank-logos", contentType, size)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetLogo(ctx, adminID, id, obj.URL, obj.Key); err != nil {
		if derr := s.blobs.Delete(ctx, obj.Key); derr != nil {
			s.log.Warn().Err(derr).Str("key", obj.Key).Msg("failed to delete orphaned logo blob")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if current.LogoKey != "" {
		if err := s.blobs.Delete(ctx, current.LogoKey); err != nil {
			s.log.Warn().Err(err).Str("key", current.LogoKey).Int("account_id", id).Msg("failed to delete replaced logo blob")
		}
	}
	return s.Get(ctx, adminID, id)
}

// Delete removes a bank account and best-effort deletes its logo blob.
func (s *BankAccountService) Delete(ctx context.Context, adminID, id int) error {
	current, err := s.Get(ctx, adminID, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, adminID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if current.LogoKey != "" {
		if err := s.blobs.Delete(ctx, current.LogoKey); err != nil {
			s.log.Warn().Err(err).Str("key", current.LogoKey).Int("account_id", id).Msg("failed to delete logo blob")
		}
	}
	return nil
}
