package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/edulink-backend/internal/model"
)

// BankAccountRepository handles bank account data access.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

const bankAccountColumns = `id, admin_id, bank_name, account_name, account_number, branch, ifsc_code, logo_url, logo_key, is_active, created_at, updated_at`

func scanBankAccount(row pgx.Row) (*model.BankAccount, error) {
	b := &model.BankAccount{}
	err := row.Scan(&b.ID, &b.AdminID, &b.BankName, &b.AccountName, &b.AccountNumber, &b.Branch, &b.IFSCCode, &b.LogoURL, &b.LogoKey, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByAdmin retrieves all bank accounts for an admin.
func (r *BankAccountRepository) ListByAdmin(ctx context.Context, adminID int) ([]model.BankAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE admin_id = $1 ORDER BY bank_name`, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []model.BankAccount
	for rows.Next() {
		b, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *b)
	}
	return accounts, rows.Err()
}

// GetByID retrieves a bank account scoped to an admin.
func (r *BankAccountRepository) GetByID(ctx context.Context, adminID, id int) (*model.BankAccount, error) {
	return scanBankAccount(r.pool.QueryRow(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE admin_id = $1 AND id = $2`, adminID, id))
}

// Create inserts a new bank account.
func (r *BankAccountRepository) Create(ctx context.Context, b *model.BankAccount) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bank_accounts (admin_id, bank_name, account_name, account_number, branch, ifsc_code, logo_url, logo_key, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		b.AdminID, b.BankName, b.AccountName, b.AccountNumber, b.Branch, b.IFSCCode, b.LogoURL, b.LogoKey, b.IsActive,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update modifies an existing bank account scoped to an admin.
func (r *BankAccountRepository) Update(ctx context.Context, b *model.BankAccount) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE bank_accounts
		 SET bank_name = $1, account_name = $2, account_number = $3, branch = $4, ifsc_code = $5, is_active = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $7 AND id = $8`,
		b.BankName, b.AccountName, b.AccountNumber, b.Branch, b.IFSCCode, b.IsActive, b.AdminID, b.ID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetLogo updates a bank account's logo URL and storage key.
func (r *BankAccountRepository) SetLogo(ctx context.Context, adminID, id int, url, key string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE bank_accounts SET logo_url = $1, logo_key = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE admin_id = $3 AND id = $4`,
		url, key, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a bank account scoped to an admin.
func (r *BankAccountRepository) Delete(ctx context.Context, adminID, id int) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
