package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/accountsvc/accountsvc/internal/model"
)

// ErrAccountNotFound is returned when the referenced account id has no record.
var ErrAccountNotFound = errors.New("account not found")

// CreateAccount inserts a new account and populates the database-assigned
// id and timestamps on the passed model.
func (r *Repository) CreateAccount(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_joined, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined,
	).Scan(
		&account.ID,
		&account.DateJoined,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccountByID retrieves an account by its id.
func (r *Repository) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

// ListAccounts retrieves all accounts ordered by id.
// Callers must not rely on the ordering; it exists only for stable output.
func (r *Repository) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined, created_at, updated_at
		FROM accounts
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// UpdateAccount replaces an account's mutable fields and refreshes
// updated_at. Returns ErrAccountNotFound if the id has no record.
func (r *Repository) UpdateAccount(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone_number = $5, date_joined = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Address,
		account.PhoneNumber,
		account.DateJoined,
	).Scan(&account.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// DeleteAccount removes an account record.
// Returns ErrAccountNotFound if the id had no record; callers that need
// idempotent delete semantics treat that as success.
func (r *Repository) DeleteAccount(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// scanAccount scans a single row into an Account model.
func scanAccount(row pgx.Row) (*model.Account, error) {
	var account model.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	return &account, err
}
