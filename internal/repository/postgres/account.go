package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/videoflix-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const selectAccount = `SELECT a.id, a.email, a.username, a.password_hash, a.is_active, a.created_at, a.updated_at, t.created_at
			  FROM accounts a
			  LEFT JOIN activation_tokens t ON t.account_id = a.id`

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// Create inserts the account and its activation token in one transaction.
func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	accountQuery := `INSERT INTO accounts (email, username, password_hash, is_active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, email, username, password_hash, is_active, created_at, updated_at`
	tokenQuery := `INSERT INTO activation_tokens (account_id) VALUES ($1)
			  RETURNING account_id, created_at`

	var saved model.Account
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, accountQuery,
			account.Email, account.Username, account.PasswordHash, account.IsActive,
		).Scan(
			&saved.ID, &saved.Email, &saved.Username, &saved.PasswordHash, &saved.IsActive,
			&saved.CreatedAt, &saved.UpdatedAt,
		)
		if err != nil {
			return err
		}

		var token model.ActivationToken
		if err := tx.QueryRow(ctx, tokenQuery, saved.ID).Scan(&token.AccountID, &token.CreatedAt); err != nil {
			return fmt.Errorf("failed to create activation token: %w", err)
		}
		saved.ActivationToken = &token

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return model.Account{}, model.ErrDuplicateEmail
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE a.email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (model.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, selectAccount+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) SetActive(ctx context.Context, id int64) error {
	query := `UPDATE accounts SET is_active = TRUE, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *AccountRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to set account password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var (
		account        model.Account
		tokenCreatedAt *time.Time
	)

	err := row.Scan(
		&account.ID, &account.Email, &account.Username, &account.PasswordHash, &account.IsActive,
		&account.CreatedAt, &account.UpdatedAt, &tokenCreatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	if tokenCreatedAt != nil {
		account.ActivationToken = &model.ActivationToken{
			AccountID: account.ID,
			CreatedAt: *tokenCreatedAt,
		}
	}

	return account, nil
}
