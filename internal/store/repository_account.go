// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup and updates
// against the "account" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func scanAccount(row interface{ Scan(dest ...any) error }) (models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.AccountID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Password,
		&a.AccountType,
		&a.DarkMode,
		&a.CreatedAt,
	)
	return a, err
}

// CreateAccount inserts a new account and returns it with the server-assigned
// fields (AccountID, AccountType, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return models.Account{}, err
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindAccountByEmail returns the account registered under email,
// or [ErrNoAccountWasFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	query, args, err := buildFindAccountByEmailQuery(email)
	if err != nil {
		return models.Account{}, err
	}

	return r.findAccount(ctx, "*accountRepository.FindAccountByEmail", query, args)
}

// FindAccountByID returns the account with the given id,
// or [ErrNoAccountWasFound].
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	query, args, err := buildFindAccountByIDQuery(accountID)
	if err != nil {
		return models.Account{}, err
	}

	return r.findAccount(ctx, "*accountRepository.FindAccountByID", query, args)
}

func (r *accountRepository) findAccount(ctx context.Context, funcName, query string, args []any) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.retry(ctx, func() error {
		var scanErr error
		found, scanErr = scanAccount(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrNoAccountWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("failed to find account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// EmailExists reports whether an account is registered under email.
func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEmailExistsQuery(email)
	if err != nil {
		return false, err
	}

	var count int
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.EmailExists").Msg("failed to count accounts by email")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// UpdateAccount stores new names and email for account.AccountID and returns
// the updated row.
//
// Error handling:
//   - no such account → [ErrNoAccountWasFound].
//   - email taken by another account → [ErrEmailAlreadyExists].
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(account)
	if err != nil {
		return models.Account{}, err
	}

	updated, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNoAccountWasFound
		}

		log.Err(err).
			Str("func", "*accountRepository.UpdateAccount").
			Int64("account_id", account.AccountID).
			Msg("failed to update account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return updated, nil
}

// UpdatePassword replaces the stored password hash.
func (r *accountRepository) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	query, args, err := buildUpdatePasswordQuery(accountID, passwordHash)
	if err != nil {
		return err
	}

	return r.execUpdate(ctx, "*accountRepository.UpdatePassword", accountID, query, args)
}

// UpdateDarkMode stores the UI theme preference.
func (r *accountRepository) UpdateDarkMode(ctx context.Context, accountID int64, darkMode bool) error {
	query, args, err := buildUpdateDarkModeQuery(accountID, darkMode)
	if err != nil {
		return err
	}

	return r.execUpdate(ctx, "*accountRepository.UpdateDarkMode", accountID, query, args)
}

func (r *accountRepository) execUpdate(ctx context.Context, funcName string, accountID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("account_id", accountID).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoAccountWasFound
	}

	return nil
}
