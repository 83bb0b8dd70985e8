package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/models"
)

type accountService struct {
	accountRepository store.AccountRepository
	passwordHashCost  int

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, cfg config.Auth, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		passwordHashCost:  cfg.PasswordHashCost,
		logger:            logger,
	}
}

func (s *accountService) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.accountRepository.EmailExists(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("email lookup failed")
		return false, fmt.Errorf("email lookup failed: %w", err)
	}
	return exists, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (models.Account, error) {
	account, err := s.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", accountID).Msg("account search by id failed")
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}
	return account, nil
}

// UpdateAccount overwrites the names and email of an existing account and
// returns the stored result. Password, role and theme are left untouched.
func (s *accountService) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.AccountID <= 0 || account.Email == "" {
		log.Error().Int64("id", account.AccountID).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	updated, err := s.accountRepository.UpdateAccount(ctx, account)
	if err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("account update failed")
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}
	return updated, nil
}

// UpdatePassword stores a fresh bcrypt hash of password. As with
// registration, a hashing failure never reaches the repository.
func (s *accountService) UpdatePassword(ctx context.Context, accountID int64, password string) error {
	log := logger.FromContext(ctx)

	if accountID <= 0 || password == "" {
		log.Error().Int64("id", accountID).Msg("invalid password update data provided")
		return ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password, s.passwordHashCost)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	if err := s.accountRepository.UpdatePassword(ctx, accountID, hash); err != nil {
		log.Err(err).Int64("id", accountID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

func (s *accountService) SetDarkMode(ctx context.Context, accountID int64, darkMode bool) error {
	if accountID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.accountRepository.UpdateDarkMode(ctx, accountID, darkMode); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", accountID).Bool("dark_mode", darkMode).Msg("dark mode update failed")
		return fmt.Errorf("dark mode update failed: %w", err)
	}
	return nil
}
