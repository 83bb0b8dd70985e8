package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the session
// token lifecycle using an AccountRepository for persistence, bcrypt for
// password hashing and a RevocationStore for logged-out tokens.
type authService struct {
	// accountRepository is the data-access layer used to create and look up accounts.
	accountRepository store.AccountRepository

	// revocations holds the ids of tokens that were explicitly logged out.
	revocations store.RevocationStore

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, revocations store.RevocationStore, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		revocations:       revocations,
		passwordHashCost:  cfg.PasswordHashCost,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// RegisterAccount creates a new account with the Client role.
//
// The plain-text password is replaced with its bcrypt hash before the
// repository is called. When hashing fails the repository is not called at
// all and ErrPasswordHashing is returned.
//
// Returns the persisted account (with a server-assigned AccountID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrPasswordHashing if the password could not be hashed.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken; see store.ErrEmailAlreadyExists).
func (a *authService) RegisterAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Email == "" || account.Password == "" {
		log.Error().Str("email", account.Email).Msg("invalid account data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(account.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("email", account.Email).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	account.Password = hash
	account.AccountType = models.RoleClient

	registered, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("email", account.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account by email and password.
//
// Returns the authenticated account or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. account not found,
//     see store.ErrNoAccountWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	found, err := a.accountRepository.FindAccountByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if !utils.CheckPassword(found.Password, password) {
		log.Warn().
			Int64("id", found.AccountID).
			Str("email", found.Email).
			Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for the given account.
//
// Only the account's Identity is embedded; the password hash never leaves
// the service. The token expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", account.AccountID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer and expiry are verified by utils.ValidateAndParseJWTToken,
// then the token id is looked up in the revocation list. Every failure,
// including an unreachable revocation list, is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.revocations.IsRevoked(ctx, token.Claims.ID)
	if err != nil {
		log.Err(err).Str("jti", token.Claims.ID).Msg("revocation list lookup failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if revoked {
		log.Info().Str("jti", token.Claims.ID).Msg("revoked token presented")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RevokeToken puts the token id on the revocation list until the moment the
// token would have expired anyway.
func (a *authService) RevokeToken(ctx context.Context, token models.Token) error {
	until := time.Now().Add(a.tokenDuration)
	if token.Claims.ExpiresAt != nil {
		until = token.Claims.ExpiresAt.Time
	}

	if err := a.revocations.Revoke(ctx, token.Claims.ID, until); err != nil {
		logger.FromContext(ctx).Err(err).Str("jti", token.Claims.ID).Msg("token revocation failed")
		return fmt.Errorf("%w: %w", ErrTokenRevocationFailed, err)
	}

	return nil
}
