package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevocationFailed   = errors.New("token revocation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
