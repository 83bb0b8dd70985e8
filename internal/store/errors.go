package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update collides
	// with the unique index on account_email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoAccountWasFound is returned when no account matches the lookup.
	ErrNoAccountWasFound = errors.New("no account was found")

	// ErrClassificationAlreadyExists is returned when a classification name
	// is already taken.
	ErrClassificationAlreadyExists = errors.New("classification already exists")

	// ErrClassificationNotFound is returned when a classification id does not
	// exist, including a vehicle insert referencing an unknown classification.
	ErrClassificationNotFound = errors.New("classification was not found")

	// ErrVehicleNotFound is returned when no vehicle matches the lookup.
	ErrVehicleNotFound = errors.New("vehicle was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Revocation list errors.
var (
	// ErrEmptyTokenID is returned when a token without jti is revoked or checked.
	ErrEmptyTokenID = errors.New("empty token id")

	// ErrRevocationList is returned when the revocation backend fails.
	ErrRevocationList = errors.New("revocation list error")
)
