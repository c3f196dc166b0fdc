package service

import "errors"

var (
	// ErrNotFound is returned when an id-keyed lookup finds no row.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when an authenticated actor fails an
	// ownership or visibility check.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned on login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWrongPassword is returned when the re-entered current password
	// does not match the stored hash.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrEmailTaken is returned when registering or renaming to an email
	// that already has an account.
	ErrEmailTaken = errors.New("email already in use")
	// ErrUnknownIngredient is returned when a recipe references an
	// ingredient the actor does not own.
	ErrUnknownIngredient = errors.New("unknown ingredient")
)
