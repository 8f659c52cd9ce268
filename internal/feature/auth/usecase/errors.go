// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrAdminNotFound is returned when an administrator cannot be found by email or ID.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrEmailAlreadyExists is returned when attempting to register an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password does not meet the length requirement.
	ErrWeakPassword = errors.New("password is too short")
)
