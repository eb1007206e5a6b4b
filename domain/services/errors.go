package services

import "errors"

var (
	// ErrInvalidCredentials is returned on any login failure. It deliberately
	// does not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrWrongPassword is returned when the current password supplied with a
	// profile update does not verify against the stored hash.
	ErrWrongPassword = errors.New("invalid password provided")
)
