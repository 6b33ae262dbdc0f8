package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned when a sealed payload fails verification
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidKey is returned when key material does not have the required size or encoding
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrRandomSource is returned when the system random source cannot supply a nonce
	ErrRandomSource = errors.New("random source unavailable")
)
