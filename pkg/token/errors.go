package token

import "errors"

var (
	ErrInvalidToken            = errors.New("token: invalid token")
	ErrInvalidSignature        = errors.New("token: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("token: unexpected signing method")
	ErrMissingSigningKey       = errors.New("token: missing signing key")
	ErrMissingClaims           = errors.New("token: missing claims")
)
