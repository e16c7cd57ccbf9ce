package captcha

import "errors"

var (
	// ErrVerificationFailed indicates the token was rejected or could not be
	// verified.
	ErrVerificationFailed = errors.New("captcha verification failed")

	// ErrTokenRequired indicates an empty token was submitted.
	ErrTokenRequired = errors.New("captcha token is required")

	// ErrSecretRequired indicates the verifier was built without a secret.
	ErrSecretRequired = errors.New("captcha secret is required")
)
