package telegram

import "errors"

var (
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSecret       = errors.New("invalid webhook secret token")
)
