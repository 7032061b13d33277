package telegram

import (
	"crypto/subtle"
)

// validateSecretToken compares the header Telegram echoes back with the
// token registered through setWebhook.
func validateSecretToken(expected, got string) error {
	if expected == "" {
		return ErrSecretNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return ErrInvalidSecret
	}
	return nil
}
