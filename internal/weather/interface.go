package weather

import "context"

// UseCase answers weather questions for a single city.
type UseCase interface {
	// Fetch returns a formatted weather sentence, or a formatted apology when
	// the lookup fails. It never returns an error.
	Fetch(ctx context.Context, city string) string
}
