package knowledge

import "context"

// UseCase answers open-domain questions with an LLM.
type UseCase interface {
	// Ask returns the model's answer, or an apology when no provider could
	// answer. It never returns an error.
	Ask(ctx context.Context, utterance, referenceDate string) string
}
