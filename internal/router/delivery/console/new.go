package console

import (
	"context"
	"io"

	"weather-ai-bot/internal/router"
	pkgLog "weather-ai-bot/pkg/log"
)

// Handler drives the router from line-oriented terminal input.
type Handler interface {
	// REPL reads utterances from in until exit, quit, EOF or ctx cancellation.
	REPL(ctx context.Context, in io.Reader, out io.Writer) error
	// Ask routes a single utterance built from args.
	Ask(ctx context.Context, args []string, out io.Writer) error
	// Batch routes every utterance in in and writes a transcript in the given format.
	Batch(ctx context.Context, in io.Reader, out io.Writer, format string) error
}

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// New creates a new console handler.
func New(l pkgLog.Logger, r router.Router) Handler {
	return &handler{
		l:      l,
		router: r,
	}
}
