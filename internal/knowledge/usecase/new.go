package usecase

import (
	"context"

	"weather-ai-bot/internal/knowledge"
	"weather-ai-bot/pkg/llmprovider"
	"weather-ai-bot/pkg/log"
)

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tune generation.
type Options struct {
	Temperature float64
	MaxTokens   int
}

type implUseCase struct {
	l    log.Logger
	llm  Generator
	opts Options
}

// New creates a new knowledge UseCase.
func New(l log.Logger, llm Generator, opts Options) knowledge.UseCase {
	if l == nil {
		l = log.NewNop()
	}
	return &implUseCase{l: l, llm: llm, opts: opts}
}
