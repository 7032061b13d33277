package usecase

import (
	"context"
	"fmt"
	"strings"

	"weather-ai-bot/internal/knowledge"
	"weather-ai-bot/pkg/llmprovider"
)

// Ask sends the utterance to the LLM with the reference date as context.
func (uc *implUseCase) Ask(ctx context.Context, utterance, referenceDate string) string {
	req := llmprovider.UserPrompt(
		fmt.Sprintf(knowledge.SystemPromptFormat, referenceDate),
		fmt.Sprintf(knowledge.UserPromptFormat, utterance),
	)
	req.Temperature = uc.opts.Temperature
	req.MaxTokens = uc.opts.MaxTokens

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "knowledge.Ask: generation failed: %v", err)
		return knowledge.ReplyApology
	}

	answer := strings.TrimSpace(resp.Text)
	if answer == "" {
		uc.l.Warnf(ctx, "knowledge.Ask: provider %s returned an empty answer", resp.ProviderName)
		return knowledge.ReplyApology
	}

	return answer
}
