package router

import (
	"context"
	"fmt"
	"strings"

	"weather-ai-bot/pkg/datemath"
)

// Route classifies utterance and returns the reply of the matching branch.
// Collaborator failures arrive as apology strings, so Route never fails.
func (r *IntentRouter) Route(ctx context.Context, utterance string) string {
	intent := Classify(utterance)

	switch intent {
	case IntentDate:
		r.trace(ctx, Trace{Intent: intent, Branch: BranchDate})
		return fmt.Sprintf(ReplyDateFormat, datemath.LongDate(r.clock.Now()))

	case IntentWeather:
		city, ok := ExtractCity(utterance)
		if !ok {
			r.trace(ctx, Trace{Intent: intent, Branch: BranchClarify})
			return ReplyClarifyCity
		}
		r.trace(ctx, Trace{Intent: intent, Branch: BranchWeather, City: city})
		return r.weather.Fetch(ctx, city)

	default:
		r.trace(ctx, Trace{Intent: intent, Branch: BranchKnowledge})
		referenceDate := datemath.LongDate(r.clock.Now())
		return strings.TrimSpace(r.knowledge.Ask(ctx, utterance, referenceDate))
	}
}

func (r *IntentRouter) trace(ctx context.Context, t Trace) {
	r.l.Debugf(ctx, "%s: intent=%s branch=%s city=%q", LogPrefixRoute, t.Intent, t.Branch, t.City)
	if r.tracer != nil {
		r.tracer.Trace(ctx, t)
	}
}
