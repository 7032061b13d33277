package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"weather-ai-bot/internal/model"
)

func (h *handler) Batch(ctx context.Context, in io.Reader, out io.Writer, format string) error {
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	var turns []model.Turn
	routed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMark) {
			continue
		}

		turn := model.Turn{Input: line, Reply: h.router.Route(ctx, line)}
		routed++
		if format == FormatText {
			if _, err := fmt.Fprintf(out, "%s%s\n%s%s\n\n", Prompt, turn.Input, replyPrefix, turn.Reply); err != nil {
				return err
			}
			continue
		}
		turns = append(turns, turn)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("console.Batch: read input: %w", err)
	}

	h.l.Infof(ctx, "console.Batch: routed %d utterances", routed)

	if format == FormatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(turns); err != nil {
			return fmt.Errorf("console.Batch: encode yaml: %w", err)
		}
		return enc.Close()
	}
	return nil
}
