package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

func (h *handler) REPL(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, Banner)
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			fmt.Fprintln(out, Goodbye)
			return nil
		}

		fmt.Fprintf(out, "%s%s\n\n", replyPrefix, h.router.Route(ctx, line))
	}
}

func (h *handler) Ask(ctx context.Context, args []string, out io.Writer) error {
	utterance := strings.TrimSpace(strings.Join(args, " "))
	if utterance == "" {
		return ErrEmptyUtterance
	}

	_, err := fmt.Fprintln(out, h.router.Route(ctx, utterance))
	return err
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}
