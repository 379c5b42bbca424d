package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davidreifferscheidt/Chatbot/internal/observability"
)

// Responder produces a reply for one user message.
type Responder interface {
	Respond(ctx context.Context, input string) string
}

// Loop is the interactive read-process-print cycle. It runs until the exit
// keyword, end of input, or context cancellation.
type Loop struct {
	session Responder
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoop creates the interactive loop reading from in and printing to out.
func NewLoop(session Responder, in io.Reader, out io.Writer, logger *slog.Logger, metrics *observability.Metrics) *Loop {
	return &Loop{
		session: session,
		in:      in,
		out:     out,
		logger:  logger,
		metrics: metrics,
	}
}

// Run prints the welcome banner and serves turns until "exit" (any case) is
// entered, the input ends, or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	l.metrics.SessionActive.Set(1)
	defer l.metrics.SessionActive.Set(0)

	fmt.Fprintln(l.out, welcomeBanner)

	scanner := bufio.NewScanner(l.in)
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopping", "reason", ctx.Err())
			return nil
		default:
		}

		fmt.Fprint(l.out, promptPrefix)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			// EOF: treat like exit so Ctrl-D leaves cleanly.
			fmt.Fprintln(l.out)
			return nil
		}

		input := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(input), "exit") {
			fmt.Fprintln(l.out, replyPrefix+farewellMessage)
			return nil
		}

		reply := l.session.Respond(ctx, input)
		fmt.Fprintln(l.out, replyPrefix+reply)
	}
}
