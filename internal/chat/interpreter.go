package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
)

// Interpreter extracts a structured WeatherQuery from free-form user text by
// asking a generative model. This is the most fragile seam of the pipeline:
// the model is expected, but never guaranteed, to answer with JSON.
type Interpreter struct {
	gen    domain.TextGenerator
	logger *slog.Logger
}

// NewInterpreter creates a query interpreter on top of a text generator.
func NewInterpreter(gen domain.TextGenerator, logger *slog.Logger) *Interpreter {
	return &Interpreter{gen: gen, logger: logger}
}

// Interpret asks the model for the location and date in text. Output that
// cannot be parsed into both fields yields domain.ErrQueryNotUnderstood;
// generator failures propagate unchanged. A date of exactly "today" is
// resolved to the current calendar date.
func (i *Interpreter) Interpret(ctx context.Context, text string) (domain.WeatherQuery, error) {
	reply, err := i.gen.Generate(ctx, extractionPrompt(text))
	if err != nil {
		return domain.WeatherQuery{}, fmt.Errorf("extract query: %w", err)
	}

	var q domain.WeatherQuery
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &q); err != nil {
		i.logger.Warn("unparseable extraction reply", "error", err, "reply_length", len(reply))
		return domain.WeatherQuery{}, fmt.Errorf("%w: %s", domain.ErrQueryNotUnderstood, err)
	}
	if q.Location == "" || q.Date == "" {
		return domain.WeatherQuery{}, domain.ErrQueryNotUnderstood
	}

	if q.Date == "today" {
		q.Date = domain.Today()
	}

	i.logger.Debug("interpreted query", "location", q.Location, "date", q.Date)
	return q, nil
}

// stripCodeFence removes a surrounding markdown code fence, which Gemini
// often wraps around JSON replies despite the prompt not asking for one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.TrimSpace(s)
}
