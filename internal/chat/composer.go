package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
)

// Composer turns one day's forecast into a natural-language weather report
// via the text generator. The model's reply is returned verbatim; its
// structure is requested by the prompt but never validated.
type Composer struct {
	gen    domain.TextGenerator
	logger *slog.Logger
}

// NewComposer creates a report composer on top of a text generator.
func NewComposer(gen domain.TextGenerator, logger *slog.Logger) *Composer {
	return &Composer{gen: gen, logger: logger}
}

// Compose decodes the day's pictocode and asks the model for the report.
func (c *Composer) Compose(ctx context.Context, day domain.DayForecast, location string) (string, error) {
	condition := domain.Describe(day.Pictocode)
	c.logger.Debug("composing report", "location", location, "date", day.Date, "condition", condition)

	report, err := c.gen.Generate(ctx, reportPrompt(day, condition, location))
	if err != nil {
		return "", fmt.Errorf("compose report: %w", err)
	}
	return report, nil
}
