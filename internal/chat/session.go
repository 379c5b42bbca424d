package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
	"github.com/davidreifferscheidt/Chatbot/internal/observability"
)

// QueryInterpreter extracts structured intent from user text.
type QueryInterpreter interface {
	Interpret(ctx context.Context, text string) (domain.WeatherQuery, error)
}

// ReportComposer produces the final natural-language report.
type ReportComposer interface {
	Compose(ctx context.Context, day domain.DayForecast, location string) (string, error)
}

// Session runs one interpret-geocode-forecast-compose turn at a time. It
// holds no conversation state between turns.
type Session struct {
	interpreter QueryInterpreter
	geocoder    domain.Geocoder
	forecasts   domain.ForecastProvider
	composer    ReportComposer
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewSession creates a Session with the given stages and observability.
func NewSession(
	interpreter QueryInterpreter,
	geocoder domain.Geocoder,
	forecasts domain.ForecastProvider,
	composer ReportComposer,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Session {
	return &Session{
		interpreter: interpreter,
		geocoder:    geocoder,
		forecasts:   forecasts,
		composer:    composer,
		logger:      logger,
		metrics:     metrics,
	}
}

// Respond drives the pipeline for one user message and always returns reply
// text: either the composed report or one of the canned failure messages.
// Errors never escape a turn.
func (s *Session) Respond(ctx context.Context, input string) (reply string) {
	start := time.Now()
	outcome := "error"
	defer func() {
		// Last-resort boundary: a panicking stage must not take down the loop.
		if r := recover(); r != nil {
			s.logger.Error("panic during turn", "panic", r)
			reply = errorMessage(fmt.Sprint(r))
		}
		s.metrics.Turns.WithLabelValues(outcome).Inc()
		s.metrics.TurnDuration.Observe(time.Since(start).Seconds())
	}()

	query, err := s.interpreter.Interpret(ctx, input)
	if errors.Is(err, domain.ErrQueryNotUnderstood) {
		outcome = "not_understood"
		return notUnderstoodMessage
	}
	if err != nil {
		s.logger.Warn("interpret failed", "error", err)
		return errorMessage(err.Error())
	}

	coords, found, err := s.geocoder.Geocode(ctx, query.Location)
	if err != nil {
		s.logger.Warn("geocode failed", "location", query.Location, "error", err)
		return errorMessage(err.Error())
	}
	if !found {
		outcome = "geocode_miss"
		return noCoordinatesMessage(query.Location)
	}

	day, ok, err := s.forecasts.DayForecast(ctx, coords, query.Date)
	if err != nil {
		s.logger.Warn("forecast failed", "location", query.Location, "date", query.Date, "error", err)
		return errorMessage(err.Error())
	}
	if !ok {
		outcome = "forecast_miss"
		return noWeatherDataMessage(query.Location, query.Date)
	}

	report, err := s.composer.Compose(ctx, day, query.Location)
	if err != nil {
		s.logger.Warn("compose failed", "location", query.Location, "error", err)
		return errorMessage(err.Error())
	}

	outcome = "success"
	s.logger.Debug("turn complete",
		"location", query.Location,
		"date", query.Date,
		"duration", time.Since(start),
	)
	return report
}
