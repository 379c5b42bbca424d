package domain

import (
	"context"
	"errors"
)

// ErrQueryNotUnderstood signals that the model's extraction output could not
// be parsed into a location and a date. It is an expected, user-facing
// condition, distinct from transport errors.
var ErrQueryNotUnderstood = errors.New("could not understand location or date in query")

// WeatherQuery is the structured intent extracted from one user message.
type WeatherQuery struct {
	Location string `json:"location"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DayForecast is one day's slice of the Meteoblue basic-day package.
// All temperatures are °C, precipitation is mm, windspeed is m/s.
type DayForecast struct {
	Date                     string
	TemperatureMax           float64
	TemperatureMin           float64
	TemperatureMean          float64
	FeltTemperatureMax       float64
	FeltTemperatureMin       float64
	Precipitation            float64
	PrecipitationProbability float64
	WindspeedMean            float64
	WindDirection            float64
	Pictocode                int
	UVIndex                  float64
	RelativeHumidityMean     float64
}

// TextGenerator produces free text from a prompt via a generative model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Geocoder resolves a place name to coordinates. A miss (no results) is
// reported as found=false with a nil error; errors are transport-level only.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (coords Coordinates, found bool, err error)
}

// ForecastProvider fetches the forecast for one calendar date. A date outside
// the provider's window is reported as ok=false with a nil error.
type ForecastProvider interface {
	DayForecast(ctx context.Context, coords Coordinates, date string) (day DayForecast, ok bool, err error)
}
