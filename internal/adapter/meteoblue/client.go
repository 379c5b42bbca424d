package meteoblue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
	"github.com/davidreifferscheidt/Chatbot/internal/observability"
)

// Client implements domain.ForecastProvider using the Meteoblue basic-day
// package, which serves a 7-day daily forecast as parallel per-field arrays.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Meteoblue forecast client.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://my.meteoblue.com/packages/basic-day",
		metrics: metrics,
		logger:  logger,
	}
}

// SetBaseURL overrides the API endpoint. Intended for tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// DayForecast fetches the 7-day forecast for coords and projects out the day
// matching date. A date outside the provider's window (day offset not in
// [0,7)) is a miss (ok=false), not an error.
func (c *Client) DayForecast(ctx context.Context, coords domain.Coordinates, date string) (domain.DayForecast, bool, error) {
	params := url.Values{
		"apikey": {c.apiKey},
		"lat":    {strconv.FormatFloat(coords.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(coords.Lon, 'f', -1, 64)},
		"format": {"json"},
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.DayForecast{}, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error", start)
		return domain.DayForecast{}, false, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.observe("error", start)
		return domain.DayForecast{}, false, fmt.Errorf("meteoblue API error: status %d: %s", resp.StatusCode, body)
	}

	var mbResp response
	if err := json.NewDecoder(resp.Body).Decode(&mbResp); err != nil {
		c.observe("error", start)
		return domain.DayForecast{}, false, fmt.Errorf("decode response: %w", err)
	}

	offset, err := domain.DayOffset(date)
	if err != nil {
		c.observe("error", start)
		return domain.DayForecast{}, false, err
	}
	if !domain.InForecastWindow(offset) {
		c.logger.Debug("date outside forecast window", "date", date, "offset", offset)
		c.observe("miss", start)
		return domain.DayForecast{}, false, nil
	}

	day, err := mbResp.DataDay.project(offset)
	if err != nil {
		c.observe("error", start)
		return domain.DayForecast{}, false, err
	}

	c.observe("success", start)
	return day, true, nil
}

func (c *Client) observe(outcome string, start time.Time) {
	c.metrics.ProviderRequests.WithLabelValues("meteoblue", outcome).Inc()
	c.metrics.ProviderDuration.WithLabelValues("meteoblue").Observe(time.Since(start).Seconds())
}

// Meteoblue API response types. The basic-day package returns each field as
// an array with one element per forecast day.

type response struct {
	DataDay dataDay `json:"data_day"`
}

type dataDay struct {
	Time                     []string  `json:"time"`
	TemperatureMax           []float64 `json:"temperature_max"`
	TemperatureMin           []float64 `json:"temperature_min"`
	TemperatureMean          []float64 `json:"temperature_mean"`
	FeltTemperatureMax       []float64 `json:"felttemperature_max"`
	FeltTemperatureMin       []float64 `json:"felttemperature_min"`
	Precipitation            []float64 `json:"precipitation"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WindspeedMean            []float64 `json:"windspeed_mean"`
	WindDirection            []float64 `json:"winddirection"`
	Pictocode                []int     `json:"pictocode"`
	UVIndex                  []float64 `json:"uvindex"`
	RelativeHumidityMean     []float64 `json:"relativehumidity_mean"`
}

// project assembles one day's slice of the parallel field arrays. Arrays
// shorter than the offset mean a malformed provider response.
func (d dataDay) project(offset int) (domain.DayForecast, error) {
	for name, length := range map[string]int{
		"time":                      len(d.Time),
		"temperature_max":           len(d.TemperatureMax),
		"temperature_min":           len(d.TemperatureMin),
		"temperature_mean":          len(d.TemperatureMean),
		"felttemperature_max":       len(d.FeltTemperatureMax),
		"felttemperature_min":       len(d.FeltTemperatureMin),
		"precipitation":             len(d.Precipitation),
		"precipitation_probability": len(d.PrecipitationProbability),
		"windspeed_mean":            len(d.WindspeedMean),
		"winddirection":             len(d.WindDirection),
		"pictocode":                 len(d.Pictocode),
		"uvindex":                   len(d.UVIndex),
		"relativehumidity_mean":     len(d.RelativeHumidityMean),
	} {
		if offset >= length {
			return domain.DayForecast{}, fmt.Errorf("malformed forecast response: field %s has %d days, need %d", name, length, offset+1)
		}
	}

	return domain.DayForecast{
		Date:                     d.Time[offset],
		TemperatureMax:           d.TemperatureMax[offset],
		TemperatureMin:           d.TemperatureMin[offset],
		TemperatureMean:          d.TemperatureMean[offset],
		FeltTemperatureMax:       d.FeltTemperatureMax[offset],
		FeltTemperatureMin:       d.FeltTemperatureMin[offset],
		Precipitation:            d.Precipitation[offset],
		PrecipitationProbability: d.PrecipitationProbability[offset],
		WindspeedMean:            d.WindspeedMean[offset],
		WindDirection:            d.WindDirection[offset],
		Pictocode:                d.Pictocode[offset],
		UVIndex:                  d.UVIndex[offset],
		RelativeHumidityMean:     d.RelativeHumidityMean[offset],
	}, nil
}
