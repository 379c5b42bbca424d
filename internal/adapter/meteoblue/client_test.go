package meteoblue

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
	"github.com/davidreifferscheidt/Chatbot/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

func freezeToday(t *testing.T, date string) {
	t.Helper()
	base, err := time.Parse(domain.DateLayout, date)
	require.NoError(t, err)
	domain.SetClock(clockwork.NewFakeClockAt(base))
	t.Cleanup(func() { domain.SetClock(nil) })
}

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:     testKey,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// sevenDayResponse builds a full basic-day payload starting at startDate,
// with field values offset by the day index so projections are recognizable.
func sevenDayResponse(t *testing.T, startDate string) response {
	t.Helper()
	start, err := time.Parse(domain.DateLayout, startDate)
	require.NoError(t, err)

	var d dataDay
	for i := 0; i < domain.ForecastWindowDays; i++ {
		day := float64(i)
		d.Time = append(d.Time, start.AddDate(0, 0, i).Format(domain.DateLayout))
		d.TemperatureMax = append(d.TemperatureMax, 20+day)
		d.TemperatureMin = append(d.TemperatureMin, 10+day)
		d.TemperatureMean = append(d.TemperatureMean, 15+day)
		d.FeltTemperatureMax = append(d.FeltTemperatureMax, 19+day)
		d.FeltTemperatureMin = append(d.FeltTemperatureMin, 9+day)
		d.Precipitation = append(d.Precipitation, day)
		d.PrecipitationProbability = append(d.PrecipitationProbability, 10*day)
		d.WindspeedMean = append(d.WindspeedMean, 3+day)
		d.WindDirection = append(d.WindDirection, 45*day)
		d.Pictocode = append(d.Pictocode, i+1)
		d.UVIndex = append(d.UVIndex, 2+day)
		d.RelativeHumidityMean = append(d.RelativeHumidityMean, 60+day)
	}
	return response{DataDay: d}
}

func TestClient_DayForecast_ProjectsRequestedDay(t *testing.T) {
	freezeToday(t, "2024-09-27")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testKey, r.URL.Query().Get("apikey"))
		assert.Equal(t, "48.137", r.URL.Query().Get("lat"))
		assert.Equal(t, "11.576", r.URL.Query().Get("lon"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		require.NoError(t, json.NewEncoder(w).Encode(sevenDayResponse(t, "2024-09-27")))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	day, ok, err := c.DayForecast(context.Background(), domain.Coordinates{Lat: 48.137, Lon: 11.576}, "2024-09-30")
	require.NoError(t, err)
	require.True(t, ok)

	// Offset 3 relative to the frozen today.
	assert.Equal(t, "2024-09-30", day.Date)
	assert.Equal(t, 23.0, day.TemperatureMax)
	assert.Equal(t, 13.0, day.TemperatureMin)
	assert.Equal(t, 18.0, day.TemperatureMean)
	assert.Equal(t, 22.0, day.FeltTemperatureMax)
	assert.Equal(t, 12.0, day.FeltTemperatureMin)
	assert.Equal(t, 3.0, day.Precipitation)
	assert.Equal(t, 30.0, day.PrecipitationProbability)
	assert.Equal(t, 6.0, day.WindspeedMean)
	assert.Equal(t, 135.0, day.WindDirection)
	assert.Equal(t, 4, day.Pictocode)
	assert.Equal(t, 5.0, day.UVIndex)
	assert.Equal(t, 63.0, day.RelativeHumidityMean)
}

func TestClient_DayForecast_Today(t *testing.T) {
	freezeToday(t, "2024-09-27")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(sevenDayResponse(t, "2024-09-27")))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	day, ok, err := c.DayForecast(context.Background(), domain.Coordinates{Lat: 48.137, Lon: 11.576}, "2024-09-27")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-09-27", day.Date)
	assert.Equal(t, 1, day.Pictocode)
}

func TestClient_DayForecast_DateOutOfWindow(t *testing.T) {
	freezeToday(t, "2024-09-27")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(sevenDayResponse(t, "2024-09-27")))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	// Offset 7: one past the last served day.
	_, ok, err := c.DayForecast(context.Background(), domain.Coordinates{}, "2024-10-04")
	require.NoError(t, err)
	assert.False(t, ok)

	// Offset -1: yesterday.
	_, ok, err = c.DayForecast(context.Background(), domain.Coordinates{}, "2024-09-26")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_DayForecast_InvalidDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(sevenDayResponse(t, "2024-09-27")))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, _, err := c.DayForecast(context.Background(), domain.Coordinates{}, "tomorrow-ish")
	require.Error(t, err)
}

func TestClient_DayForecast_TruncatedArrays(t *testing.T) {
	freezeToday(t, "2024-09-27")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := sevenDayResponse(t, "2024-09-27")
		resp.DataDay.UVIndex = resp.DataDay.UVIndex[:2]
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, _, err := c.DayForecast(context.Background(), domain.Coordinates{}, "2024-09-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed forecast response")
}

func TestClient_DayForecast_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error_message":"invalid api key"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, _, err := c.DayForecast(context.Background(), domain.Coordinates{}, "2024-09-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
