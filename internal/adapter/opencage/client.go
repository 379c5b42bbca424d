package opencage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/davidreifferscheidt/Chatbot/internal/domain"
	"github.com/davidreifferscheidt/Chatbot/internal/observability"
)

// Client implements domain.Geocoder using the OpenCage Geocoding API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenCage geocoding client.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.opencagedata.com/geocode/v1/json",
		metrics: metrics,
		logger:  logger,
	}
}

// SetBaseURL overrides the API endpoint. Intended for tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Geocode resolves a free-form location to coordinates using the first
// result. An empty results list is a miss (found=false), not an error.
func (c *Client) Geocode(ctx context.Context, location string) (domain.Coordinates, bool, error) {
	params := url.Values{
		"q":     {location},
		"key":   {c.apiKey},
		"limit": {"1"},
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("error", start)
		return domain.Coordinates{}, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.observe("error", start)
		return domain.Coordinates{}, false, fmt.Errorf("opencage API error: status %d: %s", resp.StatusCode, body)
	}

	var ocResp response
	if err := json.NewDecoder(resp.Body).Decode(&ocResp); err != nil {
		c.observe("error", start)
		return domain.Coordinates{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(ocResp.Results) == 0 {
		c.logger.Debug("geocode miss", "location", location)
		c.observe("miss", start)
		return domain.Coordinates{}, false, nil
	}

	g := ocResp.Results[0].Geometry
	c.observe("success", start)
	return domain.Coordinates{Lat: g.Lat, Lon: g.Lng}, true, nil
}

func (c *Client) observe(outcome string, start time.Time) {
	c.metrics.ProviderRequests.WithLabelValues("opencage", outcome).Inc()
	c.metrics.ProviderDuration.WithLabelValues("opencage").Observe(time.Since(start).Seconds())
}

// OpenCage API response types.

type response struct {
	Results []result `json:"results"`
}

type result struct {
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
