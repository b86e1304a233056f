package openweather

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

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the OpenWeatherMap 2.5 REST API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client implements domain.WeatherProvider using the OpenWeatherMap API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// Options configures a Client.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// RPS and Burst bound outbound calls to stay inside the provider quota.
	RPS   float64
	Burst int
}

// NewClient creates an OpenWeatherMap client.
func NewClient(opts Options, metrics *observability.Metrics, logger *slog.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RPS), opts.Burst),
		metrics: metrics,
		logger:  logger,
	}
}

// Current fetches the current conditions for a location.
func (c *Client) Current(ctx context.Context, q domain.LocationQuery) (domain.Conditions, error) {
	var resp currentResponse
	if err := c.get(ctx, "weather", "current", q, &resp); err != nil {
		return domain.Conditions{}, err
	}

	cond := domain.Conditions{
		Location:    formatLocation(resp.Name, resp.Sys.Country),
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		FeelsLike:   resp.Main.FeelsLike,
		Pressure:    resp.Main.Pressure,
		WindSpeed:   resp.Wind.Speed,
		Visibility:  resp.Visibility,
		ObservedAt:  time.Unix(resp.Dt, 0).UTC(),
	}
	if len(resp.Weather) > 0 {
		cond.Description = resp.Weather[0].Description
	}
	if resp.Dt == 0 {
		cond.ObservedAt = domain.Now()
	}
	return cond, nil
}

// Forecast fetches the 3-hourly forecast for a location.
func (c *Client) Forecast(ctx context.Context, q domain.LocationQuery) (domain.Forecast, error) {
	var resp forecastResponse
	if err := c.get(ctx, "forecast", "forecast", q, &resp); err != nil {
		return domain.Forecast{}, err
	}

	f := domain.Forecast{
		Location: formatLocation(resp.City.Name, resp.City.Country),
		Entries:  make([]domain.ForecastEntry, 0, len(resp.List)),
	}
	for _, item := range resp.List {
		e := domain.ForecastEntry{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
		}
		if len(item.Weather) > 0 {
			e.Description = item.Weather[0].Description
		}
		f.Entries = append(f.Entries, e)
	}
	return f, nil
}

func (c *Client) get(ctx context.Context, endpoint, kind string, q domain.LocationQuery, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	params := url.Values{
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	if q.HasCoords {
		params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	} else {
		params.Set("q", q.City)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WeatherAPIDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues(kind, "error").Inc()
		return fmt.Errorf("%s weather request: %w: %w", kind, domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.WeatherRequests.WithLabelValues(kind, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := statusError(resp.StatusCode, body)
		c.logger.Warn("openweathermap request failed",
			"kind", kind,
			"location", q.String(),
			"status", resp.StatusCode,
			"error", apiErr,
		)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.WeatherRequests.WithLabelValues(kind, "error").Inc()
		return fmt.Errorf("decode %s response: %w: %w", kind, domain.ErrUpstreamUnavailable, err)
	}

	c.metrics.WeatherRequests.WithLabelValues(kind, "success").Inc()
	return nil
}

// statusError maps an OpenWeatherMap error status to a domain error.
func statusError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	detail := payload.Message
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("city %w: %s", domain.ErrNotFound, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUpstreamUnauthorized, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrUpstreamRateLimited, detail)
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamUnavailable, status, detail)
	}
}

func formatLocation(name, country string) string {
	if country == "" {
		return name
	}
	return name + ", " + country
}

// OpenWeatherMap API response types.

type currentResponse struct {
	Name       string  `json:"name"`
	Dt         int64   `json:"dt"`
	Visibility float64 `json:"visibility"`
	Main       struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}
