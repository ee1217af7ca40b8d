// Package weather contains the outbound client for the external weather
// provider (OpenWeatherMap).
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/weatherhub/internal/common"
	"github.com/dmitrijs2005/weatherhub/internal/server/models"
)

// Client fetches current weather conditions for a location.
type Client interface {
	Current(ctx context.Context, location string) (*models.WeatherReport, error)
}

// OpenWeatherMapClient calls the OpenWeatherMap "current weather" endpoint.
// A single blocking GET per request, no retries; timeouts are whatever the
// injected http.Client carries.
type OpenWeatherMapClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewOpenWeatherMapClient constructs a client for the given endpoint and API
// key. If httpClient is nil, http.DefaultClient is used.
func NewOpenWeatherMapClient(baseURL string, apiKey string, httpClient *http.Client) *OpenWeatherMapClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenWeatherMapClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// LocationError is a failure reported by the provider itself (unknown city,
// bad query). It matches common.ErrorNotFound under errors.Is so transports
// can distinguish it from outages.
type LocationError struct {
	Message string
}

func (e *LocationError) Error() string {
	return e.Message
}

func (e *LocationError) Is(target error) bool {
	return target == common.ErrorNotFound
}

// owmResponse mirrors the subset of the provider payload we consume.
// "cod" arrives as a number on success and as a string on errors.
type owmResponse struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (r *owmResponse) code() int {
	s := strings.Trim(string(r.Cod), `"`)
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return code
}

// Current fetches the weather for location. A provider-reported failure
// (unknown location etc.) wraps common.ErrorNotFound with the provider
// message; transport and decode failures wrap common.ErrorUpstream.
func (c *OpenWeatherMapClient) Current(ctx context.Context, location string) (*models.WeatherReport, error) {

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	endpoint := c.baseURL + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	if data.code() != http.StatusOK {
		msg := data.Message
		if msg == "" {
			msg = "location error"
		}
		return nil, &LocationError{Message: msg}
	}

	report := &models.WeatherReport{
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		report.Condition = data.Weather[0].Description
	}

	return report, nil
}
