// Package weatherapi implements the provider client for WeatherAPI.com.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/weather"
)

const (
	name = "weatherapi"

	defaultBaseURL = "https://api.weatherapi.com/v1"

	// horizonDays is the forecast window including today. WeatherAPI
	// serves up to 14 days.
	horizonDays = 14

	defaultTimeout = 10 * time.Second

	// Wire error code WeatherAPI returns when the q parameter matches
	// no location.
	codeNoLocation = 1006
)

// Client is the HTTP client for WeatherAPI. It holds no credential;
// the API key arrives with each Fetch call.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return name
}

func (c *Client) HorizonDays() int {
	return horizonDays
}

func (c *Client) Fetch(ctx context.Context, cred credentials.Record, query weather.Query) (weather.Forecast, error) {
	dayIndex := weather.DaysFromToday(query.Date)
	if dayIndex < 0 {
		return weather.Forecast{}, fmt.Errorf("%w: %s cannot forecast past dates", weather.ErrUnsupportedDate, name)
	}

	// days counts today as day one.
	days := dayIndex + 1
	if days > horizonDays {
		return weather.Forecast{}, fmt.Errorf("%w: %s supports up to %d days including today",
			weather.ErrUnsupportedDate, name, horizonDays)
	}

	u, err := url.Parse(c.baseURL + "/forecast.json")
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("building WeatherAPI URL: %w", err)
	}
	q := u.Query()
	q.Set("key", cred.APIKey)
	q.Set("q", query.Location)
	q.Set("days", strconv.Itoa(days))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("building WeatherAPI request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("%w: %v", weather.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return weather.Forecast{}, c.mapErrorStatus(resp)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return weather.Forecast{}, fmt.Errorf("%w: decoding WeatherAPI payload: %v", weather.ErrUnexpectedResponse, err)
	}

	wantDate := query.Date.Format(weather.DateLayout)
	if dayIndex >= len(body.Forecast.ForecastDay) {
		return weather.Forecast{}, fmt.Errorf("%w: %d forecast days in payload, wanted day %d",
			weather.ErrUnexpectedResponse, len(body.Forecast.ForecastDay), dayIndex)
	}

	day := body.Forecast.ForecastDay[dayIndex]
	if day.Date != wantDate {
		return weather.Forecast{}, fmt.Errorf("%w: payload date %q does not match requested %q",
			weather.ErrUnexpectedResponse, day.Date, wantDate)
	}

	return weather.Forecast{
		Provider: name,
		Location: fmt.Sprintf("%s, %s", body.Location.Name, body.Location.Country),
		Date:     query.Date,
		Summary:  day.Day.Condition.Text,
		TempMin:  day.Day.MinTempC,
		TempMax:  day.Day.MaxTempC,
		Unit:     weather.Celsius,
	}, nil
}

// mapErrorStatus folds WeatherAPI's HTTP failure responses into the
// closed provider error set.
func (c *Client) mapErrorStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: WeatherAPI returned %d", weather.ErrAuthenticationFailed, resp.StatusCode)

	case http.StatusBadRequest:
		var body errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Code == codeNoLocation {
			return fmt.Errorf("%w: %s", weather.ErrLocationNotFound, body.Error.Message)
		}
		return fmt.Errorf("%w: WeatherAPI returned %d", weather.ErrUnexpectedResponse, resp.StatusCode)

	default:
		return fmt.Errorf("%w: WeatherAPI returned %d", weather.ErrUnexpectedResponse, resp.StatusCode)
	}
}

type forecastResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC  float64 `json:"maxtemp_c"`
				MinTempC  float64 `json:"mintemp_c"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
