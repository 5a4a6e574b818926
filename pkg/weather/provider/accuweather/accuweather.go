// Package accuweather implements the provider client for the
// AccuWeather API. A fetch is a two-step exchange: resolve the free-form
// location to AccuWeather's location key, then request the daily
// forecast for that key.
package accuweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/zoryamba/wezza/pkg/credentials"
	"github.com/zoryamba/wezza/pkg/weather"
)

const (
	name = "accuweather"

	defaultBaseURL = "https://dataservice.accuweather.com"

	// horizonDays is the forecast window including today. The free
	// AccuWeather plan serves the 5-day daily forecast.
	horizonDays = 5

	defaultTimeout = 10 * time.Second
)

// Client is the HTTP client for AccuWeather. It holds no credential;
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

	if dayIndex+1 > horizonDays {
		return weather.Forecast{}, fmt.Errorf("%w: %s supports up to %d days including today",
			weather.ErrUnsupportedDate, name, horizonDays)
	}

	loc, err := c.searchLocation(ctx, cred, query.Location)
	if err != nil {
		return weather.Forecast{}, err
	}

	body, err := c.dailyForecast(ctx, cred, loc.Key)
	if err != nil {
		return weather.Forecast{}, err
	}

	if dayIndex >= len(body.DailyForecasts) {
		return weather.Forecast{}, fmt.Errorf("%w: %d forecast days in payload, wanted day %d",
			weather.ErrUnexpectedResponse, len(body.DailyForecasts), dayIndex)
	}

	day := body.DailyForecasts[dayIndex]
	date, err := time.Parse(time.RFC3339, day.Date)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("%w: payload date %q: %v", weather.ErrUnexpectedResponse, day.Date, err)
	}

	wantDate := query.Date.Format(weather.DateLayout)
	if date.Format(weather.DateLayout) != wantDate {
		return weather.Forecast{}, fmt.Errorf("%w: payload date %q does not match requested %q",
			weather.ErrUnexpectedResponse, day.Date, wantDate)
	}

	return weather.Forecast{
		Provider: name,
		Location: fmt.Sprintf("%s, %s", loc.LocalizedName, loc.Country.LocalizedName),
		Date:     query.Date,
		Summary:  fmt.Sprintf("Day: %s, Night: %s", day.Day.IconPhrase, day.Night.IconPhrase),
		TempMin:  day.Temperature.Minimum.Value,
		TempMax:  day.Temperature.Maximum.Value,
		Unit:     weather.Celsius,
	}, nil
}

// searchLocation resolves a free-form location string to an AccuWeather
// location key.
func (c *Client) searchLocation(ctx context.Context, cred credentials.Record, location string) (locationResponse, error) {
	u, err := url.Parse(c.baseURL + "/locations/v1/search")
	if err != nil {
		return locationResponse{}, fmt.Errorf("building AccuWeather URL: %w", err)
	}
	q := u.Query()
	q.Set("q", location)
	u.RawQuery = q.Encode()

	var body []locationResponse
	if err := c.get(ctx, cred, u.String(), &body); err != nil {
		return locationResponse{}, err
	}

	if len(body) == 0 {
		return locationResponse{}, fmt.Errorf("%w: %q (try a more specific address, e.g. \"Kyiv, Ukraine\")",
			weather.ErrLocationNotFound, location)
	}

	return body[0], nil
}

func (c *Client) dailyForecast(ctx context.Context, cred credentials.Record, locationKey string) (forecastResponse, error) {
	u, err := url.Parse(fmt.Sprintf("%s/forecasts/v1/daily/5day/%s", c.baseURL, url.PathEscape(locationKey)))
	if err != nil {
		return forecastResponse{}, fmt.Errorf("building AccuWeather URL: %w", err)
	}
	q := u.Query()
	q.Set("metric", "true")
	u.RawQuery = q.Encode()

	var body forecastResponse
	if err := c.get(ctx, cred, u.String(), &body); err != nil {
		return forecastResponse{}, err
	}

	return body, nil
}

// get performs one authenticated request and decodes the JSON payload
// into out, folding every failure into the provider error set.
func (c *Client) get(ctx context.Context, cred credentials.Record, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building AccuWeather request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", weather.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: AccuWeather returned %d", weather.ErrAuthenticationFailed, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: AccuWeather returned %d", weather.ErrUnexpectedResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding AccuWeather payload: %v", weather.ErrUnexpectedResponse, err)
	}

	return nil
}

type locationResponse struct {
	Key           string `json:"Key"`
	LocalizedName string `json:"LocalizedName"`
	Country       struct {
		LocalizedName string `json:"LocalizedName"`
	} `json:"Country"`
}

type forecastResponse struct {
	DailyForecasts []struct {
		Date        string `json:"Date"`
		Temperature struct {
			Minimum struct {
				Value float64 `json:"Value"`
			} `json:"Minimum"`
			Maximum struct {
				Value float64 `json:"Value"`
			} `json:"Maximum"`
		} `json:"Temperature"`
		Day struct {
			IconPhrase string `json:"IconPhrase"`
		} `json:"Day"`
		Night struct {
			IconPhrase string `json:"IconPhrase"`
		} `json:"Night"`
	} `json:"DailyForecasts"`
}
