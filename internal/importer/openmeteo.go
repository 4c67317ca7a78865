package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

// Importer fetches the current temperature for a fixed point from Open-Meteo
// and appends it to the day's record. Each Import call is a single synchronous
// fetch; there is no polling loop here.
type Importer struct {
	store      *store.MemoryStore
	client     *http.Client
	baseURL    string
	backoff    BackoffConfig
	circuit    *gobreaker.CircuitBreaker
	lat, lon   float64
	dateFormat string
}

// New creates an Importer for the given coordinates. dateFormat is the Go
// time layout used to derive the record date from the reading timestamp
// (typically "2006-01-02").
func New(st *store.MemoryStore, client *http.Client, lat, lon float64, dateFormat string) *Importer {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Importer{
		store:   st,
		client:  client,
		baseURL: "https://api.open-meteo.com/v1/forecast",
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit:    cb,
		lat:        lat,
		lon:        lon,
		dateFormat: dateFormat,
	}
}

// SetBaseURL overrides the upstream endpoint. Used by tests to point the
// importer at a local server.
func (im *Importer) SetBaseURL(u string) {
	im.baseURL = u
}

// Reading is one imported observation.
type Reading struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Scale string  `json:"scale"`
}

// Import fetches the current temperature and appends it to the day's record,
// creating the record when the day is new. Open-Meteo reports celsius.
func (im *Importer) Import(ctx context.Context) (Reading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", im.lat))
		values.Set("longitude", fmt.Sprintf("%f", im.lon))
		values.Set("current_weather", "true")

		u := fmt.Sprintf("%s?%s", im.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, im.client, im.backoff, im.circuit, buildRequest)
	if err != nil {
		return Reading{}, fmt.Errorf("openmeteo fetch failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Reading{}, fmt.Errorf("openmeteo response decode failed: %w", err)
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.CurrentWeather.Time)
	if err != nil {
		if ts, err = time.Parse(time.RFC3339, payload.CurrentWeather.Time); err != nil {
			ts = time.Now().UTC()
		}
	}

	reading := Reading{
		Date:  ts.UTC().Format(im.dateFormat),
		Value: payload.CurrentWeather.Temperature,
		Scale: temperature.ScaleCelsius.String(),
	}

	im.store.Append(reading.Date, []float64{reading.Value}, temperature.ScaleCelsius)
	return reading, nil
}
