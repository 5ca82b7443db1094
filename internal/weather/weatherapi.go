package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/armandiucs114200-ui/barberia-fullstack/internal/metrics"
)

const defaultBaseURL = "http://api.weatherapi.com/v1"

// WeatherAPI queries weatherapi.com for the daily forecast of a fixed
// location, in Spanish. Every failure is swallowed and reported as absent
// data; the reservation listing must never break because of weather.
type WeatherAPI struct {
	apiKey   string
	location string
	baseURL  string
	client   *http.Client
}

func NewWeatherAPI(apiKey, location string) *WeatherAPI {
	return &WeatherAPI{
		apiKey:   apiKey,
		location: location,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	Forecast struct {
		Forecastday []struct {
			Day struct {
				Condition struct {
					Text string `json:"text"`
					Icon string `json:"icon"`
				} `json:"condition"`
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				AvgTempC          float64 `json:"avgtemp_c"`
				DailyChanceOfRain int     `json:"daily_chance_of_rain"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (w *WeatherAPI) Forecast(ctx context.Context, date string) *Forecast {
	if w.apiKey == "" {
		log.Warn().Msg("weather API key missing, skipping forecast")
		return nil
	}

	q := url.Values{}
	q.Set("key", w.apiKey)
	q.Set("q", w.location)
	q.Set("dt", date)
	q.Set("lang", "es")

	endpoint := fmt.Sprintf("%s/forecast.json?%s", w.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("error fetching weather")
		metrics.IncForecastLookup("error")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("date", date).Msg("weather API rejected request")
		metrics.IncForecastLookup("error")
		return nil
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Error().Err(err).Msg("malformed weather response")
		metrics.IncForecastLookup("error")
		return nil
	}

	if len(body.Forecast.Forecastday) == 0 {
		metrics.IncForecastLookup("missing")
		return nil
	}

	day := body.Forecast.Forecastday[0].Day
	metrics.IncForecastLookup("ok")

	return &Forecast{
		Condition:    day.Condition.Text,
		Icon:         day.Condition.Icon,
		MaxTemp:      day.MaxTempC,
		MinTemp:      day.MinTempC,
		AvgTemp:      day.AvgTempC,
		ChanceOfRain: day.DailyChanceOfRain,
	}
}

// Compile-time checks
var (
	_ Provider = (*WeatherAPI)(nil)
	_ Provider = Noop{}
)
