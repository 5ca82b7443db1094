package weather

import "context"

// Forecast is the normalized daily summary attached to reservations.
type Forecast struct {
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	MaxTemp      float64 `json:"max_temp"`
	MinTemp      float64 `json:"min_temp"`
	AvgTemp      float64 `json:"avg_temp"`
	ChanceOfRain int     `json:"chance_of_rain"`
}

// Provider resolves the forecast for a calendar date (YYYY-MM-DD). A nil
// result means the forecast is unavailable; implementations never surface an
// error past this boundary.
type Provider interface {
	Forecast(ctx context.Context, date string) *Forecast
}

// Noop always reports the forecast as unavailable. It is used when no API
// credential is configured.
type Noop struct{}

func (Noop) Forecast(ctx context.Context, date string) *Forecast {
	return nil
}
