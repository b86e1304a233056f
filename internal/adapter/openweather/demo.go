package openweather

import (
	"context"
	"math"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
)

// DemoProvider serves fixed hot-weather data when no API key is configured.
type DemoProvider struct{}

// NewDemoProvider creates a DemoProvider.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

const (
	demoTemperature = 35.5
	demoHumidity    = 65
)

func (DemoProvider) Current(_ context.Context, q domain.LocationQuery) (domain.Conditions, error) {
	return domain.Conditions{
		Location:    q.String(),
		Temperature: demoTemperature,
		Humidity:    demoHumidity,
		FeelsLike:   42.3,
		Description: "Hot",
		Pressure:    1013,
		WindSpeed:   15.5,
		Visibility:  10000,
		ObservedAt:  domain.Now(),
	}, nil
}

// Forecast returns eight 3-hourly steps following a daily temperature swing.
func (DemoProvider) Forecast(_ context.Context, q domain.LocationQuery) (domain.Forecast, error) {
	start := domain.Now().Truncate(3 * time.Hour)
	f := domain.Forecast{Location: q.String(), Entries: make([]domain.ForecastEntry, 0, 8)}
	for i := range 8 {
		at := start.Add(time.Duration(i*3) * time.Hour)
		swing := math.Sin(float64(at.Hour()-9) * math.Pi / 12)
		f.Entries = append(f.Entries, domain.ForecastEntry{
			Time:        at,
			Temperature: domain.Round1(demoTemperature - 4 + swing*4),
			Humidity:    demoHumidity - math.Round(swing*10),
			Description: "Hot",
		})
	}
	return f, nil
}
