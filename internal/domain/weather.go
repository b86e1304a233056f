package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LocationQuery selects a place either by city name or by coordinates.
type LocationQuery struct {
	City      string
	Lat       float64
	Lon       float64
	HasCoords bool
}

// NewLocationQuery builds a query from raw request values. A city name takes
// precedence; otherwise both lat and lon are required.
func NewLocationQuery(city, lat, lon string) (LocationQuery, error) {
	city = strings.TrimSpace(city)
	if city != "" {
		return LocationQuery{City: city}, nil
	}
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return LocationQuery{}, fmt.Errorf("%w: provide either city name or latitude/longitude coordinates", ErrInvalidInput)
	}

	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || la < -90 || la > 90 {
		return LocationQuery{}, fmt.Errorf("%w: invalid latitude %q", ErrInvalidInput, lat)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil || lo < -180 || lo > 180 {
		return LocationQuery{}, fmt.Errorf("%w: invalid longitude %q", ErrInvalidInput, lon)
	}
	return LocationQuery{Lat: la, Lon: lo, HasCoords: true}, nil
}

// Key identifies the query for caching.
func (q LocationQuery) Key() string {
	if q.HasCoords {
		return fmt.Sprintf("ll:%.4f,%.4f", q.Lat, q.Lon)
	}
	return "q:" + strings.ToLower(q.City)
}

// String renders the query for display and logging.
func (q LocationQuery) String() string {
	if q.HasCoords {
		return fmt.Sprintf("%g, %g", q.Lat, q.Lon)
	}
	return q.City
}

// Conditions is a current-weather observation in metric units.
type Conditions struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	FeelsLike   float64   `json:"feelsLike"`
	Description string    `json:"description"`
	Pressure    float64   `json:"pressure"`
	WindSpeed   float64   `json:"windSpeed"`
	Visibility  float64   `json:"visibility"`
	ObservedAt  time.Time `json:"timestamp"`
}

// ForecastEntry is one step of a forecast.
type ForecastEntry struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Description string    `json:"description"`
}

// Forecast is an ordered series of forecast steps for a place.
type Forecast struct {
	Location string          `json:"location"`
	Entries  []ForecastEntry `json:"entries"`
}

// WeatherProvider supplies observations and forecasts for a location.
type WeatherProvider interface {
	Current(ctx context.Context, q LocationQuery) (Conditions, error)
	Forecast(ctx context.Context, q LocationQuery) (Forecast, error)
}

// Area is a neighbourhood whose exposure is estimated from the city reading.
type Area struct {
	Name        string    `json:"name"`
	Risk        RiskLevel `json:"risk"`
	Population  int       `json:"population"`
	Temperature float64   `json:"temp"`
}

// areaProfiles offsets the city temperature to approximate urban heat islands.
var areaProfiles = []struct {
	name       string
	population int
	offset     float64
}{
	{"Downtown Core", 45000, 3},
	{"Industrial District", 32000, 1},
	{"Residential North", 48000, -1},
	{"Suburban East", 28000, -3},
}

// EstimateAreas classifies each neighbourhood at its offset temperature.
func EstimateAreas(c Conditions) []Area {
	areas := make([]Area, 0, len(areaProfiles))
	for _, p := range areaProfiles {
		t := c.Temperature + p.offset
		areas = append(areas, Area{
			Name:        p.name,
			Risk:        ClassifyRisk(ComputeHeatIndex(t, c.Humidity)),
			Population:  p.population,
			Temperature: Round1(t),
		})
	}
	return areas
}

// RiskReport is the assessment of a live observation.
type RiskReport struct {
	Conditions  Conditions `json:"weather"`
	Assessment  Assessment `json:"heatRisk"`
	Areas       []Area     `json:"areas"`
	Demo        bool       `json:"demo"`
	GeneratedAt time.Time  `json:"timestamp"`
}

// ForecastRisk is a forecast step with its classification.
type ForecastRisk struct {
	ForecastEntry
	HeatIndex float64   `json:"heatIndex"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// ForecastReport classifies the leading steps of a forecast.
type ForecastReport struct {
	Location    string         `json:"location"`
	Forecast    []ForecastRisk `json:"forecast"`
	GeneratedAt time.Time      `json:"timestamp"`
}

// ForecastSteps is how many forecast entries a report keeps.
const ForecastSteps = 5

// BuildForecastReport classifies up to ForecastSteps entries. Entries whose
// readings fail validation are skipped.
func BuildForecastReport(f Forecast) ForecastReport {
	report := ForecastReport{Location: f.Location, Forecast: []ForecastRisk{}, GeneratedAt: Now()}
	for _, e := range f.Entries {
		if len(report.Forecast) == ForecastSteps {
			break
		}
		r, err := NewReading(e.Temperature, e.Humidity)
		if err != nil {
			continue
		}
		res := Classify(r)
		report.Forecast = append(report.Forecast, ForecastRisk{
			ForecastEntry: e,
			HeatIndex:     res.HeatIndex,
			RiskLevel:     res.RiskLevel,
		})
	}
	return report
}
