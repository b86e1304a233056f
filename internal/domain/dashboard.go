package domain

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// HistoricalDay is one day of the synthetic temperature series.
type HistoricalDay struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	MinTemp     float64 `json:"minTemp"`
	MaxTemp     float64 `json:"maxTemp"`
	Humidity    float64 `json:"humidity"`
	HeatIndex   float64 `json:"heatIndex"`
}

// Zone is a static city district shown on the dashboard.
type Zone struct {
	Name        string    `json:"name"`
	Risk        RiskLevel `json:"risk"`
	Population  int       `json:"population"`
	Area        string    `json:"area"`
	Temperature float64   `json:"temp"`
}

// DashboardSummary holds the headline figures for a date range.
type DashboardSummary struct {
	AvgTemperature     float64 `json:"avgTemperature"`
	ExtremeAreas       int     `json:"extremeAreas"`
	AffectedPopulation int     `json:"affectedPopulation"`
	RiskTrend          string  `json:"riskTrend"` // increasing, stable
}

// Dashboard aggregates a historical series for display.
type Dashboard struct {
	Location         string            `json:"location"`
	Summary          DashboardSummary  `json:"summary"`
	Historical       []HistoricalDay   `json:"historical"`
	Zones            []Zone            `json:"zones"`
	RiskDistribution map[RiskLevel]int `json:"riskDistribution"`
	GeneratedAt      time.Time         `json:"timestamp"`
}

const (
	// DefaultDashboardDays is used when a date range is missing or unparsable.
	DefaultDashboardDays = 30
	// MaxDashboardDays bounds the size of a generated series.
	MaxDashboardDays = 365

	extremeDayThreshold = 35.0
	maxExtremeAreas     = 20
)

// ParseDateRange reads a range such as "30d" or "7". Missing or unparsable
// ranges fall back to DefaultDashboardDays; the result is clamped to
// [1, MaxDashboardDays].
func ParseDateRange(s string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "d"))
	if err != nil || n <= 0 {
		return DefaultDashboardDays
	}
	return min(n, MaxDashboardDays)
}

var zones = []Zone{
	{Name: "Downtown Core", Risk: RiskExtreme, Population: 45000, Area: "12 km²", Temperature: 38.2},
	{Name: "Industrial West", Risk: RiskHigh, Population: 32000, Area: "18 km²", Temperature: 36.5},
	{Name: "Residential North", Risk: RiskModerate, Population: 48000, Area: "25 km²", Temperature: 33.8},
	{Name: "Suburban East", Risk: RiskLow, Population: 28000, Area: "35 km²", Temperature: 31.2},
}

// GenerateHistorical builds a synthetic daily series of days+1 entries ending
// on end, oldest first. The series is deterministic for a given rng state.
func GenerateHistorical(days int, end time.Time, rng *rand.Rand) []HistoricalDay {
	if days < 0 {
		days = 0
	}
	out := make([]HistoricalDay, 0, days+1)
	for i := days; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)

		base := 32 + math.Sin(float64(i)*0.2)*8 + rng.Float64()*6
		minTemp := base - 5 - rng.Float64()*3
		maxTemp := base + 5 + rng.Float64()*3
		humidity := 50 + rng.Float64()*30

		out = append(out, HistoricalDay{
			Date:        date.Format(time.DateOnly),
			Temperature: Round1(base),
			MinTemp:     Round1(minTemp),
			MaxTemp:     Round1(maxTemp),
			Humidity:    math.Round(humidity),
			HeatIndex:   Round1(ComputeHeatIndex(base, humidity)),
		})
	}
	return out
}

// BuildDashboard summarises a historical series. affectedPopulation is
// supplied by the caller so the summary stays a pure function of its inputs.
func BuildDashboard(location string, days int, historical []HistoricalDay, affectedPopulation int) Dashboard {
	d := Dashboard{
		Location:         location,
		Historical:       historical,
		Zones:            append([]Zone(nil), zones...),
		RiskDistribution: riskDistribution(historical),
		GeneratedAt:      Now(),
	}
	if len(historical) == 0 {
		d.Summary.RiskTrend = "stable"
		d.Summary.AffectedPopulation = affectedPopulation
		return d
	}

	var sum float64
	extremeDays := 0
	for _, day := range historical {
		sum += day.Temperature
		if day.Temperature > extremeDayThreshold {
			extremeDays++
		}
	}

	d.Summary = DashboardSummary{
		AvgTemperature:     Round1(sum / float64(len(historical))),
		ExtremeAreas:       min(extremeDays, maxExtremeAreas),
		AffectedPopulation: affectedPopulation,
		RiskTrend:          "stable",
	}
	if float64(extremeDays) > float64(days)*0.3 {
		d.Summary.RiskTrend = "increasing"
	}
	return d
}

// riskDistribution reports the percentage of days in each tier, by heat index.
func riskDistribution(historical []HistoricalDay) map[RiskLevel]int {
	dist := make(map[RiskLevel]int, 4)
	for _, l := range RiskLevels() {
		dist[l] = 0
	}
	if len(historical) == 0 {
		return dist
	}
	counts := make(map[RiskLevel]int, 4)
	for _, day := range historical {
		counts[ClassifyRisk(day.HeatIndex)]++
	}
	for l, n := range counts {
		dist[l] = int(math.Round(float64(n) * 100 / float64(len(historical))))
	}
	return dist
}
