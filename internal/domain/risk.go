package domain

import (
	"fmt"
	"math"
)

// RiskLevel is one of four ordered heat-stress tiers.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskExtreme  RiskLevel = "extreme"
)

// RiskLevels lists every tier from least to most severe.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskModerate, RiskHigh, RiskExtreme}
}

// ParseRiskLevel validates a tier label.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch l := RiskLevel(s); l {
	case RiskLow, RiskModerate, RiskHigh, RiskExtreme:
		return l, nil
	default:
		return "", fmt.Errorf("%w: unknown risk level %q", ErrInvalidInput, s)
	}
}

// ClassifyRisk maps a heat index in °C to its tier. Thresholds are checked
// highest first and the first match wins.
func ClassifyRisk(heatIndexC float64) RiskLevel {
	switch {
	case heatIndexC >= 40:
		return RiskExtreme
	case heatIndexC >= 35:
		return RiskHigh
	case heatIndexC >= 30:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Priority ranks the tier, 1 (low) through 4 (extreme).
func (l RiskLevel) Priority() int {
	switch l {
	case RiskExtreme:
		return 4
	case RiskHigh:
		return 3
	case RiskModerate:
		return 2
	default:
		return 1
	}
}

// Color is the display color used by the dashboard for the tier.
func (l RiskLevel) Color() string {
	switch l {
	case RiskExtreme:
		return "#dc2626"
	case RiskHigh:
		return "#ea580c"
	case RiskModerate:
		return "#ca8a04"
	default:
		return "#16a34a"
	}
}

// Reading is an ambient observation: temperature in °C, relative humidity in percent.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// NewReading validates a temperature/humidity pair.
func NewReading(temperatureC, humidity float64) (Reading, error) {
	if math.IsNaN(temperatureC) || math.IsInf(temperatureC, 0) {
		return Reading{}, fmt.Errorf("%w: temperature must be a finite number", ErrInvalidInput)
	}
	if math.IsNaN(humidity) || math.IsInf(humidity, 0) {
		return Reading{}, fmt.Errorf("%w: humidity must be a finite number", ErrInvalidInput)
	}
	if humidity < 0 || humidity > 100 {
		return Reading{}, fmt.Errorf("%w: humidity %g outside [0, 100]", ErrInvalidInput, humidity)
	}
	return Reading{Temperature: temperatureC, Humidity: humidity}, nil
}

// HeatIndexResult is the heat index of a reading and the tier it falls into.
type HeatIndexResult struct {
	HeatIndex float64   `json:"heatIndex"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// Assessment is a classified reading with the guidance for its tier.
type Assessment struct {
	Reading
	HeatIndexResult
	Color           string                `json:"color"`
	Priority        int                   `json:"priority"`
	Recommendations map[Audience][]string `json:"recommendations"`
	Tips            []string              `json:"tips"`
}

// Classify computes the heat index of r and its tier.
func Classify(r Reading) HeatIndexResult {
	hi := ComputeHeatIndex(r.Temperature, r.Humidity)
	return HeatIndexResult{HeatIndex: hi, RiskLevel: ClassifyRisk(hi)}
}

// Assess classifies r and attaches the recommendations for the resulting tier.
func Assess(r Reading) Assessment {
	res := Classify(r)
	return Assessment{
		Reading:         r,
		HeatIndexResult: res,
		Color:           res.RiskLevel.Color(),
		Priority:        res.RiskLevel.Priority(),
		Recommendations: RecommendationSet(res.RiskLevel),
		Tips:            QuickTips(res.RiskLevel),
	}
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
