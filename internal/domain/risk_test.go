package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		heatIndex float64
		want      RiskLevel
	}{
		{41, RiskExtreme},
		{40, RiskExtreme},
		{39.99, RiskHigh},
		{35, RiskHigh},
		{34.9, RiskModerate},
		{30, RiskModerate},
		{29.9, RiskLow},
		{-10, RiskLow},
		{math.Inf(1), RiskExtreme},
		{math.Inf(-1), RiskLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyRisk(tc.heatIndex), "heat index %v", tc.heatIndex)
	}
}

func TestClassifyRisk_MonotonicTiers(t *testing.T) {
	prev := 0
	for h := -20.0; h <= 60; h += 0.05 {
		p := ClassifyRisk(h).Priority()
		assert.GreaterOrEqual(t, p, prev, "tier dropped at %v", h)
		assert.Equal(t, ClassifyRisk(h), ClassifyRisk(h))
		prev = p
	}
}

func TestParseRiskLevel(t *testing.T) {
	for _, l := range RiskLevels() {
		got, err := ParseRiskLevel(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseRiskLevel("severe")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRiskLevel_Metadata(t *testing.T) {
	assert.Equal(t, 1, RiskLow.Priority())
	assert.Equal(t, 4, RiskExtreme.Priority())
	assert.Equal(t, "#dc2626", RiskExtreme.Color())
	assert.Equal(t, "#16a34a", RiskLow.Color())
}

func TestNewReading_Validation(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		humidity float64
	}{
		{"nan temperature", math.NaN(), 50},
		{"infinite temperature", math.Inf(1), 50},
		{"nan humidity", 30, math.NaN()},
		{"negative humidity", 30, -1},
		{"humidity above 100", 30, 100.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReading(tc.temp, tc.humidity)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	r, err := NewReading(-5, 0)
	require.NoError(t, err)
	assert.Equal(t, Reading{Temperature: -5, Humidity: 0}, r)

	_, err = NewReading(30, 100)
	require.NoError(t, err)
}

func TestAssess(t *testing.T) {
	r, err := NewReading(32, 70)
	require.NoError(t, err)

	a := Assess(r)
	assert.InDelta(t, 40.41, a.HeatIndex, 0.01)
	assert.Equal(t, RiskExtreme, a.RiskLevel)
	assert.Equal(t, 4, a.Priority)
	assert.Equal(t, "#dc2626", a.Color)
	assert.Len(t, a.Recommendations, 3)
	assert.Equal(t, "Avoid all non-essential outdoor activities", a.Recommendations[AudiencePersonal][0])
	assert.Equal(t, QuickTips(RiskExtreme), a.Tips)
}

func TestRound1(t *testing.T) {
	assert.InDelta(t, 40.4, Round1(40.409273), 1e-9)
	assert.InDelta(t, -2.5, Round1(-2.46), 1e-9)
}
