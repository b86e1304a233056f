package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategiesFor(t *testing.T) {
	immediate := StrategiesFor(RiskExtreme, HorizonImmediate)
	require.Len(t, immediate, 4)
	assert.Equal(t, "Seek Air Conditioning", immediate[0].Title)

	low := StrategiesFor(RiskLow, HorizonImmediate)
	assert.Empty(t, low)

	shortTerm := StrategiesFor(RiskLow, HorizonShortTerm)
	require.Len(t, shortTerm, 1)
	assert.Equal(t, "Improve Ventilation", shortTerm[0].Title)
}

func TestBuildMitigationPlan_AllHorizons(t *testing.T) {
	plan := BuildMitigationPlan(RiskModerate, nil)

	assert.Equal(t, "all", plan.Category)
	assert.Len(t, plan.Strategies, 3)
	assert.Len(t, plan.Strategies[HorizonImmediate], 2)
	assert.Len(t, plan.Strategies[HorizonShortTerm], 4)
	assert.Len(t, plan.Strategies[HorizonLongTerm], 3)
	assert.Equal(t, 9, plan.Summary.TotalStrategies)
	assert.Equal(t, 0, plan.Summary.UrgentActions)
	assert.Equal(t, QuickTips(RiskModerate), plan.Summary.Recommendations)
}

func TestBuildMitigationPlan_SingleHorizon(t *testing.T) {
	h := HorizonImmediate
	plan := BuildMitigationPlan(RiskExtreme, &h)

	assert.Equal(t, "immediate", plan.Category)
	require.Len(t, plan.Strategies, 1)
	assert.Equal(t, 4, plan.Summary.TotalStrategies)
	assert.Equal(t, 2, plan.Summary.UrgentActions)
}

func TestBuildMitigationPlan_ExtremeUrgentCount(t *testing.T) {
	plan := BuildMitigationPlan(RiskExtreme, nil)
	assert.Equal(t, 8, plan.Summary.TotalStrategies)
	assert.Equal(t, 3, plan.Summary.UrgentActions)
}

func TestBuildMitigationPlan_EmptyHorizonIsNotNil(t *testing.T) {
	h := HorizonImmediate
	plan := BuildMitigationPlan(RiskLow, &h)
	assert.NotNil(t, plan.Strategies[HorizonImmediate])
	assert.Empty(t, plan.Strategies[HorizonImmediate])
}

func TestParseHorizon(t *testing.T) {
	h, err := ParseHorizon("shortTerm")
	require.NoError(t, err)
	assert.Equal(t, HorizonShortTerm, h)

	_, err = ParseHorizon("someday")
	require.ErrorIs(t, err, ErrInvalidInput)
}
