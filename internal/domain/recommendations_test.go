package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsFor_ExtremePersonal(t *testing.T) {
	recs := RecommendationsFor(RiskExtreme, AudiencePersonal)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Avoid all non-essential outdoor activities", recs[0])
}

func TestRecommendationsFor_EveryTierAndAudience(t *testing.T) {
	for _, l := range RiskLevels() {
		for _, a := range Audiences() {
			first := RecommendationsFor(l, a)
			assert.NotEmpty(t, first, "%s/%s", l, a)
			if diff := cmp.Diff(first, RecommendationsFor(l, a)); diff != "" {
				t.Fatalf("%s/%s not deterministic (-first +second):\n%s", l, a, diff)
			}
		}
	}
}

func TestRecommendationsFor_ReturnsCopy(t *testing.T) {
	recs := RecommendationsFor(RiskHigh, AudienceCommunity)
	recs[0] = "mutated"

	assert.Equal(t, "Activate heat emergency response plans", RecommendationsFor(RiskHigh, AudienceCommunity)[0])
}

func TestRecommendationSet(t *testing.T) {
	set := RecommendationSet(RiskLow)
	require.Len(t, set, 3)
	assert.Equal(t, RecommendationsFor(RiskLow, AudienceInfrastructure), set[AudienceInfrastructure])

	set[AudiencePersonal][0] = "mutated"
	assert.Equal(t, "Stay hydrated with water throughout the day", RecommendationsFor(RiskLow, AudiencePersonal)[0])

	assert.Nil(t, RecommendationSet(RiskLevel("unknown")))
}

func TestAllRecommendations(t *testing.T) {
	all := AllRecommendations()
	assert.Len(t, all, 4)
	for _, l := range RiskLevels() {
		assert.Len(t, all[l], 3)
	}
}

func TestParseAudience(t *testing.T) {
	a, err := ParseAudience("community")
	require.NoError(t, err)
	assert.Equal(t, AudienceCommunity, a)

	_, err = ParseAudience("everyone")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuickTips(t *testing.T) {
	assert.Len(t, QuickTips(RiskExtreme), 6)
	assert.Equal(t, "Stay hydrated with water", QuickTips(RiskLow)[0])
	assert.Nil(t, QuickTips(RiskLevel("unknown")))
}

func TestTips(t *testing.T) {
	personal := Tips(AudiencePersonal)
	require.Contains(t, personal, "emergency")
	assert.Equal(t, "Call emergency services if experiencing heat illness", personal["emergency"][0])
	assert.Len(t, AllTips(), 3)
	assert.Nil(t, Tips(Audience("unknown")))
}

func TestResources(t *testing.T) {
	r := Resources()
	require.Len(t, r.Emergency.Hotlines, 3)
	assert.Equal(t, "911", r.Emergency.Hotlines[0].Number)
	assert.Len(t, r.Prevention.Technology, 4)
}
