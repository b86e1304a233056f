package domain

import (
	"fmt"
	"slices"
)

// Audience partitions recommendations by who acts on them.
type Audience string

const (
	AudiencePersonal       Audience = "personal"
	AudienceCommunity      Audience = "community"
	AudienceInfrastructure Audience = "infrastructure"
)

// Audiences lists every audience in display order.
func Audiences() []Audience {
	return []Audience{AudiencePersonal, AudienceCommunity, AudienceInfrastructure}
}

// ParseAudience validates an audience key.
func ParseAudience(s string) (Audience, error) {
	switch a := Audience(s); a {
	case AudiencePersonal, AudienceCommunity, AudienceInfrastructure:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown audience %q", ErrInvalidInput, s)
	}
}

// recommendations is ordered most-recommended first within each list.
var recommendations = map[RiskLevel]map[Audience][]string{
	RiskLow: {
		AudiencePersonal: {
			"Stay hydrated with water throughout the day",
			"Wear light-colored, loose-fitting clothing",
			"Take regular breaks in shaded areas",
			"Use fans to improve air circulation",
			"Avoid strenuous activities during peak hours",
		},
		AudienceCommunity: {
			"Maintain existing green spaces",
			"Monitor local weather forecasts",
			"Check on neighbors periodically",
			"Support local tree planting initiatives",
		},
		AudienceInfrastructure: {
			"Maintain air conditioning systems",
			"Ensure proper ventilation in buildings",
			"Use light-colored roofing materials",
			"Install window coverings and blinds",
		},
	},
	RiskModerate: {
		AudiencePersonal: {
			"Increase water intake significantly",
			"Avoid prolonged outdoor activities",
			"Seek air-conditioned spaces during peak heat",
			"Use cooling towels on neck and wrists",
			"Wear sunscreen and protective clothing",
			"Take cool showers or baths",
		},
		AudienceCommunity: {
			"Open community cooling centers",
			"Organize neighborhood check-ins",
			"Distribute water and cooling supplies",
			"Create temporary shade structures",
			"Promote public awareness campaigns",
		},
		AudienceInfrastructure: {
			"Increase urban tree canopy coverage",
			"Install misting systems in public areas",
			"Use reflective pavements and surfaces",
			"Improve public transportation cooling",
			"Create green corridors and parks",
		},
	},
	RiskHigh: {
		AudiencePersonal: {
			"Limit outdoor activities to early morning or evening",
			"Stay in air-conditioned environments",
			"Use cooling vests or ice packs",
			"Monitor for heat illness symptoms",
			"Avoid alcohol and caffeinated beverages",
			"Eat light, cool meals",
		},
		AudienceCommunity: {
			"Activate heat emergency response plans",
			"Extend cooling center hours",
			"Provide transportation to cooling centers",
			"Increase welfare checks for vulnerable populations",
			"Coordinate with emergency services",
		},
		AudienceInfrastructure: {
			"Install green roofs and walls",
			"Create urban forests and shade structures",
			"Implement cool pavement technologies",
			"Enhance water feature installations",
			"Improve building energy efficiency",
		},
	},
	RiskExtreme: {
		AudiencePersonal: {
			"Avoid all non-essential outdoor activities",
			"Stay in air-conditioned spaces at all times",
			"Use multiple cooling methods simultaneously",
			"Monitor health status continuously",
			"Have emergency contacts readily available",
			"Follow heat illness protocols",
		},
		AudienceCommunity: {
			"Implement emergency heat response protocols",
			"Activate all available cooling resources",
			"Coordinate with emergency medical services",
			"Provide emergency shelter and cooling",
			"Issue public health warnings",
			"Mobilize community volunteers",
		},
		AudienceInfrastructure: {
			"Deploy emergency cooling infrastructure",
			"Activate emergency power for cooling systems",
			"Implement traffic and activity restrictions",
			"Enhance hospital and healthcare capacity",
			"Activate emergency water distribution",
			"Coordinate regional cooling response",
		},
	},
}

// quickTips is the short list shown alongside a live weather lookup.
var quickTips = map[RiskLevel][]string{
	RiskLow: {
		"Stay hydrated with water",
		"Wear light-colored clothing",
		"Take regular breaks in shade",
		"Monitor weather updates",
	},
	RiskModerate: {
		"Avoid prolonged outdoor activities",
		"Seek air-conditioned spaces",
		"Wear sunscreen and protective clothing",
		"Check on vulnerable neighbors",
		"Plant trees for natural cooling",
	},
	RiskHigh: {
		"Limit outdoor activities to early morning or evening",
		"Use cooling centers if available",
		"Apply wet towels to neck and wrists",
		"Install reflective window coverings",
		"Create green spaces and urban gardens",
	},
	RiskExtreme: {
		"Avoid all non-essential outdoor activities",
		"Seek immediate air conditioning",
		"Check on elderly and vulnerable people",
		"Call emergency services if experiencing heat illness",
		"Implement emergency heat response plans",
		"Use cool water for body cooling",
	},
}

// RecommendationsFor returns the ordered recommendations for a tier and
// audience. The result is a copy; an unknown pair yields nil.
func RecommendationsFor(level RiskLevel, audience Audience) []string {
	return slices.Clone(recommendations[level][audience])
}

// RecommendationSet returns every audience's recommendations for a tier.
func RecommendationSet(level RiskLevel) map[Audience][]string {
	byAudience, ok := recommendations[level]
	if !ok {
		return nil
	}
	out := make(map[Audience][]string, len(byAudience))
	for a, recs := range byAudience {
		out[a] = slices.Clone(recs)
	}
	return out
}

// AllRecommendations returns the full table keyed by tier.
func AllRecommendations() map[RiskLevel]map[Audience][]string {
	out := make(map[RiskLevel]map[Audience][]string, len(recommendations))
	for l := range recommendations {
		out[l] = RecommendationSet(l)
	}
	return out
}

// QuickTips returns the short tip list for a tier.
func QuickTips(level RiskLevel) []string {
	return slices.Clone(quickTips[level])
}
