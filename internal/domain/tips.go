package domain

import "slices"

// tips groups hands-on guidance by audience, then by situation.
var tips = map[Audience]map[string][]string{
	AudiencePersonal: {
		"immediate": {
			"Move to air-conditioned space immediately",
			"Apply cool water to pulse points",
			"Remove excess clothing",
			"Drink cool fluids slowly",
			"Use fans to increase air circulation",
		},
		"preventive": {
			"Stay hydrated throughout the day",
			"Wear light-colored, loose clothing",
			"Plan activities for cooler parts of day",
			"Use sunscreen and protective gear",
			"Take frequent breaks in shade",
		},
		"emergency": {
			"Call emergency services if experiencing heat illness",
			"Move to coolest available location",
			"Apply ice packs to neck, armpits, groin",
			"Monitor for signs of heat exhaustion",
			"Have someone stay with affected person",
		},
	},
	AudienceCommunity: {
		"planning": {
			"Develop heat emergency response plans",
			"Identify vulnerable populations",
			"Establish cooling center locations",
			"Create communication networks",
			"Train community volunteers",
		},
		"implementation": {
			"Open cooling centers during heat events",
			"Conduct wellness checks on vulnerable residents",
			"Distribute cooling supplies and water",
			"Provide transportation to cooling centers",
			"Activate emergency communication systems",
		},
		"longterm": {
			"Increase urban tree canopy",
			"Install community cooling infrastructure",
			"Develop heat-resilient building codes",
			"Create public awareness programs",
			"Build community resilience networks",
		},
	},
	AudienceInfrastructure: {
		"buildings": {
			"Install or upgrade air conditioning systems",
			"Improve building insulation",
			"Use reflective roofing materials",
			"Install window films and coverings",
			"Enhance natural ventilation",
		},
		"urban": {
			"Increase green space and tree coverage",
			"Install public cooling features",
			"Use cool pavement technologies",
			"Create shade structures",
			"Implement urban heat island mitigation",
		},
		"systems": {
			"Upgrade electrical grid for cooling demand",
			"Enhance water distribution systems",
			"Improve emergency response systems",
			"Develop heat warning systems",
			"Create resilient transportation networks",
		},
	},
}

// Tips returns the tip groups for an audience.
func Tips(audience Audience) map[string][]string {
	groups, ok := tips[audience]
	if !ok {
		return nil
	}
	out := make(map[string][]string, len(groups))
	for name, list := range groups {
		out[name] = slices.Clone(list)
	}
	return out
}

// AllTips returns every audience's tip groups.
func AllTips() map[Audience]map[string][]string {
	out := make(map[Audience]map[string][]string, len(tips))
	for a := range tips {
		out[a] = Tips(a)
	}
	return out
}
