package domain

import (
	"fmt"
	"slices"
)

// Horizon partitions strategy cards by how soon they take effect.
type Horizon string

const (
	HorizonImmediate Horizon = "immediate"
	HorizonShortTerm Horizon = "shortTerm"
	HorizonLongTerm  Horizon = "longTerm"
)

// Horizons lists every horizon in display order.
func Horizons() []Horizon {
	return []Horizon{HorizonImmediate, HorizonShortTerm, HorizonLongTerm}
}

// ParseHorizon validates a horizon key.
func ParseHorizon(s string) (Horizon, error) {
	switch h := Horizon(s); h {
	case HorizonImmediate, HorizonShortTerm, HorizonLongTerm:
		return h, nil
	default:
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
}

// Strategy is a mitigation card and the tiers it applies to.
type Strategy struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	RiskLevels  []RiskLevel `json:"riskLevel"`
	Priority    string      `json:"priority"` // urgent, high, medium
}

// AppliesTo reports whether the strategy is listed for the tier.
func (s Strategy) AppliesTo(level RiskLevel) bool {
	return slices.Contains(s.RiskLevels, level)
}

var strategies = map[Horizon][]Strategy{
	HorizonImmediate: {
		{
			Title:       "Seek Air Conditioning",
			Description: "Move to air-conditioned spaces during peak heat hours",
			RiskLevels:  []RiskLevel{RiskHigh, RiskExtreme},
			Priority:    "urgent",
		},
		{
			Title:       "Hydrate Frequently",
			Description: "Drink water every 15-20 minutes, even if not thirsty",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh, RiskExtreme},
			Priority:    "high",
		},
		{
			Title:       "Wear Light Clothing",
			Description: "Choose light-colored, loose-fitting, breathable fabrics",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh, RiskExtreme},
			Priority:    "medium",
		},
		{
			Title:       "Limit Sun Exposure",
			Description: "Stay in shade or indoors during 10 AM - 4 PM",
			RiskLevels:  []RiskLevel{RiskHigh, RiskExtreme},
			Priority:    "urgent",
		},
	},
	HorizonShortTerm: {
		{
			Title:       "Install Cooling Systems",
			Description: "Set up fans, AC units, or swamp coolers for immediate relief",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh, RiskExtreme},
			Priority:    "high",
		},
		{
			Title:       "Create Shade Structures",
			Description: "Install awnings, umbrellas, or temporary shade sails",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh},
			Priority:    "medium",
		},
		{
			Title:       "Improve Ventilation",
			Description: "Open windows at night, use cross-ventilation techniques",
			RiskLevels:  []RiskLevel{RiskLow, RiskModerate},
			Priority:    "medium",
		},
		{
			Title:       "Cool Roof Treatments",
			Description: "Apply reflective paint or install cool roofing materials",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh, RiskExtreme},
			Priority:    "high",
		},
	},
	HorizonLongTerm: {
		{
			Title:       "Plant Trees",
			Description: "Establish urban canopy with heat-tolerant tree species",
			RiskLevels:  []RiskLevel{RiskLow, RiskModerate, RiskHigh},
			Priority:    "high",
		},
		{
			Title:       "Green Infrastructure",
			Description: "Implement green roofs, walls, and permeable surfaces",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh},
			Priority:    "medium",
		},
		{
			Title:       "Building Insulation",
			Description: "Improve building envelope to reduce heat gain",
			RiskLevels:  []RiskLevel{RiskModerate, RiskHigh, RiskExtreme},
			Priority:    "high",
		},
		{
			Title:       "Community Cooling Centers",
			Description: "Establish public spaces with AC for vulnerable populations",
			RiskLevels:  []RiskLevel{RiskHigh, RiskExtreme},
			Priority:    "urgent",
		},
	},
}

// StrategiesFor returns the cards in a horizon that apply to the tier, in
// table order.
func StrategiesFor(level RiskLevel, horizon Horizon) []Strategy {
	var out []Strategy
	for _, s := range strategies[horizon] {
		if s.AppliesTo(level) {
			s.RiskLevels = slices.Clone(s.RiskLevels)
			out = append(out, s)
		}
	}
	return out
}

// MitigationPlan groups the strategies for one tier by horizon.
type MitigationPlan struct {
	RiskLevel  RiskLevel              `json:"riskLevel"`
	Category   string                 `json:"category"`
	Strategies map[Horizon][]Strategy `json:"strategies"`
	Summary    MitigationSummary      `json:"summary"`
}

// MitigationSummary counts the cards in a plan.
type MitigationSummary struct {
	TotalStrategies int      `json:"totalStrategies"`
	UrgentActions   int      `json:"urgentActions"`
	Recommendations []string `json:"recommendations"`
}

// BuildMitigationPlan collects the strategies for a tier. A nil horizon
// selects every horizon.
func BuildMitigationPlan(level RiskLevel, horizon *Horizon) MitigationPlan {
	horizons := Horizons()
	category := "all"
	if horizon != nil {
		horizons = []Horizon{*horizon}
		category = string(*horizon)
	}

	plan := MitigationPlan{
		RiskLevel:  level,
		Category:   category,
		Strategies: make(map[Horizon][]Strategy, len(horizons)),
	}
	for _, h := range horizons {
		matched := StrategiesFor(level, h)
		if matched == nil {
			matched = []Strategy{}
		}
		plan.Strategies[h] = matched
		for _, s := range matched {
			plan.Summary.TotalStrategies++
			if s.Priority == "urgent" {
				plan.Summary.UrgentActions++
			}
		}
	}
	plan.Summary.Recommendations = QuickTips(level)
	return plan
}
